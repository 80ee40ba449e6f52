// Package paper implements the per-paper input-to-transform state machine
//
// A paper is picked up by Activate, follows the pointer on Move and is dropped on Release.
// Activation decides the mode for the whole hold: translating papers accumulate per-sample
// pointer velocity into their position, rotating papers point from the activation anchor
// toward the live pointer. Move and Release are meant to be broadcast to every paper so
// dragging continues outside a paper's bounds; both only touch the receiving paper.
//
// Papers are not safe for concurrent use. The host delivers events from one goroutine.
package paper

import (
	"math/rand/v2"

	"github.com/lixenwraith/paperdesk/stack"
	"github.com/lixenwraith/paperdesk/vmath"
)

// InitialTilt is the half-range of the random rotation a new paper starts with
const InitialTilt = 15.0

// Mode is the coarse interaction state of a paper
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeTranslating
	ModeRotating
)

// String returns human-readable mode name
func (m Mode) String() string {
	switch m {
	case ModeTranslating:
		return "Translating"
	case ModeRotating:
		return "Rotating"
	default:
		return "Idle"
	}
}

// State is the complete interaction state of one paper
type State struct {
	Held     bool
	Rotating bool

	AnchorX, AnchorY     float64 // pointer at activation, origin of the heading
	CurrentX, CurrentY   float64
	PreviousX, PreviousY float64
	VelocityX, VelocityY float64

	Rotation  float64 // [0, 360)
	Heading   float64 // last defined anchor→pointer angle, [0, 360)
	PositionX float64
	PositionY float64

	StackPriority int
}

// Mode derives the interaction mode from the flags
func (s State) Mode() Mode {
	switch {
	case !s.Held:
		return ModeIdle
	case s.Rotating:
		return ModeRotating
	default:
		return ModeTranslating
	}
}

// Transform returns the transform implied by the state
func (s State) Transform() Transform {
	return Transform{
		TranslateX:    s.PositionX,
		TranslateY:    s.PositionY,
		RotateDegrees: s.Rotation,
	}
}

// Paper owns the interaction state of one widget
type Paper struct {
	id      ID
	order   stack.Order
	surface Surface
	state   State
}

// Option configures a Paper at construction
type Option func(*Paper)

// WithRotation overrides the random initial tilt. The value is normalized into [0, 360)
func WithRotation(degrees float64) Option {
	return func(p *Paper) {
		p.state.Rotation = vmath.NormalizeDegrees(degrees)
	}
}

// WithRand draws the initial tilt from rng instead of the global source
func WithRand(rng *rand.Rand) Option {
	return func(p *Paper) {
		p.state.Rotation = randomTilt(rng.Float64())
	}
}

// New creates an idle paper with a random tilt in [-15, 15)
// A nil order uses the process-wide counter, a nil surface discards output
func New(id ID, order stack.Order, surface Surface, opts ...Option) *Paper {
	if order == nil {
		order = stack.Shared()
	}
	if surface == nil {
		surface = NopSurface{}
	}
	p := &Paper{
		id:      id,
		order:   order,
		surface: surface,
	}
	p.state.Rotation = randomTilt(rand.Float64())
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func randomTilt(u float64) float64 {
	return vmath.NormalizeDegrees(u*2*InitialTilt - InitialTilt)
}

// ID returns the paper identifier
func (p *Paper) ID() ID {
	return p.id
}

// State returns a copy of the interaction state
func (p *Paper) State() State {
	return p.state
}

// Held reports whether the paper is currently picked up
func (p *Paper) Held() bool {
	return p.state.Held
}

// Activate picks the paper up at (x, y). rotate selects rotation mode for the whole hold
// Ignored while already held so a second contact cannot corrupt a drag in progress
func (p *Paper) Activate(x, y float64, rotate bool) {
	s := &p.state
	if s.Held {
		return
	}
	s.Held = true

	s.StackPriority = p.order.Next()
	p.surface.ApplyStackPriority(p.id, s.StackPriority)

	s.AnchorX, s.AnchorY = x, y
	s.PreviousX, s.PreviousY = x, y
	s.Rotating = rotate
}

// Move feeds one pointer sample in surface coordinates
// multiTouch reports whether more than one contact is down; it does not switch modes
func (p *Paper) Move(x, y float64, multiTouch bool) {
	s := &p.state

	if !s.Rotating {
		s.CurrentX, s.CurrentY = x, y
		s.VelocityX = s.CurrentX - s.PreviousX
		s.VelocityY = s.CurrentY - s.PreviousY
	}

	// Heading is tracked while translating too, so switching to rotation does not jump
	heading, ok := vmath.DirectionDegrees(x-s.AnchorX, y-s.AnchorY)
	if ok {
		s.Heading = heading
		if s.Rotating {
			s.Rotation = heading
		}
	}

	if !s.Held {
		return
	}
	if !s.Rotating {
		s.PositionX += s.VelocityX
		s.PositionY += s.VelocityY
	}
	s.PreviousX, s.PreviousY = s.CurrentX, s.CurrentY

	p.surface.ApplyTransform(p.id, s.Transform())
}

// Release drops the paper. Position and rotation stay where they are
func (p *Paper) Release() {
	p.state.Held = false
	p.state.Rotating = false
}
