// Package script replays recorded pointer input against a desk
package script

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/paperdesk/desk"
	"github.com/lixenwraith/paperdesk/input"
	"github.com/lixenwraith/paperdesk/vmath"
)

var (
	ErrUnknownEvent = errors.New("script: unknown event")
	ErrUnknownPaper = errors.New("script: unknown paper")
)

// Step is one scripted pointer report
type Step struct {
	Kind     string  `toml:"kind"`   // activate, move, release
	Source   string  `toml:"source"` // mouse (default), touch
	X        float64 `toml:"x"`
	Y        float64 `toml:"y"`
	Button   string  `toml:"button"`   // left (default), right, middle
	Contacts int     `toml:"contacts"` // touch only; 0 keeps the previous count
	Paper    string  `toml:"paper"`    // scopes an activation to a titled paper
}

func (s Step) String() string {
	return fmt.Sprintf("%s %s (%g,%g)", s.Source, s.Kind, s.X, s.Y)
}

// Script is an ordered list of steps
type Script struct {
	Events []Step `toml:"event"`
}

// Parse decodes and validates a TOML script
func Parse(data string) (*Script, error) {
	var s Script
	if _, err := toml.Decode(data, &s); err != nil {
		return nil, err
	}
	for i := range s.Events {
		st := &s.Events[i]
		if st.Source == "" {
			st.Source = "mouse"
		}
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("event #%d: %w", i+1, err)
		}
	}
	return &s, nil
}

// Load reads and parses a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

func (s Step) validate() error {
	switch s.Kind {
	case "activate", "move", "release":
	default:
		return fmt.Errorf("%w: kind %q", ErrUnknownEvent, s.Kind)
	}
	switch s.Source {
	case "mouse":
		if _, ok := buttons[s.Button]; !ok {
			return fmt.Errorf("%w: button %q", ErrUnknownEvent, s.Button)
		}
	case "touch":
		if s.Contacts < 0 {
			return fmt.Errorf("%w: negative contacts %d", ErrUnknownEvent, s.Contacts)
		}
	default:
		return fmt.Errorf("%w: source %q", ErrUnknownEvent, s.Source)
	}
	return nil
}

var buttons = map[string]input.Button{
	"":       input.ButtonPrimary,
	"left":   input.ButtonPrimary,
	"right":  input.ButtonSecondary,
	"middle": input.ButtonMiddle,
}

// contactSpacing separates synthesized fingers
const contactSpacing = 1.0

// Player feeds steps through the same trackers the interactive host uses
type Player struct {
	desk  *desk.Desk
	mouse input.MouseTracker
	touch input.TouchTracker

	lastX, lastY float64
}

// NewPlayer creates a player bound to d
func NewPlayer(d *desk.Desk) *Player {
	return &Player{desk: d}
}

// Run plays every step in order, stopping early when ctx is done
func (p *Player) Run(ctx context.Context, s *Script) error {
	for i, st := range s.Events {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Step(st); err != nil {
			return fmt.Errorf("event #%d: %w", i+1, err)
		}
	}
	return nil
}

// Step plays a single step
func (p *Player) Step(st Step) error {
	if st.Source == "" {
		st.Source = "mouse"
	}
	if err := st.validate(); err != nil {
		return err
	}

	var events []input.Event
	switch st.Source {
	case "touch":
		events = p.touchEvents(st)
	default:
		events = p.mouseEvents(st)
	}

	if st.Paper != "" {
		if _, ok := p.desk.Sheet(st.Paper); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPaper, st.Paper)
		}
		for i := range events {
			if events[i].Kind == input.KindActivate {
				events[i].Target = st.Paper
			}
		}
	}

	p.desk.DispatchAll(events)
	return nil
}

func (p *Player) mouseEvents(st Step) []input.Event {
	switch st.Kind {
	case "activate":
		p.lastX, p.lastY = st.X, st.Y
		return p.mouse.Sample(st.X, st.Y, p.mouse.Buttons()|buttons[st.Button])
	case "move":
		p.lastX, p.lastY = st.X, st.Y
		return p.mouse.Sample(st.X, st.Y, p.mouse.Buttons())
	default:
		// Release happens where the pointer last was
		return p.mouse.Sample(p.lastX, p.lastY, input.ButtonNone)
	}
}

func (p *Player) touchEvents(st Step) []input.Event {
	switch st.Kind {
	case "activate":
		// The driving contact at (x, y) is the one landing
		return p.touch.Sample(input.TouchStart, contacts(st.X, st.Y, max(1, st.Contacts)), 0)
	case "move":
		n := st.Contacts
		if n == 0 {
			n = max(1, p.touch.Active())
		}
		return p.touch.Sample(input.TouchMove, contacts(st.X, st.Y, n), 0)
	default:
		return p.touch.Sample(input.TouchEnd, nil, 0)
	}
}

// contacts lays n fingers in a row starting at the driving contact
func contacts(x, y float64, n int) []vmath.Vec2 {
	out := make([]vmath.Vec2, n)
	for i := range out {
		out[i] = vmath.Vec2{X: x + float64(i)*contactSpacing, Y: y}
	}
	return out
}
