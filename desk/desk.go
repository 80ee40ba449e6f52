// Package desk hosts papers: it owns the input bus, routes activations to the
// topmost paper under the pointer and broadcasts everything else
package desk

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lixenwraith/paperdesk/config"
	"github.com/lixenwraith/paperdesk/input"
	"github.com/lixenwraith/paperdesk/paper"
	"github.com/lixenwraith/paperdesk/stack"
	"github.com/lixenwraith/paperdesk/vmath"
)

// Feedback is notified when papers are picked up and dropped
type Feedback interface {
	Pickup(rotating bool)
	Drop()
}

type silent struct{}

func (silent) Pickup(bool) {}
func (silent) Drop()       {}

// Options wires the desk collaborators. Zero values are usable
type Options struct {
	Order    stack.Order   // nil: process-wide counter
	Surface  paper.Surface // nil: discard
	Feedback Feedback      // nil: silent
	Logger   *log.Logger   // nil: discard
	Rand     *rand.Rand    // nil: seeded from config, or global source when seed is 0
}

// Desk is the input dispatcher and paper registry
type Desk struct {
	logger   *log.Logger
	feedback Feedback
	bus      *input.Bus

	sheets  []*Sheet
	byTitle map[string]*Sheet
	byPaper map[*paper.Paper]*Sheet

	mouse input.MouseTracker
	touch input.TouchTracker

	active *Sheet
}

// New builds one sheet per configured paper and subscribes each to the bus
func New(cfg *config.Config, opts Options) *Desk {
	if opts.Feedback == nil {
		opts.Feedback = silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Rand == nil && cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	d := &Desk{
		logger:   opts.Logger,
		feedback: opts.Feedback,
		byTitle:  make(map[string]*Sheet, len(cfg.Papers)),
		byPaper:  make(map[*paper.Paper]*Sheet, len(cfg.Papers)),
	}
	d.bus = input.NewBus(input.ResolverFunc(d.resolve))

	for i, pc := range cfg.Papers {
		var popts []paper.Option
		if opts.Rand != nil {
			popts = append(popts, paper.WithRand(opts.Rand))
		}
		if pc.Rotation != nil {
			popts = append(popts, paper.WithRotation(*pc.Rotation))
		}

		id := paper.ID(uuid.NewString())
		s := &Sheet{
			Paper:  paper.New(id, opts.Order, opts.Surface, popts...),
			Title:  pc.Title,
			X:      pc.X,
			Y:      pc.Y,
			Width:  pc.Width,
			Height: pc.Height,
			Color:  pc.Color,
			Lines:  pc.Lines,
			index:  i,
		}
		d.sheets = append(d.sheets, s)
		d.byTitle[s.Title] = s
		d.byPaper[s.Paper] = s
		d.bus.Subscribe(s.Paper)

		d.logger.Debug("paper placed", "title", s.Title, "id", id, "rotation", s.State().Rotation)
	}
	return d
}

// Sheets returns all sheets in placement order
func (d *Desk) Sheets() []*Sheet {
	return d.sheets
}

// Sheet looks a sheet up by title
func (d *Desk) Sheet(title string) (*Sheet, bool) {
	s, ok := d.byTitle[title]
	return s, ok
}

// Active returns the most recently picked up sheet, nil before the first pickup
func (d *Desk) Active() *Sheet {
	return d.active
}

// Held returns the sheets currently picked up
func (d *Desk) Held() []*Sheet {
	var held []*Sheet
	for _, s := range d.sheets {
		if s.Held() {
			held = append(held, s)
		}
	}
	return held
}

// TopmostAt returns the front-most sheet containing the point
// Highest stack priority wins; equal priorities fall back to placement order
func (d *Desk) TopmostAt(x, y float64) (*Sheet, bool) {
	var top *Sheet
	for _, s := range d.sheets {
		if !s.Contains(x, y) {
			continue
		}
		if top == nil || above(s, top) {
			top = s
		}
	}
	return top, top != nil
}

// above reports whether a paints over b
func above(a, b *Sheet) bool {
	pa, pb := a.State().StackPriority, b.State().StackPriority
	if pa != pb {
		return pa > pb
	}
	return a.Index() > b.Index()
}

func (d *Desk) resolve(ev input.Event) (input.Subscriber, bool) {
	if ev.Target != "" {
		s, ok := d.byTitle[ev.Target]
		if !ok {
			return nil, false
		}
		return s.Paper, true
	}
	s, ok := d.TopmostAt(ev.HitX, ev.HitY)
	if !ok {
		return nil, false
	}
	return s.Paper, true
}

// Dispatch delivers one normalized event
func (d *Desk) Dispatch(ev input.Event) {
	if ev.Kind == input.KindRelease {
		held := d.Held()
		for _, s := range held {
			st := s.State()
			d.logger.Debug("paper dropped", "title", s.Title,
				"x", st.PositionX, "y", st.PositionY, "rotation", st.Rotation)
		}
		if len(held) > 0 {
			d.feedback.Drop()
		}
	}

	var wasHeld bool
	if ev.Kind == input.KindActivate {
		if s, ok := d.lookup(ev); ok {
			wasHeld = s.Held()
		}
	}

	target := d.bus.Dispatch(ev)
	if target == nil {
		if ev.Kind == input.KindActivate {
			d.logger.Debug("activation missed", "x", ev.HitX, "y", ev.HitY, "target", ev.Target)
		}
		return
	}

	p, ok := target.(*paper.Paper)
	if !ok {
		return
	}
	s := d.byPaper[p]
	if wasHeld {
		d.logger.Debug("activation ignored, already held", "title", s.Title)
		return
	}
	d.active = s
	st := s.State()
	d.logger.Debug("paper picked up", "title", s.Title, "mode", st.Mode(),
		"priority", st.StackPriority, "x", ev.X, "y", ev.Y)
	d.feedback.Pickup(st.Rotating)
}

func (d *Desk) lookup(ev input.Event) (*Sheet, bool) {
	sub, ok := d.resolve(ev)
	if !ok {
		return nil, false
	}
	p, ok := sub.(*paper.Paper)
	if !ok {
		return nil, false
	}
	s, ok := d.byPaper[p]
	return s, ok
}

// DispatchAll delivers events in order
func (d *Desk) DispatchAll(events []input.Event) {
	for _, ev := range events {
		d.Dispatch(ev)
	}
}

// Mouse feeds one mouse report in surface coordinates
func (d *Desk) Mouse(x, y float64, buttons input.Button) {
	d.DispatchAll(d.mouse.Sample(x, y, buttons))
}

// Touch feeds one touch report in surface coordinates
// changed is the index of the contact that just landed, used on TouchStart only
func (d *Desk) Touch(phase input.TouchPhase, contacts []vmath.Vec2, changed int) {
	d.DispatchAll(d.touch.Sample(phase, contacts, changed))
}

// ResetPointer releases anything the mouse was holding
func (d *Desk) ResetPointer() {
	d.DispatchAll(d.mouse.Reset())
}
