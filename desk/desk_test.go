package desk

import (
	"testing"

	"github.com/lixenwraith/paperdesk/config"
	"github.com/lixenwraith/paperdesk/input"
	"github.com/lixenwraith/paperdesk/paper"
	"github.com/lixenwraith/paperdesk/stack"
	"github.com/lixenwraith/paperdesk/vmath"
)

type countingFeedback struct {
	pickups   int
	rotations int
	drops     int
}

func (f *countingFeedback) Pickup(rotating bool) {
	f.pickups++
	if rotating {
		f.rotations++
	}
}

func (f *countingFeedback) Drop() { f.drops++ }

type transformLog map[paper.ID][]paper.Transform

func (l transformLog) ApplyTransform(id paper.ID, t paper.Transform) { l[id] = append(l[id], t) }
func (l transformLog) ApplyStackPriority(paper.ID, int)              {}

func flat(v float64) *float64 { return &v }

// Two overlapping papers: "Back" spans x 0..20, "Front" spans x 10..30, both y 0..10
func testConfig() *config.Config {
	return &config.Config{
		Seed:       1,
		CellAspect: 2,
		Background: "#000000",
		Papers: []config.PaperConfig{
			{Title: "Back", X: 0, Y: 0, Width: 20, Height: 10, Color: "#ffffff", Rotation: flat(0)},
			{Title: "Front", X: 10, Y: 0, Width: 20, Height: 10, Color: "#ffffff", Rotation: flat(0)},
			{Title: "Far", X: 100, Y: 100, Width: 10, Height: 10, Color: "#ffffff", Rotation: flat(0)},
		},
	}
}

func newTestDesk(t *testing.T) (*Desk, *countingFeedback, *stack.Counter, transformLog) {
	t.Helper()
	fb := &countingFeedback{}
	order := stack.NewCounter(1)
	tl := transformLog{}
	d := New(testConfig(), Options{Order: order, Feedback: fb, Surface: tl})
	return d, fb, order, tl
}

func mustSheet(t *testing.T, d *Desk, title string) *Sheet {
	t.Helper()
	s, ok := d.Sheet(title)
	if !ok {
		t.Fatalf("Sheet %q not found", title)
	}
	return s
}

func TestTopmostPrefersPlacementOrderOnTies(t *testing.T) {
	d, _, _, _ := newTestDesk(t)

	s, ok := d.TopmostAt(15, 5)
	if !ok || s.Title != "Front" {
		t.Fatalf("Expected Front in overlap before any activation, got %v", s)
	}
	s, ok = d.TopmostAt(5, 5)
	if !ok || s.Title != "Back" {
		t.Fatalf("Expected Back outside overlap, got %v", s)
	}
	if _, ok := d.TopmostAt(50, 50); ok {
		t.Fatal("Expected no sheet at empty point")
	}
}

func TestSheetIndexFollowsPlacement(t *testing.T) {
	d, _, _, _ := newTestDesk(t)

	for i, s := range d.Sheets() {
		if s.Index() != i {
			t.Errorf("Expected %s at index %d, got %d", s.Title, i, s.Index())
		}
	}
	back, front := mustSheet(t, d, "Back"), mustSheet(t, d, "Front")
	if !above(front, back) || above(back, front) {
		t.Error("Expected Front above Back on equal priority")
	}
}

func TestActivationRaisesPaper(t *testing.T) {
	d, _, _, _ := newTestDesk(t)

	// Pick Back outside the overlap, drop it, then the overlap belongs to Back
	d.Mouse(5, 5, input.ButtonPrimary)
	d.Mouse(5, 5, input.ButtonNone)

	s, _ := d.TopmostAt(15, 5)
	if s.Title != "Back" {
		t.Errorf("Expected Back raised above Front, got %s", s.Title)
	}

	d.Mouse(25, 5, input.ButtonPrimary)
	d.Mouse(25, 5, input.ButtonNone)
	s, _ = d.TopmostAt(15, 5)
	if s.Title != "Front" {
		t.Errorf("Expected Front raised again, got %s", s.Title)
	}

	back := mustSheet(t, d, "Back").State().StackPriority
	front := mustSheet(t, d, "Front").State().StackPriority
	if back != 1 || front != 2 {
		t.Errorf("Expected priorities 1 and 2, got %d and %d", back, front)
	}
}

func TestMouseDragMovesOnlyHeldPaper(t *testing.T) {
	d, fb, _, tl := newTestDesk(t)

	d.Mouse(15, 5, input.ButtonNone)
	d.Mouse(15, 5, input.ButtonPrimary)
	// Drag far outside every paper; the drag must continue
	d.Mouse(60, 45, input.ButtonPrimary)
	d.Mouse(70, 45, input.ButtonPrimary)
	d.Mouse(70, 45, input.ButtonNone)

	front := mustSheet(t, d, "Front").State()
	if front.PositionX != 55 || front.PositionY != 40 {
		t.Errorf("Expected Front moved by (55,40), got (%v,%v)", front.PositionX, front.PositionY)
	}
	if front.Held {
		t.Error("Expected Front released")
	}
	for _, title := range []string{"Back", "Far"} {
		st := mustSheet(t, d, title).State()
		if st.PositionX != 0 || st.PositionY != 0 {
			t.Errorf("Expected %s untouched, got (%v,%v)", title, st.PositionX, st.PositionY)
		}
	}

	if fb.pickups != 1 || fb.drops != 1 || fb.rotations != 0 {
		t.Errorf("Expected 1 pickup and 1 drop, got %+v", fb)
	}
	if n := len(tl[mustSheet(t, d, "Front").ID()]); n != 2 {
		t.Errorf("Expected 2 transforms for Front, got %d", n)
	}
	if d.Active() == nil || d.Active().Title != "Front" {
		t.Errorf("Expected Front active, got %v", d.Active())
	}
}

func TestMouseSecondaryButtonRotates(t *testing.T) {
	d, fb, _, _ := newTestDesk(t)

	d.Mouse(5, 5, input.ButtonSecondary)
	d.Mouse(5, -20, input.ButtonSecondary)
	st := mustSheet(t, d, "Back").State()

	if !st.Rotating {
		t.Fatal("Expected Back rotating")
	}
	if st.Rotation != 270 {
		t.Errorf("Expected rotation 270, got %v", st.Rotation)
	}
	if st.PositionX != 0 || st.PositionY != 0 {
		t.Errorf("Expected no translation while rotating, got (%v,%v)", st.PositionX, st.PositionY)
	}

	// Adding the primary button mid-hold does not switch mode or re-raise
	d.Mouse(5, -20, input.ButtonSecondary|input.ButtonPrimary)
	if got := mustSheet(t, d, "Back").State(); !got.Rotating || got.StackPriority != st.StackPriority {
		t.Errorf("Expected hold unchanged by second button, got %+v", got)
	}
	if fb.pickups != 1 || fb.rotations != 1 {
		t.Errorf("Expected one rotating pickup, got %+v", fb)
	}
}

func TestActivationMissLeavesCounter(t *testing.T) {
	d, fb, order, _ := newTestDesk(t)

	d.Mouse(50, 50, input.ButtonPrimary)
	d.Mouse(55, 55, input.ButtonPrimary)
	d.Mouse(55, 55, input.ButtonNone)

	if order.Peek() != 1 {
		t.Errorf("Expected counter untouched, next is %d", order.Peek())
	}
	if fb.pickups != 0 || fb.drops != 0 {
		t.Errorf("Expected no feedback, got %+v", fb)
	}
	if len(d.Held()) != 0 {
		t.Error("Expected nothing held")
	}
}

func TestTouchTwoFingersRotate(t *testing.T) {
	d, fb, _, _ := newTestDesk(t)

	far := mustSheet(t, d, "Far")
	center := far.Center()
	d.Touch(input.TouchStart, []vmath.Vec2{center, {X: 0, Y: 0}}, 0)
	d.Touch(input.TouchMove, []vmath.Vec2{{X: center.X - 10, Y: center.Y}, {X: 0, Y: 0}}, 0)
	d.Touch(input.TouchEnd, nil, 0)

	st := far.State()
	if st.Rotation != 180 {
		t.Errorf("Expected rotation 180, got %v", st.Rotation)
	}
	if st.Held || st.Rotating {
		t.Error("Expected Far released")
	}
	if fb.rotations != 1 || fb.drops != 1 {
		t.Errorf("Expected one rotating pickup and one drop, got %+v", fb)
	}
}

func TestSecondFingerActivatesPaperItLandsOn(t *testing.T) {
	d, fb, order, _ := newTestDesk(t)

	far := mustSheet(t, d, "Far")
	rest := vmath.Vec2{X: 200, Y: 200}

	// First finger rests on empty desk
	d.Touch(input.TouchStart, []vmath.Vec2{rest}, 0)
	if len(d.Held()) != 0 || order.Peek() != 1 {
		t.Fatalf("Expected a miss on empty desk, held=%d counter=%d", len(d.Held()), order.Peek())
	}

	// Second finger lands on Far
	d.Touch(input.TouchStart, []vmath.Vec2{rest, far.Center()}, 1)
	st := far.State()
	if !st.Held || !st.Rotating {
		t.Fatalf("Expected Far held in rotation mode, got held=%v rotating=%v", st.Held, st.Rotating)
	}
	if fb.pickups != 1 || fb.rotations != 1 {
		t.Errorf("Expected one rotating pickup, got %+v", fb)
	}
	if st.AnchorX != rest.X || st.AnchorY != rest.Y {
		t.Errorf("Expected anchor at the first contact, got (%v,%v)", st.AnchorX, st.AnchorY)
	}

	// Moves follow the first contact
	d.Touch(input.TouchMove, []vmath.Vec2{{X: 200, Y: 250}, far.Center()}, 0)
	if got := far.State().Rotation; got != 90 {
		t.Errorf("Expected rotation 90, got %v", got)
	}

	d.Touch(input.TouchEnd, []vmath.Vec2{{X: 200, Y: 250}}, 0)
	if far.Held() {
		t.Error("Expected Far released")
	}
}

func TestExplicitTargetActivation(t *testing.T) {
	d, _, _, _ := newTestDesk(t)

	ev := input.Activate(0, 0, false)
	ev.Target = "Far"
	d.Dispatch(ev)

	if !mustSheet(t, d, "Far").Held() {
		t.Error("Expected Far held via explicit target")
	}
	if mustSheet(t, d, "Back").Held() {
		t.Error("Expected Back untouched despite pointer position")
	}

	ev.Target = "Missing"
	d.Dispatch(ev)
	if len(d.Held()) != 1 {
		t.Errorf("Expected only Far held, got %d", len(d.Held()))
	}
}

func TestResetPointerReleases(t *testing.T) {
	d, fb, _, _ := newTestDesk(t)
	d.Mouse(5, 5, input.ButtonPrimary)
	d.ResetPointer()

	if len(d.Held()) != 0 {
		t.Error("Expected nothing held after reset")
	}
	if fb.drops != 1 {
		t.Errorf("Expected 1 drop, got %d", fb.drops)
	}
}

func TestSeedMakesTiltDeterministic(t *testing.T) {
	cfg := &config.Config{
		Seed:       42,
		Background: "#000000",
		Papers: []config.PaperConfig{
			{Title: "A", Width: 5, Height: 5, Color: "#ffffff"},
			{Title: "B", Width: 5, Height: 5, Color: "#ffffff"},
		},
	}
	a := New(cfg, Options{Order: stack.NewCounter(1)})
	b := New(cfg, Options{Order: stack.NewCounter(1)})

	for i := range a.Sheets() {
		ra := a.Sheets()[i].State().Rotation
		rb := b.Sheets()[i].State().Rotation
		if ra != rb {
			t.Errorf("Sheet %d: expected same tilt for same seed, got %v and %v", i, ra, rb)
		}
	}
	if a.Sheets()[0].ID() == b.Sheets()[0].ID() {
		t.Error("Expected distinct paper ids across desks")
	}
}
