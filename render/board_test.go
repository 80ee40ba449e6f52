package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paperdesk/paper"
)

type memCell struct {
	r     rune
	style tcell.Style
}

// memCanvas is an in-memory Canvas
type memCanvas struct {
	w, h  int
	cells []memCell
}

func newMemCanvas(w, h int) *memCanvas {
	return &memCanvas{w: w, h: h, cells: make([]memCell, w*h)}
}

func (m *memCanvas) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.cells[y*m.w+x] = memCell{primary, style}
}

func (m *memCanvas) Size() (int, int) { return m.w, m.h }

func (m *memCanvas) bg(x, y int) tcell.Color {
	_, bg, _ := m.cells[y*m.w+x].style.Decompose()
	return bg
}

func (m *memCanvas) runeAt(x, y int) rune {
	return m.cells[y*m.w+x].r
}

var (
	testBackground = tcell.NewRGBColor(0, 0, 0)
	red            = tcell.NewRGBColor(200, 0, 0)
	blue           = tcell.NewRGBColor(0, 0, 200)
)

func TestDrawAxisAlignedPaper(t *testing.T) {
	b := NewBoard(2, testBackground)
	b.Place("a", Shape{Title: "Hi", X: 4, Y: 4, Width: 10, Height: 8, Color: red}, paper.Transform{}, 0)

	c := newMemCanvas(30, 12)
	b.Draw(c)

	// Paper spans cols 4..13, rows 2..5 (y 4..12 at aspect 2)
	if got := c.bg(8, 3); got != red {
		t.Errorf("Expected paper color inside, got %v", got)
	}
	if got := c.bg(2, 3); got != testBackground {
		t.Errorf("Expected background left of paper, got %v", got)
	}
	if got := c.bg(8, 7); got != testBackground {
		t.Errorf("Expected background below paper, got %v", got)
	}
	if got := c.runeAt(4, 3); got != edgeRune {
		t.Errorf("Expected edge rune on left column, got %q", got)
	}
	// Title starts two columns in, on the first interior row
	if got := c.runeAt(6, 3); got != 'H' {
		t.Errorf("Expected title 'H' at (6,3), got %q", got)
	}
	if got := c.runeAt(7, 3); got != 'i' {
		t.Errorf("Expected title 'i' at (7,3), got %q", got)
	}
}

func TestDrawFollowsTransform(t *testing.T) {
	b := NewBoard(2, testBackground)
	b.Place("a", Shape{X: 0, Y: 0, Width: 6, Height: 4, Color: red}, paper.Transform{}, 0)

	b.ApplyTransform("a", paper.Transform{TranslateX: 20, TranslateY: 10})
	c := newMemCanvas(40, 12)
	b.Draw(c)

	if got := c.bg(2, 0); got != testBackground {
		t.Errorf("Expected old location cleared, got %v", got)
	}
	if got := c.bg(23, 6); got != red {
		t.Errorf("Expected paper at translated location, got %v", got)
	}

	tr, ok := b.Transform("a")
	if !ok || tr.TranslateX != 20 {
		t.Errorf("Expected stored transform, got %+v ok=%v", tr, ok)
	}
}

func TestDrawRotationSwapsExtent(t *testing.T) {
	b := NewBoard(1, testBackground)
	// 20 wide, 4 tall, centered at (20,20)
	b.Place("a", Shape{X: 10, Y: 18, Width: 20, Height: 4, Color: red}, paper.Transform{}, 0)

	c := newMemCanvas(40, 40)
	b.Draw(c)
	if c.bg(12, 20) != red || c.bg(20, 12) != testBackground {
		t.Fatal("Expected horizontal paper before rotation")
	}

	b.ApplyTransform("a", paper.Transform{RotateDegrees: 90})
	c = newMemCanvas(40, 40)
	b.Draw(c)
	if c.bg(20, 12) != red {
		t.Error("Expected rotated paper to cover (20,12)")
	}
	if c.bg(12, 20) != testBackground {
		t.Error("Expected rotated paper to leave (12,20)")
	}
}

func TestPaintOrderFollowsPriority(t *testing.T) {
	b := NewBoard(1, testBackground)
	shape := func(col tcell.Color) Shape { return Shape{X: 0, Y: 0, Width: 10, Height: 10, Color: col} }
	b.Place("red", shape(red), paper.Transform{}, 0)
	b.Place("blue", shape(blue), paper.Transform{}, 0)

	c := newMemCanvas(12, 12)
	b.Draw(c)
	if got := c.bg(5, 5); got != blue {
		t.Errorf("Expected later placement on top for equal priority, got %v", got)
	}

	b.ApplyStackPriority("red", 3)
	if order := b.PaintOrder(); len(order) != 2 || order[1] != "red" {
		t.Errorf("Expected red painted last, got %v", order)
	}
	c = newMemCanvas(12, 12)
	b.Draw(c)
	if got := c.bg(5, 5); got != red {
		t.Errorf("Expected raised paper on top, got %v", got)
	}
}

func TestUnknownIDsIgnored(t *testing.T) {
	b := NewBoard(2, testBackground)
	b.ApplyTransform("ghost", paper.Transform{TranslateX: 1})
	b.ApplyStackPriority("ghost", 5)
	if _, ok := b.Transform("ghost"); ok {
		t.Error("Expected unknown id to stay unknown")
	}
	if len(b.PaintOrder()) != 0 {
		t.Error("Expected empty paint order")
	}
}

func TestStatusLine(t *testing.T) {
	b := NewBoard(2, testBackground)
	b.Place("a", Shape{X: 0, Y: 0, Width: 20, Height: 20, Color: red}, paper.Transform{}, 0)
	b.SetStatus("ok")

	c := newMemCanvas(20, 6)
	b.Draw(c)

	if got := c.runeAt(1, 5); got != 'o' {
		t.Errorf("Expected status text on last row, got %q", got)
	}
	if got := c.bg(10, 5); got != statusBg {
		t.Errorf("Expected status background, got %v", got)
	}
}

func TestFocusHighlightsEdge(t *testing.T) {
	b := NewBoard(1, testBackground)
	b.Place("a", Shape{X: 0, Y: 0, Width: 8, Height: 8, Color: red}, paper.Transform{}, 0)
	b.SetFocus("a")

	c := newMemCanvas(10, 10)
	b.Draw(c)
	fg, _, _ := c.cells[0*c.w+0].style.Decompose()
	if fg != focusColor {
		t.Errorf("Expected focus edge color, got %v", fg)
	}
}

func TestCellMapping(t *testing.T) {
	b := NewBoard(2, testBackground)
	x, y := b.ToSurface(3, 4)
	if x != 3.5 || y != 9 {
		t.Errorf("Expected (3.5,9), got (%v,%v)", x, y)
	}
	col, row := b.ToCell(x, y)
	if col != 3 || row != 4 {
		t.Errorf("Expected (3,4), got (%d,%d)", col, row)
	}
}
