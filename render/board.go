// Package render paints papers onto a terminal canvas
//
// The Board is the surface papers emit to: it keeps the last transform and stack
// priority of every paper and rasterizes them, back to front, on each Draw.
// Surface coordinates map to cells as (col, row) = (x, y / aspect) so a square in
// surface units looks square on a terminal whose cells are taller than wide.
package render

import (
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paperdesk/paper"
	"github.com/lixenwraith/paperdesk/vmath"
)

var (
	inkColor    = tcell.NewRGBColor(30, 30, 30)
	focusColor  = tcell.NewRGBColor(255, 255, 255)
	statusBg    = tcell.NewRGBColor(40, 50, 70)
	statusFg    = tcell.NewRGBColor(200, 200, 200)
	edgeRune    = '░'
	edgeDimming = 0.6
)

// Shape is the untransformed layout of a paper in surface units
type Shape struct {
	Title  string
	X, Y   float64 // top-left
	Width  float64
	Height float64
	Color  tcell.Color
	Lines  []string
}

type item struct {
	id        paper.ID
	shape     Shape
	transform paper.Transform
	priority  int
	index     int
}

// Board implements paper.Surface for a terminal
type Board struct {
	aspect     float64
	background tcell.Color

	items  map[paper.ID]*item
	placed int

	focus  paper.ID
	status string
}

// NewBoard creates an empty board. aspect is surface units per terminal row
func NewBoard(aspect float64, background tcell.Color) *Board {
	if aspect <= 0 {
		aspect = 1
	}
	return &Board{
		aspect:     aspect,
		background: background,
		items:      make(map[paper.ID]*item),
	}
}

// Place registers a paper with its layout, initial transform and priority
// Placing an existing id replaces its shape and state
func (b *Board) Place(id paper.ID, shape Shape, t paper.Transform, priority int) {
	if it, ok := b.items[id]; ok {
		it.shape, it.transform, it.priority = shape, t, priority
		return
	}
	b.items[id] = &item{id: id, shape: shape, transform: t, priority: priority, index: b.placed}
	b.placed++
}

// ApplyTransform stores the latest transform. Unknown ids are ignored
func (b *Board) ApplyTransform(id paper.ID, t paper.Transform) {
	if it, ok := b.items[id]; ok {
		it.transform = t
	}
}

// ApplyStackPriority stores the paint order. Unknown ids are ignored
func (b *Board) ApplyStackPriority(id paper.ID, priority int) {
	if it, ok := b.items[id]; ok {
		it.priority = priority
	}
}

// Transform returns the last transform received for id
func (b *Board) Transform(id paper.ID) (paper.Transform, bool) {
	it, ok := b.items[id]
	if !ok {
		return paper.Transform{}, false
	}
	return it.transform, true
}

// SetFocus highlights the edge of one paper. Empty id clears it
func (b *Board) SetFocus(id paper.ID) {
	b.focus = id
}

// SetStatus sets the text of the bottom status line. Empty hides the line
func (b *Board) SetStatus(s string) {
	b.status = s
}

// ToSurface maps the center of a cell to surface coordinates
func (b *Board) ToSurface(col, row int) (x, y float64) {
	return float64(col) + 0.5, (float64(row) + 0.5) * b.aspect
}

// ToCell maps a surface point to the cell containing it
func (b *Board) ToCell(x, y float64) (col, row int) {
	return int(math.Floor(x)), int(math.Floor(y / b.aspect))
}

// PaintOrder returns ids back to front: ascending priority, then placement order
func (b *Board) PaintOrder() []paper.ID {
	items := make([]*item, 0, len(b.items))
	for _, it := range b.items {
		items = append(items, it)
	}
	slices.SortFunc(items, func(a, c *item) int {
		if a.priority != c.priority {
			return a.priority - c.priority
		}
		return a.index - c.index
	})

	ids := make([]paper.ID, len(items))
	for i, it := range items {
		ids[i] = it.id
	}
	return ids
}

// Draw paints the whole board
func (b *Board) Draw(c Canvas) {
	_, h := c.Size()
	paperRows := h
	if b.status != "" {
		paperRows = h - 1
	}

	for _, layer := range Layers {
		switch layer {
		case LayerBackground:
			fill(c, 0, paperRows, ' ', tcell.StyleDefault.Background(b.background))
		case LayerPapers:
			for _, id := range b.PaintOrder() {
				b.paint(c, b.items[id], paperRows)
			}
		case LayerStatus:
			if b.status == "" {
				continue
			}
			style := tcell.StyleDefault.Background(statusBg).Foreground(statusFg)
			fill(c, h-1, h, ' ', style)
			text(c, 1, h-1, b.status, style)
		}
	}
}

// paint rasterizes one paper by mapping each candidate cell center back into paper-local space
func (b *Board) paint(c Canvas, it *item, rows int) {
	w, _ := c.Size()
	sh := it.shape
	t := it.transform

	hw, hh := sh.Width/2, sh.Height/2
	center := vmath.Vec2{
		X: sh.X + hw + t.TranslateX,
		Y: sh.Y + hh + t.TranslateY,
	}
	corners := vmath.RectCorners(center, sh.Width, sh.Height, t.RotateDegrees)
	lo, hi := vmath.Bounds(corners[:])

	col0 := max(0, int(math.Floor(lo.X)))
	col1 := min(w-1, int(math.Ceil(hi.X)))
	row0 := max(0, int(math.Floor(lo.Y/b.aspect)))
	row1 := min(rows-1, int(math.Ceil(hi.Y/b.aspect)))

	body := tcell.StyleDefault.Background(sh.Color).Foreground(inkColor)
	edge := body.Foreground(shade(sh.Color, edgeDimming))
	if it.id == b.focus {
		edge = body.Foreground(focusColor)
	}

	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			px, py := b.ToSurface(col, row)
			lx, ly := vmath.RotateVector(px-center.X, py-center.Y, -t.RotateDegrees)
			if math.Abs(lx) > hw || math.Abs(ly) > hh {
				continue
			}
			if hw-math.Abs(lx) < 1 || hh-math.Abs(ly) < b.aspect {
				c.SetContent(col, row, edgeRune, nil, edge)
				continue
			}
			c.SetContent(col, row, ' ', nil, body)
		}
	}

	lines := append([]string{sh.Title}, sh.Lines...)
	for j, line := range lines {
		// One blank row under the title
		slot := float64(j)
		if j > 0 {
			slot++
		}
		ly := -hh + b.aspect*(1.5+slot)
		if ly > hh-b.aspect {
			break
		}
		style := body
		if j == 0 {
			style = body.Bold(true)
		}
		k := 0
		for _, r := range line {
			lx := -hw + 2 + float64(k) + 0.5
			if lx > hw-2 {
				break
			}
			k++
			dx, dy := vmath.RotateVector(lx, ly, t.RotateDegrees)
			col, row := b.ToCell(center.X+dx, center.Y+dy)
			if col < 0 || col >= w || row < 0 || row >= rows {
				continue
			}
			c.SetContent(col, row, r, nil, style)
		}
	}
}
