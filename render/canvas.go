package render

import "github.com/gdamore/tcell/v2"

// Canvas is the subset of tcell.Screen the board paints on
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// fill paints every cell of a row range with r in style
func fill(c Canvas, rowFrom, rowTo int, r rune, style tcell.Style) {
	w, _ := c.Size()
	for y := rowFrom; y < rowTo; y++ {
		for x := 0; x < w; x++ {
			c.SetContent(x, y, r, nil, style)
		}
	}
}

// text writes s left to right starting at (x, y), clipped to the canvas width
func text(c Canvas, x, y int, s string, style tcell.Style) {
	w, _ := c.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			c.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// shade scales an RGB color toward black by factor in [0,1]
func shade(c tcell.Color, factor float64) tcell.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return c
	}
	return tcell.NewRGBColor(
		int32(float64(r)*factor),
		int32(float64(g)*factor),
		int32(float64(b)*factor),
	)
}
