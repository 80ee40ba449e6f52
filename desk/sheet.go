package desk

import (
	"github.com/lixenwraith/paperdesk/paper"
	"github.com/lixenwraith/paperdesk/vmath"
)

// Sheet is a paper together with its initial layout on the desk
type Sheet struct {
	*paper.Paper

	Title  string
	X, Y   float64 // top-left of the untransformed layout box, surface units
	Width  float64
	Height float64
	Color  string
	Lines  []string

	index int // placement order, later sheets win ties
}

// Index returns the placement order of the sheet
func (s *Sheet) Index() int {
	return s.index
}

// Center returns the current center after translation
func (s *Sheet) Center() vmath.Vec2 {
	st := s.State()
	origin := vmath.Vec2{X: s.X + s.Width/2, Y: s.Y + s.Height/2}
	return origin.Add(vmath.Vec2{X: st.PositionX, Y: st.PositionY})
}

// Corners returns the current outline after translation and rotation
func (s *Sheet) Corners() [4]vmath.Vec2 {
	return vmath.RectCorners(s.Center(), s.Width, s.Height, s.State().Rotation)
}

// Contains reports whether the surface point lies on the sheet
func (s *Sheet) Contains(x, y float64) bool {
	corners := s.Corners()
	return vmath.ConvexContains(corners[:], vmath.Vec2{X: x, Y: y})
}
