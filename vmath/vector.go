// Package vmath provides float64 2D helpers for the desk surface
package vmath

import "math"

// Vec2 is a point or direction on the desk surface
type Vec2 struct {
	X, Y float64
}

// Add returns a + b
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Magnitude returns Euclidean length sqrt(x² + y²)
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Normalize2D returns the unit vector of (x, y)
// ok is false for the zero vector, in which case direction is undefined and (0, 0) is returned
func Normalize2D(x, y float64) (nx, ny float64, ok bool) {
	mag := Magnitude(x, y)
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return 0, 0, false
	}
	return x / mag, y / mag, true
}

// RotateVector rotates (x, y) by degrees, clockwise on a Y-down surface
func RotateVector(x, y, degrees float64) (rx, ry float64) {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	rx = x*cos - y*sin
	ry = x*sin + y*cos
	return rx, ry
}
