package vmath

import "math"

// NormalizeDegrees maps any finite angle into [0, 360)
func NormalizeDegrees(degrees float64) float64 {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	// Mod of tiny negatives can round up to exactly 360
	if d >= 360 {
		d -= 360
	}
	return d + 0 // folds -0 into +0
}

// RoundHalfUp rounds to the nearest integer, ties toward +Inf
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// DirectionDegrees returns the whole-degree heading of (dx, dy) in [0, 360)
// 0° points along +X, 90° along +Y (screen down)
// ok is false for the zero vector
func DirectionDegrees(dx, dy float64) (degrees float64, ok bool) {
	nx, ny, ok := Normalize2D(dx, dy)
	if !ok {
		return 0, false
	}
	rad := math.Atan2(ny, nx)
	deg := RoundHalfUp(180 * rad / math.Pi)
	return NormalizeDegrees(360 + deg), true
}
