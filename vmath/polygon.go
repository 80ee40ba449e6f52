package vmath

// RectCorners returns the corners of a w×h rectangle centered on center
// and rotated by degrees, in winding order
func RectCorners(center Vec2, w, h, degrees float64) [4]Vec2 {
	hw, hh := w/2, h/2
	local := [4]Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4]Vec2
	for i, p := range local {
		rx, ry := RotateVector(p.X, p.Y, degrees)
		out[i] = center.Add(Vec2{rx, ry})
	}
	return out
}

// ConvexContains reports whether p lies inside or on a convex polygon
// Points may be in either winding order
func ConvexContains(points []Vec2, p Vec2) bool {
	n := len(points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		a := points[i]
		edge := points[(i+1)%n].Sub(a)
		rel := p.Sub(a)

		cross := edge.X*rel.Y - edge.Y*rel.X
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Bounds returns the axis-aligned bounding box of points
func Bounds(points []Vec2) (lo, hi Vec2) {
	if len(points) == 0 {
		return Vec2{}, Vec2{}
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		if p.X < lo.X {
			lo.X = p.X
		}
		if p.Y < lo.Y {
			lo.Y = p.Y
		}
		if p.X > hi.X {
			hi.X = p.X
		}
		if p.Y > hi.Y {
			hi.Y = p.Y
		}
	}
	return lo, hi
}
