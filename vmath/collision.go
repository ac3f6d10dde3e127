package vmath

import "math"

// CircleRect reports whether a circle intersects an axis-aligned rectangle
// Touching counts as intersecting
func CircleRect(center Vec2, radius float64, r Rect) bool {
	halfW := r.Width / 2
	halfH := r.Height / 2
	c := r.Center()

	dx := math.Abs(center.X - c.X)
	dy := math.Abs(center.Y - c.Y)

	if dx > halfW+radius || dy > halfH+radius {
		return false
	}
	if dx <= halfW || dy <= halfH {
		return true
	}

	// Corner region: compare against the nearest corner
	cx := dx - halfW
	cy := dy - halfH
	return cx*cx+cy*cy <= radius*radius
}

// CircleCircle reports whether two circles overlap
// Boundary is exclusive: centers exactly r1+r2 apart do not overlap
func CircleCircle(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	sum := r1 + r2
	return c2.Sub(c1).LengthSq() < sum*sum
}
