package vmath

// Rect is an axis-aligned rectangle with top-left origin
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Center returns the center point of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Inset shrinks the rectangle by margin on every side
// Returns a zero-size rect at the center if margin exceeds half the extent
func (r Rect) Inset(margin float64) Rect {
	w := r.Width - 2*margin
	h := r.Height - 2*margin
	if w < 0 || h < 0 {
		c := r.Center()
		return Rect{X: c.X, Y: c.Y}
	}
	return Rect{X: r.X + margin, Y: r.Y + margin, Width: w, Height: h}
}

// BoundingBox returns the square that encloses a circle
func BoundingBox(center Vec2, radius float64) Rect {
	return Rect{
		X:      center.X - radius,
		Y:      center.Y - radius,
		Width:  radius * 2,
		Height: radius * 2,
	}
}
