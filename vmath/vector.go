package vmath

import "math"

// Vec2 is a 2D vector in logical screen units (pixels)
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns squared length without sqrt
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Invert returns -v
// Used for the full velocity reversal on obstacle contact
func (v Vec2) Invert() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// ReflectAxisX returns velocity reflected off a vertical wall (left/right edge)
func (v Vec2) ReflectAxisX() Vec2 {
	return Vec2{X: -v.X, Y: v.Y}
}

// ReflectAxisY returns velocity reflected off a horizontal wall (top/bottom edge)
func (v Vec2) ReflectAxisY() Vec2 {
	return Vec2{X: v.X, Y: -v.Y}
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Length()
}
