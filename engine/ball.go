package engine

import (
	"math"

	"github.com/lixenwraith/vi-golf/vmath"
)

// Ball is the player's ball
// Velocity is nonzero only while IsMoving
type Ball struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Radius   int

	IsMoving       bool
	IsBeingDragged bool // Set only while a drag gesture that started on the ball is active
}

// Contacts reports what a single integration step touched
type Contacts struct {
	WallX     bool // Left or right screen edge
	WallY     bool // Top or bottom screen edge
	Obstacles int  // Number of overlapping obstacles, each applied a reversal
	Rested    bool // Ball came to rest this step
}

// NewBall creates a stationary ball
func NewBall(pos vmath.Vec2, radius int) Ball {
	return Ball{Position: pos, Radius: radius}
}

// Integrate advances the ball one frame against the course edges and obstacles
// No-op while the ball is at rest
func (b *Ball) Integrate(c *Course) Contacts {
	var ct Contacts
	if !b.IsMoving {
		return ct
	}

	// Explicit Euler, one frame unit
	b.Position = b.Position.Add(b.Velocity)

	b.Velocity = b.Velocity.Scale(c.Rules.Friction)

	if math.Abs(b.Velocity.X) < c.Rules.RestThreshold && math.Abs(b.Velocity.Y) < c.Rules.RestThreshold {
		b.Velocity = vmath.Vec2{}
		b.IsMoving = false
		ct.Rested = true
	}

	// Edge reflection flips direction only, position is not clamped
	r := float64(b.Radius)
	if b.Position.X-r <= 0 || b.Position.X+r >= float64(c.Width) {
		b.Velocity = b.Velocity.ReflectAxisX()
		ct.WallX = true
	}
	if b.Position.Y-r <= 0 || b.Position.Y+r >= float64(c.Height) {
		b.Velocity = b.Velocity.ReflectAxisY()
		ct.WallY = true
	}

	// Full reversal per overlapping obstacle; an even number of overlaps cancels out
	for _, o := range c.Obstacles {
		if vmath.CircleRect(b.Position, r, o) {
			b.Velocity = b.Velocity.Invert()
			ct.Obstacles++
		}
	}

	return ct
}

// Launch starts the ball moving with velocity v
func (b *Ball) Launch(v vmath.Vec2) {
	b.Velocity = v
	b.IsMoving = true
}

// Reset places the ball at pos at rest
func (b *Ball) Reset(pos vmath.Vec2) {
	b.Position = pos
	b.Velocity = vmath.Vec2{}
	b.IsMoving = false
}

// Grabbable reports whether a pointer probe at p lands on the ball's bounding box
func (b *Ball) Grabbable(p vmath.Vec2, probeRadius float64) bool {
	return vmath.CircleRect(p, probeRadius, vmath.BoundingBox(b.Position, float64(b.Radius)))
}

// Speed returns the current velocity magnitude
func (b *Ball) Speed() float64 {
	return b.Velocity.Length()
}
