package engine

import "github.com/lixenwraith/vi-golf/vmath"

// Hole is the scoring target
type Hole struct {
	Position vmath.Vec2
	Radius   int
}

// NewHole creates a hole at pos
func NewHole(pos vmath.Vec2, radius int) Hole {
	return Hole{Position: pos, Radius: radius}
}

// Scored reports whether the ball overlaps the hole
// Circles exactly touching do not score
func (h *Hole) Scored(b *Ball) bool {
	return vmath.CircleCircle(h.Position, float64(h.Radius), b.Position, float64(b.Radius))
}

// Relocate moves the hole to a uniform random integer point inside the course's hole area
// Obstacles and trees are not avoided
func (h *Hole) Relocate(c *Course, rng RandomSource) {
	a := c.HoleArea()
	x := rng.IntRange(int(a.X), int(a.X+a.Width))
	y := rng.IntRange(int(a.Y), int(a.Y+a.Height))
	h.Position = vmath.V2(float64(x), float64(y))
}
