package engine

import "github.com/lixenwraith/vi-golf/vmath"

// Input is one frame's pointer snapshot supplied by a backend
// Only edges are reported; a drag stays active until a Released frame
type Input struct {
	Pointer  vmath.Vec2 // Logical screen coordinates
	Pressed  bool       // Button went down since the previous frame
	Released bool       // Button went up since the previous frame
}

// RandomSource draws uniform integers from a closed range
type RandomSource interface {
	IntRange(lo, hi int) int
}
