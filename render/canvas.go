package render

import (
	"github.com/lixenwraith/vi-golf/core"
	"github.com/lixenwraith/vi-golf/vmath"
)

// Canvas is the immediate-mode drawing surface a backend provides
// All coordinates are logical screen pixels
type Canvas interface {
	Clear(c core.RGB)
	FillCircle(center vmath.Vec2, radius float64, c core.RGB)
	FillRect(r vmath.Rect, c core.RGB)
	StrokeRect(r vmath.Rect, c core.RGB)
	Line(from, to vmath.Vec2, width float64, c core.RGB)
	Text(s string, pos vmath.Vec2, size int, c core.RGB)
}
