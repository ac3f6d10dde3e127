package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-golf/engine"
	"github.com/lixenwraith/vi-golf/vmath"
)

// pointer turns tcell mouse reports into per-frame input
// Terminals report button levels, not edges; edges seen between frames are latched until sampled
type pointer struct {
	pos      vmath.Vec2
	down     bool
	pressed  bool
	released bool
}

func (p *pointer) observe(ev *tcell.EventMouse, g grid) {
	cx, cy := ev.Position()
	p.pos = g.center(cx, cy)

	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down && !p.down:
		p.pressed = true
	case !down && p.down:
		p.released = true
	}
	p.down = down
}

// sample returns the frame's input and clears latched edges
func (p *pointer) sample() engine.Input {
	in := engine.Input{
		Pointer:  p.pos,
		Pressed:  p.pressed,
		Released: p.released,
	}
	p.pressed, p.released = false, false
	return in
}
