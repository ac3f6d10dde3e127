package engine

import "github.com/lixenwraith/vi-golf/vmath"

// Aim is the drag-to-launch controller state
// Idle is the zero value; Dragging is set only by Begin
type Aim struct {
	Dragging  bool
	DragStart vmath.Vec2
	Power     float64 // [0, Rules.MaxPower], HUD only

	// Indicator is the aim line end point, advisory for rendering
	// Valid only while ShowIndicator is set
	Indicator     vmath.Vec2
	ShowIndicator bool
}

// PowerForLength maps a drag length to the clamped HUD power value
func PowerForLength(length float64, r Rules) float64 {
	return min(length/r.PowerScale, r.MaxPower)
}

// Begin enters the dragging state anchored at pointer with zero power
func (a *Aim) Begin(pointer vmath.Vec2) {
	*a = Aim{Dragging: true, DragStart: pointer}
}

// Track samples the current drag and refreshes power and the aim indicator
func (a *Aim) Track(pointer, ballPos vmath.Vec2, r Rules) {
	d := pointer.Sub(a.DragStart)
	length := d.Length()

	a.Power = PowerForLength(length, r)

	if length > r.IndicatorMinLength {
		dir := d.Scale(1 / length)
		a.Indicator = ballPos.Add(dir.Scale(r.IndicatorLength))
		a.ShowIndicator = true
	} else {
		a.Indicator = vmath.Vec2{}
		a.ShowIndicator = false
	}
}

// Release ends the drag and returns to idle
// Returns the launch velocity and true when the drag clears the dead-zone
// Length is sampled again from the release pointer, independent of Track
func (a *Aim) Release(pointer vmath.Vec2, r Rules) (vmath.Vec2, bool) {
	d := pointer.Sub(a.DragStart)
	length := d.Length()

	*a = Aim{}

	if length <= r.MinLaunchLength {
		return vmath.Vec2{}, false
	}

	dir := d.Scale(1 / length)
	return dir.Scale(length / r.PowerScale), true
}
