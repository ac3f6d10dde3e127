package engine

import "github.com/lixenwraith/vi-golf/vmath"

// EventType identifies a game event emitted by Step
type EventType int

const (
	EventDragStart EventType = iota
	EventLaunch
	EventAbort
	EventWallBounce
	EventObstacleBounce
	EventRest
	EventScore
)

var eventNames = [...]string{
	EventDragStart:      "drag_start",
	EventLaunch:         "launch",
	EventAbort:          "abort",
	EventWallBounce:     "wall_bounce",
	EventObstacleBounce: "obstacle_bounce",
	EventRest:           "rest",
	EventScore:          "score",
}

// String returns the snake_case event name used in logs and metrics
func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// Event is a notable transition within a frame
type Event struct {
	Type     EventType
	Frame    uint64
	Position vmath.Vec2 // Ball position when the event fired
	Velocity vmath.Vec2 // Ball velocity after the event
	Count    int        // Obstacles overlapped, or score after a score event
}

// EventHandler receives events after each tick, in emission order
type EventHandler interface {
	HandleEvent(ev Event)
}
