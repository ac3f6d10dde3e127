package engine

import "github.com/lixenwraith/vi-golf/constants"

// State is the complete session state
// Step treats it as a value: Ball, Hole and Aim are copied, Course is shared read-only
type State struct {
	Course *Course

	Ball Ball
	Hole Hole
	Aim  Aim

	Score     int
	HoleCount int
	Frame     uint64
}

// NewState creates the opening state for a course
func NewState(c *Course) State {
	return State{
		Course:    c,
		Ball:      NewBall(c.BallStart, c.BallRadius),
		Hole:      NewHole(c.HoleStart, c.HoleRadius),
		Score:     constants.InitialScore,
		HoleCount: constants.InitialHoleCount,
	}
}

// Step computes the next frame from s and one input snapshot
// Order: press, drag tracking, release, integration, scoring
func Step(s State, in Input, rng RandomSource) (State, []Event) {
	next := s
	next.Frame++
	rules := next.Course.Rules

	var events []Event
	emit := func(t EventType, count int) {
		events = append(events, Event{
			Type:     t,
			Frame:    next.Frame,
			Position: next.Ball.Position,
			Velocity: next.Ball.Velocity,
			Count:    count,
		})
	}

	// Idle -> Dragging
	if in.Pressed && !next.Ball.IsMoving && next.Ball.Grabbable(in.Pointer, rules.ProbeRadius) {
		next.Aim.Begin(in.Pointer)
		next.Ball.IsBeingDragged = true
		emit(EventDragStart, 0)
	}

	if next.Aim.Dragging {
		next.Aim.Track(in.Pointer, next.Ball.Position, rules)
	}

	// Dragging -> Idle
	if in.Released && next.Aim.Dragging {
		if v, ok := next.Aim.Release(in.Pointer, rules); ok {
			next.Ball.Launch(v)
			emit(EventLaunch, 0)
		} else {
			emit(EventAbort, 0)
		}
		next.Ball.IsBeingDragged = false
	}

	ct := next.Ball.Integrate(next.Course)
	if ct.Rested {
		emit(EventRest, 0)
	} else if next.Ball.IsMoving {
		if ct.WallX || ct.WallY {
			emit(EventWallBounce, 0)
		}
		if ct.Obstacles > 0 {
			emit(EventObstacleBounce, ct.Obstacles)
		}
	}

	if next.Hole.Scored(&next.Ball) {
		next.Score++
		next.HoleCount++
		emit(EventScore, next.Score)
		next.Hole.Relocate(next.Course, rng)
		next.Ball.Reset(next.Course.BallStart)
	}

	return next, events
}
