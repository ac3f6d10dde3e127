package engine

import "github.com/rs/zerolog"

// Session owns the game state for one run and drives it one frame per Tick
// Not safe for concurrent use; the frame loop is the only caller
type Session struct {
	state    State
	rng      RandomSource
	logger   zerolog.Logger
	handlers []EventHandler
}

// NewSession creates a session at the opening state of course c
func NewSession(c *Course, rng RandomSource, logger zerolog.Logger) *Session {
	return &Session{
		state:  NewState(c),
		rng:    rng,
		logger: logger.With().Str("component", "session").Logger(),
	}
}

// RegisterEventHandler adds a handler notified of every event after each tick
func (s *Session) RegisterEventHandler(h EventHandler) {
	s.handlers = append(s.handlers, h)
}

// Tick advances the session one frame and dispatches the frame's events
func (s *Session) Tick(in Input) []Event {
	next, events := Step(s.state, in, s.rng)
	s.state = next

	for _, ev := range events {
		s.logEvent(ev)
		for _, h := range s.handlers {
			h.HandleEvent(ev)
		}
	}
	return events
}

// State returns a copy of the current state for rendering
func (s *Session) State() State {
	return s.state
}

func (s *Session) logEvent(ev Event) {
	level := zerolog.DebugLevel
	if ev.Type == EventScore {
		level = zerolog.InfoLevel
	}

	e := s.logger.WithLevel(level).
		Uint64("frame", ev.Frame).
		Float64("x", ev.Position.X).
		Float64("y", ev.Position.Y)

	switch ev.Type {
	case EventLaunch:
		e = e.Float64("vx", ev.Velocity.X).Float64("vy", ev.Velocity.Y)
	case EventObstacleBounce:
		e = e.Int("obstacles", ev.Count)
	case EventScore:
		e = e.Int("score", ev.Count).Int("hole", s.state.HoleCount)
	}
	e.Msg(ev.Type.String())
}
