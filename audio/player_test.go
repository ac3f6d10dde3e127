package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-golf/engine"
	"github.com/lixenwraith/vi-golf/vmath"
)

// capturePlayer returns a player whose output is recorded instead of played
func capturePlayer() (*Player, *int) {
	p := NewPlayer(DefaultConfig(), zerolog.Nop())
	count := 0
	p.enqueue = func(beep.Streamer) { count++ }
	return p, &count
}

// TestPlayerGracefulDegradation verifies operations don't panic when not initialized
func TestPlayerGracefulDegradation(t *testing.T) {
	p := NewPlayer(DefaultConfig(), zerolog.Nop())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Player panicked without initialization: %v", r)
		}
	}()

	p.Play(CueLaunch, 10)
	p.HandleEvent(engine.Event{Type: engine.EventScore})
	p.Close()
}

// TestPlayerDisabled verifies a disabled player never opens the device
func TestPlayerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	p := NewPlayer(cfg, zerolog.Nop())

	if err := p.Initialize(); err != nil {
		t.Fatalf("Disabled player should not fail: %v", err)
	}
	if p.enqueue != nil {
		t.Error("Disabled player should stay silent")
	}
}

func TestPlayerEventMapping(t *testing.T) {
	p, count := capturePlayer()

	p.HandleEvent(engine.Event{Type: engine.EventDragStart, Frame: 1})
	p.HandleEvent(engine.Event{Type: engine.EventLaunch, Frame: 2, Velocity: vmath.V2(10, 0)})
	p.HandleEvent(engine.Event{Type: engine.EventAbort, Frame: 3})
	p.HandleEvent(engine.Event{Type: engine.EventRest, Frame: 4})
	p.HandleEvent(engine.Event{Type: engine.EventScore, Frame: 5})

	if *count != 2 {
		t.Errorf("Expected launch and score cues only, got %d", *count)
	}
}

func TestPlayerBounceOncePerFrame(t *testing.T) {
	p, count := capturePlayer()

	p.HandleEvent(engine.Event{Type: engine.EventWallBounce, Frame: 7})
	p.HandleEvent(engine.Event{Type: engine.EventObstacleBounce, Frame: 7})
	if *count != 1 {
		t.Errorf("Expected one click for frame 7, got %d", *count)
	}

	p.HandleEvent(engine.Event{Type: engine.EventObstacleBounce, Frame: 8})
	if *count != 2 {
		t.Errorf("Expected a new click for frame 8, got %d", *count)
	}
}

func TestPlayerUnknownCue(t *testing.T) {
	p, count := capturePlayer()
	p.Play(Cue(42), 0)
	if *count != 0 {
		t.Errorf("Unknown cue should not play, got %d", *count)
	}
}
