package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-golf/engine"
)

// Player turns session events into sound cues
// Every method is safe to call before Initialize or after Close; the player is silent then
type Player struct {
	mu     sync.Mutex
	cfg    Config
	mixer  *beep.Mixer
	logger zerolog.Logger

	// enqueue hands a streamer to the output; nil while silent
	enqueue func(beep.Streamer)

	lastBounceFrame uint64
	bounced         bool
}

// NewPlayer creates a silent player; call Initialize to open the device
func NewPlayer(cfg Config, logger zerolog.Logger) *Player {
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker
// A failure leaves the player silent; callers log it and continue
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enqueue != nil || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(p.cfg.BufferSize)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.enqueue = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.logger.Debug().Int("sample_rate", p.cfg.SampleRate).Msg("Speaker initialized")
	return nil
}

// Close stops all sounds and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enqueue == nil {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.enqueue = nil
}

// Play starts a cue; speed only affects CueLaunch
func (p *Player) Play(cue Cue, speed float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enqueue == nil {
		return
	}

	var s beep.Streamer
	switch cue {
	case CueLaunch:
		s = CreateLaunchSound(p.cfg, speed)
	case CueBounce:
		s = CreateBounceSound(p.cfg)
	case CueScore:
		s = CreateScoreSound(p.cfg)
	default:
		return
	}
	p.enqueue(s)
}

// HandleEvent implements engine.EventHandler
// Wall and obstacle contacts in the same frame share one click
func (p *Player) HandleEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventLaunch:
		p.Play(CueLaunch, ev.Velocity.Length())
	case engine.EventWallBounce, engine.EventObstacleBounce:
		p.mu.Lock()
		dup := p.bounced && p.lastBounceFrame == ev.Frame
		p.bounced = true
		p.lastBounceFrame = ev.Frame
		p.mu.Unlock()
		if !dup {
			p.Play(CueBounce, 0)
		}
	case engine.EventScore:
		p.Play(CueScore, 0)
	}
}
