package audio

import (
	"time"

	"github.com/lixenwraith/vi-golf/constants"
)

// Config holds mixer settings for the cue player
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64 // 0.0 - 1.0
	CueVolumes   map[Cue]float64
	BufferSize   time.Duration
	MaxPower     float64 // Launch speed at which the chirp sweep saturates
}

// DefaultConfig returns the audio defaults
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   44100,
		MasterVolume: 0.5,
		CueVolumes: map[Cue]float64{
			CueLaunch: 0.6,
			CueBounce: 0.4,
			CueScore:  0.8,
		},
		BufferSize: 100 * time.Millisecond,
		MaxPower:   constants.MaxPower,
	}
}

// volume returns the effective gain of a cue
func (c Config) volume(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1.0
	}
	v *= c.MasterVolume
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
