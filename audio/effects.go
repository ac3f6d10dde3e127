package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-golf/constants"
	"github.com/lixenwraith/vi-golf/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping linearly from freq to freqEnd
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to freqEnd over duration
func NewSweep(freq, freqEnd float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		freqEnd:  freqEnd,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.duration > 0 {
			freq += (o.freqEnd - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so zero volume is rendered silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateLaunchSound generates a rising chirp whose top pitch follows launch speed
func CreateLaunchSound(cfg Config, speed float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(constants.LaunchSoundBaseFreq, launchSweepEnd(cfg, speed), constants.LaunchSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.LaunchSoundDuration, constants.LaunchSoundAttack, constants.LaunchSoundRelease, rate)

	return newVolume(shaped, cfg.volume(CueLaunch))
}

// launchSweepEnd maps launch speed to the chirp's final frequency
// Speeds at or above cfg.MaxPower reach the full sweep
func launchSweepEnd(cfg Config, speed float64) float64 {
	maxPower := cfg.MaxPower
	if maxPower <= 0 {
		maxPower = constants.MaxPower
	}
	frac := vmath.Clamp(speed/maxPower, 0, 1)
	return constants.LaunchSoundBaseFreq + constants.LaunchSoundSweepFreq*frac
}

// CreateBounceSound generates a short click for wall and obstacle contacts
func CreateBounceSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone := NewOscillator(constants.BounceSoundFreq, constants.BounceSoundDuration, WaveSquare, rate)
	toneShaped := NewEnvelope(tone, constants.BounceSoundDuration, constants.BounceSoundAttack, constants.BounceSoundRelease, rate)

	noise := NewOscillator(0, constants.BounceSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.BounceSoundDuration, constants.BounceSoundAttack, constants.BounceSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(toneShaped, 0.4),
		newVolume(noiseShaped, 0.6),
	)

	// Bound the mix so the mixer drops it once the click is over
	return newVolume(beep.Take(rate.N(constants.BounceSoundDuration), mixed), cfg.volume(CueBounce))
}

// CreateScoreSound generates a two-note chime
func CreateScoreSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(constants.ScoreSoundNote1Freq, constants.ScoreSoundNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, constants.ScoreSoundNote1Duration, constants.ScoreSoundAttack, constants.ScoreSoundNote1Release, rate)

	n2 := NewOscillator(constants.ScoreSoundNote2Freq, constants.ScoreSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, constants.ScoreSoundNote2Duration, constants.ScoreSoundAttack, constants.ScoreSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volume(CueScore))
}

// CueDuration returns the playing time of a cue
func CueDuration(cue Cue) time.Duration {
	switch cue {
	case CueLaunch:
		return constants.LaunchSoundDuration
	case CueBounce:
		return constants.BounceSoundDuration
	case CueScore:
		return constants.ScoreSoundNote1Duration + constants.ScoreSoundNote2Duration
	default:
		return 0
	}
}
