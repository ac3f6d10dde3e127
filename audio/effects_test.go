package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-golf/constants"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if a := abs(buf[j][0]); a > peak {
				peak = a
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer never finished")
	return 0, 0
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d: channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave levels
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 1.0 && samples[i][0] != -1.0 {
			t.Errorf("Square sample %d should be +/-1, got %f", i, samples[i][0])
		}
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expectedSamples := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)

	samples := make([][2]float64, expectedSamples*2)
	n, ok := osc.Stream(samples)
	if n != expectedSamples || !ok {
		t.Errorf("Expected %d samples and ok, got %d, %v", expectedSamples, n, ok)
	}

	n2, ok2 := osc.Stream(make([][2]float64, 10))
	if ok2 {
		t.Error("Expected second stream to return ok=false after duration exceeded")
	}
	if n2 != 0 {
		t.Errorf("Expected 0 samples after duration, got %d", n2)
	}
}

// TestSweepRisesInPitch compares zero crossings in the first and last quarter of a sweep
func TestSweepRisesInPitch(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 200 * time.Millisecond
	osc := NewSweep(200, 2000, duration, WaveSine, rate)

	samples := make([][2]float64, rate.N(duration))
	n, _ := osc.Stream(samples)

	crossings := func(from, to int) int {
		c := 0
		for i := from + 1; i < to; i++ {
			if (samples[i-1][0] < 0) != (samples[i][0] < 0) {
				c++
			}
		}
		return c
	}

	q := n / 4
	low, high := crossings(0, q), crossings(3*q, n)
	if high <= low*2 {
		t.Errorf("Expected pitch to rise: %d crossings early, %d late", low, high)
	}
}

// TestEnvelopeAttackPhase verifies attack ramp-up
func TestEnvelopeAttackPhase(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 50 * time.Millisecond

	osc := NewOscillator(100.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, attack, 10*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(attack))
	n, ok := env.Stream(samples)
	if !ok {
		t.Error("Expected envelope to stream successfully")
	}

	firstAmp := abs(samples[0][0])
	lastAmp := abs(samples[n-1][0])
	if firstAmp >= lastAmp {
		t.Errorf("Expected attack phase to ramp up, but first=%f >= last=%f", firstAmp, lastAmp)
	}
}

// TestCueSounds verifies every cue plays for its declared duration
func TestCueSounds(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		cue   Cue
		sound beep.Streamer
	}{
		{CueLaunch, CreateLaunchSound(cfg, 20)},
		{CueBounce, CreateBounceSound(cfg)},
		{CueScore, CreateScoreSound(cfg)},
	}

	for _, tc := range tests {
		t.Run(tc.cue.String(), func(t *testing.T) {
			n, peak := drain(t, tc.sound)
			want := rate.N(CueDuration(tc.cue))
			if n != want {
				t.Errorf("Expected %d samples, got %d", want, n)
			}
			if peak == 0 {
				t.Error("Expected audible output")
			}
			if peak > 1.0 {
				t.Errorf("Output clips: peak %f", peak)
			}
		})
	}
}

// TestCueMuted verifies zero master volume silences cues
func TestCueMuted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, CreateScoreSound(cfg))
	if peak > 0.01 {
		t.Errorf("Expected near-zero amplitude for zero volume, got max %f", peak)
	}
}

func TestConfigVolumeClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 4
	if v := cfg.volume(CueScore); v != 1 {
		t.Errorf("Expected clamp to 1, got %f", v)
	}
	cfg.MasterVolume = 0.5
	if v := cfg.volume(Cue(99)); v != 0.5 {
		t.Errorf("Unknown cue should use master volume, got %f", v)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestLaunchSweepTracksConfiguredMaxPower(t *testing.T) {
	full := constants.LaunchSoundBaseFreq + constants.LaunchSoundSweepFreq
	half := constants.LaunchSoundBaseFreq + constants.LaunchSoundSweepFreq/2

	cfg := DefaultConfig()
	cfg.MaxPower = 20

	tests := []struct {
		speed float64
		want  float64
	}{
		{0, constants.LaunchSoundBaseFreq},
		{10, half},
		{20, full},
		{45, full},
		{-5, constants.LaunchSoundBaseFreq},
	}
	for _, tt := range tests {
		if got := launchSweepEnd(cfg, tt.speed); got != tt.want {
			t.Errorf("launchSweepEnd(speed=%v, max=20) = %v, want %v", tt.speed, got, tt.want)
		}
	}

	// Same speed under the stock cap stays below full sweep
	if got := launchSweepEnd(DefaultConfig(), 20); got >= full {
		t.Errorf("Expected partial sweep under default max power, got %v", got)
	}

	cfg.MaxPower = 0
	if got := launchSweepEnd(cfg, constants.MaxPower); got != full {
		t.Errorf("Expected fallback to stock max power, got %v", got)
	}
}
