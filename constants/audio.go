package constants

import "time"

// Launch chirp
const (
	LaunchSoundDuration  = 120 * time.Millisecond
	LaunchSoundAttack    = 5 * time.Millisecond
	LaunchSoundRelease   = 60 * time.Millisecond
	LaunchSoundBaseFreq  = 300.0
	LaunchSoundSweepFreq = 900.0 // Added to the base at full power
)

// Bounce click
const (
	BounceSoundDuration = 30 * time.Millisecond
	BounceSoundAttack   = 1 * time.Millisecond
	BounceSoundRelease  = 25 * time.Millisecond
	BounceSoundFreq     = 1600.0
)

// Score chime
const (
	ScoreSoundNote1Duration = 120 * time.Millisecond
	ScoreSoundNote2Duration = 240 * time.Millisecond
	ScoreSoundAttack        = 5 * time.Millisecond
	ScoreSoundNote1Release  = 40 * time.Millisecond
	ScoreSoundNote2Release  = 180 * time.Millisecond
	ScoreSoundNote1Freq     = 783.99  // G5
	ScoreSoundNote2Freq     = 1046.50 // C6
)
