package audio

// Cue identifies a synthesized sound effect
type Cue int

const (
	CueLaunch Cue = iota // Rising chirp on launch
	CueBounce            // Click on wall or obstacle contact
	CueScore             // Two-tone chime on holing out
)

// String returns the cue name
func (c Cue) String() string {
	switch c {
	case CueLaunch:
		return "launch"
	case CueBounce:
		return "bounce"
	case CueScore:
		return "score"
	default:
		return "unknown"
	}
}
