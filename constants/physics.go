package constants

// Ball Kinematics
const (
	// Friction is the per-frame velocity multiplier (exponential decay)
	Friction = 0.98

	// RestThreshold is the per-axis speed below which the ball stops
	// Both components must be under it
	RestThreshold = 0.1
)

// Entities
const (
	// BallRadius is the ball radius in pixels
	BallRadius = 15

	// HoleRadius is the hole radius in pixels
	HoleRadius = 20

	// HoleMargin is the inset from each screen edge for hole relocation
	HoleMargin = 100

	// BallStartX is the fixed ball start, a quarter across the course
	BallStartX = ScreenWidth / 4

	// BallStartY is the fixed ball start, vertically centered
	BallStartY = ScreenHeight / 2

	// HoleStartX is the first hole position, three quarters across the course
	HoleStartX = 3 * ScreenWidth / 4

	// HoleStartY is the first hole position, vertically centered
	HoleStartY = ScreenHeight / 2
)

// Scoring
const (
	// InitialScore is the score at session start
	InitialScore = 0

	// InitialHoleCount is the hole counter at session start (first hole is hole 1)
	InitialHoleCount = 1
)
