package constants

// Aiming & Launch
const (
	// MaxPower caps the displayed power value
	MaxPower = 50.0

	// PowerScale divides drag length into power and launch speed
	PowerScale = 10.0

	// MinLaunchLength is the drag dead-zone; releases at or under it abort the shot
	MinLaunchLength = 10.0

	// IndicatorMinLength is the drag length above which the aim indicator is shown
	IndicatorMinLength = 5.0

	// IndicatorLength is the fixed length of the aim indicator from the ball center
	IndicatorLength = 50.0

	// PointerProbeRadius is the radius of the probe circle used to hit-test the ball
	PointerProbeRadius = 5.0
)
