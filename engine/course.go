package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/vi-golf/constants"
	"github.com/lixenwraith/vi-golf/vmath"
)

var (
	// ErrInvalidScreen is returned for non-positive screen dimensions
	ErrInvalidScreen = errors.New("invalid screen size")

	// ErrInvalidCourse is returned for course geometry or tuning that cannot be played
	ErrInvalidCourse = errors.New("invalid course")
)

// Rules holds the per-frame tuning constants
// Values are per frame at the fixed target rate, never scaled by elapsed time
type Rules struct {
	Friction           float64
	RestThreshold      float64
	MaxPower           float64
	PowerScale         float64
	MinLaunchLength    float64
	IndicatorMinLength float64
	IndicatorLength    float64
	ProbeRadius        float64
}

// Course is the immutable playing field, shared read-only by every State
type Course struct {
	Width, Height int
	HoleMargin    int

	BallRadius int
	HoleRadius int
	BallStart  vmath.Vec2
	HoleStart  vmath.Vec2

	Obstacles []vmath.Rect
	Trees     []vmath.Vec2

	Rules Rules
}

// DefaultRules returns the stock tuning
func DefaultRules() Rules {
	return Rules{
		Friction:           constants.Friction,
		RestThreshold:      constants.RestThreshold,
		MaxPower:           constants.MaxPower,
		PowerScale:         constants.PowerScale,
		MinLaunchLength:    constants.MinLaunchLength,
		IndicatorMinLength: constants.IndicatorMinLength,
		IndicatorLength:    constants.IndicatorLength,
		ProbeRadius:        constants.PointerProbeRadius,
	}
}

// DefaultCourse returns the stock 1280x720 course with two obstacles and two trees
func DefaultCourse() *Course {
	return &Course{
		Width:      constants.ScreenWidth,
		Height:     constants.ScreenHeight,
		HoleMargin: constants.HoleMargin,
		BallRadius: constants.BallRadius,
		HoleRadius: constants.HoleRadius,
		BallStart:  vmath.V2(constants.BallStartX, constants.BallStartY),
		HoleStart:  vmath.V2(constants.HoleStartX, constants.HoleStartY),
		Obstacles: []vmath.Rect{
			{X: 400, Y: 300, Width: 200, Height: 20}, // Horizontal
			{X: 600, Y: 500, Width: 20, Height: 200}, // Vertical
		},
		Trees: []vmath.Vec2{
			{X: 200, Y: 500},
			{X: 800, Y: 150},
		},
		Rules: DefaultRules(),
	}
}

// Bounds returns the screen rectangle
func (c *Course) Bounds() vmath.Rect {
	return vmath.Rect{Width: float64(c.Width), Height: float64(c.Height)}
}

// HoleArea returns the rectangle hole relocation draws from
func (c *Course) HoleArea() vmath.Rect {
	return c.Bounds().Inset(float64(c.HoleMargin))
}

// Validate checks that the course can be played
func (c *Course) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidScreen, c.Width, c.Height)
	}
	if c.HoleMargin < 0 || 2*c.HoleMargin > c.Width || 2*c.HoleMargin > c.Height {
		return fmt.Errorf("%w: hole margin %d leaves no room on %dx%d", ErrInvalidCourse, c.HoleMargin, c.Width, c.Height)
	}
	if c.BallRadius <= 0 || c.HoleRadius <= 0 {
		return fmt.Errorf("%w: radii must be positive (ball %d, hole %d)", ErrInvalidCourse, c.BallRadius, c.HoleRadius)
	}
	if f := c.Rules.Friction; f <= 0 || f > 1 {
		return fmt.Errorf("%w: friction %v outside (0, 1]", ErrInvalidCourse, f)
	}
	if c.Rules.PowerScale <= 0 {
		return fmt.Errorf("%w: power scale must be positive", ErrInvalidCourse)
	}
	if c.Rules.MaxPower <= 0 {
		return fmt.Errorf("%w: max power must be positive", ErrInvalidCourse)
	}
	if c.Rules.RestThreshold <= 0 {
		return fmt.Errorf("%w: rest threshold must be positive", ErrInvalidCourse)
	}
	// Release and Track divide by drag length past these thresholds
	if c.Rules.MinLaunchLength < 0 || c.Rules.IndicatorMinLength < 0 {
		return fmt.Errorf("%w: aim thresholds must be non-negative (launch %v, indicator %v)",
			ErrInvalidCourse, c.Rules.MinLaunchLength, c.Rules.IndicatorMinLength)
	}
	if c.Rules.IndicatorLength < 0 || c.Rules.ProbeRadius < 0 {
		return fmt.Errorf("%w: indicator length and grab radius must be non-negative", ErrInvalidCourse)
	}
	for i, o := range c.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			return fmt.Errorf("%w: obstacle %d has non-positive size %vx%v", ErrInvalidCourse, i, o.Width, o.Height)
		}
	}
	return nil
}
