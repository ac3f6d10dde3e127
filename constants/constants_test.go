package constants

import (
	"testing"
	"time"
)

// TestStartPositionsDerivedFromScreen verifies start positions match the course layout
func TestStartPositionsDerivedFromScreen(t *testing.T) {
	if BallStartX != 320 || BallStartY != 360 {
		t.Errorf("Expected ball start (320, 360), got (%d, %d)", BallStartX, BallStartY)
	}
	if HoleStartX != 960 || HoleStartY != 360 {
		t.Errorf("Expected hole start (960, 360), got (%d, %d)", HoleStartX, HoleStartY)
	}
}

// TestFrameInterval verifies the frame interval matches the target rate
func TestFrameInterval(t *testing.T) {
	got := FrameUpdateInterval * TargetFPS
	if got > time.Second || time.Second-got > TargetFPS*time.Nanosecond {
		t.Errorf("Expected %d frames to span ~1s, got %v", TargetFPS, got)
	}
}

// TestPowerCapReachable verifies the drag length that saturates the power bar
func TestPowerCapReachable(t *testing.T) {
	saturating := MaxPower * PowerScale
	if saturating != 500 {
		t.Errorf("Expected 500px drag to saturate power, got %v", saturating)
	}
	if MinLaunchLength <= IndicatorMinLength {
		t.Error("Launch dead-zone should exceed the indicator threshold")
	}
}
