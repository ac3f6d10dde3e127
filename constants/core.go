package constants

import "time"

// Game Loop Timing
const (
	// TargetFPS is the fixed simulation and render rate; all per-frame constants assume it
	TargetFPS = 60

	// FrameUpdateInterval is the frame interval at TargetFPS (~16.6ms)
	FrameUpdateInterval = time.Second / TargetFPS

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256
)

// Screen
const (
	// ScreenWidth is the logical course width in pixels
	ScreenWidth = 1280

	// ScreenHeight is the logical course height in pixels
	ScreenHeight = 720

	// WindowTitle is shown by the window backend
	WindowTitle = "Golf Game with Obstacles and Trees"
)
