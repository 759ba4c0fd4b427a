package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FramesPerSecond is the default host loop rate
	FramesPerSecond = 60

	// FPSSmoothing is the weight of the newest sample in the fps moving average
	FPSSmoothing = 0.1
)

// Input
const (
	// KeyHoldWindow keeps a key held between terminal auto-repeat events
	KeyHoldWindow = 150 * time.Millisecond
)

// Glyphs
const (
	BallRune   = '●'
	PaddleRune = '█'
)
