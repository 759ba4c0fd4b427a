package parameter

// Arena extents in world units, centered on the origin
const (
	ArenaWidth  = 800.0
	ArenaHeight = 800.0
)

const (
	// PaddleSpeed is the per-key velocity contribution in world units per second
	PaddleSpeed = 200.0

	// MomentumMultiplier scales paddle velocity added to the ball on contact
	// Above 1 so rallies speed up over time
	MomentumMultiplier = 1.01
)

// Wall bounce modes
const (
	// WallBounceLiteral multiplies velocity by (-1,0) or (0,-1), dropping the other axis
	WallBounceLiteral = "literal"
	// WallBounceReflect negates only the crossing axis
	WallBounceReflect = "reflect"
)

// Initial ball
const (
	BallX         = 0.0
	BallY         = 0.0
	BallWidth     = 40.0
	BallHeight    = 40.0
	BallVelocityX = 30.0
	BallVelocityY = 0.0
)

// Initial paddle
const (
	PaddleX      = 100.0
	PaddleY      = 100.0
	PaddleWidth  = 80.0
	PaddleHeight = 20.0
)
