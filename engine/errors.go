package engine

import "errors"

// Scene invariant violations; any of these is fatal for the host
var (
	ErrMissingBoundingBox = errors.New("bounding box missing on collision participant")
	ErrMissingKinematics  = errors.New("transform or velocity missing on physics entity")
	ErrPaddleTopology     = errors.New("paddle topology violated")
	ErrBallTopology       = errors.New("ball topology violated")
	ErrMarkerConflict     = errors.New("entity tagged both ball and paddle")
)

// Schedule errors
var (
	ErrUnknownSystem   = errors.New("unknown system")
	ErrDuplicateSystem = errors.New("duplicate system")
)
