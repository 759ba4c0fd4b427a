package status

import "sync/atomic"

// Registry is the central metrics facade
// Systems cache metric pointers at construction; frame updates write atomics directly
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
	}
}

// Metric keys shared between the frame loop, systems and the status bar
const (
	KeyFrames       = "engine.frames"
	KeyFPS          = "engine.fps"
	KeyFrameSeconds = "engine.frame_seconds"
	KeyCollisions   = "physics.collisions"
	KeyWallBounces  = "physics.wall_bounces"
	KeyBallSpeed    = "physics.ball_speed"
	KeyMaxBallSpeed = "physics.max_ball_speed"
	KeyInputUpdates = "input.velocity_updates"
)
