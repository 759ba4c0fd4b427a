package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityKinematics = 10
	PriorityInput      = 20 // After integration, velocity takes effect next frame
	PriorityWallBounce = 30
	PriorityCollision  = 40 // Last, so paddle hits win over wall reflection
)

// System names used by the schedule configuration
const (
	SystemKinematics = "kinematics"
	SystemInput      = "input"
	SystemWallBounce = "wall_bounce"
	SystemCollision  = "collision"
)

// DefaultSystemOrder matches the priority order
var DefaultSystemOrder = []string{
	SystemKinematics,
	SystemInput,
	SystemWallBounce,
	SystemCollision,
}
