package component

import (
	"github.com/lixenwraith/vi-pong/vmath"
)

// TransformComponent holds the entity center in world units (depth is not tracked)
type TransformComponent struct {
	Position vmath.Vec2
}

// VelocityComponent holds world units per second; the zero value is at rest
type VelocityComponent struct {
	vmath.Vec2
}
