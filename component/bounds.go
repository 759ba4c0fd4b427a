package component

import (
	"github.com/lixenwraith/vi-pong/vmath"
)

// BoundingBoxComponent is the axis-aligned rectangle centered on the transform,
// shared by the renderer as sprite size and by physics as collision shape
type BoundingBoxComponent struct {
	Size vmath.Vec2
}
