package system

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// CollisionSystem resolves paddle/ball overlap for every paddle and ball pair
// Detection is stateless; an overlap persisting across frames resolves again each frame
type CollisionSystem struct {
	engine.SystemBase

	statCollisions *atomic.Int64
	statSpeed      *status.AtomicFloat
	statMaxSpeed   *status.AtomicFloat
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.statCollisions = s.Resource.Status.Counters.Get(status.KeyCollisions)
	s.statSpeed = s.Resource.Status.Gauges.Get(status.KeyBallSpeed)
	s.statMaxSpeed = s.Resource.Status.Gauges.Get(status.KeyMaxBallSpeed)
	return s
}

func (s *CollisionSystem) Name() string {
	return parameter.SystemCollision
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update() error {
	c := s.Component
	multiplier := s.Resource.Physics.MomentumMultiplier

	paddles := s.World.Query().With(c.Paddle).With(c.Transform).With(c.Velocity).Execute()
	balls := s.World.Query().With(c.Ball).With(c.Transform).With(c.Velocity).Execute()

	for _, p := range paddles {
		paddlePos, _ := c.Transform.Get(p)
		paddleVel, _ := c.Velocity.Get(p)
		paddleBox, err := s.boundingBox(p, "paddle")
		if err != nil {
			return err
		}

		for _, b := range balls {
			ballPos, _ := c.Transform.Get(b)
			ballBox, err := s.boundingBox(b, "ball")
			if err != nil {
				return err
			}

			face := vmath.Collide(paddlePos.Position, paddleBox.Size, ballPos.Position, ballBox.Size)
			if face == vmath.FaceNone {
				continue
			}

			ballVel, _ := c.Velocity.Get(b)
			vel := ballVel.Vec2
			if face.Vertical() {
				vel = vmath.V2ReflectY(vel)
			} else {
				vel = vmath.V2ReflectX(vel)
			}

			// Paddle momentum is added on top of the reflection, injecting energy
			vel = vmath.V2Add(vel, vmath.V2Scale(paddleVel.Vec2, multiplier))

			c.Velocity.Set(b, component.VelocityComponent{Vec2: vel})
			s.statCollisions.Add(1)
		}
	}

	s.recordSpeed(balls)
	return nil
}

func (s *CollisionSystem) boundingBox(e core.Entity, role string) (component.BoundingBoxComponent, error) {
	box, ok := s.Component.BoundingBox.Get(e)
	if !ok {
		return box, fmt.Errorf("%w: %s entity %d", engine.ErrMissingBoundingBox, role, e)
	}
	return box, nil
}

func (s *CollisionSystem) recordSpeed(balls []core.Entity) {
	var fastest float64
	for _, b := range balls {
		v, _ := s.Component.Velocity.Get(b)
		fastest = max(fastest, vmath.V2Mag(v.Vec2))
	}
	s.statSpeed.Set(fastest)
	s.statMaxSpeed.Max(fastest)
}
