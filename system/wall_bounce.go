package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Literal mode multipliers
var (
	bounceX = vmath.V2(-1, 0)
	bounceY = vmath.V2(0, -1)
)

// WallBounceSystem reflects velocity of entities outside the arena
// Position is never corrected; an entity drifts back over later frames
type WallBounceSystem struct {
	engine.SystemBase

	statBounces *atomic.Int64
}

func NewWallBounceSystem(world *engine.World) engine.System {
	s := &WallBounceSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.statBounces = s.Resource.Status.Counters.Get(status.KeyWallBounces)
	return s
}

func (s *WallBounceSystem) Name() string {
	return parameter.SystemWallBounce
}

func (s *WallBounceSystem) Priority() int {
	return parameter.PriorityWallBounce
}

func (s *WallBounceSystem) Update() error {
	halfW := s.Resource.Arena.HalfWidth()
	halfH := s.Resource.Arena.HalfHeight()
	mode := s.Resource.Physics.WallBounce

	entities := s.World.Query().
		With(s.Component.Transform).
		With(s.Component.Velocity).
		Execute()

	for _, e := range entities {
		t, _ := s.Component.Transform.Get(e)
		v, _ := s.Component.Velocity.Get(e)
		vel := v.Vec2
		hit := false

		// X then Y; in literal mode a corner hit keeps only the Y reflection
		if t.Position.X > halfW || t.Position.X < -halfW {
			vel = reflect(vel, mode, true)
			hit = true
		}
		if t.Position.Y > halfH || t.Position.Y < -halfH {
			vel = reflect(vel, mode, false)
			hit = true
		}

		if hit {
			s.Component.Velocity.Set(e, component.VelocityComponent{Vec2: vel})
			s.statBounces.Add(1)
		}
	}
	return nil
}

func reflect(v vmath.Vec2, mode engine.WallBounceMode, xAxis bool) vmath.Vec2 {
	switch {
	case mode == engine.WallBounceReflect && xAxis:
		return vmath.V2ReflectX(v)
	case mode == engine.WallBounceReflect:
		return vmath.V2ReflectY(v)
	case xAxis:
		return vmath.V2Mul(v, bounceX)
	default:
		return vmath.V2Mul(v, bounceY)
	}
}
