package system

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// KinematicsSystem advances every moving entity by velocity * elapsed seconds
type KinematicsSystem struct {
	engine.SystemBase
}

func NewKinematicsSystem(world *engine.World) engine.System {
	return &KinematicsSystem{
		SystemBase: engine.NewSystemBase(world),
	}
}

func (s *KinematicsSystem) Name() string {
	return parameter.SystemKinematics
}

func (s *KinematicsSystem) Priority() int {
	return parameter.PriorityKinematics
}

func (s *KinematicsSystem) Update() error {
	dt := s.Resource.Time.DeltaSeconds()
	if dt == 0 {
		return nil
	}

	entities := s.World.Query().
		With(s.Component.Transform).
		With(s.Component.Velocity).
		Execute()

	for _, e := range entities {
		t, _ := s.Component.Transform.Get(e)
		v, _ := s.Component.Velocity.Get(e)
		t.Position = vmath.V2Add(t.Position, vmath.V2Scale(v.Vec2, dt))
		s.Component.Transform.Set(e, t)
	}
	return nil
}
