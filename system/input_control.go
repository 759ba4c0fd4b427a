package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// keyDirections maps each control to its unit direction, y up
var keyDirections = [input.KeyCount]vmath.Vec2{
	input.KeyUp:    vmath.V2(0, 1),
	input.KeyLeft:  vmath.V2(-1, 0),
	input.KeyDown:  vmath.V2(0, -1),
	input.KeyRight: vmath.V2(1, 0),
}

// InputControlSystem sets paddle velocity from held keys
// Velocity is recomputed only on frames where the key snapshot changed
type InputControlSystem struct {
	engine.SystemBase

	statUpdates *atomic.Int64
}

func NewInputControlSystem(world *engine.World) engine.System {
	s := &InputControlSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.statUpdates = s.Resource.Status.Counters.Get(status.KeyInputUpdates)
	return s
}

func (s *InputControlSystem) Name() string {
	return parameter.SystemInput
}

func (s *InputControlSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputControlSystem) Update() error {
	paddle, err := engine.SinglePaddle(s.World)
	if err != nil {
		return err
	}

	keys := s.Resource.Input.Keys
	if !keys.Changed {
		return nil
	}

	speed := s.Resource.Physics.PaddleSpeed
	var vel vmath.Vec2
	for k := input.Key(0); k < input.KeyCount; k++ {
		if keys.IsPressed(k) {
			vel = vmath.V2Add(vel, vmath.V2Scale(keyDirections[k], speed))
		}
	}

	s.Component.Velocity.Set(paddle, component.VelocityComponent{Vec2: vel})
	s.statUpdates.Add(1)
	return nil
}
