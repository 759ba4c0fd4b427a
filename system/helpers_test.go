package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/vmath"
)

func newTestContext(t *testing.T, mutate func(*config.Config)) (*engine.GameContext, *engine.MockTimeProvider) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())
	return engine.NewTestGameContext(cfg)
}

func spawnBody(w *engine.World, pos, size, vel vmath.Vec2) *engine.EntityBuilder {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Transform, component.TransformComponent{Position: pos})
	engine.With(eb, w.Components.Velocity, component.VelocityComponent{Vec2: vel})
	if size != (vmath.Vec2{}) {
		engine.With(eb, w.Components.BoundingBox, component.BoundingBoxComponent{Size: size})
	}
	return eb
}

func spawnTestBall(w *engine.World, pos, size, vel vmath.Vec2) core.Entity {
	return engine.With(spawnBody(w, pos, size, vel), w.Components.Ball, component.BallComponent{}).Build()
}

func spawnTestPaddle(w *engine.World, pos, size, vel vmath.Vec2) core.Entity {
	return engine.With(spawnBody(w, pos, size, vel), w.Components.Paddle, component.PaddleComponent{}).Build()
}

func velocityOf(t *testing.T, w *engine.World, e core.Entity) vmath.Vec2 {
	t.Helper()
	v, ok := w.Components.Velocity.Get(e)
	require.True(t, ok)
	return v.Vec2
}

func positionOf(t *testing.T, w *engine.World, e core.Entity) vmath.Vec2 {
	t.Helper()
	p, ok := w.Components.Transform.Get(e)
	require.True(t, ok)
	return p.Position
}

// setFrame publishes time and input resources as GameContext.Step would, without running systems
func setFrame(w *engine.World, dt time.Duration, keys input.KeyState) {
	res := engine.GetResources(w)
	res.Time.DeltaTime = dt
	res.Input.Update(keys)
}

func held(keys ...input.Key) input.KeyState {
	s := input.KeyState{Changed: true}
	for _, k := range keys {
		s.Pressed[k] = true
	}
	return s
}

func velocityComponent(x, y float64) component.VelocityComponent {
	return component.VelocityComponent{Vec2: vmath.V2(x, y)}
}
