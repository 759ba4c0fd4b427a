package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

func spawnBody[T any](w *World, tag *Store[T], withBox bool) core.Entity {
	c := w.Components
	eb := With(w.NewEntity(), c.Transform, component.TransformComponent{})
	eb = With(eb, c.Velocity, component.VelocityComponent{})
	if withBox {
		eb = With(eb, c.BoundingBox, component.BoundingBoxComponent{Size: vmath.V2(10, 10)})
	}
	var zero T
	return With(eb, tag, zero).Build()
}

func TestValidateScene(t *testing.T) {
	w := NewWorld()
	spawnBody(w, w.Components.Ball, true)
	paddle := spawnBody(w, w.Components.Paddle, true)

	require.NoError(t, ValidateScene(w))

	got, err := SinglePaddle(w)
	require.NoError(t, err)
	assert.Equal(t, paddle, got)
}

func TestValidateScene_Topology(t *testing.T) {
	w := NewWorld()
	spawnBody(w, w.Components.Ball, true)

	err := ValidateScene(w)
	assert.ErrorIs(t, err, ErrPaddleTopology)
	assert.Contains(t, err.Error(), "found 0")

	spawnBody(w, w.Components.Paddle, true)
	spawnBody(w, w.Components.Paddle, true)
	err = ValidateScene(w)
	assert.ErrorIs(t, err, ErrPaddleTopology)
	assert.Contains(t, err.Error(), "found 2")

	noBall := NewWorld()
	spawnBody(noBall, noBall.Components.Paddle, true)
	assert.ErrorIs(t, ValidateScene(noBall), ErrBallTopology)
}

func TestValidateScene_MissingComponents(t *testing.T) {
	w := NewWorld()
	spawnBody(w, w.Components.Ball, false)
	spawnBody(w, w.Components.Paddle, true)
	assert.ErrorIs(t, ValidateScene(w), ErrMissingBoundingBox)

	w = NewWorld()
	ball := spawnBody(w, w.Components.Ball, true)
	spawnBody(w, w.Components.Paddle, true)
	w.Components.Velocity.Remove(ball)
	assert.ErrorIs(t, ValidateScene(w), ErrMissingKinematics)

	w = NewWorld()
	ball = spawnBody(w, w.Components.Ball, true)
	spawnBody(w, w.Components.Paddle, true)
	w.Components.Paddle.Set(ball, component.PaddleComponent{})
	// Two paddle tags now exist, topology is reported first
	assert.ErrorIs(t, ValidateScene(w), ErrPaddleTopology)
}

func TestValidateScene_MarkerConflict(t *testing.T) {
	w := NewWorld()
	e := spawnBody(w, w.Components.Ball, true)
	w.Components.Paddle.Set(e, component.PaddleComponent{})
	assert.ErrorIs(t, ValidateScene(w), ErrMarkerConflict)
}
