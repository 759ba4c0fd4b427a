package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

func TestInputControl_Directions(t *testing.T) {
	tests := []struct {
		name string
		keys input.KeyState
		want vmath.Vec2
	}{
		{"up", held(input.KeyUp), vmath.V2(0, 200)},
		{"left", held(input.KeyLeft), vmath.V2(-200, 0)},
		{"down", held(input.KeyDown), vmath.V2(0, -200)},
		{"right", held(input.KeyRight), vmath.V2(200, 0)},
		{"diagonal", held(input.KeyUp, input.KeyRight), vmath.V2(200, 200)},
		{"opposing cancel", held(input.KeyLeft, input.KeyRight), vmath.V2(0, 0)},
		{"release stops", held(), vmath.V2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gc, _ := newTestContext(t, nil)
			w := gc.World
			paddle := spawnTestPaddle(w, vmath.V2(100, 100), vmath.V2(80, 20), vmath.V2(50, 50))

			setFrame(w, 0, tt.keys)
			require.NoError(t, NewInputControlSystem(w).Update())

			assert.Equal(t, tt.want, velocityOf(t, w, paddle))
		})
	}
}

func TestInputControl_UnchangedKeysLeaveVelocity(t *testing.T) {
	gc, _ := newTestContext(t, nil)
	w := gc.World
	paddle := spawnTestPaddle(w, vmath.V2(100, 100), vmath.V2(80, 20), vmath.V2(0, 0))
	sys := NewInputControlSystem(w)

	setFrame(w, 0, held(input.KeyUp))
	require.NoError(t, sys.Update())

	// WallBounce or Collision may alter velocity between input changes
	w.Components.Velocity.Set(paddle, velocityComponent(-7, 3))

	steady := held(input.KeyUp)
	steady.Changed = false
	setFrame(w, 0, steady)
	require.NoError(t, sys.Update())

	assert.Equal(t, vmath.V2(-7, 3), velocityOf(t, w, paddle))
	assert.Equal(t, int64(1), gc.Status.Counters.Get(status.KeyInputUpdates).Load())
}

func TestInputControl_Idempotent(t *testing.T) {
	gc, _ := newTestContext(t, nil)
	w := gc.World
	paddle := spawnTestPaddle(w, vmath.V2(100, 100), vmath.V2(80, 20), vmath.V2(0, 0))
	sys := NewInputControlSystem(w)

	setFrame(w, 0, held(input.KeyDown, input.KeyLeft))
	require.NoError(t, sys.Update())
	first := velocityOf(t, w, paddle)
	require.NoError(t, sys.Update())

	assert.Equal(t, first, velocityOf(t, w, paddle))
	assert.Equal(t, vmath.V2(-200, -200), first)
}

func TestInputControl_UsesConfiguredSpeed(t *testing.T) {
	gc, _ := newTestContext(t, nil)
	w := gc.World
	engine.GetResources(w).Physics.PaddleSpeed = 50
	paddle := spawnTestPaddle(w, vmath.V2(0, 0), vmath.V2(80, 20), vmath.V2(0, 0))

	setFrame(w, 0, held(input.KeyRight))
	require.NoError(t, NewInputControlSystem(w).Update())

	assert.Equal(t, vmath.V2(50, 0), velocityOf(t, w, paddle))
}

func TestInputControl_PaddleTopology(t *testing.T) {
	t.Run("no paddle", func(t *testing.T) {
		gc, _ := newTestContext(t, nil)
		w := gc.World
		spawnTestBall(w, vmath.V2(0, 0), vmath.V2(40, 40), vmath.V2(30, 0))

		setFrame(w, 0, held(input.KeyUp))
		err := NewInputControlSystem(w).Update()
		require.ErrorIs(t, err, engine.ErrPaddleTopology)
	})

	t.Run("two paddles", func(t *testing.T) {
		gc, _ := newTestContext(t, nil)
		w := gc.World
		a := spawnTestPaddle(w, vmath.V2(0, 0), vmath.V2(80, 20), vmath.V2(1, 1))
		b := spawnTestPaddle(w, vmath.V2(10, 0), vmath.V2(80, 20), vmath.V2(2, 2))

		// Topology is checked even when keys did not change
		setFrame(w, 0, input.KeyState{})
		err := NewInputControlSystem(w).Update()
		require.ErrorIs(t, err, engine.ErrPaddleTopology)
		assert.Contains(t, err.Error(), "found 2")

		assert.Equal(t, vmath.V2(1, 1), velocityOf(t, w, a))
		assert.Equal(t, vmath.V2(2, 2), velocityOf(t, w, b))
	})
}
