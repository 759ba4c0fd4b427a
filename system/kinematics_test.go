package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/vmath"
)

func TestKinematics_Integrates(t *testing.T) {
	gc, _ := newTestContext(t, nil)
	w := gc.World
	ball := spawnTestBall(w, vmath.V2(0, 0), vmath.V2(40, 40), vmath.V2(30, 0))

	setFrame(w, 500*time.Millisecond, input.KeyState{})
	require.NoError(t, NewKinematicsSystem(w).Update())

	assert.Equal(t, vmath.V2(15, 0), positionOf(t, w, ball))
}

func TestKinematics_ZeroElapsedKeepsPosition(t *testing.T) {
	gc, _ := newTestContext(t, nil)
	w := gc.World
	ball := spawnTestBall(w, vmath.V2(3, 4), vmath.V2(40, 40), vmath.V2(30, -7))

	setFrame(w, 0, input.KeyState{})
	require.NoError(t, NewKinematicsSystem(w).Update())

	assert.Equal(t, vmath.V2(3, 4), positionOf(t, w, ball))
}

func TestKinematics_SkipsEntitiesWithoutVelocity(t *testing.T) {
	gc, _ := newTestContext(t, nil)
	w := gc.World
	ball := spawnTestBall(w, vmath.V2(1, 1), vmath.V2(40, 40), vmath.V2(10, 10))
	w.Components.Velocity.Remove(ball)

	setFrame(w, time.Second, input.KeyState{})
	require.NoError(t, NewKinematicsSystem(w).Update())

	assert.Equal(t, vmath.V2(1, 1), positionOf(t, w, ball))
}

func TestKinematics_MovesEveryBody(t *testing.T) {
	gc, _ := newTestContext(t, nil)
	w := gc.World
	ball := spawnTestBall(w, vmath.V2(0, 0), vmath.V2(40, 40), vmath.V2(30, 0))
	paddle := spawnTestPaddle(w, vmath.V2(100, 100), vmath.V2(80, 20), vmath.V2(0, -200))

	setFrame(w, 250*time.Millisecond, input.KeyState{})
	require.NoError(t, NewKinematicsSystem(w).Update())

	assert.Equal(t, vmath.V2(7.5, 0), positionOf(t, w, ball))
	assert.Equal(t, vmath.V2(100, 50), positionOf(t, w, paddle))
}
