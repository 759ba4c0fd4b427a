package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

func TestQuery_Intersection(t *testing.T) {
	w := NewWorld()
	c := w.Components

	moving := With(With(w.NewEntity(), c.Transform, component.TransformComponent{}),
		c.Velocity, component.VelocityComponent{Vec2: vmath.V2(1, 0)}).Build()
	static := With(w.NewEntity(), c.Transform, component.TransformComponent{}).Build()
	orphan := With(w.NewEntity(), c.Velocity, component.VelocityComponent{}).Build()

	got := w.Query().With(c.Transform).With(c.Velocity).Execute()
	assert.Equal(t, []core.Entity{moving}, got)

	assert.ElementsMatch(t, []core.Entity{moving, static}, w.Query().With(c.Transform).Execute())
	assert.ElementsMatch(t, []core.Entity{moving, orphan}, w.Query().With(c.Velocity).Execute())
}

func TestQuery_EmptyAndCached(t *testing.T) {
	w := NewWorld()
	assert.Empty(t, w.Query().Execute())

	e := With(w.NewEntity(), w.Components.Ball, component.BallComponent{}).Build()
	q := w.Query().With(w.Components.Ball)
	first := q.Execute()
	assert.Equal(t, []core.Entity{e}, first)

	// Cached result ignores later world changes
	With(w.NewEntity(), w.Components.Ball, component.BallComponent{}).Build()
	assert.Equal(t, first, q.Execute())

	assert.Panics(t, func() { q.With(w.Components.Paddle) })
}

func TestQuery_NoMatchShortCircuits(t *testing.T) {
	w := NewWorld()
	c := w.Components
	With(w.NewEntity(), c.Ball, component.BallComponent{}).Build()
	With(w.NewEntity(), c.Paddle, component.PaddleComponent{}).Build()

	assert.Empty(t, w.Query().With(c.Ball).With(c.Paddle).With(c.Transform).Execute())
}
