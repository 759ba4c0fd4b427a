package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/vmath"
)

func TestDigest(t *testing.T) {
	build := func() *World {
		w := NewWorld()
		c := w.Components
		With(With(w.NewEntity(), c.Transform, component.TransformComponent{Position: vmath.V2(1, 2)}),
			c.Velocity, component.VelocityComponent{Vec2: vmath.V2(3, 4)}).Build()
		return w
	}

	a, b := build(), build()
	assert.Equal(t, Digest(a), Digest(b), "identical state hashes equal")

	e := a.Components.Transform.All()[0]
	a.Components.Transform.Set(e, component.TransformComponent{Position: vmath.V2(1, 2.0000001)})
	assert.NotEqual(t, Digest(a), Digest(b))

	// Entities without velocity do not contribute
	before := Digest(b)
	With(b.NewEntity(), b.Components.Transform, component.TransformComponent{}).Build()
	assert.Equal(t, before, Digest(b))
}
