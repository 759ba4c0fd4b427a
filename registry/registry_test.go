package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/engine"
)

type namedSystem struct{ name string }

func (s namedSystem) Name() string  { return s.name }
func (s namedSystem) Priority() int { return 0 }
func (s namedSystem) Update() error { return nil }

func TestRegisterSystem(t *testing.T) {
	RegisterSystem("zz_test", func(*engine.World) engine.System { return namedSystem{"first"} })
	RegisterSystem("aa_test", func(*engine.World) engine.System { return namedSystem{"other"} })

	f, ok := GetSystem("zz_test")
	require.True(t, ok)
	assert.Equal(t, "first", f(engine.NewWorld()).Name())

	// Re-registration replaces
	RegisterSystem("zz_test", func(*engine.World) engine.System { return namedSystem{"second"} })
	f, _ = GetSystem("zz_test")
	assert.Equal(t, "second", f(engine.NewWorld()).Name())

	_, ok = GetSystem("missing")
	assert.False(t, ok)

	names := SystemNames()
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "aa_test")
	assert.Contains(t, names, "zz_test")
}
