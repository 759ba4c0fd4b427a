package manifest

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/registry"
	"github.com/lixenwraith/vi-pong/system"
)

var registerOnce sync.Once

// RegisterSystems registers all system factories with the registry
// Safe to call more than once
func RegisterSystems() {
	registerOnce.Do(func() {
		registry.RegisterSystem(parameter.SystemKinematics, system.NewKinematicsSystem)
		registry.RegisterSystem(parameter.SystemInput, system.NewInputControlSystem)
		registry.RegisterSystem(parameter.SystemWallBounce, system.NewWallBounceSystem)
		registry.RegisterSystem(parameter.SystemCollision, system.NewCollisionSystem)
	})
}

// InstallSystems builds the named systems into w and fixes their execution order
// An empty order installs every registered system by priority
func InstallSystems(w *engine.World, order []string) error {
	RegisterSystems()

	names := order
	if len(names) == 0 {
		names = registry.SystemNames()
	}

	for _, name := range names {
		factory, ok := registry.GetSystem(name)
		if !ok {
			return fmt.Errorf("%w: %q", engine.ErrUnknownSystem, name)
		}
		if err := w.AddSystem(factory(w)); err != nil {
			return err
		}
	}

	if len(order) == 0 {
		return nil
	}
	return w.SetOrder(order)
}
