package engine

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lixenwraith/vi-pong/core"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  *ResourceStore
	Components ComponentStore

	// Lifecycle registry, every store implements AnyStore
	allStores []AnyStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with all component stores allocated
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		systems:      make([]System, 0, 4),
	}
	w.Components, w.allStores = newComponentStore()
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem adds a system to the world, keeping the list sorted by priority
// Systems of equal priority keep registration order
func (w *World) AddSystem(system System) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, s := range w.systems {
		if s.Name() == system.Name() {
			return fmt.Errorf("%w: %s", ErrDuplicateSystem, system.Name())
		}
	}

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	return nil
}

// SetOrder replaces priority order with an explicit one
// Every registered system must be named exactly once
func (w *World) SetOrder(names []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(names) != len(w.systems) {
		return fmt.Errorf("%w: order names %d systems, %d registered", ErrUnknownSystem, len(names), len(w.systems))
	}

	byName := make(map[string]System, len(w.systems))
	for _, s := range w.systems {
		byName[s.Name()] = s
	}

	ordered := make([]System, 0, len(names))
	used := make(map[string]bool, len(names))
	for _, name := range names {
		if used[name] {
			return fmt.Errorf("%w: %q listed twice", ErrDuplicateSystem, name)
		}
		s, ok := byName[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSystem, name)
		}
		used[name] = true
		ordered = append(ordered, s)
	}

	w.systems = ordered
	return nil
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially
func (w *World) Update() error {
	var err error
	w.RunSafe(func() {
		err = w.UpdateLocked()
	})
	return err
}

// UpdateLocked runs all systems assuming the caller already holds updateMutex
// Stops at the first failing system; later systems do not run that frame
func (w *World) UpdateLocked() error {
	for _, system := range w.Systems() {
		if err := system.Update(); err != nil {
			return fmt.Errorf("system %s: %w", system.Name(), err)
		}
	}
	return nil
}
