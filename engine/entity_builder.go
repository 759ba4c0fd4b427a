package engine

import (
	"github.com/lixenwraith/vi-pong/core"
)

// EntityBuilder reserves an entity ID and attaches components fluently.
//
//	e := engine.With(
//	    engine.With(world.NewEntity(), world.Components.Transform, t),
//	    world.Components.Velocity, v,
//	).Build()
type EntityBuilder struct {
	entity core.Entity
	built  bool
}

// NewEntity creates a builder around a freshly reserved entity ID
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Set(eb.entity, component)
	return eb
}

// Build finalizes construction and returns the entity ID
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
