package engine

import (
	"github.com/lixenwraith/vi-pong/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World manages all stores uniformly without knowing the concrete type
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// QueryableStore extends AnyStore with the entity listing needed
// by the query builder to intersect component sets
type QueryableStore interface {
	AnyStore
	All() []core.Entity
}
