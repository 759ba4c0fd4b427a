package engine

import (
	"github.com/lixenwraith/vi-pong/component"
)

// ComponentStore holds the typed store of every component kind
// Pointers are created once with the World and stay valid for its lifetime
type ComponentStore struct {
	// Physics
	Transform   *Store[component.TransformComponent]
	Velocity    *Store[component.VelocityComponent]
	BoundingBox *Store[component.BoundingBoxComponent]

	// Markers
	Ball   *Store[component.BallComponent]
	Paddle *Store[component.PaddleComponent]

	// Visual
	Glyph *Store[component.GlyphComponent]
}

// newComponentStore allocates all stores and returns them with their lifecycle list
func newComponentStore() (ComponentStore, []AnyStore) {
	cs := ComponentStore{
		Transform:   NewStore[component.TransformComponent](),
		Velocity:    NewStore[component.VelocityComponent](),
		BoundingBox: NewStore[component.BoundingBoxComponent](),
		Ball:        NewStore[component.BallComponent](),
		Paddle:      NewStore[component.PaddleComponent](),
		Glyph:       NewStore[component.GlyphComponent](),
	}
	return cs, []AnyStore{
		cs.Transform,
		cs.Velocity,
		cs.BoundingBox,
		cs.Ball,
		cs.Paddle,
		cs.Glyph,
	}
}
