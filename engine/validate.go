package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-pong/core"
)

// SinglePaddle returns the only paddle entity
// Zero or several paddles is a topology violation
func SinglePaddle(w *World) (core.Entity, error) {
	paddles := w.Components.Paddle.All()
	if len(paddles) != 1 {
		return core.NoEntity, fmt.Errorf("%w: expected exactly one paddle, found %d", ErrPaddleTopology, len(paddles))
	}
	return paddles[0], nil
}

// ValidateScene checks scene invariants once at startup so per-frame rules fail rarely
func ValidateScene(w *World) error {
	if _, err := SinglePaddle(w); err != nil {
		return err
	}

	c := w.Components
	if c.Ball.Count() == 0 {
		return fmt.Errorf("%w: expected at least one ball, found 0", ErrBallTopology)
	}

	for _, e := range c.Ball.All() {
		if c.Paddle.Has(e) {
			return fmt.Errorf("%w: entity %d", ErrMarkerConflict, e)
		}
	}

	tagged := append(c.Ball.All(), c.Paddle.All()...)
	for _, e := range tagged {
		if !c.Transform.Has(e) || !c.Velocity.Has(e) {
			return fmt.Errorf("%w: entity %d", ErrMissingKinematics, e)
		}
		if !c.BoundingBox.Has(e) {
			return fmt.Errorf("%w: entity %d", ErrMissingBoundingBox, e)
		}
	}
	return nil
}
