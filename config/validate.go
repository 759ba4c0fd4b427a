package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lixenwraith/vi-pong/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks value ranges and the system schedule
func (c *Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("%w: arena must have positive extent, got %gx%g", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	}
	if c.Physics.PaddleSpeed < 0 {
		return fmt.Errorf("%w: paddle_speed must not be negative", ErrInvalidConfig)
	}
	if c.Physics.MomentumMultiplier < 0 {
		return fmt.Errorf("%w: momentum_multiplier must not be negative", ErrInvalidConfig)
	}
	switch c.Physics.WallBounce {
	case parameter.WallBounceLiteral, parameter.WallBounceReflect:
	default:
		return fmt.Errorf("%w: wall_bounce must be %q or %q, got %q",
			ErrInvalidConfig, parameter.WallBounceLiteral, parameter.WallBounceReflect, c.Physics.WallBounce)
	}

	for name, body := range map[string]BodyConfig{"ball": c.Ball, "paddle": c.Paddle} {
		if body.Size.X <= 0 || body.Size.Y <= 0 {
			return fmt.Errorf("%w: %s size must be positive, got %gx%g", ErrInvalidConfig, name, body.Size.X, body.Size.Y)
		}
	}

	if err := validateOrder(c.Systems.Order); err != nil {
		return err
	}

	if c.Input.HoldWindow < 0 {
		return fmt.Errorf("%w: hold_window must not be negative", ErrInvalidConfig)
	}
	if c.Render.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.Render.FPS)
	}
	return nil
}

// validateOrder requires each known system exactly once
func validateOrder(order []string) error {
	if len(order) != len(parameter.DefaultSystemOrder) {
		return fmt.Errorf("%w: systems.order must list %v", ErrInvalidConfig, parameter.DefaultSystemOrder)
	}
	seen := make(map[string]bool, len(order))
	for _, name := range order {
		if !slices.Contains(parameter.DefaultSystemOrder, name) {
			return fmt.Errorf("%w: unknown system %q", ErrInvalidConfig, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: system %q listed twice", ErrInvalidConfig, name)
		}
		seen[name] = true
	}
	return nil
}
