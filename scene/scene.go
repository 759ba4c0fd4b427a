package scene

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

var (
	ballStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	paddleStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Scene holds the handles of the spawned entities
type Scene struct {
	Ball   core.Entity
	Paddle core.Entity
}

// Initialize spawns the ball and the paddle and validates the resulting topology
func Initialize(w *engine.World, cfg *config.Config) (Scene, error) {
	s := Scene{
		Ball:   SpawnBall(w, cfg.Ball),
		Paddle: SpawnPaddle(w, cfg.Paddle),
	}
	if err := engine.ValidateScene(w); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// SpawnBall creates a ball entity from body settings
func SpawnBall(w *engine.World, body config.BodyConfig) core.Entity {
	eb := spawnBody(w, body, component.GlyphComponent{Rune: parameter.BallRune, Style: ballStyle})
	return engine.With(eb, w.Components.Ball, component.BallComponent{}).Build()
}

// SpawnPaddle creates a paddle entity from body settings
func SpawnPaddle(w *engine.World, body config.BodyConfig) core.Entity {
	eb := spawnBody(w, body, component.GlyphComponent{Rune: parameter.PaddleRune, Style: paddleStyle})
	return engine.With(eb, w.Components.Paddle, component.PaddleComponent{}).Build()
}

func spawnBody(w *engine.World, body config.BodyConfig, glyph component.GlyphComponent) *engine.EntityBuilder {
	c := w.Components
	eb := w.NewEntity()
	engine.With(eb, c.Transform, component.TransformComponent{Position: body.Position})
	engine.With(eb, c.Velocity, component.VelocityComponent{Vec2: body.Velocity})
	engine.With(eb, c.BoundingBox, component.BoundingBoxComponent{Size: body.Size})
	engine.With(eb, c.Glyph, glyph)
	return eb
}

// Reset removes every entity and spawns the initial scene again
// Installed systems and resources are kept
func Reset(w *engine.World, cfg *config.Config) (Scene, error) {
	w.Clear()
	return Initialize(w, cfg)
}
