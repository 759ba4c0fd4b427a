package injector

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/logging"
	"github.com/lixenwraith/vi-pong/manifest"
	"github.com/lixenwraith/vi-pong/scene"
)

// DebugLogging forces debug level regardless of log.level
type DebugLogging bool

// App is the assembled simulation, ready for the host loop
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Game   *engine.GameContext
	Scene  scene.Scene
}

// ProviderSet builds an App from a validated configuration
var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideTimeProvider,
	ProvideGameContext,
	ProvideScene,
	wire.Struct(new(App), "*"),
)

// ProvideLogger opens the log file; cleanup flushes it
func ProvideLogger(cfg *config.Config, debug DebugLogging) (*zap.Logger, func(), error) {
	logger, err := logging.New(cfg.Log, bool(debug))
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func ProvideTimeProvider() engine.TimeProvider {
	return engine.NewMonotonicTimeProvider()
}

// ProvideGameContext creates the world and installs systems in configured order
func ProvideGameContext(cfg *config.Config, tp engine.TimeProvider, logger *zap.Logger) (*engine.GameContext, error) {
	gc, err := engine.NewGameContext(cfg, tp, logger)
	if err != nil {
		return nil, err
	}
	if err := manifest.InstallSystems(gc.World, cfg.Systems.Order); err != nil {
		return nil, err
	}
	return gc, nil
}

// ProvideScene spawns and validates the initial entities
func ProvideScene(gc *engine.GameContext, cfg *config.Config) (scene.Scene, error) {
	return scene.Initialize(gc.World, cfg)
}
