package engine

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// GameContext owns the world and drives one frame per Step call
type GameContext struct {
	World        *World
	TimeProvider TimeProvider
	Logger       *zap.Logger
	Status       *status.Registry

	resources Resource

	lastStep time.Time
	frame    int64

	// Cached metric pointers
	frames       *atomic.Int64
	fps          *status.AtomicFloat
	frameSeconds *status.AtomicFloat
}

// NewGameContext creates the world and registers every resource systems depend on
// Systems are installed afterwards so their constructors can cache resource pointers
func NewGameContext(cfg *config.Config, tp TimeProvider, logger *zap.Logger) (*GameContext, error) {
	mode, err := ParseWallBounceMode(cfg.Physics.WallBounce)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	world := NewWorld()
	registry := status.NewRegistry()

	AddResource(world.Resources, &TimeResource{})
	AddResource(world.Resources, &InputResource{})
	AddResource(world.Resources, &ArenaResource{
		Width:  cfg.Arena.Width,
		Height: cfg.Arena.Height,
	})
	AddResource(world.Resources, &PhysicsResource{
		PaddleSpeed:        cfg.Physics.PaddleSpeed,
		MomentumMultiplier: cfg.Physics.MomentumMultiplier,
		WallBounce:         mode,
	})
	AddResource(world.Resources, registry)

	gc := &GameContext{
		World:        world,
		TimeProvider: tp,
		Logger:       logger,
		Status:       registry,
		resources:    GetResources(world),
		frames:       registry.Counters.Get(status.KeyFrames),
		fps:          registry.Gauges.Get(status.KeyFPS),
		frameSeconds: registry.Gauges.Get(status.KeyFrameSeconds),
	}
	return gc, nil
}

// Step samples the clock once, publishes time and input to the world and runs all systems
// The first step has zero elapsed time. A system error aborts the rest of the frame.
func (gc *GameContext) Step(keys input.KeyState) error {
	now := gc.TimeProvider.Now()

	var dt time.Duration
	if !gc.lastStep.IsZero() {
		dt = max(now.Sub(gc.lastStep), 0)
	}
	gc.lastStep = now
	gc.frame++

	var err error
	gc.World.RunSafe(func() {
		gc.resources.Time.Update(now, dt, gc.frame)
		gc.resources.Input.Update(keys)
		err = gc.World.UpdateLocked()
	})

	gc.frames.Add(1)
	gc.recordTiming(dt)

	if err != nil {
		gc.Logger.Error("frame aborted",
			zap.Int64("frame", gc.frame),
			zap.Duration("delta", dt),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Frame returns the number of steps taken
func (gc *GameContext) Frame() int64 {
	return gc.frame
}

// recordTiming keeps an exponential moving average of the frame rate
func (gc *GameContext) recordTiming(dt time.Duration) {
	if dt <= 0 {
		return
	}
	secs := dt.Seconds()
	gc.frameSeconds.Set(secs)

	inst := 1 / secs
	prev := gc.fps.Get()
	if prev == 0 {
		gc.fps.Set(inst)
		return
	}
	gc.fps.Set(prev + parameter.FPSSmoothing*(inst-prev))
}
