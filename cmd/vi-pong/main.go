package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/injector"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/scene"
)

var (
	configPath = flag.String("config", "", "YAML configuration file")
	logPath    = flag.String("log", "", "Log file, overrides log.path")
	debugFlag  = flag.Bool("debug", false, "Log at debug level")
	headless   = flag.Bool("headless", false, "Run without a terminal")
	duration   = flag.Duration("duration", 0, "Stop after this long, 0 runs until quit")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	// Config errors are reported before the terminal is taken over
	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(nil, err)
	}
	if *logPath != "" {
		cfg.Log.Path = *logPath
	}
	bindings, err := input.ParseBindings(cfg.Input.Bindings)
	if err != nil {
		fatal(nil, fmt.Errorf("%w: input.bindings: %w", config.ErrInvalidConfig, err))
	}

	app, cleanup, err := injector.InitializeApp(cfg, injector.DebugLogging(*debugFlag))
	if err != nil {
		fatal(nil, err)
	}
	defer cleanup()

	app.Logger.Info("starting",
		zap.Bool("headless", *headless),
		zap.Strings("systems", cfg.Systems.Order),
		zap.Duration("duration", *duration),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	if *headless {
		err = runHeadless(ctx, app)
	} else {
		err = runTerminal(ctx, app, bindings)
	}
	if err != nil {
		fatal(app.Logger, err)
	}

	app.Logger.Info("stopped", zap.Int64("frames", app.Game.Frame()))
}

// runHeadless steps the simulation with no input until ctx ends
func runHeadless(ctx context.Context, app *injector.App) error {
	ticker := time.NewTicker(frameInterval(app.Config.Render.FPS))
	defer ticker.Stop()

	idle := func(time.Time) input.KeyState { return input.KeyState{} }
	return stepLoop(ctx, app.Game, ticker.C, nil, nil, idle, nil)
}

// runTerminal owns the tcell screen: one goroutine polls events, the other steps and renders
func runTerminal(ctx context.Context, app *injector.App, bindings input.Bindings) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	core.SetCrashScreen(screen)

	// Fini unblocks PollEvent so the poller can exit
	var finiOnce sync.Once
	fini := func() {
		finiOnce.Do(func() {
			core.SetCrashScreen(nil)
			screen.Fini()
		})
	}
	defer fini()

	tracker := input.NewHoldTracker(app.Config.Input.HoldWindow)
	renderer := render.NewTerminalRenderer(screen)
	events := make(chan tcell.Event, 64)

	g, gctx := errgroup.WithContext(ctx)
	loopCtx, cancel := context.WithCancel(gctx)

	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		defer close(events)

		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-loopCtx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		defer fini()
		defer cancel()

		ticker := time.NewTicker(frameInterval(app.Config.Render.FPS))
		defer ticker.Stop()

		var resetErr error
		onEvent := func(ev tcell.Event) bool {
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if input.IsQuit(ev) {
					return false
				}
				if input.IsReset(ev) {
					app.Scene, resetErr = scene.Reset(app.Game.World, app.Config)
					app.Logger.Info("scene reset", zap.Int64("frame", app.Game.Frame()))
					return resetErr == nil
				}
				if k, ok := bindings.Translate(ev); ok {
					tracker.Press(k, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			return true
		}
		draw := func() {
			renderer.RenderFrame(app.Game)
		}

		if err := stepLoop(loopCtx, app.Game, ticker.C, events, onEvent, tracker.Snapshot, draw); err != nil {
			return err
		}
		return resetErr
	})

	return g.Wait()
}

func frameInterval(fps int) time.Duration {
	return time.Second / time.Duration(max(fps, 1))
}
