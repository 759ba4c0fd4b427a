package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
)

// stepLoop runs one frame per tick until ctx ends, events closes or onEvent returns false
// A nil events channel is never ready; draw may be nil
func stepLoop(
	ctx context.Context,
	gc *engine.GameContext,
	ticks <-chan time.Time,
	events <-chan tcell.Event,
	onEvent func(tcell.Event) bool,
	keys func(time.Time) input.KeyState,
	draw func(),
) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok || !onEvent(ev) {
				return nil
			}

		case now := <-ticks:
			if err := gc.Step(keys(now)); err != nil {
				return err
			}
			if draw != nil {
				draw()
			}
		}
	}
}
