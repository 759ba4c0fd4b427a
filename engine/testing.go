package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/config"
)

// NewTestGameContext creates a GameContext on a mock clock with logging disabled
// A nil cfg uses defaults. Panics on invalid configuration.
func NewTestGameContext(cfg *config.Config) (*GameContext, *MockTimeProvider) {
	if cfg == nil {
		cfg = config.Default()
	}
	clock := NewMockTimeProvider(time.Unix(1_700_000_000, 0))
	gc, err := NewGameContext(cfg, clock, zap.NewNop())
	if err != nil {
		panic(err)
	}
	return gc, clock
}
