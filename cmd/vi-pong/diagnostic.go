package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
)

var invariants = []struct {
	err  error
	hint string
}{
	{engine.ErrMissingBoundingBox, "every ball and paddle needs a bounding box"},
	{engine.ErrMissingKinematics, "every ball and paddle needs a transform and a velocity"},
	{engine.ErrPaddleTopology, "the scene must contain exactly one paddle"},
	{engine.ErrBallTopology, "the scene must contain at least one ball"},
	{engine.ErrMarkerConflict, "an entity cannot be both ball and paddle"},
	{engine.ErrUnknownSystem, "systems.order names a system that does not exist"},
	{engine.ErrDuplicateSystem, "systems.order lists a system twice"},
	{config.ErrInvalidConfig, "fix the configuration file"},
}

// diagnose names the violated invariant behind err, or returns an empty string
func diagnose(err error) string {
	for _, inv := range invariants {
		if errors.Is(err, inv.err) {
			return inv.hint
		}
	}
	return ""
}

// fatal reports err on stderr and exits with status 1
// The terminal must already be restored
func fatal(logger *zap.Logger, err error) {
	if logger != nil {
		logger.Error("fatal", zap.Error(err))
		_ = logger.Sync()
	}

	fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
	if hint := diagnose(err); hint != "" {
		fmt.Fprintf(os.Stderr, "  invariant: %s\n", hint)
	}
	os.Exit(1)
}
