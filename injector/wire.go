//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/lixenwraith/vi-pong/config"
)

// InitializeApp assembles the App; the returned cleanup must run on exit
func InitializeApp(cfg *config.Config, debug DebugLogging) (*App, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
