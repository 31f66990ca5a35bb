//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/trebuchet-org/crater/internal/adapters"
	"github.com/trebuchet-org/crater/internal/config"
	"github.com/trebuchet-org/crater/internal/logging"
	"github.com/trebuchet-org/crater/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		config.NewRuntimeConfig,
		logging.NewLogger,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewPredictAddress,
		usecase.NewCheckDeployment,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
