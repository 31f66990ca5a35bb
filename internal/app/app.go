package app

import (
	"log/slog"

	"github.com/trebuchet-org/crater/internal/domain/config"
	"github.com/trebuchet-org/crater/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	PredictAddress  *usecase.PredictAddress
	CheckDeployment *usecase.CheckDeployment
	ListNetworks    *usecase.ListNetworks
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	predictAddress *usecase.PredictAddress,
	checkDeployment *usecase.CheckDeployment,
	listNetworks *usecase.ListNetworks,
) *App {
	return &App{
		Config:          cfg,
		Logger:          logger,
		PredictAddress:  predictAddress,
		CheckDeployment: checkDeployment,
		ListNetworks:    listNetworks,
	}
}
