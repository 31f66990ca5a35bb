// Package adapters wires concrete implementations to the use case ports.
package adapters

import (
	"github.com/google/wire"

	"github.com/trebuchet-org/crater/internal/adapters/artifacts"
	"github.com/trebuchet-org/crater/internal/adapters/blockchain"
	"github.com/trebuchet-org/crater/internal/adapters/progress"
	"github.com/trebuchet-org/crater/internal/usecase"
)

// AllAdapters provides every adapter behind its port interface
var AllAdapters = wire.NewSet(
	artifacts.NewLoader,
	wire.Bind(new(usecase.ArtifactRepository), new(*artifacts.Loader)),

	blockchain.NewChecker,
	wire.Bind(new(usecase.BlockchainChecker), new(*blockchain.Checker)),

	progress.NewSink,
)
