package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/trebuchet-org/crater/internal/domain/config"
	"github.com/trebuchet-org/crater/pkg/create2"
)

// CheckDeploymentParams contains parameters for an on-chain existence check
type CheckDeploymentParams struct {
	Address string
}

// CheckDeploymentResult reports whether code exists at the address
type CheckDeploymentResult struct {
	Address  common.Address
	Deployed bool
	Reason   string
	ChainID  uint64
	Network  *config.Network
}

// CheckDeployment is the use case for asking the chain whether a contract
// exists at an address (typically one computed by PredictAddress).
type CheckDeployment struct {
	config   *config.RuntimeConfig
	checker  BlockchainChecker
	progress ProgressSink
	log      *slog.Logger
}

// NewCheckDeployment creates a new CheckDeployment use case
func NewCheckDeployment(
	cfg *config.RuntimeConfig,
	checker BlockchainChecker,
	progress ProgressSink,
	log *slog.Logger,
) *CheckDeployment {
	return &CheckDeployment{
		config:   cfg,
		checker:  checker,
		progress: progress,
		log:      log,
	}
}

// Run executes the check deployment use case
func (uc *CheckDeployment) Run(ctx context.Context, params CheckDeploymentParams) (*CheckDeploymentResult, error) {
	address, err := create2.ParseDeployer(params.Address)
	if err != nil {
		return nil, err
	}

	if uc.config.Network == nil {
		return nil, fmt.Errorf("network must be configured; pass --network")
	}

	uc.progress.Start(fmt.Sprintf("Checking %s on %s", create2.AddressHex(address), uc.config.Network.Name))
	defer uc.progress.Stop()

	if err := uc.checker.Connect(ctx, uc.config.Network.RPCURL, uc.config.Network.ChainID); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", uc.config.Network.Name, err)
	}

	deployed, reason, err := uc.checker.IsDeployed(ctx, address)
	if err != nil {
		return nil, err
	}

	uc.log.Debug("existence check", "address", address, "deployed", deployed)

	return &CheckDeploymentResult{
		Address:  address,
		Deployed: deployed,
		Reason:   reason,
		ChainID:  uc.checker.ChainID(),
		Network:  uc.config.Network,
	}, nil
}
