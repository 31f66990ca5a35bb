package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/trebuchet-org/crater/internal/domain/models"
)

// ArtifactRepository provides access to compiled contracts
type ArtifactRepository interface {
	// Load returns the artifact for a contract name. Unknown names fail
	// with an error that suggests close matches.
	Load(ctx context.Context, name string) (*models.Artifact, error)
}

// BlockchainChecker answers on-chain questions through an RPC endpoint
type BlockchainChecker interface {
	// Connect dials the RPC endpoint and verifies the chain ID when a
	// non-zero one is expected.
	Connect(ctx context.Context, rpcURL string, chainID uint64) error

	// IsDeployed reports whether non-empty contract code exists at the
	// address. The reason is informational when it does not.
	IsDeployed(ctx context.Context, address common.Address) (deployed bool, reason string, err error)

	// ChainID returns the chain ID learned during Connect.
	ChainID() uint64
}

// ProgressSink receives progress notifications for slow operations
type ProgressSink interface {
	Start(message string)
	Stop()
}
