package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/trebuchet-org/crater/internal/usecase"
)

// rpcTimeout bounds individual RPC calls
const rpcTimeout = 5 * time.Second

// Checker implements the BlockchainChecker interface using ethclient
type Checker struct {
	client  *ethclient.Client
	chainID uint64
	log     *slog.Logger
}

// NewChecker creates a new blockchain checker
func NewChecker(log *slog.Logger) *Checker {
	return &Checker{log: log}
}

// Connect establishes connection to the blockchain
func (c *Checker) Connect(ctx context.Context, rpcURL string, chainID uint64) error {
	if c.client != nil {
		return nil
	}

	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}
	c.client = client

	networkChainID, err := c.client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %w", err)
	}

	// A zero expected chain ID means "take whatever the node reports"
	if chainID == 0 {
		c.chainID = networkChainID.Uint64()
	} else if networkChainID.Uint64() != chainID {
		return fmt.Errorf("chain ID mismatch: expected %d, got %d", chainID, networkChainID.Uint64())
	} else {
		c.chainID = chainID
	}

	c.log.Debug("connected", "chainId", c.chainID)
	return nil
}

// IsDeployed checks if contract code exists at the given address
func (c *Checker) IsDeployed(ctx context.Context, address common.Address) (bool, string, error) {
	if c.client == nil {
		return false, "", fmt.Errorf("not connected to blockchain")
	}

	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	code, err := c.client.CodeAt(ctx, address, nil)
	if err != nil {
		return false, "", fmt.Errorf("failed to check code at %s: %w", address.Hex(), err)
	}

	if len(code) == 0 {
		return false, "no code at address", nil
	}

	return true, "", nil
}

// ChainID returns the chain ID learned during Connect
func (c *Checker) ChainID() uint64 {
	return c.chainID
}

// Close releases the underlying RPC connection
func (c *Checker) Close() {
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
}

// Ensure the adapter implements the interface
var _ usecase.BlockchainChecker = (*Checker)(nil)
