package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/crater/internal/domain/config"
	"github.com/trebuchet-org/crater/pkg/create2"
)

func sepoliaConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		Profile: "default",
		Network: &config.Network{Name: "sepolia", RPCURL: "https://rpc.sepolia.org"},
	}
}

func TestCheckDeploymentDeployed(t *testing.T) {
	checker := &fakeChecker{deployed: true, chainID: 11155111}
	uc := NewCheckDeployment(sepoliaConfig(), checker, nopSink{}, testLogger())

	result, err := uc.Run(context.Background(), CheckDeploymentParams{
		Address: "0x262d41499c802decd532fd65d991e477a068e132",
	})
	require.NoError(t, err)
	assert.True(t, result.Deployed)
	assert.Equal(t, uint64(11155111), result.ChainID)
	assert.Equal(t, common.HexToAddress("0x262d41499c802decd532fd65d991e477a068e132"), result.Address)
}

func TestCheckDeploymentNotDeployed(t *testing.T) {
	checker := &fakeChecker{deployed: false, reason: "no code at address"}
	uc := NewCheckDeployment(sepoliaConfig(), checker, nopSink{}, testLogger())

	result, err := uc.Run(context.Background(), CheckDeploymentParams{
		Address: "0x262d41499c802decd532fd65d991e477a068e132",
	})
	require.NoError(t, err)
	assert.False(t, result.Deployed)
	assert.Equal(t, "no code at address", result.Reason)
}

func TestCheckDeploymentErrors(t *testing.T) {
	t.Run("malformed address", func(t *testing.T) {
		uc := NewCheckDeployment(sepoliaConfig(), &fakeChecker{}, nopSink{}, testLogger())
		_, err := uc.Run(context.Background(), CheckDeploymentParams{Address: "0xnothex"})
		require.Error(t, err)
		assert.ErrorIs(t, err, create2.ErrInvalidAddress)
	})

	t.Run("no network configured", func(t *testing.T) {
		uc := NewCheckDeployment(&config.RuntimeConfig{}, &fakeChecker{}, nopSink{}, testLogger())
		_, err := uc.Run(context.Background(), CheckDeploymentParams{Address: "0x262d41499c802decd532fd65d991e477a068e132"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "network")
	})

	t.Run("connect failure", func(t *testing.T) {
		checker := &fakeChecker{connectErr: fmt.Errorf("connection refused")}
		uc := NewCheckDeployment(sepoliaConfig(), checker, nopSink{}, testLogger())
		_, err := uc.Run(context.Background(), CheckDeploymentParams{Address: "0x262d41499c802decd532fd65d991e477a068e132"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect")
	})
}
