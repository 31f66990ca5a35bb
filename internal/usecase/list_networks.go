package usecase

import (
	"context"

	"github.com/samber/lo"

	"github.com/trebuchet-org/crater/internal/config"
	domainconfig "github.com/trebuchet-org/crater/internal/domain/config"
)

// NetworkInfo describes one entry from [rpc_endpoints]
type NetworkInfo struct {
	Name     string
	RPCURL   string
	Explorer string
}

// ListNetworksResult contains the configured networks
type ListNetworksResult struct {
	Networks []NetworkInfo
}

// ListNetworks is the use case for listing networks from foundry.toml
type ListNetworks struct {
	config *domainconfig.RuntimeConfig
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *domainconfig.RuntimeConfig) *ListNetworks {
	return &ListNetworks{config: cfg}
}

// Run executes the list networks use case
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	foundry := uc.config.FoundryConfig

	networks := lo.Map(config.NetworkNames(foundry), func(name string, _ int) NetworkInfo {
		info := NetworkInfo{
			Name:   name,
			RPCURL: foundry.RpcEndpoints[name],
		}
		if etherscan, ok := foundry.Etherscan[name]; ok {
			info.Explorer = etherscan.URL
		}
		return info
	})

	return &ListNetworksResult{Networks: networks}, nil
}
