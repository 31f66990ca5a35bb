package config

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/trebuchet-org/crater/internal/domain/config"
)

// ResolveNetwork resolves a network name against the [rpc_endpoints]
// section of foundry.toml. The chain ID is left at zero here; it is
// verified against the node when a connection is actually made.
func ResolveNetwork(foundryConfig *config.FoundryConfig, networkName string) (*config.Network, error) {
	rpcURL, exists := foundryConfig.RpcEndpoints[networkName]
	if !exists {
		available := NetworkNames(foundryConfig)
		if len(available) == 0 {
			return nil, fmt.Errorf("network '%s' not found: foundry.toml has no [rpc_endpoints]", networkName)
		}
		return nil, fmt.Errorf("network '%s' not found in foundry.toml [rpc_endpoints] (available: %v)", networkName, available)
	}
	if rpcURL == "" {
		return nil, fmt.Errorf("network '%s' has an empty RPC URL; is %s set?", networkName, GenerateEnvVarName(networkName))
	}

	network := &config.Network{
		Name:   networkName,
		RPCURL: rpcURL,
	}

	if etherscan, ok := foundryConfig.Etherscan[networkName]; ok {
		network.ExplorerURL = etherscan.URL
	}

	return network, nil
}

// NetworkNames returns the network names from [rpc_endpoints], sorted.
func NetworkNames(foundryConfig *config.FoundryConfig) []string {
	names := lo.Keys(foundryConfig.RpcEndpoints)
	sort.Strings(names)
	return names
}
