package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration.
// This is injected into use cases and contains all resolved settings.
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Context settings
	Profile string   // Maps to foundry profile
	Network *Network // nil if not specified

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Resolved configurations
	FoundryConfig *FoundryConfig
	CraterConfig  *CraterConfig // Profile-specific crater config
}

// Network represents network configuration
type Network struct {
	ChainID     uint64 `json:"chainId"`
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}

// OutDir returns the compiled-artifact directory for the active profile,
// defaulting to Foundry's conventional "out".
func (c *RuntimeConfig) OutDir() string {
	if c.FoundryConfig != nil {
		if profile, ok := c.FoundryConfig.Profile[c.profileName()]; ok && profile.OutPath != "" {
			return profile.OutPath
		}
	}
	return "out"
}

// DefaultDeployer returns the deployer address configured for the active
// profile, or "" when none is set.
func (c *RuntimeConfig) DefaultDeployer() string {
	if c.CraterConfig != nil {
		return c.CraterConfig.Deployer
	}
	return ""
}

func (c *RuntimeConfig) profileName() string {
	if c.Profile == "" {
		return "default"
	}
	return c.Profile
}
