package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/trebuchet-org/crater/internal/domain/config"
)

// SetupViper configures a viper instance for the given project root.
// Settings resolve in order: explicit flags (bound by the CLI), CRATER_*
// environment variables, then defaults.
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("CRATER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("project_root", projectRoot)
	v.SetDefault("profile", "default")
	v.SetDefault("timeout", "30s")

	// Optional local overrides, not required to exist
	v.SetConfigName("crater")
	v.SetConfigType("toml")
	v.AddConfigPath(filepath.Join(projectRoot, ".crater"))
	_ = v.ReadInConfig()

	return v
}

// NewRuntimeConfig builds the resolved runtime configuration from viper.
// It loads foundry.toml when a project root is available; outside a
// Foundry project only the pure-derivation commands work.
func NewRuntimeConfig(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		Profile:        v.GetString("profile"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
	}

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		// Not being in a Foundry project is fine for offline derivation;
		// commands that need artifacts or networks check for themselves.
		cfg.FoundryConfig = &config.FoundryConfig{
			RpcEndpoints: map[string]string{},
			Etherscan:    map[string]config.EtherscanConfig{},
			Profile:      map[string]config.ProfileConfig{},
		}
	} else {
		cfg.FoundryConfig = foundryConfig
	}

	if profile, ok := cfg.FoundryConfig.Profile[cfg.Profile]; ok {
		cfg.CraterConfig = profile.Crater
	}

	if networkName := v.GetString("network"); networkName != "" {
		network, err := ResolveNetwork(cfg.FoundryConfig, networkName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
		}
		cfg.Network = network
	}

	return cfg, nil
}
