package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/trebuchet-org/crater/internal/domain/config"
)

// rawFoundryTOML mirrors the raw foundry.toml structure before profile
// values are normalized.
type rawFoundryTOML struct {
	RpcEndpoints map[string]string            `toml:"rpc_endpoints"`
	Etherscan    map[string]map[string]string `toml:"etherscan"`
	Profile      map[string]profileTOML       `toml:"profile"`
}

type profileTOML struct {
	Src    string               `toml:"src"`
	Out    string               `toml:"out"`
	Libs   []string             `toml:"libs"`
	Script string               `toml:"script"`
	Crater *config.CraterConfig `toml:"crater"`
}

// loadFoundryConfig loads and parses foundry.toml, expanding ${VAR}
// references from the environment (after loading .env files).
func loadFoundryConfig(projectRoot string) (*config.FoundryConfig, error) {
	// Load .env files first so env var expansion sees them
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	var raw rawFoundryTOML

	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	cfg := &config.FoundryConfig{
		RpcEndpoints: make(map[string]string),
		Etherscan:    make(map[string]config.EtherscanConfig),
		Profile:      make(map[string]config.ProfileConfig),
	}

	for name, url := range raw.RpcEndpoints {
		cfg.RpcEndpoints[name] = os.ExpandEnv(url)
	}

	for network, ethConfig := range raw.Etherscan {
		ec := config.EtherscanConfig{}
		if url, ok := ethConfig["url"]; ok {
			ec.URL = os.ExpandEnv(url)
		}
		if key, ok := ethConfig["key"]; ok {
			ec.Key = os.ExpandEnv(key)
		}
		cfg.Etherscan[network] = ec
	}

	for name, profile := range raw.Profile {
		cfg.Profile[name] = config.ProfileConfig{
			SrcPath:    profile.Src,
			OutPath:    profile.Out,
			LibPaths:   profile.Libs,
			ScriptPath: profile.Script,
			Crater:     profile.Crater,
		}
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find foundry.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		foundryToml := filepath.Join(dir, "foundry.toml")
		if _, err := os.Stat(foundryToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Foundry project (foundry.toml not found)")
		}
		dir = parent
	}
}
