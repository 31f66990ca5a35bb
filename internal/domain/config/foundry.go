package config

// FoundryConfig represents the parts of foundry.toml this tool reads
type FoundryConfig struct {
	Profile      map[string]ProfileConfig   `toml:"profile"`
	RpcEndpoints map[string]string          `toml:"rpc_endpoints"`
	Etherscan    map[string]EtherscanConfig `toml:"etherscan,omitempty"`
}

// EtherscanConfig represents explorer configuration for a network.
// This matches Foundry's expected structure.
type EtherscanConfig struct {
	Key string `toml:"key,omitempty"`
	URL string `toml:"url,omitempty"`
}

// ProfileConfig represents a profile's foundry configuration
type ProfileConfig struct {
	SrcPath    string        `toml:"src,omitempty"`
	OutPath    string        `toml:"out,omitempty"`
	LibPaths   []string      `toml:"libs,omitempty"`
	ScriptPath string        `toml:"script,omitempty"`
	Crater     *CraterConfig `toml:"crater,omitempty"`
}

// CraterConfig represents crater-specific configuration, nested under a
// foundry profile ([profile.default.crater]).
type CraterConfig struct {
	// Deployer is the factory address used as the CREATE2 deployer when
	// the command line does not supply one.
	Deployer string `toml:"deployer,omitempty"`
}
