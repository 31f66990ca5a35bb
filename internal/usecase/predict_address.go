package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/trebuchet-org/crater/internal/domain/config"
	"github.com/trebuchet-org/crater/pkg/create2"
)

// PredictAddressParams contains parameters for predicting a deployment address
type PredictAddressParams struct {
	Artifact      string   // Contract name, resolved against the Foundry out/ directory
	InitCodeHex   string   // Raw init code hex, alternative to Artifact
	Deployer      string   // CREATE2 deployer (factory) address; falls back to profile config
	Salt          string   // Salt, decimal or 0x-hex
	CtorArgs      []string // Constructor arguments, encoded per the artifact ABI
	CheckDeployed bool     // Also query the configured network for existing code
}

// PredictAddressResult contains the derived address and its inputs
type PredictAddressResult struct {
	ContractName string
	Deployer     common.Address
	Salt         *big.Int
	SaltBytes    [32]byte
	InitCodeHash common.Hash
	Address      common.Address

	// Deployed is nil unless an on-chain check was requested
	Deployed *bool
	Network  *config.Network
}

// PredictAddress is the use case for computing a CREATE2 deployment
// address before any transaction is sent.
type PredictAddress struct {
	config    *config.RuntimeConfig
	artifacts ArtifactRepository
	checker   BlockchainChecker
	progress  ProgressSink
	log       *slog.Logger
}

// NewPredictAddress creates a new PredictAddress use case
func NewPredictAddress(
	cfg *config.RuntimeConfig,
	artifacts ArtifactRepository,
	checker BlockchainChecker,
	progress ProgressSink,
	log *slog.Logger,
) *PredictAddress {
	return &PredictAddress{
		config:    cfg,
		artifacts: artifacts,
		checker:   checker,
		progress:  progress,
		log:       log,
	}
}

// Run executes the predict address use case
func (uc *PredictAddress) Run(ctx context.Context, params PredictAddressParams) (*PredictAddressResult, error) {
	deployer, err := uc.resolveDeployer(params)
	if err != nil {
		return nil, err
	}

	salt, err := create2.ParseSalt(params.Salt)
	if err != nil {
		return nil, err
	}

	contractName, initCode, err := uc.resolveInitCode(ctx, params)
	if err != nil {
		return nil, err
	}

	address, err := create2.DeriveAddress(deployer, salt, initCode)
	if err != nil {
		return nil, err
	}

	saltBytes, err := create2.SaltBytes(salt)
	if err != nil {
		return nil, err
	}

	uc.log.Debug("derived address",
		"deployer", deployer,
		"salt", salt,
		"initCodeLen", len(initCode),
		"address", address,
	)

	result := &PredictAddressResult{
		ContractName: contractName,
		Deployer:     deployer,
		Salt:         salt,
		SaltBytes:    saltBytes,
		InitCodeHash: create2.InitCodeHash(initCode),
		Address:      address,
	}

	if params.CheckDeployed {
		deployed, err := uc.checkDeployed(ctx, address)
		if err != nil {
			return nil, err
		}
		result.Deployed = &deployed
		result.Network = uc.config.Network
	}

	return result, nil
}

// resolveDeployer picks the deployer from params or the profile config.
func (uc *PredictAddress) resolveDeployer(params PredictAddressParams) (common.Address, error) {
	raw := params.Deployer
	if raw == "" {
		raw = uc.config.DefaultDeployer()
	}
	if raw == "" {
		return common.Address{}, fmt.Errorf("no deployer address: pass --deployer or set [profile.%s.crater] deployer in foundry.toml", uc.config.Profile)
	}
	return create2.ParseDeployer(raw)
}

// resolveInitCode builds the init code either from raw hex or from a
// compiled artifact plus constructor arguments.
func (uc *PredictAddress) resolveInitCode(ctx context.Context, params PredictAddressParams) (string, []byte, error) {
	switch {
	case params.InitCodeHex != "" && params.Artifact != "":
		return "", nil, fmt.Errorf("pass either a contract name or --init-code, not both")

	case params.InitCodeHex != "":
		if len(params.CtorArgs) > 0 {
			return "", nil, fmt.Errorf("constructor args require a contract artifact; raw --init-code is used as-is")
		}
		initCode, err := create2.ParseHexBytes(params.InitCodeHex)
		if err != nil {
			return "", nil, err
		}
		return "", initCode, nil

	case params.Artifact != "":
		artifact, err := uc.artifacts.Load(ctx, params.Artifact)
		if err != nil {
			return "", nil, err
		}

		args, err := ConvertArgs(artifact.ABI.Constructor.Inputs, params.CtorArgs)
		if err != nil {
			return "", nil, fmt.Errorf("bad constructor args for %s: %w", artifact.ContractName, err)
		}

		initCode, err := create2.BuildInitCode(artifact.Bytecode, &artifact.ABI, args...)
		if err != nil {
			return "", nil, err
		}
		return artifact.ContractName, initCode, nil

	default:
		return "", nil, fmt.Errorf("nothing to derive from: pass a contract name or --init-code")
	}
}

func (uc *PredictAddress) checkDeployed(ctx context.Context, address common.Address) (bool, error) {
	if uc.config.Network == nil {
		return false, fmt.Errorf("on-chain check requires a network; pass --network")
	}

	uc.progress.Start(fmt.Sprintf("Checking %s on %s", create2.AddressHex(address), uc.config.Network.Name))
	defer uc.progress.Stop()

	if err := uc.checker.Connect(ctx, uc.config.Network.RPCURL, uc.config.Network.ChainID); err != nil {
		return false, fmt.Errorf("failed to connect to %s: %w", uc.config.Network.Name, err)
	}

	deployed, reason, err := uc.checker.IsDeployed(ctx, address)
	if err != nil {
		return false, err
	}
	if !deployed && reason != "" {
		uc.log.Debug("not deployed", "address", address, "reason", reason)
	}
	return deployed, nil
}
