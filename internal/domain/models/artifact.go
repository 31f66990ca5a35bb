package models

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Artifact is a compiled contract loaded from the Foundry out/ directory.
type Artifact struct {
	// ContractName is the artifact file stem, e.g. "Counter".
	ContractName string

	// Path is the artifact JSON file, relative to the project root.
	Path string

	// ABI is the parsed contract ABI.
	ABI abi.ABI

	// Bytecode is the raw creation bytecode (bytecode.object), without
	// constructor arguments.
	Bytecode []byte
}
