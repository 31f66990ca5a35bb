package create2

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// BuildInitCode assembles contract init code: creation bytecode followed
// by the ABI-encoded constructor arguments. With no args (or a nil ABI)
// the bytecode is returned as-is.
func BuildInitCode(bytecode []byte, contractABI *abi.ABI, args ...interface{}) ([]byte, error) {
	if len(args) == 0 {
		return bytecode, nil
	}
	if contractABI == nil {
		return nil, fmt.Errorf("constructor args given but no ABI to encode them with")
	}

	// Pack with empty method name encodes constructor arguments.
	encoded, err := contractABI.Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode constructor args: %w", err)
	}

	initCode := make([]byte, 0, len(bytecode)+len(encoded))
	initCode = append(initCode, bytecode...)
	initCode = append(initCode, encoded...)
	return initCode, nil
}

// ParseHexBytes decodes a hex blob with an optional 0x prefix. The empty
// string (and bare "0x") decode to an empty, valid byte slice.
func ParseHexBytes(s string) ([]byte, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if trimmed == "" {
		return []byte{}, nil
	}

	bytes, err := hexDecode(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid hex data: %w", err)
	}
	return bytes, nil
}

func hexDecode(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
