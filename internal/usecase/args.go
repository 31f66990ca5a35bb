package usecase

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/trebuchet-org/crater/pkg/create2"
)

// ConvertArgs turns command-line strings into the Go values the ABI
// encoder expects for the given constructor inputs.
func ConvertArgs(inputs abi.Arguments, raw []string) ([]interface{}, error) {
	if len(raw) != len(inputs) {
		return nil, fmt.Errorf("constructor takes %d argument(s), got %d", len(inputs), len(raw))
	}

	args := make([]interface{}, len(raw))
	for i, input := range inputs {
		value, err := coerceArg(input.Type, raw[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s %s): %w", i, input.Type.String(), input.Name, err)
		}
		args[i] = value
	}
	return args, nil
}

// coerceArg converts one string to the Go representation go-ethereum's
// abi package requires for the Solidity type.
func coerceArg(t abi.Type, raw string) (interface{}, error) {
	switch t.T {
	case abi.AddressTy:
		return create2.ParseDeployer(raw)

	case abi.UintTy:
		n, ok := new(big.Int).SetString(raw, 0)
		if !ok {
			return nil, fmt.Errorf("cannot parse %q as an integer", raw)
		}
		if n.Sign() < 0 || n.BitLen() > t.Size {
			return nil, fmt.Errorf("%s out of range for uint%d", raw, t.Size)
		}
		// The encoder wants the exact Go kind for small widths
		switch t.Size {
		case 8:
			return uint8(n.Uint64()), nil
		case 16:
			return uint16(n.Uint64()), nil
		case 32:
			return uint32(n.Uint64()), nil
		case 64:
			return n.Uint64(), nil
		default:
			return n, nil
		}

	case abi.IntTy:
		n, ok := new(big.Int).SetString(raw, 0)
		if !ok {
			return nil, fmt.Errorf("cannot parse %q as an integer", raw)
		}
		switch t.Size {
		case 8:
			return int8(n.Int64()), nil
		case 16:
			return int16(n.Int64()), nil
		case 32:
			return int32(n.Int64()), nil
		case 64:
			return n.Int64(), nil
		default:
			return n, nil
		}

	case abi.BoolTy:
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as a bool", raw)
		}
		return value, nil

	case abi.StringTy:
		return raw, nil

	case abi.BytesTy:
		return create2.ParseHexBytes(raw)

	case abi.FixedBytesTy:
		data, err := create2.ParseHexBytes(raw)
		if err != nil {
			return nil, err
		}
		if len(data) != t.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", t.Size, len(data))
		}
		if t.Size == 32 {
			var fixed [32]byte
			copy(fixed[:], data)
			return fixed, nil
		}
		return nil, fmt.Errorf("bytes%d constructor args are not supported", t.Size)

	default:
		return nil, fmt.Errorf("unsupported constructor arg type %s", t.String())
	}
}
