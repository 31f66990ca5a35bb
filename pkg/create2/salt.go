package create2

import (
	"fmt"
	"math/big"
	"strings"
)

// saltBits is the width of a CREATE2 salt.
const saltBits = 256

// SaltBytes serializes a salt as a big-endian 32-byte value, left-padded
// with zeros. Returns ErrInvalidSalt for nil, negative, or values that do
// not fit in 256 bits.
func SaltBytes(salt *big.Int) ([32]byte, error) {
	var out [32]byte

	if salt == nil {
		return out, fmt.Errorf("%w: nil", ErrInvalidSalt)
	}
	if salt.Sign() < 0 {
		return out, fmt.Errorf("%w: negative value", ErrInvalidSalt)
	}
	if salt.BitLen() > saltBits {
		return out, fmt.Errorf("%w: %d bits", ErrInvalidSalt, salt.BitLen())
	}

	salt.FillBytes(out[:])
	return out, nil
}

// ParseSalt parses a salt from its string form. Accepts decimal
// ("42") and 0x-prefixed hex ("0x2a") representations; both map to the
// same canonical 32-byte serialization.
func ParseSalt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidSalt)
	}

	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}

	salt, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("%w: cannot parse %q", ErrInvalidSalt, s)
	}

	// Range check happens again at serialization time; doing it here too
	// keeps the error close to the user input.
	if _, err := SaltBytes(salt); err != nil {
		return nil, err
	}

	return salt, nil
}
