// Package create2 computes deterministic CREATE2 deployment addresses
// off-chain, without talking to a node.
//
// The derivation is the standard EIP-1014 formula:
//
//	address = keccak256(0xff ++ deployer ++ salt ++ keccak256(initCode))[12:]
//
// where salt is the caller-chosen 256-bit value serialized big-endian
// into 32 bytes, and initCode is the contract creation bytecode followed
// by the ABI-encoded constructor arguments.
package create2

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// ErrInvalidAddress indicates a deployer address that is not 20 bytes
	// of valid hex.
	ErrInvalidAddress = errors.New("invalid deployer address")

	// ErrInvalidSalt indicates a salt outside the unsigned 256-bit range.
	ErrInvalidSalt = errors.New("salt out of 256-bit range")
)

// DeriveAddress computes the CREATE2 deployment address for the given
// deployer, salt and init code. initCode may be empty; an empty blob is
// a valid (if useless) contract creation payload and hashes normally.
//
// The function is pure: no I/O, no state, safe for concurrent use.
func DeriveAddress(deployer common.Address, salt *big.Int, initCode []byte) (common.Address, error) {
	saltBytes, err := SaltBytes(salt)
	if err != nil {
		return common.Address{}, err
	}

	codeHash := InitCodeHash(initCode)

	// 0xff ++ deployer(20) ++ salt(32) ++ keccak256(initCode)(32)
	buf := make([]byte, 0, 85)
	buf = append(buf, 0xff)
	buf = append(buf, deployer.Bytes()...)
	buf = append(buf, saltBytes[:]...)
	buf = append(buf, codeHash.Bytes()...)

	digest := crypto.Keccak256(buf)
	return common.BytesToAddress(digest[12:]), nil
}

// DeriveAddressHex is the string form of DeriveAddress. The deployer is
// validated strictly (exactly 20 hex bytes, optional 0x prefix) and the
// result is returned in the canonical lowercase 0x-prefixed form.
func DeriveAddressHex(deployer string, salt *big.Int, initCode []byte) (string, error) {
	addr, err := ParseDeployer(deployer)
	if err != nil {
		return "", err
	}

	derived, err := DeriveAddress(addr, salt, initCode)
	if err != nil {
		return "", err
	}

	return AddressHex(derived), nil
}

// ParseDeployer decodes a deployer address from its hex representation.
// Unlike common.HexToAddress, which silently truncates or pads, this
// rejects anything that is not exactly 20 bytes of hex with
// ErrInvalidAddress.
func ParseDeployer(s string) (common.Address, error) {
	trimmed := strings.TrimPrefix(s, "0x")
	if len(trimmed) != common.AddressLength*2 {
		return common.Address{}, fmt.Errorf("%w: expected %d hex chars, got %d", ErrInvalidAddress, common.AddressLength*2, len(trimmed))
	}

	bytes, err := hexDecode(trimmed)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %s", ErrInvalidAddress, s)
	}

	return common.BytesToAddress(bytes), nil
}

// InitCodeHash returns the Keccak-256 hash of the init code. The empty
// blob is valid input and yields the hash of the empty byte sequence.
func InitCodeHash(initCode []byte) common.Hash {
	return crypto.Keccak256Hash(initCode)
}

// AddressHex formats an address in the canonical lowercase form used
// throughout the derivation: 0x followed by 40 lowercase hex chars.
func AddressHex(addr common.Address) string {
	return "0x" + common.Bytes2Hex(addr.Bytes())
}
