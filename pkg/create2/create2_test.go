package create2

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Published EIP-1014 example vectors.
func TestDeriveAddressHexKnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		deployer string
		salt     string
		initCode string
		want     string
	}{
		{
			name:     "zero deployer zero salt",
			deployer: "0x0000000000000000000000000000000000000000",
			salt:     "0x0000000000000000000000000000000000000000000000000000000000000000",
			initCode: "0x00",
			want:     "0x4d1a2e2bb4f88f0250f26ffff098b0b30b26bf38",
		},
		{
			name:     "deadbeef deployer",
			deployer: "0xdeadbeef00000000000000000000000000000000",
			salt:     "0x0000000000000000000000000000000000000000000000000000000000000000",
			initCode: "0x00",
			want:     "0xb928f69bb1d91cd65274e3c79d8986362984fda3",
		},
		{
			name:     "high bytes in salt",
			deployer: "0xdeadbeef00000000000000000000000000000000",
			salt:     "0x000000000000000000000000feed000000000000000000000000000000000000",
			initCode: "0x00",
			want:     "0xd04116cdd17bebe565eb2422f2497e06cc1c9833",
		},
		{
			name:     "non-trivial init code",
			deployer: "0x0000000000000000000000000000000000000000",
			salt:     "0x0000000000000000000000000000000000000000000000000000000000000000",
			initCode: "0xdeadbeef",
			want:     "0x70f2b2914a2a4b783faefb75f459a580616fcb5e",
		},
		{
			name:     "cafebabe salt",
			deployer: "0x00000000000000000000000000000000deadbeef",
			salt:     "0x00000000000000000000000000000000000000000000000000000000cafebabe",
			initCode: "0xdeadbeef",
			want:     "0x60f3f640a8508fc6a86d45df051962668e1e8ac7",
		},
		{
			name:     "empty init code",
			deployer: "0x0000000000000000000000000000000000000000",
			salt:     "0x0000000000000000000000000000000000000000000000000000000000000000",
			initCode: "0x",
			want:     "0xe33c0c7f7df4809055c3eba6c09cfe4baf1bd9e0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salt, err := ParseSalt(tt.salt)
			require.NoError(t, err)

			initCode, err := ParseHexBytes(tt.initCode)
			require.NoError(t, err)

			got, err := DeriveAddressHex(tt.deployer, salt, initCode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The derivation must agree with go-ethereum's own CREATE2 address
// computation for arbitrary inputs.
func TestDeriveAddressMatchesGeth(t *testing.T) {
	deployer := common.HexToAddress("0x262d41499c802decd532fd65d991e477a068e132")
	initCode := []byte{0x60, 0x80, 0x60, 0x40, 0x52, 0xde, 0xad, 0xbe, 0xef}

	for _, salt := range []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(1 << 40),
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)),
	} {
		saltBytes, err := SaltBytes(salt)
		require.NoError(t, err)

		want := crypto.CreateAddress2(deployer, saltBytes, crypto.Keccak256(initCode))

		got, err := DeriveAddress(deployer, salt, initCode)
		require.NoError(t, err)
		assert.Equal(t, want, got, "salt %s", salt)
	}
}

func TestDeriveAddressDeterministic(t *testing.T) {
	deployer := common.HexToAddress("0xdeadbeef00000000000000000000000000000000")
	salt := big.NewInt(42)
	initCode := []byte{0x60, 0x80, 0x60, 0x40}

	first, err := DeriveAddress(deployer, salt, initCode)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := DeriveAddress(deployer, salt, initCode)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDeriveAddressSensitivity(t *testing.T) {
	deployer := common.HexToAddress("0xdeadbeef00000000000000000000000000000000")
	salt := big.NewInt(7)
	initCode := []byte{0x60, 0x80, 0x60, 0x40}

	base, err := DeriveAddress(deployer, salt, initCode)
	require.NoError(t, err)

	t.Run("init code byte flipped", func(t *testing.T) {
		flipped := append([]byte{}, initCode...)
		flipped[0] ^= 0x01
		got, err := DeriveAddress(deployer, salt, flipped)
		require.NoError(t, err)
		assert.NotEqual(t, base, got)
	})

	t.Run("different salt", func(t *testing.T) {
		got, err := DeriveAddress(deployer, big.NewInt(8), initCode)
		require.NoError(t, err)
		assert.NotEqual(t, base, got)
	})

	t.Run("different deployer", func(t *testing.T) {
		other := common.HexToAddress("0xdeadbeef00000000000000000000000000000001")
		got, err := DeriveAddress(other, salt, initCode)
		require.NoError(t, err)
		assert.NotEqual(t, base, got)
	})
}

func TestDeriveAddressEmptyInitCode(t *testing.T) {
	deployer := common.HexToAddress("0x262d41499c802decd532fd65d991e477a068e132")

	got, err := DeriveAddressHex(AddressHex(deployer), big.NewInt(0), nil)
	require.NoError(t, err)
	assert.Len(t, got, 42)
	assert.Regexp(t, `^0x[0-9a-f]{40}$`, got)
}

func TestParseDeployerRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "too short", input: "0x262d41499c802decd532fd65d991e477a068e1"},
		{name: "too long", input: "0x262d41499c802decd532fd65d991e477a068e13200"},
		{name: "non-hex chars", input: "0x262d41499c802decd532fd65d991e477a068ezzz"},
		{name: "empty", input: ""},
		{name: "bare prefix", input: "0x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDeployer(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}

func TestParseDeployerAcceptsUnprefixed(t *testing.T) {
	got, err := ParseDeployer("262d41499c802decd532fd65d991e477a068e132")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x262d41499c802decd532fd65d991e477a068e132"), got)
}

func TestInitCodeHashEmpty(t *testing.T) {
	// keccak256 of the empty byte sequence
	want := common.HexToHash("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	assert.Equal(t, want, InitCodeHash(nil))
	assert.Equal(t, want, InitCodeHash([]byte{}))
}
