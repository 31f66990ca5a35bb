package usecase

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constructorInputs(t *testing.T, abiJSON string) abi.Arguments {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	require.NoError(t, err)
	return parsed.Constructor.Inputs
}

func TestConvertArgs(t *testing.T) {
	inputs := constructorInputs(t, `[{"inputs":[
		{"name":"owner","type":"address"},
		{"name":"cap","type":"uint256"},
		{"name":"decimals","type":"uint8"},
		{"name":"paused","type":"bool"},
		{"name":"label","type":"string"},
		{"name":"root","type":"bytes32"}
	],"stateMutability":"nonpayable","type":"constructor"}]`)

	args, err := ConvertArgs(inputs, []string{
		"0x262d41499c802decd532fd65d991e477a068e132",
		"1000000",
		"18",
		"true",
		"hello",
		"0x" + strings.Repeat("ab", 32),
	})
	require.NoError(t, err)
	require.Len(t, args, 6)

	assert.Equal(t, common.HexToAddress("0x262d41499c802decd532fd65d991e477a068e132"), args[0])
	assert.Equal(t, big.NewInt(1000000), args[1])
	assert.Equal(t, uint8(18), args[2])
	assert.Equal(t, true, args[3])
	assert.Equal(t, "hello", args[4])

	root, ok := args[5].([32]byte)
	require.True(t, ok)
	assert.Equal(t, byte(0xab), root[0])
}

func TestConvertArgsHexIntegers(t *testing.T) {
	inputs := constructorInputs(t, `[{"inputs":[{"name":"cap","type":"uint256"}],"stateMutability":"nonpayable","type":"constructor"}]`)

	args, err := ConvertArgs(inputs, []string{"0xff"})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(255), args[0])
}

func TestConvertArgsErrors(t *testing.T) {
	tests := []struct {
		name    string
		abiJSON string
		raw     []string
		errText string
	}{
		{
			name:    "wrong arity",
			abiJSON: `[{"inputs":[{"name":"owner","type":"address"}],"stateMutability":"nonpayable","type":"constructor"}]`,
			raw:     []string{},
			errText: "takes 1 argument",
		},
		{
			name:    "bad address",
			abiJSON: `[{"inputs":[{"name":"owner","type":"address"}],"stateMutability":"nonpayable","type":"constructor"}]`,
			raw:     []string{"0x1234"},
			errText: "owner",
		},
		{
			name:    "uint8 overflow",
			abiJSON: `[{"inputs":[{"name":"decimals","type":"uint8"}],"stateMutability":"nonpayable","type":"constructor"}]`,
			raw:     []string{"256"},
			errText: "out of range",
		},
		{
			name:    "negative uint",
			abiJSON: `[{"inputs":[{"name":"cap","type":"uint256"}],"stateMutability":"nonpayable","type":"constructor"}]`,
			raw:     []string{"-1"},
			errText: "out of range",
		},
		{
			name:    "bad bool",
			abiJSON: `[{"inputs":[{"name":"paused","type":"bool"}],"stateMutability":"nonpayable","type":"constructor"}]`,
			raw:     []string{"yep"},
			errText: "bool",
		},
		{
			name:    "bytes32 wrong length",
			abiJSON: `[{"inputs":[{"name":"root","type":"bytes32"}],"stateMutability":"nonpayable","type":"constructor"}]`,
			raw:     []string{"0xabcd"},
			errText: "expected 32 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := constructorInputs(t, tt.abiJSON)
			_, err := ConvertArgs(inputs, tt.raw)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}
