package common

import (
	"testing"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorKnownValue(t *testing.T) {
	// The canonical ERC-20 transfer selector.
	transfer, err := ParseFeltValue("0x0083afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e")
	require.NoError(t, err)
	assert.True(t, Selector("transfer").Equal(transfer))
}

func TestContractAddressDeterminism(t *testing.T) {
	salt := new(felt.Felt).SetUint64(1)
	classHash := new(felt.Felt).SetUint64(0xabc)
	publicKey := new(felt.Felt).SetUint64(0xdef)
	deployer := new(felt.Felt)

	a := ContractAddress(salt, classHash, []*felt.Felt{publicKey}, deployer)
	b := ContractAddress(salt, classHash, []*felt.Felt{publicKey}, deployer)
	assert.True(t, a.Equal(b), "identical inputs must derive identical addresses")

	otherSalt := ContractAddress(new(felt.Felt).SetUint64(2), classHash, []*felt.Felt{publicKey}, deployer)
	assert.False(t, a.Equal(otherSalt), "changing the salt must change the address")

	otherClass := ContractAddress(salt, new(felt.Felt).SetUint64(0xabd), []*felt.Felt{publicKey}, deployer)
	assert.False(t, a.Equal(otherClass), "changing the class hash must change the address")

	otherKey := ContractAddress(salt, classHash, []*felt.Felt{new(felt.Felt).SetUint64(0xdee)}, deployer)
	assert.False(t, a.Equal(otherKey), "changing the calldata must change the address")
}

func TestContractAddressWithinBound(t *testing.T) {
	// Addresses live below 2^251 - 256 regardless of the raw hash value.
	salt := new(felt.Felt).SetUint64(7)
	classHash := new(felt.Felt).SetUint64(11)
	addr := ContractAddress(salt, classHash, nil, new(felt.Felt))
	assert.Negative(t, FeltToBig(addr).Cmp(addrBound))
}
