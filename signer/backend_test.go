package signer

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrivateKey(t *testing.T) {
	withPrefix, err := ParsePrivateKey("0x1234")
	require.NoError(t, err)
	bare, err := ParsePrivateKey("1234")
	require.NoError(t, err)
	assert.Zero(t, withPrefix.Cmp(bare))
	assert.Zero(t, withPrefix.Cmp(big.NewInt(0x1234)))

	for _, bad := range []string{"", "0x", "nope", "0xgg", "-0x12", "0x0"} {
		_, err := ParsePrivateKey(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

// Keys wider than 32 bytes must come back as errors, never reach the byte
// packing in the keystore layer.
func TestParsePrivateKeyRejectsOversizedKeys(t *testing.T) {
	oversized := "0x1" + strings.Repeat("0", 64) // 65 nibbles, 257 bits
	_, err := ParsePrivateKey(oversized)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")

	// 64 nibbles is the widest accepted form.
	maximal, err := ParsePrivateKey("0x" + strings.Repeat("f", 64))
	require.NoError(t, err)
	assert.Equal(t, 256, maximal.BitLen())
}

func TestKeyBackendSignAndVerifyShape(t *testing.T) {
	priv, err := GenerateKey()
	require.NoError(t, err)

	backend := NewKeyBackend(priv)
	publicKey, err := backend.PublicKey(context.Background())
	require.NoError(t, err)
	assert.False(t, publicKey.IsZero())

	// PublicKeyOf and the backend must agree on the derived key.
	direct, err := PublicKeyOf(priv)
	require.NoError(t, err)
	assert.True(t, publicKey.Equal(direct))

	hash := new(felt.Felt).SetUint64(0xdeadbeef)
	signature, err := backend.SignHash(context.Background(), hash)
	require.NoError(t, err)
	assert.False(t, signature.R.IsZero())
	assert.False(t, signature.S.IsZero())
}
