package hdpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const starknetPath = "m/2645'/1195502025'/1148870696'/0'/0'/0"

func TestParseNumericPath(t *testing.T) {
	p, err := Parse(starknetPath)
	require.NoError(t, err)

	assert.Equal(t, uint32(1195502025|hardenedBit), p.Layer.Value())
	assert.Equal(t, uint32(1148870696|hardenedBit), p.Application.Value())
	assert.True(t, p.EthAddress1.Hardened())
	assert.True(t, p.EthAddress2.Hardened())
	assert.False(t, p.Index.Hardened())
	assert.Equal(t, uint32(0), p.Index.Value())

	assert.Equal(t, starknetPath, p.String())
	assert.Empty(t, p.Warnings())
}

func TestParseShorthandPurpose(t *testing.T) {
	full, err := Parse(starknetPath)
	require.NoError(t, err)
	short, err := Parse("m//1195502025'/1148870696'/0'/0'/0")
	require.NoError(t, err)
	assert.Equal(t, full.DerivationPath(), short.DerivationPath())
}

func TestParseHashLevels(t *testing.T) {
	p, err := Parse("m/2645'/starknet'/starkctl'/0'/0'/0")
	require.NoError(t, err)

	// Hash-based levels take their value from SHA-256, always with the top
	// bit used for hardening only.
	assert.True(t, p.Layer.Hardened())
	assert.True(t, p.Application.Hardened())
	assert.NotEqual(t, p.Layer.Value(), p.Application.Value())
	assert.NotZero(t, p.Layer.Value()&(hardenedBit-1))
}

func TestParseRejections(t *testing.T) {
	cases := map[string]string{
		"too few levels":      "m/2645'/1'/2'/0'/0",
		"too many levels":     "m/2645'/1'/2'/0'/0'/0/0",
		"missing m":           "2645'/1'/2'/0'/0'/0",
		"wrong purpose":       "m/44'/1'/2'/0'/0'/0",
		"soft layer":          "m/2645'/1/2'/0'/0'/0",
		"soft application":    "m/2645'/1'/2/0'/0'/0",
		"soft eth_address_1":  "m/2645'/1'/2'/0/0'/0",
		"soft eth_address_2":  "m/2645'/1'/2'/0'/0/0",
		"text index":          "m/2645'/1'/2'/0'/0'/wallet",
		"empty level":         "m/2645'/1'/2'//0'/0",
		"whitespace in level": "m/2645'/1 '/2'/0'/0'/0",
		"double hardened":     "m/2645'/2147483649'/2'/0'/0'/0",
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(path)
			assert.Error(t, err, "path %q", path)
		})
	}
}

func TestWarnings(t *testing.T) {
	hardIndex, err := Parse("m/2645'/1'/2'/0'/0'/0'")
	require.NoError(t, err)
	assert.NotEmpty(t, hardIndex.Warnings())

	bigIndex, err := Parse("m/2645'/1'/2'/0'/0'/5000")
	require.NoError(t, err)
	assert.NotEmpty(t, bigIndex.Warnings())

	oddEth1, err := Parse("m/2645'/1'/2'/7'/0'/0")
	require.NoError(t, err)
	assert.NotEmpty(t, oddEth1.Warnings())
}

func TestDerivationPath(t *testing.T) {
	p, err := Parse(starknetPath)
	require.NoError(t, err)
	dp := p.DerivationPath()
	require.Len(t, dp, 6)
	assert.Equal(t, uint32(purpose), dp[0])
	assert.Equal(t, uint32(2645|hardenedBit), dp[0])
}
