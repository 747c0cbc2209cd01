package networks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starkctl/starkctl/common"
)

func TestGetNetworkByNameAndAlias(t *testing.T) {
	byName, err := GetNetwork("sepolia")
	require.NoError(t, err)
	byAlias, err := GetNetwork("sepolia-testnet")
	require.NoError(t, err)
	assert.Equal(t, byName, byAlias)

	spaced, err := GetNetwork("  Mainnet ")
	require.NoError(t, err)
	assert.Equal(t, "mainnet", spaced.GetName())

	_, err = GetNetwork("ropsten")
	assert.Error(t, err)
}

func TestChainIDsAreShortStrings(t *testing.T) {
	expected := map[string]string{
		"mainnet":             "SN_MAIN",
		"sepolia":             "SN_SEPOLIA",
		"sepolia-integration": "SN_INTEGRATION_SEPOLIA",
		"katana":              "KATANA",
	}
	for _, network := range SupportedNetworks {
		text, err := common.FeltToShortString(network.GetChainID())
		require.NoError(t, err, network.GetName())
		assert.Equal(t, expected[network.GetName()], text)
	}
}

func TestEveryNetworkHasNodeConfig(t *testing.T) {
	seen := map[string]bool{}
	for _, network := range SupportedNetworks {
		assert.NotEmpty(t, network.GetNodeVariableName())
		assert.False(t, seen[network.GetNodeVariableName()],
			"node variable %s reused", network.GetNodeVariableName())
		seen[network.GetNodeVariableName()] = true
		assert.NotEmpty(t, network.GetDefaultNodes(), network.GetName())
	}
}

func TestCurrentNetworkFallsBackToSepolia(t *testing.T) {
	SetNetwork("no-such-network")
	assert.Equal(t, "sepolia", CurrentNetwork().GetName())

	SetNetwork("katana")
	assert.Equal(t, "katana", CurrentNetwork().GetName())
}
