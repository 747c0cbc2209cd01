package accounts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundtripOz(t *testing.T) {
	cfg := undeployedOz(0xdef)
	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var back AccountConfig
	require.NoError(t, json.Unmarshal(data, &back))

	variant, ok := back.Variant.(*OzVariant)
	require.True(t, ok)
	assert.True(t, variant.PublicKey.Equal(feltOf(0xdef)))
	assert.False(t, variant.Legacy, "explicit legacy=false must survive the roundtrip")

	undeployed, ok := back.Deployment.(*Undeployed)
	require.True(t, ok)
	assert.True(t, undeployed.ClassHash.Equal(feltOf(0xabc)))
	assert.True(t, undeployed.Salt.Equal(feltOf(0x1)))
}

// Account files written before the legacy flag existed default to the legacy
// encoding.
func TestConfigOzLegacyDefaultsTrue(t *testing.T) {
	raw := `{
		"version": 1,
		"variant": {"type": "openzeppelin", "version": 1, "public_key": "0xdef"},
		"deployment": {"status": "undeployed", "class_hash": "0xabc", "salt": "0x1"}
	}`
	var cfg AccountConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))
	assert.True(t, cfg.Variant.(*OzVariant).Legacy)
	assert.Equal(t, EncodingLegacy, cfg.ExecutionEncoding())
}

func TestConfigRoundtripBraavos(t *testing.T) {
	cfg := braavosConfig(nil)
	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var back AccountConfig
	require.NoError(t, json.Unmarshal(data, &back))

	variant, ok := back.Variant.(*BraavosVariant)
	require.True(t, ok)
	assert.Equal(t, "off", variant.Multisig.Status)
	require.Len(t, variant.Signers, 1)
	assert.Equal(t, BraavosSignerStark, variant.Signers[0].Type)

	undeployed, ok := back.Deployment.(*Undeployed)
	require.True(t, ok)
	require.NotNil(t, undeployed.Context)
	assert.Equal(t, ContextBraavos, undeployed.Context.Type)
	assert.True(t, undeployed.Context.MockImplementation.Equal(feltOf(0x66)))
}

func TestConfigRoundtripDeployedArgent(t *testing.T) {
	cfg := &AccountConfig{
		Version: ConfigVersion,
		Variant: &ArgentVariant{
			Version: 1, Implementation: feltOf(0x11),
			Owner: feltOf(0x22), Guardian: feltOf(0x33),
		},
		Deployment: &Deployed{ClassHash: feltOf(0xabc), Address: feltOf(0x999)},
	}
	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var back AccountConfig
	require.NoError(t, json.Unmarshal(data, &back))
	deployed, ok := back.Deployment.(*Deployed)
	require.True(t, ok)
	assert.True(t, deployed.Address.Equal(feltOf(0x999)))
	assert.True(t, back.Variant.(*ArgentVariant).Implementation.Equal(feltOf(0x11)))
}

func TestConfigRejectsUnknownTags(t *testing.T) {
	var cfg AccountConfig
	err := json.Unmarshal([]byte(`{
		"version": 1,
		"variant": {"type": "metamask"},
		"deployment": {"status": "undeployed", "class_hash": "0x1", "salt": "0x1"}
	}`), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metamask")

	err = json.Unmarshal([]byte(`{
		"version": 1,
		"variant": {"type": "openzeppelin", "public_key": "0x1"},
		"deployment": {"status": "pending", "class_hash": "0x1"}
	}`), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pending")
}
