package common

import (
	"strings"
	"testing"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortStringRoundtrip(t *testing.T) {
	f, err := ShortStringToFelt("SN_SEPOLIA")
	require.NoError(t, err)

	back, err := FeltToShortString(f)
	require.NoError(t, err)
	assert.Equal(t, "SN_SEPOLIA", back)
}

func TestShortStringLimits(t *testing.T) {
	longest := strings.Repeat("a", 31)
	_, err := ShortStringToFelt(longest)
	assert.NoError(t, err)

	_, err = ShortStringToFelt(longest + "a")
	assert.Error(t, err)

	_, err = ShortStringToFelt("héllo")
	assert.Error(t, err)
}

func TestFeltToShortStringRejectsBinary(t *testing.T) {
	// 0x7b00ff contains a zero byte and a non-ASCII byte.
	f := new(felt.Felt).SetUint64(0x7b00ff)
	_, err := FeltToShortString(f)
	assert.Error(t, err)
}
