package addrbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starkctl/starkctl/common"
)

func testBook(t *testing.T, entries map[string]string) *Book {
	t.Helper()
	book := &Book{network: "testnet", data: map[string]string{}}
	for addr, desc := range entries {
		require.NoError(t, book.register(addr, desc))
	}
	require.NoError(t, book.buildIndex())
	return book
}

func TestSearchAndResolve(t *testing.T) {
	book := testBook(t, map[string]string{
		"0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7": "eth (ETH token)",
		"0x04718f5a0fc34cc1af16a1cdee98ffb20c31f5cd61d6ab07201858f4287c938d": "strk (STRK token)",
	})

	results := book.Search("eth")
	require.NotEmpty(t, results)
	assert.Contains(t, results[0].Desc, "ETH")

	addr, err := book.Resolve("strk")
	require.NoError(t, err)
	assert.Equal(t,
		"0x4718f5a0fc34cc1af16a1cdee98ffb20c31f5cd61d6ab07201858f4287c938d",
		common.Hex(addr))
}

func TestResolveFeltLiteralBypassesBook(t *testing.T) {
	book := testBook(t, nil)
	addr, err := book.Resolve("0x1234")
	require.NoError(t, err)
	assert.Equal(t, "0x1234", common.Hex(addr))

	_, err = book.Resolve("unknown-name")
	assert.Error(t, err)
}

func TestGetName(t *testing.T) {
	book := testBook(t, map[string]string{
		"0xabc": "my contract",
	})
	addr, err := common.ParseFeltValue("0xabc")
	require.NoError(t, err)
	assert.Equal(t, "my contract", book.GetName(addr))

	other, err := common.ParseFeltValue("0xdef")
	require.NoError(t, err)
	assert.Equal(t, "unknown", book.GetName(other))
}

// Typos within one edit still find the entry through the fuzzy query.
func TestSearchTolerantOfTypos(t *testing.T) {
	book := testBook(t, map[string]string{
		"0x1": "usdc (USDC token)",
	})
	results := book.Search("usdd")
	require.NotEmpty(t, results)
	assert.Equal(t, "usdc (USDC token)", results[0].Desc)
}

func TestWellKnownAddressesPerNetwork(t *testing.T) {
	mainnet := WellKnownAddresses("mainnet")
	assert.NotEmpty(t, mainnet)
	katana := WellKnownAddresses("katana")
	assert.NotEmpty(t, katana)
	assert.Empty(t, WellKnownAddresses("no-such-network"))
}
