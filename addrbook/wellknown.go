package addrbook

// Well-known Starknet contract addresses, registered into every address book
// before user entries so names like "eth" resolve out of the box. User
// entries with the same name win.
var wellKnown = map[string]map[string]string{
	"mainnet": {
		"0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7": "eth (ETH token)",
		"0x04718f5a0fc34cc1af16a1cdee98ffb20c31f5cd61d6ab07201858f4287c938d": "strk (STRK token)",
		"0x053c91253bc9682c04929ca02ed00b3e423f6710d2ee7e0d5ebb06f3ecf368a8": "usdc (USDC token)",
	},
	"sepolia": {
		"0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7": "eth (ETH token)",
		"0x04718f5a0fc34cc1af16a1cdee98ffb20c31f5cd61d6ab07201858f4287c938d": "strk (STRK token)",
	},
	"sepolia-integration": {
		"0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7": "eth (ETH token)",
		"0x04718f5a0fc34cc1af16a1cdee98ffb20c31f5cd61d6ab07201858f4287c938d": "strk (STRK token)",
	},
	"katana": {
		"0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7": "eth (ETH token)",
	},
}

// WellKnownAddresses returns the builtin entries for a network as an
// address-to-name map.
func WellKnownAddresses(network string) map[string]string {
	result := map[string]string{}
	for addr, name := range wellKnown[network] {
		result[addr] = name
	}
	return result
}
