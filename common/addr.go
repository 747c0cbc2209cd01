package common

import (
	"math/big"

	"github.com/NethermindEth/juno/core/crypto"
	"github.com/NethermindEth/juno/core/felt"
)

// contractAddressPrefix is the Cairo short string "STARKNET_CONTRACT_ADDRESS",
// the domain separator of the canonical address derivation scheme.
var contractAddressPrefix = new(felt.Felt).SetBytes([]byte("STARKNET_CONTRACT_ADDRESS"))

// addrBound is 2^251 - 256. Computed addresses are reduced into this range so
// they never collide with the reserved system address space.
var addrBound = new(big.Int).Sub(
	new(big.Int).Lsh(big.NewInt(1), 251),
	big.NewInt(256),
)

// ContractAddress computes the deterministic address a contract receives when
// deployed with the given salt, class hash and constructor calldata by the
// given deployer. Self deployments (DEPLOY_ACCOUNT) use the zero deployer.
//
// The derivation itself is the network's standard pedersen chain; this is a
// thin composition over the hash primitive, not a scheme of our own.
func ContractAddress(salt, classHash *felt.Felt, calldata []*felt.Felt, deployer *felt.Felt) *felt.Felt {
	raw := crypto.PedersenArray(
		contractAddressPrefix,
		deployer,
		salt,
		classHash,
		crypto.PedersenArray(calldata...),
	)

	bi := raw.BigInt(new(big.Int))
	bi.Mod(bi, addrBound)
	return new(felt.Felt).SetBigInt(bi)
}

// Selector computes the entry point selector for a function name
// (starknet_keccak of the name).
func Selector(name string) *felt.Felt {
	return crypto.StarknetKeccak([]byte(name))
}
