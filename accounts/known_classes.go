package accounts

import (
	"github.com/NethermindEth/juno/core/felt"

	"github.com/starkctl/starkctl/common"
)

// AccountClass describes a class hash this tool recognizes as a known wallet
// implementation. Used when fetching a deployed account from the network to
// decide which variant to reconstruct.
type AccountClass struct {
	ClassHash   *felt.Felt
	Variant     string
	Description string
}

// KnownAccountClasses is loaded once at startup and never mutated.
var KnownAccountClasses = []AccountClass{
	{
		ClassHash:   mustFelt("0x048dd59fabc729a5db3afdf649ecaf388e931647ab2f53ca3c6183fa480aa292"),
		Variant:     VariantOpenZeppelin,
		Description: "OpenZeppelin account contract v0.6.1 compiled with cairo-lang v0.11.0.2",
	},
	{
		ClassHash:   mustFelt("0x029927c8af6bccf3f6fda035981e765a7bdbf18a2dc0d630494f8758aa908e2b"),
		Variant:     VariantArgent,
		Description: "Argent X official proxy account",
	},
	{
		ClassHash:   mustFelt("0x03131fa018d520a037686ce3efddeab8f28895662f019ca3ca18a626650f7d1e"),
		Variant:     VariantBraavos,
		Description: "Braavos official proxy account",
	},
	{
		ClassHash:   mustFelt("0x02c2b8f559e1221468140ad7b2352b1a5be32660d0bf1a3ae3a054a4ec5254e4"),
		Variant:     VariantBraavos,
		Description: "Braavos official account implementation",
	},
	{
		ClassHash:   mustFelt("0x05aa23d5bb71ddaa783da7ea79d405315bafa7cf0387a74f4593578c3e9e6570"),
		Variant:     VariantBraavos,
		Description: "Braavos official account (mock implementation used during deployment)",
	},
}

// BraavosMockImplementation is the mock class Braavos proxies point at until
// their first transaction activates the real implementation. New Braavos
// account files embed it as deployment context.
var BraavosMockImplementation = mustFelt("0x05aa23d5bb71ddaa783da7ea79d405315bafa7cf0387a74f4593578c3e9e6570")

// Default class hashes for fresh account files.
var (
	DefaultOzClassHash      = mustFelt("0x048dd59fabc729a5db3afdf649ecaf388e931647ab2f53ca3c6183fa480aa292")
	DefaultArgentClassHash  = mustFelt("0x029927c8af6bccf3f6fda035981e765a7bdbf18a2dc0d630494f8758aa908e2b")
	DefaultBraavosClassHash = mustFelt("0x03131fa018d520a037686ce3efddeab8f28895662f019ca3ca18a626650f7d1e")

	// The class behind the Braavos proxy once the account activates.
	DefaultBraavosImplementation = mustFelt("0x02c2b8f559e1221468140ad7b2352b1a5be32660d0bf1a3ae3a054a4ec5254e4")
)

// FindClass looks a class hash up in the known-class table.
func FindClass(classHash *felt.Felt) (*AccountClass, bool) {
	for i := range KnownAccountClasses {
		if KnownAccountClasses[i].ClassHash.Equal(classHash) {
			return &KnownAccountClasses[i], true
		}
	}
	return nil, false
}

func mustFelt(hex string) *felt.Felt {
	f, err := common.ParseFeltValue(hex)
	if err != nil {
		panic(err)
	}
	return f
}
