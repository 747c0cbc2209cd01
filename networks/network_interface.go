package networks

import (
	"github.com/NethermindEth/juno/core/felt"
)

type Network interface {
	GetName() string
	GetAlternativeNames() []string

	// GetChainID returns the chain id felt (the Cairo short string encoding
	// of the chain name, e.g. "SN_MAIN").
	GetChainID() *felt.Felt

	// GetNodeVariableName returns the env var consulted for a custom RPC node.
	GetNodeVariableName() string
	GetDefaultNodes() map[string]string

	GetExplorerURL() string
}
