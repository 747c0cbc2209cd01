package networks

import (
	"github.com/NethermindEth/juno/core/felt"
)

// Katana is the local devnet shipped with dojo. Its pre-funded seed accounts
// are exposed as builtin accounts so development flows need no keystore.
var Katana Network = &katana{}

type katana struct{}

func (n *katana) GetName() string {
	return "katana"
}

func (n *katana) GetAlternativeNames() []string {
	return []string{"devnet", "local"}
}

func (n *katana) GetChainID() *felt.Felt {
	return new(felt.Felt).SetBytes([]byte("KATANA"))
}

func (n *katana) GetNodeVariableName() string {
	return "STARKNET_KATANA_NODE"
}

func (n *katana) GetDefaultNodes() map[string]string {
	return map[string]string{
		"katana": "http://localhost:5050",
	}
}

func (n *katana) GetExplorerURL() string {
	return ""
}
