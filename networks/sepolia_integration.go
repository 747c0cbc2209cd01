package networks

import (
	"github.com/NethermindEth/juno/core/felt"
)

var SepoliaIntegration Network = &sepoliaIntegration{}

type sepoliaIntegration struct{}

func (n *sepoliaIntegration) GetName() string {
	return "sepolia-integration"
}

func (n *sepoliaIntegration) GetAlternativeNames() []string {
	return []string{"integration"}
}

func (n *sepoliaIntegration) GetChainID() *felt.Felt {
	return new(felt.Felt).SetBytes([]byte("SN_INTEGRATION_SEPOLIA"))
}

func (n *sepoliaIntegration) GetNodeVariableName() string {
	return "STARKNET_SEPOLIA_INTEGRATION_NODE"
}

func (n *sepoliaIntegration) GetDefaultNodes() map[string]string {
	return map[string]string{
		"sepolia-integration": "https://integration-sepolia.starknet.io/rpc/v0_7",
	}
}

func (n *sepoliaIntegration) GetExplorerURL() string {
	return "https://integration-sepolia.starkscan.co"
}
