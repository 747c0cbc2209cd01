package networks

import (
	"github.com/NethermindEth/juno/core/felt"
)

var Sepolia Network = &sepolia{}

type sepolia struct{}

func (n *sepolia) GetName() string {
	return "sepolia"
}

func (n *sepolia) GetAlternativeNames() []string {
	return []string{"alpha-sepolia", "sepolia-testnet"}
}

func (n *sepolia) GetChainID() *felt.Felt {
	return new(felt.Felt).SetBytes([]byte("SN_SEPOLIA"))
}

func (n *sepolia) GetNodeVariableName() string {
	return "STARKNET_SEPOLIA_NODE"
}

func (n *sepolia) GetDefaultNodes() map[string]string {
	return map[string]string{
		"sepolia-blast":      "https://starknet-sepolia.public.blastapi.io/rpc/v0_7",
		"sepolia-nethermind": "https://free-rpc.nethermind.io/sepolia-juno/v0_7",
	}
}

func (n *sepolia) GetExplorerURL() string {
	return "https://sepolia.starkscan.co"
}
