package networks

import (
	"github.com/NethermindEth/juno/core/felt"
)

var Mainnet Network = &mainnet{}

type mainnet struct{}

func (n *mainnet) GetName() string {
	return "mainnet"
}

func (n *mainnet) GetAlternativeNames() []string {
	return []string{"alpha-mainnet"}
}

func (n *mainnet) GetChainID() *felt.Felt {
	return new(felt.Felt).SetBytes([]byte("SN_MAIN"))
}

func (n *mainnet) GetNodeVariableName() string {
	return "STARKNET_MAINNET_NODE"
}

func (n *mainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"mainnet-blast":      "https://starknet-mainnet.public.blastapi.io/rpc/v0_7",
		"mainnet-nethermind": "https://free-rpc.nethermind.io/mainnet-juno/v0_7",
	}
}

func (n *mainnet) GetExplorerURL() string {
	return "https://starkscan.co"
}
