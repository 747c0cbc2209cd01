package cmd

import (
	"fmt"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/spf13/cobra"

	"github.com/starkctl/starkctl/common"
	"github.com/starkctl/starkctl/provider"
)

// resolveAndConnect resolves an address book name or felt literal and opens
// the provider in one go, the shared preamble of every query command.
func resolveAndConnect(input string) (*felt.Felt, *provider.Client, error) {
	book, err := currentAddrBook()
	if err != nil {
		return nil, nil, err
	}
	address, err := book.Resolve(input)
	if err != nil {
		return nil, nil, err
	}
	client, err := currentProvider()
	if err != nil {
		return nil, nil, err
	}
	return address, client, nil
}

var chainIDCmd = &cobra.Command{
	Use:   "chain-id",
	Short: "Print the chain id reported by the node",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := currentProvider()
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		chainID, err := client.ChainID(cmd.Context())
		if err != nil {
			appUI.Error("Couldn't reach the node: %s", err)
			return
		}
		text, err := common.FeltToShortString(chainID)
		if err != nil {
			fmt.Println(common.Hex(chainID))
			return
		}
		appUI.KeyValue([][2]string{
			{"Chain id", common.Hex(chainID)},
			{"Decoded", text},
		})
	},
}

var blockNumberCmd = &cobra.Command{
	Use:   "block-number",
	Short: "Print the latest block number",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := currentProvider()
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		number, err := client.BlockNumber(cmd.Context())
		if err != nil {
			appUI.Error("Couldn't reach the node: %s", err)
			return
		}
		fmt.Println(number)
	},
}

var nonceCmd = &cobra.Command{
	Use:   "nonce <address>",
	Short: "Print the nonce of a contract",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		address, client, err := resolveAndConnect(args[0])
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		nonce, err := client.Nonce(cmd.Context(), address)
		if err != nil {
			appUI.Error("Couldn't read the nonce: %s", err)
			return
		}
		fmt.Println(common.Hex(nonce))
	},
}

var storageCmd = &cobra.Command{
	Use:   "storage <address> <key>",
	Short: "Read one storage slot of a contract",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		address, client, err := resolveAndConnect(args[0])
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		key, err := common.ParseFeltValue(args[1])
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		value, err := client.StorageAt(cmd.Context(), address, key)
		if err != nil {
			appUI.Error("Couldn't read the storage slot: %s", err)
			return
		}
		fmt.Println(common.FullHex(value))
	},
}

var callCmd = &cobra.Command{
	Use:   "call <address> <function> [calldata...]",
	Short: "Call a view function",
	Long: `Call executes a view function at the latest block. The function may be
given as an entry point name (hashed to its selector locally) or as a raw
selector value. Calldata elements are felts in decimal or 0x hex.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		address, client, err := resolveAndConnect(args[0])
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		selector, err := common.ParseFeltValue(args[1])
		if err != nil {
			selector = common.Selector(args[1])
		}
		calldata := []*felt.Felt{}
		for _, arg := range args[2:] {
			element, err := common.ParseFeltValue(arg)
			if err != nil {
				appUI.Error("%s", err)
				return
			}
			calldata = append(calldata, element)
		}

		result, err := client.Call(cmd.Context(), provider.FunctionCall{
			ContractAddress:    address,
			EntryPointSelector: selector,
			Calldata:           calldata,
		})
		if err != nil {
			appUI.Error("Call failed: %s", err)
			return
		}
		for _, element := range result {
			fmt.Println(common.FullHex(element))
		}
	},
}

func init() {
	for _, c := range []*cobra.Command{chainIDCmd, blockNumberCmd, nonceCmd, storageCmd, callCmd} {
		AddRPCFlag(c)
		rootCmd.AddCommand(c)
	}
}
