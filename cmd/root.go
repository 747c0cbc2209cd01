package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/starkctl/starkctl/config"
	"github.com/starkctl/starkctl/networks"
	"github.com/starkctl/starkctl/provider"
	"github.com/starkctl/starkctl/signer"
	"github.com/starkctl/starkctl/ui"
)

var appUI ui.UI = ui.NewTerminalUI()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "starkctl",
	Short: "Manage Starknet accounts, signers and queries from the command line",
	Long: fmt.Sprintf(`Starkctl is a command line tool for Starknet-family networks.

Starkctl supports you on different ends:

	1. It manages your Starknet accounts across wallet families
	(OpenZeppelin, Argent, Braavos) and derives the address an account
	will occupy before it is ever deployed.

	2. It manages your signing credentials so you don't have to: encrypted
	keystores, raw private keys and Ledger hardware wallets, selected per
	invocation with a strict precedence between flags and environment.

	3. It manages a book of addresses so you will not forget one and can
	look contracts up by name in queries.

By default, starkctl supports mainnet, sepolia, sepolia-integration and
katana (a local devnet). Public sepolia and mainnet nodes are used out of
the box; point starkctl at your own node by setting %s, or per network:
	1. For mainnet: %s
	2. For sepolia: %s
	3. For sepolia-integration: %s
	4. For katana: %s

Signer credentials are picked up from %s, %s and %s when the corresponding
flags are not given. Exactly one credential source may be in effect at a
time; starkctl refuses to guess when several are supplied.`,
		provider.RPCVar,
		networks.Mainnet.GetNodeVariableName(),
		networks.Sepolia.GetNodeVariableName(),
		networks.SepoliaIntegration.GetNodeVariableName(),
		networks.Katana.GetNodeVariableName(),
		signer.KEYSTORE_VAR,
		signer.PRIVATE_KEY_VAR,
		signer.LEDGER_PATH_VAR,
	),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := networks.GetNetwork(config.Network); err != nil {
			return err
		}
		networks.SetNetwork(config.Network)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", "sepolia", "Starknet network. Valid values: \"mainnet\", \"sepolia\", \"sepolia-integration\", \"katana\".")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
