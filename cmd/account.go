package cmd

import (
	"fmt"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/spf13/cobra"

	"github.com/starkctl/starkctl/accounts"
	"github.com/starkctl/starkctl/common"
	"github.com/starkctl/starkctl/provider"
	"github.com/starkctl/starkctl/signer"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Create, inspect and list Starknet account configs",
}

var accountOzCmd = &cobra.Command{
	Use:   "oz",
	Short: "OpenZeppelin account family",
}

var accountArgentCmd = &cobra.Command{
	Use:   "argent",
	Short: "Argent X account family",
}

var accountBraavosCmd = &cobra.Command{
	Use:   "braavos",
	Short: "Braavos account family",
}

// initSalt returns a fresh random deployment salt.
func initSalt() (*felt.Felt, error) {
	raw, err := signer.GenerateKey()
	if err != nil {
		return nil, err
	}
	return common.BigToFelt(raw), nil
}

// initPublicKey resolves the signer flags and asks the backend for its
// public key, which seeds every fresh account config.
func initPublicKey(cmd *cobra.Command) (*felt.Felt, error) {
	backend, err := signerBackend(cmd.Context())
	if err != nil {
		return nil, err
	}
	return backend.PublicKey(cmd.Context())
}

func reportNewAccount(name string, cfg *accounts.AccountConfig) {
	address, err := cfg.DeployAccountAddress()
	if err != nil {
		appUI.Error("Couldn't derive the deployment address: %s", err)
		return
	}
	appUI.Success("Created account config %s", name)
	appUI.KeyValue([][2]string{
		{"Variant", cfg.Variant.Type()},
		{"Deployment address", common.FullHex(address)},
	})
	appUI.Info("The account is not deployed yet; fund the address above before deploying.")
}

var accountOzInitCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a new OpenZeppelin account config",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		publicKey, err := initPublicKey(cmd)
		if err != nil {
			appUI.Error("Couldn't get the signer public key: %s", err)
			return
		}
		salt, err := initSalt()
		if err != nil {
			appUI.Error("Couldn't generate a deployment salt: %s", err)
			return
		}
		cfg := &accounts.AccountConfig{
			Version: accounts.ConfigVersion,
			Variant: &accounts.OzVariant{
				Version:   1,
				PublicKey: publicKey,
				Legacy:    false,
			},
			Deployment: &accounts.Undeployed{
				ClassHash: accounts.DefaultOzClassHash,
				Salt:      salt,
			},
		}
		if err := accounts.Save(args[0], cfg); err != nil {
			appUI.Error("Couldn't store the account config: %s", err)
			return
		}
		reportNewAccount(args[0], cfg)
	},
}

var accountArgentInitCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a new Argent account config",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		owner, err := initPublicKey(cmd)
		if err != nil {
			appUI.Error("Couldn't get the signer public key: %s", err)
			return
		}
		salt, err := initSalt()
		if err != nil {
			appUI.Error("Couldn't generate a deployment salt: %s", err)
			return
		}
		cfg := &accounts.AccountConfig{
			Version: accounts.ConfigVersion,
			Variant: &accounts.ArgentVariant{
				Version:  1,
				Owner:    owner,
				Guardian: new(felt.Felt),
			},
			Deployment: &accounts.Undeployed{
				ClassHash: accounts.DefaultArgentClassHash,
				Salt:      salt,
			},
		}
		if err := accounts.Save(args[0], cfg); err != nil {
			appUI.Error("Couldn't store the account config: %s", err)
			return
		}
		reportNewAccount(args[0], cfg)
	},
}

var accountBraavosInitCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a new Braavos account config",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		publicKey, err := initPublicKey(cmd)
		if err != nil {
			appUI.Error("Couldn't get the signer public key: %s", err)
			return
		}
		salt, err := initSalt()
		if err != nil {
			appUI.Error("Couldn't generate a deployment salt: %s", err)
			return
		}
		cfg := &accounts.AccountConfig{
			Version: accounts.ConfigVersion,
			Variant: &accounts.BraavosVariant{
				Version:        1,
				Implementation: accounts.DefaultBraavosImplementation,
				Multisig:       accounts.MultisigConfig{Status: "off"},
				Signers: []accounts.BraavosSigner{
					{Type: accounts.BraavosSignerStark, PublicKey: publicKey},
				},
			},
			Deployment: &accounts.Undeployed{
				ClassHash: accounts.DefaultBraavosClassHash,
				Salt:      salt,
				Context: &accounts.DeploymentContext{
					Type:               accounts.ContextBraavos,
					MockImplementation: accounts.BraavosMockImplementation,
				},
			},
		}
		if err := accounts.Save(args[0], cfg); err != nil {
			appUI.Error("Couldn't store the account config: %s", err)
			return
		}
		reportNewAccount(args[0], cfg)
	},
}

var accountAddressCmd = &cobra.Command{
	Use:   "address <name>",
	Short: "Print the account's address (deployed or counterfactual)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, builtin, err := loadAccount(args[0])
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		if builtin != nil {
			fmt.Println(common.FullHex(builtin.Address))
			return
		}
		address, err := accountAddress(cfg)
		if err != nil {
			appUI.Error("Couldn't derive the account address: %s", err)
			return
		}
		fmt.Println(address)
	},
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored account configs",
	Run: func(cmd *cobra.Command, args []string) {
		names, err := accounts.List()
		if err != nil {
			appUI.Error("Couldn't read the account store: %s", err)
			return
		}
		rows := [][]string{}
		for _, builtin := range accounts.BuiltinAccounts {
			rows = append(rows, []string{
				builtin.Name, "builtin (" + builtin.Network + ")", "deployed",
				common.FullHex(builtin.Address),
			})
		}
		for _, name := range names {
			cfg, err := accounts.Load(name)
			if err != nil {
				rows = append(rows, []string{name, "?", "unreadable", err.Error()})
				continue
			}
			address, err := accountAddress(cfg)
			if err != nil {
				address = err.Error()
			}
			rows = append(rows, []string{
				name, cfg.Variant.Type(), cfg.Deployment.Status(), address,
			})
		}
		if len(rows) == 0 {
			appUI.Info("No accounts yet. Create one with: starkctl account oz init <name>")
			return
		}
		appUI.Table([]string{"Name", "Variant", "Status", "Address"}, rows)
	},
}

var accountFetchCmd = &cobra.Command{
	Use:   "fetch <address>",
	Short: "Reconstruct an account config from a deployed contract",
	Long: `Fetch reads the class hash at the given address, recognizes which wallet
family it belongs to, reconstructs the variant data with view calls and
stores the result as an account config named by --output.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name, err := cmd.Flags().GetString("output")
		if err != nil || name == "" {
			appUI.Error("--output <name> is required")
			return
		}
		book, err := currentAddrBook()
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		address, err := book.Resolve(args[0])
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		client, err := currentProvider()
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		stop := appUI.Spinner("Fetching account state")
		cfg, err := fetchAccount(cmd, client, address)
		stop()
		if err != nil {
			appUI.Error("Couldn't fetch the account: %s", err)
			return
		}
		if err := accounts.Save(name, cfg); err != nil {
			appUI.Error("Couldn't store the account config: %s", err)
			return
		}
		appUI.Success("Fetched %s account at %s into config %s",
			cfg.Variant.Type(), common.FullHex(address), name)
	},
}

func fetchAccount(cmd *cobra.Command, client *provider.Client, address *felt.Felt) (*accounts.AccountConfig, error) {
	ctx := cmd.Context()
	classHash, err := client.ClassHashAt(ctx, address)
	if err != nil {
		return nil, err
	}
	class, ok := accounts.FindClass(classHash)
	if !ok {
		return nil, fmt.Errorf("class %s at %s is not a known account implementation",
			common.Hex(classHash), common.Hex(address))
	}
	appUI.Info("Recognized class: %s", class.Description)

	cfg := &accounts.AccountConfig{
		Version: accounts.ConfigVersion,
		Deployment: &accounts.Deployed{
			ClassHash: classHash,
			Address:   address,
		},
	}

	viewCallAll := func(entryPoint string) ([]*felt.Felt, error) {
		result, err := client.Call(ctx, provider.FunctionCall{
			ContractAddress:    address,
			EntryPointSelector: common.Selector(entryPoint),
		})
		if err != nil {
			return nil, fmt.Errorf("calling %s: %w", entryPoint, err)
		}
		if len(result) == 0 {
			return nil, fmt.Errorf("calling %s: empty result", entryPoint)
		}
		return result, nil
	}
	viewCall := func(entryPoint string) (*felt.Felt, error) {
		result, err := viewCallAll(entryPoint)
		if err != nil {
			return nil, err
		}
		return result[0], nil
	}

	switch class.Variant {
	case accounts.VariantOpenZeppelin:
		publicKey, err := viewCall("getPublicKey")
		if err != nil {
			return nil, err
		}
		cfg.Variant = &accounts.OzVariant{Version: 1, PublicKey: publicKey, Legacy: true}

	case accounts.VariantArgent:
		implementation, err := viewCall("get_implementation")
		if err != nil {
			return nil, err
		}
		owner, err := viewCall("getSigner")
		if err != nil {
			return nil, err
		}
		guardian, err := viewCall("getGuardian")
		if err != nil {
			return nil, err
		}
		cfg.Variant = &accounts.ArgentVariant{
			Version:        1,
			Implementation: implementation,
			Owner:          owner,
			Guardian:       guardian,
		}

	case accounts.VariantBraavos:
		implementation, err := viewCall("get_implementation")
		if err != nil {
			return nil, err
		}
		signersRaw, err := viewCallAll("get_signers")
		if err != nil {
			return nil, err
		}
		signers, err := accounts.DecodeBraavosSigners(signersRaw)
		if err != nil {
			return nil, err
		}
		multisigRaw, err := viewCall("get_multisig")
		if err != nil {
			return nil, err
		}
		multisig, err := accounts.DecodeBraavosMultisig(multisigRaw)
		if err != nil {
			return nil, err
		}
		cfg.Variant = &accounts.BraavosVariant{
			Version:        1,
			Implementation: implementation,
			Multisig:       multisig,
			Signers:        signers,
		}
	}
	return cfg, nil
}

func init() {
	accountFetchCmd.Flags().String("output", "", "Name to store the fetched account config under.")
	AddRPCFlag(accountFetchCmd)

	AddSignerFlags(accountOzInitCmd)
	AddSignerFlags(accountArgentInitCmd)
	AddSignerFlags(accountBraavosInitCmd)

	accountOzCmd.AddCommand(accountOzInitCmd)
	accountArgentCmd.AddCommand(accountArgentInitCmd)
	accountBraavosCmd.AddCommand(accountBraavosInitCmd)

	accountCmd.AddCommand(accountOzCmd)
	accountCmd.AddCommand(accountArgentCmd)
	accountCmd.AddCommand(accountBraavosCmd)
	accountCmd.AddCommand(accountAddressCmd)
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(accountFetchCmd)

	rootCmd.AddCommand(accountCmd)
}
