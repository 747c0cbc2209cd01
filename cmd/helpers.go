package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/starkctl/starkctl/accounts"
	"github.com/starkctl/starkctl/addrbook"
	"github.com/starkctl/starkctl/common"
	"github.com/starkctl/starkctl/config"
	"github.com/starkctl/starkctl/networks"
	"github.com/starkctl/starkctl/provider"
	"github.com/starkctl/starkctl/signer"
)

func currentProvider() (*provider.Client, error) {
	if config.RPC != "" {
		return provider.NewClient(config.RPC), nil
	}
	return provider.ForNetwork(networks.CurrentNetwork())
}

func currentAddrBook() (*addrbook.Book, error) {
	return addrbook.ForNetwork(networks.CurrentNetwork())
}

// AddSignerFlags wires the signer selection flags shared by every command
// that can sign.
func AddSignerFlags(c *cobra.Command) {
	c.Flags().StringVar(&config.Keystore, "keystore", "", fmt.Sprintf("Path to an encrypted keystore file. Falls back to %s.", signer.KEYSTORE_VAR))
	c.Flags().StringVar(&config.KeystorePassword, "keystore-password", "", fmt.Sprintf("Keystore password. INSECURE on the command line; prefer the interactive prompt or %s.", signer.KEYSTORE_PASSWORD_VAR))
	c.Flags().StringVar(&config.PrivateKey, "private-key", "", fmt.Sprintf("Raw private key in hex. INSECURE; prefer a keystore. Falls back to %s.", signer.PRIVATE_KEY_VAR))
	c.Flags().StringVar(&config.LedgerPath, "ledger-path", "", fmt.Sprintf("EIP-2645 derivation path on a Ledger. Falls back to %s.", signer.LEDGER_PATH_VAR))
}

// AddRPCFlag wires the node override flag for commands that hit the network.
func AddRPCFlag(c *cobra.Command) {
	c.Flags().StringVar(&config.RPC, "rpc", "", fmt.Sprintf("Starknet JSON-RPC endpoint. Same meaning as %s.", provider.RPCVar))
}

// resolveSigner snapshots the signer flags and environment and resolves them
// to at most one credential source.
func resolveSigner() (signer.Resolution, error) {
	input := signer.InputFromFlags(
		config.Keystore,
		config.KeystorePassword,
		config.PrivateKey,
		config.LedgerPath,
	)
	return signer.ResolveSource(input, appUI)
}

// signerBackend resolves the signer flags all the way to a live backend.
func signerBackend(ctx context.Context) (signer.Backend, error) {
	resolution, err := resolveSigner()
	if err != nil {
		return nil, err
	}
	return resolution.Backend(ctx, appUI)
}

// builtinBackend builds a backend from a builtin account's embedded key,
// honoring the strength contract: an explicit signer flag conflicts with the
// builtin's implied key, while environment defaults lose silently.
func builtinBackend(builtin *accounts.BuiltinAccount) (signer.Backend, error) {
	resolution, err := resolveSigner()
	if err != nil {
		return nil, err
	}
	if resolution.Strength == signer.StrengthStrong {
		return nil, fmt.Errorf(
			"account %s has a builtin signing key; drop the explicit signer option",
			builtin.Name,
		)
	}
	return signer.NewKeyBackend(common.FeltToBig(builtin.PrivateKey)), nil
}

// loadAccount interprets the --account value: builtin name first, then a
// path to an account file, then a stored account name (fuzzy-matched).
func loadAccount(name string) (*accounts.AccountConfig, *accounts.BuiltinAccount, error) {
	if name == "" {
		return nil, nil, errors.New("no account specified: use --account")
	}
	if builtin, ok := accounts.FindBuiltinAccount(name); ok {
		return nil, builtin, nil
	}
	if strings.ContainsRune(name, os.PathSeparator) || strings.HasSuffix(name, ".json") {
		cfg, err := accounts.LoadFile(name)
		return cfg, nil, err
	}
	cfg, err := accounts.Load(name)
	if err == nil {
		return cfg, nil, nil
	}
	matches, searchErr := accounts.Search(name)
	if searchErr == nil && len(matches) > 0 {
		cfg, loadErr := accounts.Load(matches[0])
		if loadErr == nil {
			appUI.Info("Using account %s", matches[0])
			return cfg, nil, nil
		}
	}
	return nil, nil, err
}

// accountAddress returns the account's address: the pinned one when
// deployed, the counterfactual one otherwise.
func accountAddress(cfg *accounts.AccountConfig) (string, error) {
	if deployed, ok := cfg.Deployment.(*accounts.Deployed); ok {
		return common.FullHex(deployed.Address), nil
	}
	addr, err := cfg.DeployAccountAddress()
	if err != nil {
		return "", err
	}
	return common.FullHex(addr), nil
}
