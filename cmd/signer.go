package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/starkctl/starkctl/common"
	"github.com/starkctl/starkctl/config"
	"github.com/starkctl/starkctl/hdpath"
	"github.com/starkctl/starkctl/signer"
	"github.com/starkctl/starkctl/signer/ledgerstark"
)

var signerCmd = &cobra.Command{
	Use:   "signer",
	Short: "Manage signing credentials: keystores, raw keys and Ledgers",
}

var keystoreCmd = &cobra.Command{
	Use:   "keystore",
	Short: "Manage encrypted keystore files",
}

// askNewPassword prompts twice and insists the entries match.
func askNewPassword() (string, error) {
	password, err := appUI.AskSecret("Enter password: ")
	if err != nil {
		return "", err
	}
	confirmation, err := appUI.AskSecret("Confirm password: ")
	if err != nil {
		return "", err
	}
	if password != confirmation {
		return "", errors.New("passwords do not match")
	}
	return password, nil
}

var keystoreNewCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Generate a fresh key into a new keystore file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(args[0]); err == nil {
			appUI.Error("File %s already exists", args[0])
			return
		}
		password, err := askNewPassword()
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		priv, err := signer.GenerateKey()
		if err != nil {
			appUI.Error("Couldn't generate a key: %s", err)
			return
		}
		if err := signer.EncryptKeystore(priv, args[0], password); err != nil {
			appUI.Error("Couldn't write the keystore: %s", err)
			return
		}
		publicKey, err := signer.PublicKeyOf(priv)
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		appUI.Success("Created keystore %s", args[0])
		appUI.KeyValue([][2]string{{"Public key", common.FullHex(publicKey)}})
	},
}

var keystoreFromKeyCmd = &cobra.Command{
	Use:   "from-key <path>",
	Short: "Import an existing private key into a new keystore file",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			appUI.Error("Expected exactly one argument: the keystore path")
			return
		}
		if _, err := os.Stat(args[0]); err == nil {
			appUI.Error("File %s already exists", args[0])
			return
		}
		// The key is read hidden so it never lands in scrollback.
		keyHex, err := appUI.AskSecret("Enter private key: ")
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		priv, err := signer.ParsePrivateKey(keyHex)
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		password, err := askNewPassword()
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		if err := signer.EncryptKeystore(priv, args[0], password); err != nil {
			appUI.Error("Couldn't write the keystore: %s", err)
			return
		}
		publicKey, err := signer.PublicKeyOf(priv)
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		appUI.Success("Created keystore %s", args[0])
		appUI.KeyValue([][2]string{{"Public key", common.FullHex(publicKey)}})
	},
}

var keystoreInspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Print the public key of a keystore file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		password, err := appUI.AskSecret("Enter keystore password: ")
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		priv, err := signer.DecryptKeystore(args[0], password)
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		publicKey, err := signer.PublicKeyOf(priv)
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		fmt.Println(common.FullHex(publicKey))
	},
}

var genKeypairCmd = &cobra.Command{
	Use:   "gen-keypair",
	Short: "Generate a random Stark key pair and print it",
	Run: func(cmd *cobra.Command, args []string) {
		priv, err := signer.GenerateKey()
		if err != nil {
			appUI.Error("Couldn't generate a key: %s", err)
			return
		}
		publicKey, err := signer.PublicKeyOf(priv)
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		appUI.Warn("WARNING: the private key below is shown in plain text; anyone who sees it controls the key")
		appUI.KeyValue([][2]string{
			{"Private key", common.FullHex(common.BigToFelt(priv))},
			{"Public key", common.FullHex(publicKey)},
		})
	},
}

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Talk to the Starknet app on a Ledger device",
}

var ledgerPublicKeyCmd = &cobra.Command{
	Use:   "public-key <derivation-path>",
	Short: "Print the public key at an EIP-2645 path on the Ledger",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		display, _ := cmd.Flags().GetBool("display")
		path, err := hdpath.Parse(args[0])
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		for _, note := range path.Warnings() {
			appUI.Warn("WARNING: %s", note)
		}
		device, err := ledgerstark.NewLedgerstark()
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		defer device.Close()

		publicKey, err := device.PublicKey(cmd.Context(), path.DerivationPath())
		if display && err == nil {
			appUI.Critical("Please verify the public key on your Ledger")
			publicKey, err = device.ConfirmPublicKey(cmd.Context(), path.DerivationPath())
		}
		if err != nil {
			appUI.Error("Couldn't read the public key: %s. Please check the device is unlocked with the Starknet app open.", err)
			return
		}
		fmt.Println(common.FullHex(publicKey))
	},
}

var signHashCmd = &cobra.Command{
	Use:   "sign-hash <hash>",
	Short: "Sign a raw field element with the configured signer",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hash, err := common.ParseFeltValue(args[0])
		if err != nil {
			appUI.Error("%s", err)
			return
		}

		backend, err := func() (signer.Backend, error) {
			if config.Account != "" {
				_, builtin, err := loadAccount(config.Account)
				if err != nil {
					return nil, err
				}
				if builtin != nil {
					return builtinBackend(builtin)
				}
				// Stored accounts hold no key material; only builtin
				// accounts imply a signer.
			}
			return signerBackend(cmd.Context())
		}()
		if err != nil {
			appUI.Error("%s", err)
			return
		}

		appUI.Critical("Signing hash %s", common.FullHex(hash))
		signature, err := backend.SignHash(cmd.Context(), hash)
		if err != nil {
			appUI.Error("Signing failed: %s", err)
			return
		}
		appUI.KeyValue([][2]string{
			{"r", common.FullHex(signature.R)},
			{"s", common.FullHex(signature.S)},
		})
	},
}

func init() {
	ledgerPublicKeyCmd.Flags().Bool("display", false, "Also show the key on the device screen for verification.")

	AddSignerFlags(signHashCmd)
	signHashCmd.Flags().StringVarP(&config.Account, "account", "a", "", "Builtin account whose embedded key signs instead of an explicit signer.")

	keystoreCmd.AddCommand(keystoreNewCmd)
	keystoreCmd.AddCommand(keystoreFromKeyCmd)
	keystoreCmd.AddCommand(keystoreInspectCmd)
	ledgerCmd.AddCommand(ledgerPublicKeyCmd)

	signerCmd.AddCommand(keystoreCmd)
	signerCmd.AddCommand(ledgerCmd)
	signerCmd.AddCommand(genKeypairCmd)
	signerCmd.AddCommand(signHashCmd)

	rootCmd.AddCommand(signerCmd)
}
