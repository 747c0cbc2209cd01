// Package config holds the flag-bound global state shared by the command
// tree.
package config

var Network string

var (
	// Signer selection flags. Empty means unset; env var fallbacks are
	// applied when the signer input snapshot is built, not here.
	Keystore         string
	KeystorePassword string
	PrivateKey       string
	LedgerPath       string

	// Account selection: a builtin account name, a stored account name, or a
	// path to an account file.
	Account string

	// Node selection override, same meaning as STARKNET_RPC.
	RPC string
)
