package signer

import (
	"errors"
	"os"

	"github.com/starkctl/starkctl/ui"
)

// Env vars consulted as signer defaults. Presence (even with an empty value)
// distinguishes an environment-sourced slot from an unset one.
const (
	KEYSTORE_VAR          = "STARKNET_KEYSTORE"
	KEYSTORE_PASSWORD_VAR = "STARKNET_KEYSTORE_PASSWORD"
	PRIVATE_KEY_VAR       = "STARKNET_PRIVATE_KEY"
	LEDGER_PATH_VAR       = "STARKNET_LEDGER_PATH"
)

var (
	ErrMixedSigners = errors.New(
		"mixed signer sources: only one of --keystore, --private-key and --ledger-path can be used at a time",
	)
	ErrAmbiguousEnvSigners = errors.New(
		"ambiguous signer environment: more than one of " +
			KEYSTORE_VAR + ", " + PRIVATE_KEY_VAR + " and " + LEDGER_PATH_VAR +
			" is set; unset the ones you don't mean",
	)
)

// Kind tags the credential material family a signer comes from.
type Kind int

const (
	KindKeystore Kind = iota
	KindPrivateKey
	KindLedger
)

func (k Kind) String() string {
	switch k {
	case KindKeystore:
		return "keystore"
	case KindPrivateKey:
		return "private key"
	case KindLedger:
		return "ledger"
	}
	return "unknown"
}

// Origin tags where a slot value came from.
type Origin int

const (
	Unset Origin = iota
	FromCommandLine
	FromEnvironment
)

// Slot is one of the three independent signer-specifying inputs.
type Slot struct {
	Origin Origin
	Value  string
}

// Input is a per-invocation snapshot of everything the user supplied about
// signing credentials. It is built fresh from flags and env vars, never
// mutated, and consumed exactly once by ResolveSource.
type Input struct {
	Keystore   Slot
	PrivateKey Slot
	LedgerPath Slot

	// KeystorePassword is inert data: it carries no origin tag and no
	// conflict semantics of its own. It is consumed only when the keystore
	// kind is the one ultimately resolved.
	KeystorePassword string
}

// slotFromFlagOrEnv builds a Slot from a command line flag value with an
// environment variable as fallback default.
func slotFromFlagOrEnv(flagValue, envVar string) Slot {
	if flagValue != "" {
		return Slot{Origin: FromCommandLine, Value: flagValue}
	}
	if envValue, ok := os.LookupEnv(envVar); ok {
		return Slot{Origin: FromEnvironment, Value: envValue}
	}
	return Slot{}
}

// InputFromFlags snapshots the signer flags of the current invocation,
// falling back to the STARKNET_* env vars for any flag left empty.
func InputFromFlags(keystore, keystorePassword, privateKey, ledgerPath string) Input {
	password := keystorePassword
	if password == "" {
		password = os.Getenv(KEYSTORE_PASSWORD_VAR)
	}
	return Input{
		Keystore:         slotFromFlagOrEnv(keystore, KEYSTORE_VAR),
		PrivateKey:       slotFromFlagOrEnv(privateKey, PRIVATE_KEY_VAR),
		LedgerPath:       slotFromFlagOrEnv(ledgerPath, LEDGER_PATH_VAR),
		KeystorePassword: password,
	}
}

// Spec names exactly one credential source to build a signing backend from.
type Spec struct {
	Kind Kind

	KeystorePath     string
	KeystorePassword string

	PrivateKeyHex string

	LedgerPath string
}

// Strength records how deliberate the user's signer choice was.
//
// Callers that already have an implied credential (e.g. a builtin devnet
// account) must silently ignore a Weak resolution but hard-fail on a Strong
// one: a user who typed --keystore wants that keystore used, while an env
// var is only a default.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthStrong
)

// Resolution is the outcome of resolving an Input. Spec is nil exactly when
// Strength is StrengthNone.
type Resolution struct {
	Strength Strength
	Spec     *Spec
}

// ResolveSource decides which of the three credential kinds governs this
// invocation:
//
//   - more than one command-line slot: mixed-sources conflict error
//   - exactly one command-line slot: Strong for that kind; environment values
//     of the other kinds are defaults and lose silently
//   - no command-line slot and exactly one environment slot: Weak
//   - no command-line slot and several environment slots: ambiguity is
//     rejected rather than resolved by an arbitrary priority order
//   - nothing anywhere: None
//
// A keystore password supplied up front (flag or env) is plain text visible
// to anything that can read the process state, so a warning is emitted on u;
// the warning never affects the outcome.
func ResolveSource(in Input, u ui.UI) (Resolution, error) {
	if in.KeystorePassword != "" {
		u.Warn("WARNING: supplying the keystore password via option or environment is insecure: it ends up in shell history and process listings")
	}

	type candidate struct {
		kind Kind
		slot Slot
	}
	candidates := []candidate{
		{KindKeystore, in.Keystore},
		{KindPrivateKey, in.PrivateKey},
		{KindLedger, in.LedgerPath},
	}

	var fromCLI, fromEnv []candidate
	for _, c := range candidates {
		switch c.slot.Origin {
		case FromCommandLine:
			fromCLI = append(fromCLI, c)
		case FromEnvironment:
			fromEnv = append(fromEnv, c)
		}
	}

	switch {
	case len(fromCLI) > 1:
		return Resolution{}, ErrMixedSigners
	case len(fromCLI) == 1:
		return Resolution{
			Strength: StrengthStrong,
			Spec:     specFor(fromCLI[0].kind, fromCLI[0].slot.Value, in.KeystorePassword),
		}, nil
	case len(fromEnv) > 1:
		return Resolution{}, ErrAmbiguousEnvSigners
	case len(fromEnv) == 1:
		return Resolution{
			Strength: StrengthWeak,
			Spec:     specFor(fromEnv[0].kind, fromEnv[0].slot.Value, in.KeystorePassword),
		}, nil
	default:
		return Resolution{Strength: StrengthNone}, nil
	}
}

func specFor(kind Kind, value, keystorePassword string) *Spec {
	spec := &Spec{Kind: kind}
	switch kind {
	case KindKeystore:
		spec.KeystorePath = value
		spec.KeystorePassword = keystorePassword
	case KindPrivateKey:
		spec.PrivateKeyHex = value
	case KindLedger:
		spec.LedgerPath = value
	}
	return spec
}
