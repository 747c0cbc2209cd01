package signer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/NethermindEth/juno/core/felt"

	"github.com/starkctl/starkctl/hdpath"
	"github.com/starkctl/starkctl/signer/ledgerstark"
	"github.com/starkctl/starkctl/ui"
)

// NoPlainKeyWarningVar suppresses the plaintext-private-key warning when set.
// Meant for CI and scripted devnet use, not for humans.
const NoPlainKeyWarningVar = "STARKCTL_NO_PLAIN_KEY_WARNING"

var (
	ErrNoSigner = errors.New(
		"no signer configured: use --keystore, --private-key or --ledger-path, or set one of " +
			KEYSTORE_VAR + ", " + PRIVATE_KEY_VAR + " or " + LEDGER_PATH_VAR,
	)
	ErrEmptyKeystorePath = errors.New("keystore path is empty")
)

// Backend materializes the resolved credential source into a live signing
// backend. This is where side effects happen: files are read, passwords are
// prompted for on u, and hardware sessions are opened. Resolutions of
// StrengthNone fail with ErrNoSigner.
func (r Resolution) Backend(ctx context.Context, u ui.UI) (Backend, error) {
	if r.Strength == StrengthNone || r.Spec == nil {
		return nil, ErrNoSigner
	}
	switch r.Spec.Kind {
	case KindKeystore:
		return keystoreBackend(r.Spec, u)
	case KindPrivateKey:
		return privateKeyBackend(r.Spec, u)
	case KindLedger:
		return ledgerBackendFor(r.Spec, u)
	}
	return nil, fmt.Errorf("unknown signer kind %d", r.Spec.Kind)
}

func keystoreBackend(spec *Spec, u ui.UI) (Backend, error) {
	if spec.KeystorePath == "" {
		return nil, ErrEmptyKeystorePath
	}
	if _, err := os.Stat(spec.KeystorePath); err != nil {
		return nil, fmt.Errorf("keystore file '%s' not found: %w", spec.KeystorePath, err)
	}
	password := spec.KeystorePassword
	if password == "" {
		var err error
		password, err = u.AskSecret("Enter keystore password: ")
		if err != nil {
			return nil, err
		}
	}
	priv, err := DecryptKeystore(spec.KeystorePath, password)
	if err != nil {
		return nil, err
	}
	return NewKeyBackend(priv), nil
}

func privateKeyBackend(spec *Spec, u ui.UI) (Backend, error) {
	if os.Getenv(NoPlainKeyWarningVar) == "" {
		u.Warn("WARNING: using a plaintext private key is insecure. Consider using a keystore (starkctl signer keystore new) or a Ledger instead.")
	}
	priv, err := ParsePrivateKey(spec.PrivateKeyHex)
	if err != nil {
		return nil, err
	}
	return NewKeyBackend(priv), nil
}

func ledgerBackendFor(spec *Spec, u ui.UI) (Backend, error) {
	path, err := hdpath.Parse(spec.LedgerPath)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger derivation path '%s': %w", spec.LedgerPath, err)
	}
	for _, note := range path.Warnings() {
		u.Warn("WARNING: " + note)
	}
	device, err := ledgerstark.NewLedgerstark()
	if err != nil {
		return nil, err
	}
	return &ledgerBackend{device: device, path: path, ui: u}, nil
}

// ledgerBackend adapts a Ledger session to the Backend interface. Signing
// requires physical confirmation, so the user is told to look at the device
// before every blocking round trip.
type ledgerBackend struct {
	device *ledgerstark.Ledgerstark
	path   *hdpath.Path
	ui     ui.UI
}

func (b *ledgerBackend) PublicKey(ctx context.Context) (*felt.Felt, error) {
	return b.device.PublicKey(ctx, b.path.DerivationPath())
}

func (b *ledgerBackend) SignHash(ctx context.Context, hash *felt.Felt) (*Signature, error) {
	b.ui.Critical("Please confirm the signing operation on your Ledger (path %s)", b.path)
	r, s, err := b.device.SignHash(ctx, b.path.DerivationPath(), hash)
	if err != nil {
		return nil, err
	}
	return &Signature{R: r, S: s}, nil
}
