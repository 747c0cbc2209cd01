package signer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starkctl/starkctl/ui"
)

func TestBackendNoneFails(t *testing.T) {
	res := Resolution{Strength: StrengthNone}
	_, err := res.Backend(context.Background(), ui.NewRecordingUI())
	assert.ErrorIs(t, err, ErrNoSigner)
}

func TestBackendEmptyKeystorePath(t *testing.T) {
	res := Resolution{
		Strength: StrengthStrong,
		Spec:     &Spec{Kind: KindKeystore},
	}
	_, err := res.Backend(context.Background(), ui.NewRecordingUI())
	assert.ErrorIs(t, err, ErrEmptyKeystorePath)
}

func TestBackendKeystoreNotFound(t *testing.T) {
	res := Resolution{
		Strength: StrengthStrong,
		Spec: &Spec{
			Kind:             KindKeystore,
			KeystorePath:     filepath.Join(t.TempDir(), "missing.json"),
			KeystorePassword: "pw",
		},
	}
	_, err := res.Backend(context.Background(), ui.NewRecordingUI())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestBackendPrivateKey(t *testing.T) {
	t.Setenv(NoPlainKeyWarningVar, "")
	u := ui.NewRecordingUI()
	res := Resolution{
		Strength: StrengthWeak,
		Spec:     &Spec{Kind: KindPrivateKey, PrivateKeyHex: "0x1234abcd"},
	}
	backend, err := res.Backend(context.Background(), u)
	require.NoError(t, err)
	require.NotNil(t, backend)
	assert.True(t, u.HasMessage("insecure"), "plaintext key must produce a warning")

	publicKey, err := backend.PublicKey(context.Background())
	require.NoError(t, err)
	assert.False(t, publicKey.IsZero())
}

func TestBackendPrivateKeyWarningSuppressed(t *testing.T) {
	t.Setenv(NoPlainKeyWarningVar, "1")
	u := ui.NewRecordingUI()
	res := Resolution{
		Strength: StrengthWeak,
		Spec:     &Spec{Kind: KindPrivateKey, PrivateKeyHex: "0x1234abcd"},
	}
	_, err := res.Backend(context.Background(), u)
	require.NoError(t, err)
	assert.Empty(t, u.WarnMessages())
}

func TestBackendPrivateKeyMalformed(t *testing.T) {
	t.Setenv(NoPlainKeyWarningVar, "1")
	res := Resolution{
		Strength: StrengthStrong,
		Spec:     &Spec{Kind: KindPrivateKey, PrivateKeyHex: "0xzz"},
	}
	_, err := res.Backend(context.Background(), ui.NewRecordingUI())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0xzz")
}

func TestBackendLedgerRejectsBadPath(t *testing.T) {
	res := Resolution{
		Strength: StrengthStrong,
		Spec:     &Spec{Kind: KindLedger, LedgerPath: "m/44'/60'/0'/0/0"},
	}
	_, err := res.Backend(context.Background(), ui.NewRecordingUI())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "derivation path")
}
