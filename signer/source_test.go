package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starkctl/starkctl/ui"
)

func slotOf(origin Origin, value string) Slot {
	if origin == Unset {
		return Slot{}
	}
	return Slot{Origin: origin, Value: value}
}

// TestResolveSourceGrid walks every combination of slot origins across the
// three credential kinds and checks the outcome class.
func TestResolveSourceGrid(t *testing.T) {
	origins := []Origin{Unset, FromCommandLine, FromEnvironment}

	for _, keystore := range origins {
		for _, privateKey := range origins {
			for _, ledger := range origins {
				in := Input{
					Keystore:   slotOf(keystore, "/tmp/key.json"),
					PrivateKey: slotOf(privateKey, "0x123"),
					LedgerPath: slotOf(ledger, "m/2645'/1195502025'/1148870696'/0'/0'/0"),
				}
				res, err := ResolveSource(in, ui.NewRecordingUI())

				cli := 0
				env := 0
				for _, o := range []Origin{keystore, privateKey, ledger} {
					switch o {
					case FromCommandLine:
						cli++
					case FromEnvironment:
						env++
					}
				}

				switch {
				case cli > 1:
					assert.ErrorIs(t, err, ErrMixedSigners,
						"origins %v/%v/%v", keystore, privateKey, ledger)
				case cli == 1:
					require.NoError(t, err)
					assert.Equal(t, StrengthStrong, res.Strength,
						"origins %v/%v/%v", keystore, privateKey, ledger)
					require.NotNil(t, res.Spec)
				case env > 1:
					assert.ErrorIs(t, err, ErrAmbiguousEnvSigners,
						"origins %v/%v/%v", keystore, privateKey, ledger)
				case env == 1:
					require.NoError(t, err)
					assert.Equal(t, StrengthWeak, res.Strength)
					require.NotNil(t, res.Spec)
				default:
					require.NoError(t, err)
					assert.Equal(t, StrengthNone, res.Strength)
					assert.Nil(t, res.Spec)
				}
			}
		}
	}
}

// Command-line values beat environment defaults of the other kinds without
// complaint.
func TestResolveSourceCommandLineBeatsEnvironment(t *testing.T) {
	in := Input{
		Keystore:   Slot{Origin: FromEnvironment, Value: "/env/key.json"},
		PrivateKey: Slot{Origin: FromCommandLine, Value: "0x123"},
		LedgerPath: Slot{Origin: FromEnvironment, Value: "m/2645'/1'/2'/0'/0'/0"},
	}
	res, err := ResolveSource(in, ui.NewRecordingUI())
	require.NoError(t, err)
	assert.Equal(t, StrengthStrong, res.Strength)
	assert.Equal(t, KindPrivateKey, res.Spec.Kind)
	assert.Equal(t, "0x123", res.Spec.PrivateKeyHex)
}

func TestResolveSourceKeystoreSpecCarriesPassword(t *testing.T) {
	in := Input{
		Keystore:         Slot{Origin: FromCommandLine, Value: "/tmp/key.json"},
		KeystorePassword: "hunter2",
	}
	u := ui.NewRecordingUI()
	res, err := ResolveSource(in, u)
	require.NoError(t, err)
	assert.Equal(t, KindKeystore, res.Spec.Kind)
	assert.Equal(t, "/tmp/key.json", res.Spec.KeystorePath)
	assert.Equal(t, "hunter2", res.Spec.KeystorePassword)
	assert.True(t, u.HasMessage("insecure"), "plain-text password must produce a warning")
}

// A password alone never resolves anything and never conflicts.
func TestResolveSourcePasswordIsInert(t *testing.T) {
	in := Input{
		PrivateKey:       Slot{Origin: FromCommandLine, Value: "0x123"},
		KeystorePassword: "hunter2",
	}
	res, err := ResolveSource(in, ui.NewRecordingUI())
	require.NoError(t, err)
	assert.Equal(t, KindPrivateKey, res.Spec.Kind)
}

func TestResolveSourceIdempotent(t *testing.T) {
	in := Input{
		Keystore: Slot{Origin: FromEnvironment, Value: "/env/key.json"},
	}
	first, err1 := ResolveSource(in, ui.NewRecordingUI())
	second, err2 := ResolveSource(in, ui.NewRecordingUI())
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestInputFromFlags(t *testing.T) {
	t.Setenv(KEYSTORE_VAR, "/env/key.json")
	t.Setenv(KEYSTORE_PASSWORD_VAR, "envpass")
	t.Setenv(PRIVATE_KEY_VAR, "")

	in := InputFromFlags("", "", "", "m/2645'/1'/2'/0'/0'/0")

	assert.Equal(t, FromEnvironment, in.Keystore.Origin)
	assert.Equal(t, "/env/key.json", in.Keystore.Value)

	// Presence with an empty value still counts as environment-sourced.
	assert.Equal(t, FromEnvironment, in.PrivateKey.Origin)
	assert.Equal(t, "", in.PrivateKey.Value)

	assert.Equal(t, FromCommandLine, in.LedgerPath.Origin)
	assert.Equal(t, "envpass", in.KeystorePassword)
}

func TestInputFromFlagsFlagBeatsEnv(t *testing.T) {
	t.Setenv(KEYSTORE_VAR, "/env/key.json")
	in := InputFromFlags("/cli/key.json", "clipass", "", "")
	assert.Equal(t, FromCommandLine, in.Keystore.Origin)
	assert.Equal(t, "/cli/key.json", in.Keystore.Value)
	assert.Equal(t, "clipass", in.KeystorePassword)
}
