package accounts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileLoadFileRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acc.json")
	cfg := undeployedOz(0xdef)

	require.NoError(t, SaveFile(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, back.Variant.(*OzVariant).PublicKey.Equal(feltOf(0xdef)))
}

// An interrupted save must never leave a half-written file: the temp sibling
// gets cleaned up and the target is only ever replaced whole.
func TestSaveFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "acc.json")
	require.NoError(t, SaveFile(undeployedOz(0xdef), path))
	require.NoError(t, SaveFile(undeployedOz(0xfed), path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "acc.json", entries[0].Name())

	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, back.Variant.(*OzVariant).PublicKey.Equal(feltOf(0xfed)),
		"the second save must fully replace the first")
}

func TestLoadFileRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acc.json")
	cfg := undeployedOz(0xdef)
	cfg.Version = 99
	require.NoError(t, SaveFile(cfg, path))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version 99")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFindBuiltinAccount(t *testing.T) {
	byName, ok := FindBuiltinAccount("katana-0")
	require.True(t, ok)
	byAlias, ok := FindBuiltinAccount("katana")
	require.True(t, ok)
	assert.Equal(t, byName, byAlias)
	assert.False(t, byName.Address.IsZero())
	assert.False(t, byName.PrivateKey.IsZero())

	_, ok = FindBuiltinAccount("mainnet-whale")
	assert.False(t, ok)
}

func TestFindClass(t *testing.T) {
	for _, class := range KnownAccountClasses {
		found, ok := FindClass(class.ClassHash)
		require.True(t, ok)
		assert.Equal(t, class.Variant, found.Variant)
		assert.True(t, strings.Contains(found.Description, "account") ||
			strings.Contains(found.Description, "Account"))
	}
	_, ok := FindClass(feltOf(0x1234))
	assert.False(t, ok)
}
