package accounts

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Account files live in ~/.starkctl/accounts, one JSON file per account,
// named <name>.json.

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return os.Getenv("HOME")
	}
	return usr.HomeDir
}

// StoreDir returns the account file directory, creating it if needed.
func StoreDir() (string, error) {
	dir := filepath.Join(homeDir(), ".starkctl", "accounts")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// ConfigPath maps an account name to its file path.
func ConfigPath(name string) (string, error) {
	dir, err := StoreDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+".json"), nil
}

// LoadFile reads and validates an account file at an explicit path.
func LoadFile(path string) (*AccountConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("account file '%s' not found", path)
		}
		return nil, err
	}
	config := &AccountConfig{}
	if err := json.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("parsing account file '%s': %w", path, err)
	}
	if config.Version != ConfigVersion {
		return nil, fmt.Errorf("account file '%s' has unsupported version %d (expected %d)",
			path, config.Version, ConfigVersion)
	}
	return config, nil
}

// Load reads the named account from the store.
func Load(name string) (*AccountConfig, error) {
	path, err := ConfigPath(name)
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// SaveFile writes config to path atomically: the JSON lands in a temporary
// sibling first and is renamed over the target, so an interrupted write never
// leaves a truncated account file behind.
func SaveFile(config *AccountConfig, path string) error {
	content, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(append(content, '\n')); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Save writes the named account to the store.
func Save(name string, config *AccountConfig) error {
	path, err := ConfigPath(name)
	if err != nil {
		return err
	}
	return SaveFile(config, path)
}

// List returns the names of all stored accounts, sorted.
func List() ([]string, error) {
	dir, err := StoreDir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Search fuzzy-matches a query against stored account names, best match
// first.
func Search(query string) ([]string, error) {
	names, err := List()
	if err != nil {
		return nil, err
	}
	matches := fuzzy.Find(query, names)
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.Str)
	}
	return result, nil
}
