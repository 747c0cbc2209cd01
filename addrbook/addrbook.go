// Package addrbook resolves human names to Starknet addresses and back. It
// merges builtin well-known contracts with the user's own entries from
// ~/.starkctl/addressbook.json and serves lookups through a bleve full-text
// index with a plain fuzzy fallback.
package addrbook

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blevesearch/bleve"
	"github.com/sahilm/fuzzy"

	"github.com/starkctl/starkctl/common"
	"github.com/starkctl/starkctl/networks"
)

// AddressDesc is one address book entry as returned from lookups.
type AddressDesc struct {
	Address string
	Desc    string
}

// Book is the merged address database for one network.
type Book struct {
	network string
	// canonical 0x-padded address -> description
	data  map[string]string
	index bleve.Index
	mu    sync.RWMutex
}

var (
	books   = map[string]*Book{}
	booksMu sync.Mutex
)

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return os.Getenv("HOME")
	}
	return usr.HomeDir
}

func userEntriesPath() string {
	return filepath.Join(homeDir(), ".starkctl", "addressbook.json")
}

// userEntries reads ~/.starkctl/addressbook.json, a map from address to
// name. A missing or malformed file is treated as empty.
func userEntries() map[string]string {
	content, err := os.ReadFile(userEntriesPath())
	if err != nil {
		return map[string]string{}
	}
	result := map[string]string{}
	if err := json.Unmarshal(content, &result); err != nil {
		return map[string]string{}
	}
	return result
}

// ForNetwork loads (once per process, per network) the merged book for a
// network: well-known entries first, user entries on top.
func ForNetwork(network networks.Network) (*Book, error) {
	booksMu.Lock()
	defer booksMu.Unlock()
	if book, ok := books[network.GetName()]; ok {
		return book, nil
	}

	book := &Book{
		network: network.GetName(),
		data:    map[string]string{},
	}
	for addr, desc := range WellKnownAddresses(network.GetName()) {
		if err := book.register(addr, desc); err != nil {
			return nil, err
		}
	}
	for addr, desc := range userEntries() {
		if err := book.register(addr, desc); err != nil {
			return nil, fmt.Errorf("addressbook.json entry '%s': %w", addr, err)
		}
	}
	if err := book.buildIndex(); err != nil {
		return nil, err
	}
	books[network.GetName()] = book
	return book, nil
}

func (b *Book) register(addr, desc string) error {
	f, err := common.ParseFeltValue(addr)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.data[common.FullHex(f)] = desc
	b.mu.Unlock()
	return nil
}

// Register adds a user entry to the book and persists it to
// ~/.starkctl/addressbook.json.
func (b *Book) Register(addr *felt.Felt, desc string) error {
	b.mu.Lock()
	b.data[common.FullHex(addr)] = desc
	b.mu.Unlock()
	if err := b.indexOne(common.FullHex(addr), desc); err != nil {
		return err
	}

	entries := userEntries()
	entries[common.Hex(addr)] = desc
	content, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	path := userEntriesPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0600)
}

// GetName returns the description registered for an address, or "unknown".
func (b *Book) GetName(addr *felt.Felt) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if desc, ok := b.data[common.FullHex(addr)]; ok {
		return desc
	}
	return "unknown"
}

// Entries returns all entries sorted by description.
func (b *Book) Entries() []AddressDesc {
	b.mu.RLock()
	defer b.mu.RUnlock()
	result := make([]AddressDesc, 0, len(b.data))
	for addr, desc := range b.data {
		result = append(result, AddressDesc{Address: addr, Desc: desc})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Desc < result[j].Desc })
	return result
}

// Search finds entries matching input, best first: the bleve index handles
// word and typo matches, and a plain fuzzy substring pass catches what the
// analyzer misses.
func (b *Book) Search(input string) []AddressDesc {
	results := b.searchIndex(input)
	if len(results) > 0 {
		return results
	}

	entries := b.Entries()
	descs := make([]string, len(entries))
	for i, e := range entries {
		descs[i] = e.Desc
	}
	for _, m := range fuzzy.Find(input, descs) {
		results = append(results, entries[m.Index])
	}
	return results
}

// Resolve turns user input into an address: a felt literal is taken as-is,
// anything else is looked up in the book.
func (b *Book) Resolve(input string) (*felt.Felt, error) {
	if f, err := common.ParseFeltValue(input); err == nil {
		return f, nil
	}
	results := b.Search(input)
	if len(results) == 0 {
		return nil, fmt.Errorf("couldn't find address for: %s", input)
	}
	return common.ParseFeltValue(results[0].Address)
}

// GetAddress returns the single best match for input.
func (b *Book) GetAddress(input string) (AddressDesc, error) {
	results := b.Search(strings.TrimSpace(input))
	if len(results) == 0 {
		return AddressDesc{}, fmt.Errorf("couldn't find address for: %s", input)
	}
	return results[0], nil
}
