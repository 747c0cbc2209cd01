// Package hdpath parses EIP-2645 HD wallet paths, the path scheme required by
// the Starknet Ledger app.
//
// An EIP-2645 path has exactly 6 levels and starts with 2645':
//
//	m/2645'/layer'/application'/eth_address_1'/eth_address_2'/index
//
// Levels may be written as plain numbers ("1195502025'") or as text
// ("starknet'"), in which case the level value is the low 31 bits of the
// SHA-256 hash of the text. The first level may be left empty as a shorthand
// for 2645' ("m//starknet'/...").
package hdpath

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	gethaccounts "github.com/ethereum/go-ethereum/accounts"
)

const (
	pathLevels  = 6
	hardenedBit = 0x80000000

	// BIP-32 encoding of 2645'
	purpose = 2645 | hardenedBit
)

// Level is one level of an EIP-2645 path: either a raw BIP-32 node value or a
// hash-based text segment.
type Level struct {
	raw      uint32
	text     string // non-empty for hash-based levels
	hardened bool
}

// Value returns the BIP-32 node value of the level.
func (l Level) Value() uint32 {
	if l.text == "" {
		return l.raw
	}
	sum := sha256.Sum256([]byte(l.text))
	node := binary.BigEndian.Uint32(sum[28:])
	if l.hardened {
		return node | hardenedBit
	}
	return node & (hardenedBit - 1)
}

func (l Level) Hardened() bool {
	if l.text != "" {
		return l.hardened
	}
	return l.raw&hardenedBit != 0
}

func (l Level) isHash() bool {
	return l.text != ""
}

func (l Level) String() string {
	if l.Hardened() {
		return fmt.Sprintf("%d'", l.Value()&(hardenedBit-1))
	}
	return fmt.Sprintf("%d", l.Value())
}

func parseLevel(s string) (Level, error) {
	if strings.TrimSpace(s) != s || strings.ContainsAny(s, " \t") {
		return Level{}, fmt.Errorf("path level must not contain whitespace")
	}
	body := s
	hardenNotation := false
	if strings.HasSuffix(s, "'") {
		body = s[:len(s)-1]
		hardenNotation = true
	}
	if body == "" {
		return Level{}, fmt.Errorf("empty path level")
	}

	allDigits := true
	for _, c := range body {
		if c < '0' || c > '9' {
			allDigits = false
			break
		}
	}

	if allDigits {
		raw, err := strconv.ParseUint(body, 10, 32)
		if err != nil {
			return Level{}, fmt.Errorf("invalid path level \"%s\": %w", body, err)
		}
		node := uint32(raw)
		if hardenNotation {
			if node&hardenedBit != 0 {
				return Level{}, fmt.Errorf("' appended to an already-hardened value of %d", node)
			}
			node |= hardenedBit
		}
		return Level{raw: node}, nil
	}

	return Level{text: body, hardened: hardenNotation}, nil
}

// Path is a parsed EIP-2645 path.
type Path struct {
	Layer       Level
	Application Level
	EthAddress1 Level
	EthAddress2 Level
	Index       Level
}

// Parse parses and validates an EIP-2645 path string. Hardening is required
// on every level except index, and index must be a plain number so wallets
// can enumerate keys sequentially.
func Parse(s string) (*Path, error) {
	segments := strings.Split(s, "/")
	if len(segments) != pathLevels+1 {
		return nil, fmt.Errorf("EIP-2645 paths must have %d levels", pathLevels)
	}
	if segments[0] != "m" {
		return nil, fmt.Errorf("HD wallet paths must start with \"m/\"")
	}

	// The first level may be empty so users can write m//starknet'/... and
	// avoid spelling 2645' over and over again.
	if segments[1] != "" {
		prefix, err := parseLevel(segments[1])
		if err != nil {
			return nil, err
		}
		if prefix.Value() != purpose {
			return nil, fmt.Errorf("EIP-2645 paths must start with \"m/2645'/\"")
		}
	}

	p := &Path{}
	for i, dst := range []*Level{&p.Layer, &p.Application, &p.EthAddress1, &p.EthAddress2, &p.Index} {
		level, err := parseLevel(segments[i+2])
		if err != nil {
			return nil, err
		}
		*dst = level
	}

	for _, check := range []struct {
		name  string
		level Level
	}{
		{"layer", p.Layer},
		{"application", p.Application},
		{"eth_address_1", p.EthAddress1},
		{"eth_address_2", p.EthAddress2},
	} {
		if !check.level.Hardened() {
			return nil, fmt.Errorf("the \"%s\" level of an EIP-2645 path must be hardened", check.name)
		}
	}

	// Wallets may use sequential index values for key discovery, so hash
	// based index levels are rejected outright.
	if p.Index.isHash() {
		return nil, fmt.Errorf("the \"index\" level must be a number")
	}

	return p, nil
}

// Warnings returns non-fatal usability notes about path choices that make
// automatic key discovery hard. The path stays valid either way.
func (p *Path) Warnings() []string {
	var notes []string
	if p.EthAddress1.isHash() || p.EthAddress1.Value()&(hardenedBit-1) != 0 {
		notes = append(notes, "using any value other than 0' for \"eth_address_1\" might make automatic key discovery difficult or impossible")
	}
	if p.EthAddress2.isHash() || p.EthAddress2.Value()&(hardenedBit-1) > 100 {
		notes = append(notes, "using a large value for \"eth_address_2\" might make automatic key discovery difficult")
	}
	if p.Index.Hardened() {
		notes = append(notes, "hardening \"index\" is non-standard and might make automatic key discovery difficult or impossible")
	}
	if p.Index.Value()&(hardenedBit-1) > 100 {
		notes = append(notes, "using a large value for \"index\" might make automatic key discovery difficult")
	}
	return notes
}

func (p *Path) String() string {
	return fmt.Sprintf("m/2645'/%s/%s/%s/%s/%s",
		p.Layer, p.Application, p.EthAddress1, p.EthAddress2, p.Index)
}

// DerivationPath converts the path into the generic BIP-32 node list form
// used by hardware wallet drivers.
func (p *Path) DerivationPath() gethaccounts.DerivationPath {
	return gethaccounts.DerivationPath{
		purpose,
		p.Layer.Value(),
		p.Application.Value(),
		p.EthAddress1.Value(),
		p.EthAddress2.Value(),
		p.Index.Value(),
	}
}
