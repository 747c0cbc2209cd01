package common

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/NethermindEth/juno/core/felt"
)

var decValueRegex = regexp.MustCompile(`^[0-9]+$`)

// ParseFeltValue interprets a user supplied field element. Pure digit strings
// are decimal, everything else must be 0x hex. This mirrors how values are
// accepted everywhere on the command line: "123" and "0x7b" are the same felt.
func ParseFeltValue(s string) (*felt.Felt, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty field element value")
	}
	if decValueRegex.MatchString(s) {
		f, err := new(felt.Felt).SetString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid decimal value '%s': %w", s, err)
		}
		return f, nil
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("invalid field element value '%s': expecting decimal digits or 0x hex", s)
	}
	f, err := new(felt.Felt).SetString("0x" + strings.TrimPrefix(strings.TrimPrefix(s, "0X"), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex value '%s': %w", s, err)
	}
	return f, nil
}

// FullHex renders f as the canonical 0x-prefixed lowercase hex form padded to
// 64 nibbles, the representation used when showing addresses and class hashes.
func FullHex(f *felt.Felt) string {
	bi := new(big.Int)
	f.BigInt(bi)
	return fmt.Sprintf("0x%064x", bi)
}

// Hex renders f as unpadded 0x-prefixed lowercase hex, the representation used
// inside persisted JSON documents.
func Hex(f *felt.Felt) string {
	return f.String()
}

// BigToFelt converts a non-negative big integer into a field element.
func BigToFelt(b *big.Int) *felt.Felt {
	return new(felt.Felt).SetBigInt(b)
}

// FeltToBig converts a field element into a fresh big integer.
func FeltToBig(f *felt.Felt) *big.Int {
	return f.BigInt(new(big.Int))
}
