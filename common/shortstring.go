package common

import (
	"fmt"
	"math/big"

	"github.com/NethermindEth/juno/core/felt"
)

// Cairo short strings are ASCII strings of at most 31 characters packed
// big-endian into a single field element.
const maxShortStringLen = 31

// ShortStringToFelt encodes an ASCII string of at most 31 characters into its
// Cairo short string felt representation.
func ShortStringToFelt(s string) (*felt.Felt, error) {
	if len(s) > maxShortStringLen {
		return nil, fmt.Errorf("short strings must not exceed %d characters, got %d", maxShortStringLen, len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return nil, fmt.Errorf("short strings must be ASCII only, found byte 0x%02x", s[i])
		}
	}
	return new(felt.Felt).SetBytes([]byte(s)), nil
}

// FeltToShortString decodes a felt back into the ASCII string it packs.
func FeltToShortString(f *felt.Felt) (string, error) {
	bi := f.BigInt(new(big.Int))
	raw := bi.Bytes()
	if len(raw) > maxShortStringLen {
		return "", fmt.Errorf("value does not fit in %d bytes", maxShortStringLen)
	}
	for _, b := range raw {
		if b > 127 || b == 0 {
			return "", fmt.Errorf("value is not a printable Cairo short string")
		}
	}
	return string(raw), nil
}
