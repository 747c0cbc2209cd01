package signer

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/NethermindEth/starknet.go/curve"

	"github.com/starkctl/starkctl/common"
)

// Signature is a Stark-curve ECDSA signature over a single field element.
type Signature struct {
	R *felt.Felt
	S *felt.Felt
}

// Backend is a live signing backend. Implementations either hold key material
// locally (keystore, raw key) or delegate to a hardware device.
//
// All methods take a context because hardware backends suspend on device I/O
// until the user physically acts; local backends return immediately.
type Backend interface {
	PublicKey(ctx context.Context) (*felt.Felt, error)
	SignHash(ctx context.Context, hash *felt.Felt) (*Signature, error)
}

// KeyBackend signs with an in-process Stark-curve private key.
type KeyBackend struct {
	priv *big.Int
}

func NewKeyBackend(priv *big.Int) *KeyBackend {
	return &KeyBackend{priv: priv}
}

func (b *KeyBackend) PublicKey(_ context.Context) (*felt.Felt, error) {
	x, _, err := curve.Curve.PrivateToPoint(b.priv)
	if err != nil {
		return nil, fmt.Errorf("deriving public key: %w", err)
	}
	return common.BigToFelt(x), nil
}

func (b *KeyBackend) SignHash(_ context.Context, hash *felt.Felt) (*Signature, error) {
	r, s, err := curve.Curve.Sign(common.FeltToBig(hash), b.priv)
	if err != nil {
		return nil, fmt.Errorf("signing hash: %w", err)
	}
	return &Signature{R: common.BigToFelt(r), S: common.BigToFelt(s)}, nil
}

// ParsePrivateKey parses a hex encoded Stark-curve private key, with or
// without the 0x prefix. Key scalars are at most 32 bytes; anything larger is
// rejected here so downstream byte packing never has to truncate.
func ParsePrivateKey(hexKey string) (*big.Int, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"), "0X")
	if trimmed == "" {
		return nil, fmt.Errorf("empty private key")
	}
	priv, ok := new(big.Int).SetString(trimmed, 16)
	if !ok || priv.Sign() <= 0 {
		return nil, fmt.Errorf("invalid private key hex '%s'", hexKey)
	}
	if priv.BitLen() > 256 {
		return nil, fmt.Errorf("private key '%s' does not fit in 32 bytes", hexKey)
	}
	return priv, nil
}

// GenerateKey returns a fresh random Stark-curve private key.
func GenerateKey() (*big.Int, error) {
	return curve.Curve.GetRandomPrivateKey()
}

// PublicKeyOf derives the Stark-curve public key (the x coordinate) of priv.
func PublicKeyOf(priv *big.Int) (*felt.Felt, error) {
	x, _, err := curve.Curve.PrivateToPoint(priv)
	if err != nil {
		return nil, err
	}
	return common.BigToFelt(x), nil
}
