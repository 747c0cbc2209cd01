package signer

import (
	"fmt"
	"math/big"
	"os"

	gethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// Keystores use the Web3 secret storage format (the same encrypted JSON
// format Ethereum tooling produces), holding a Stark-curve scalar in the
// private key slot. The byte layout of the format itself is the keystore
// service's business; we only hand bytes in and out.

// scrypt parameters for new keystores, matching the format's standard cost.
const (
	keystoreScryptN = 262144
	keystoreScryptP = 1
)

// DecryptKeystore recovers the private key scalar from the keystore file at
// path using the given password.
func DecryptKeystore(path, password string) (*big.Int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key, err := gethkeystore.DecryptKey(content, password)
	if err != nil {
		return nil, fmt.Errorf("decrypting keystore '%s': %w", path, err)
	}
	return key.PrivateKey.D, nil
}

// EncryptKeystore writes priv to a new keystore file at path, encrypted with
// password. The file is created with owner-only permissions.
func EncryptKeystore(priv *big.Int, path, password string) error {
	if priv.Sign() <= 0 || priv.BitLen() > 256 {
		return fmt.Errorf("private key scalar out of range")
	}
	buf := make([]byte, 32)
	priv.FillBytes(buf)
	ecdsaKey, err := gethcrypto.ToECDSA(buf)
	if err != nil {
		return fmt.Errorf("invalid private key scalar: %w", err)
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	key := &gethkeystore.Key{
		Id:         id,
		Address:    gethcrypto.PubkeyToAddress(ecdsaKey.PublicKey),
		PrivateKey: ecdsaKey,
	}

	keystoreJSON, err := gethkeystore.EncryptKey(key, password, keystoreScryptN, keystoreScryptP)
	if err != nil {
		return err
	}
	return os.WriteFile(path, keystoreJSON, 0600)
}
