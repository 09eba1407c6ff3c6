// Package ed25519 implements rippled's Ed25519 key derivation from a
// 16-byte family seed.
package ed25519

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/LeJamon/xrpl-testkit/internal/crypto"
	"github.com/LeJamon/xrpl-testkit/internal/crypto/common"
)

// KeyPrefix marks Ed25519 public and private keys.
const KeyPrefix = 0xED

// FamilySeedPrefix is the three-byte address-codec version of an Ed25519 seed.
var FamilySeedPrefix = []byte{0x01, 0xE1, 0x4B}

// ErrInvalidSeed is returned when the seed is not 16 bytes long.
var ErrInvalidSeed = errors.New("ed25519: seed must be 16 bytes")

// ED25519CryptoAlgorithm derives the single Ed25519 keypair of a seed. There
// is no root/account split, so validator keys are refused.
type ED25519CryptoAlgorithm struct{}

var algorithm = ED25519CryptoAlgorithm{}

// ED25519 returns the Ed25519 algorithm.
func ED25519() ED25519CryptoAlgorithm {
	return algorithm
}

// KeyType implements crypto.Algorithm.
func (ED25519CryptoAlgorithm) KeyType() crypto.KeyType {
	return crypto.KeyTypeEd25519
}

// DeriveKeypair uses SHA512-Half of the seed as the Ed25519 private seed.
func (ED25519CryptoAlgorithm) DeriveKeypair(seed []byte, validator bool) (string, string, error) {
	if validator {
		return "", "", crypto.ErrValidatorNotSupported
	}
	if len(seed) != crypto.SeedSize {
		return "", "", ErrInvalidSeed
	}

	raw := common.Sha512Half(seed)
	defer crypto.SecureErase(raw[:])

	pubKey := ed25519.NewKeyFromSeed(raw[:]).Public().(ed25519.PublicKey)

	prefixedPub := append([]byte{KeyPrefix}, pubKey...)
	prefixedPriv := append([]byte{KeyPrefix}, raw[:]...)
	defer crypto.SecureErase(prefixedPriv)

	return strings.ToUpper(hex.EncodeToString(prefixedPriv)), strings.ToUpper(hex.EncodeToString(prefixedPub)), nil
}
