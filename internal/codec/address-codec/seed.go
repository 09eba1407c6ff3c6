package addresscodec

import (
	"errors"
	"fmt"

	"github.com/LeJamon/xrpl-testkit/internal/crypto"
	ed25519crypto "github.com/LeJamon/xrpl-testkit/internal/crypto/algorithms/ed25519"
	secp256k1crypto "github.com/LeJamon/xrpl-testkit/internal/crypto/algorithms/secp256k1"
)

// ErrInvalidSeed is returned for seeds that fail to decode or carry an
// unknown version prefix.
var ErrInvalidSeed = errors.New("invalid seed")

// EncodeSeed encodes a 16-byte family seed for the given algorithm.
// Secp256k1 seeds start with 's', Ed25519 seeds with "sEd".
func EncodeSeed(seed []byte, algo crypto.Algorithm) (string, error) {
	if len(seed) != SeedLength {
		return "", fmt.Errorf("%w: seed must be %d bytes, got %d", ErrInvalidSeed, SeedLength, len(seed))
	}

	switch algo.KeyType() {
	case crypto.KeyTypeSecp256k1:
		return Base58CheckEncode(seed, FamilySeedPrefix), nil
	case crypto.KeyTypeEd25519:
		return Base58CheckEncode(seed, ed25519crypto.FamilySeedPrefix...), nil
	default:
		return "", crypto.ErrUnsupportedKeyType
	}
}

// DecodeSeed decodes an encoded seed and reports which algorithm it is for.
func DecodeSeed(seed string) ([]byte, crypto.Algorithm, error) {
	if raw, err := decodeWithPrefix(seed, ed25519crypto.FamilySeedPrefix, SeedLength); err == nil {
		return raw, ed25519crypto.ED25519(), nil
	}

	raw, err := decodeWithPrefix(seed, []byte{FamilySeedPrefix}, SeedLength)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return raw, secp256k1crypto.SECP256K1(), nil
}

// AlgorithmFor returns the key derivation algorithm of a key type.
func AlgorithmFor(keyType crypto.KeyType) (crypto.Algorithm, error) {
	switch keyType {
	case crypto.KeyTypeSecp256k1:
		return secp256k1crypto.SECP256K1(), nil
	case crypto.KeyTypeEd25519:
		return ed25519crypto.ED25519(), nil
	default:
		return nil, crypto.ErrUnsupportedKeyType
	}
}
