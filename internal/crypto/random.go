package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
)

var (
	// ErrUnsupportedKeyType is returned when an unsupported key type is requested.
	ErrUnsupportedKeyType = errors.New("unsupported key type")
	// ErrRandomGeneration is returned when random number generation fails.
	ErrRandomGeneration = errors.New("failed to generate random bytes")
)

// SeedSize is the size of an XRPL family seed in bytes.
const SeedSize = 16

// RandomBytes generates n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, ErrRandomGeneration
	}
	return b, nil
}

// RandomSeed generates a random 16-byte family seed.
func RandomSeed() ([]byte, error) {
	return RandomBytes(SeedSize)
}

// RandomKeyPair generates a random key pair for the specified key type.
// Both keys are 33 bytes:
//
//   - secp256k1: compressed public key; private key is 0x00 followed by the scalar
//   - Ed25519: 0xED followed by the public key; private key is 0xED followed by the seed
func RandomKeyPair(keyType KeyType) (publicKey, privateKey []byte, err error) {
	switch keyType {
	case KeyTypeSecp256k1:
		return randomSecp256k1KeyPair()
	case KeyTypeEd25519:
		return randomEd25519KeyPair()
	default:
		return nil, nil, ErrUnsupportedKeyType
	}
}

func randomSecp256k1KeyPair() (publicKey, privateKey []byte, err error) {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, nil, ErrRandomGeneration
	}

	scalar := privKey.Serialize()
	defer SecureErase(scalar)

	privateKey = make([]byte, 1+len(scalar))
	privateKey[0] = 0x00
	copy(privateKey[1:], scalar)

	return privKey.PubKey().SerializeCompressed(), privateKey, nil
}

func randomEd25519KeyPair() (publicKey, privateKey []byte, err error) {
	seed, err := RandomBytes(ed25519.SeedSize)
	if err != nil {
		return nil, nil, err
	}
	defer SecureErase(seed)

	pubKey := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)

	publicKey = make([]byte, 1+len(pubKey))
	publicKey[0] = 0xED
	copy(publicKey[1:], pubKey)

	privateKey = make([]byte, 1+len(seed))
	privateKey[0] = 0xED
	copy(privateKey[1:], seed)

	return publicKey, privateKey, nil
}
