// Package secp256k1 implements rippled's deterministic secp256k1 key
// derivation from a 16-byte family seed.
package secp256k1

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/LeJamon/xrpl-testkit/internal/crypto"
	"github.com/LeJamon/xrpl-testkit/internal/crypto/common"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// PrivateKeyPrefix is prepended to the 32-byte scalar to form a 33-byte private key.
	PrivateKeyPrefix = 0x00

	// FamilySeedPrefix is the address-codec version byte of a secp256k1 seed.
	FamilySeedPrefix = 0x21
)

// ErrInvalidSeed is returned when the seed is not 16 bytes long.
var ErrInvalidSeed = errors.New("secp256k1: seed must be 16 bytes")

// SECP256K1CryptoAlgorithm derives secp256k1 keypairs the way rippled does:
// a root key from the seed, then an account key from the root public key and
// an account family index.
type SECP256K1CryptoAlgorithm struct{}

var algorithm = SECP256K1CryptoAlgorithm{}

// SECP256K1 returns the secp256k1 algorithm.
func SECP256K1() SECP256K1CryptoAlgorithm {
	return algorithm
}

// KeyType implements crypto.Algorithm.
func (SECP256K1CryptoAlgorithm) KeyType() crypto.KeyType {
	return crypto.KeyTypeSecp256k1
}

// DeriveKeypair derives the validator (root) keypair when validator is set,
// otherwise the account keypair at family index 0.
func (a SECP256K1CryptoAlgorithm) DeriveKeypair(seed []byte, validator bool) (string, string, error) {
	if validator {
		root, err := deriveRootScalar(seed)
		if err != nil {
			return "", "", err
		}
		return encodeKeypair(secp256k1.NewPrivateKey(root))
	}
	return a.DeriveAccountKeypair(seed, 0)
}

// DeriveAccountKeypair derives the account keypair at the given family index.
func (SECP256K1CryptoAlgorithm) DeriveAccountKeypair(seed []byte, accountIndex uint32) (string, string, error) {
	root, err := deriveRootScalar(seed)
	if err != nil {
		return "", "", err
	}
	rootPub := secp256k1.NewPrivateKey(root).PubKey().SerializeCompressed()

	var indexBuf [4]byte
	binary.BigEndian.PutUint32(indexBuf[:], accountIndex)

	tweak := deriveScalar(rootPub, indexBuf[:])
	account := new(secp256k1.ModNScalar).Set(root).Add(tweak)
	return encodeKeypair(secp256k1.NewPrivateKey(account))
}

// deriveRootScalar hashes seed||seq for increasing seq until the result is a
// valid non-zero scalar below the curve order.
func deriveRootScalar(seed []byte) (*secp256k1.ModNScalar, error) {
	if len(seed) != crypto.SeedSize {
		return nil, ErrInvalidSeed
	}
	return deriveScalar(seed), nil
}

func deriveScalar(parts ...[]byte) *secp256k1.ModNScalar {
	var seqBuf [4]byte
	for seq := uint32(0); ; seq++ {
		binary.BigEndian.PutUint32(seqBuf[:], seq)
		candidate := common.Sha512Half(append(parts, seqBuf[:])...)

		var scalar secp256k1.ModNScalar
		overflow := scalar.SetByteSlice(candidate[:])
		if !overflow && !scalar.IsZero() {
			return &scalar
		}
	}
}

func encodeKeypair(key *secp256k1.PrivateKey) (string, string, error) {
	priv := make([]byte, 0, 33)
	priv = append(priv, PrivateKeyPrefix)
	priv = append(priv, key.Serialize()...)
	defer crypto.SecureErase(priv)

	pub := key.PubKey().SerializeCompressed()
	return strings.ToUpper(hex.EncodeToString(priv)), strings.ToUpper(hex.EncodeToString(pub)), nil
}
