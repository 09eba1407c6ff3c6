// Package wallet derives signing wallets from XRPL family seeds and
// generates fresh random ones.
package wallet

import (
	"encoding/hex"
	"fmt"

	addresscodec "github.com/LeJamon/xrpl-testkit/internal/codec/address-codec"
	"github.com/LeJamon/xrpl-testkit/internal/crypto"
)

// DefaultAccountIndex is the account family index used when none is given.
const DefaultAccountIndex uint32 = 0

// Wallet holds the key material derived from one seed.
type Wallet struct {
	// Seed is the base58-encoded family seed the wallet was derived from.
	Seed string

	// KeyType is the algorithm encoded in the seed.
	KeyType crypto.KeyType

	// AccountIndex is the secp256k1 account family index. Ed25519 ignores it.
	AccountIndex uint32

	// PublicKey is the 33-byte public key as uppercase hex.
	PublicKey string

	// PrivateKey is the prefixed 33-byte private key as uppercase hex.
	PrivateKey string

	// ClassicAddress is the r-address of the public key.
	ClassicAddress string
}

// FromSeed derives the wallet of an encoded seed. The same seed and index
// always yield the same wallet.
func FromSeed(seed string, accountIndex uint32) (*Wallet, error) {
	return defaultDeriver.FromSeed(seed, accountIndex)
}

// Generate creates a wallet from a fresh random seed.
func Generate(keyType crypto.KeyType) (*Wallet, error) {
	algo, err := addresscodec.AlgorithmFor(keyType)
	if err != nil {
		return nil, err
	}

	raw, err := crypto.RandomSeed()
	if err != nil {
		return nil, err
	}
	defer crypto.SecureErase(raw)

	seed, err := addresscodec.EncodeSeed(raw, algo)
	if err != nil {
		return nil, err
	}
	return derive(seed, DefaultAccountIndex)
}

// AccountID returns the 20-byte account ID of the public key, the payload
// of ClassicAddress.
func (w *Wallet) AccountID() ([crypto.AccountIDSize]byte, error) {
	pub, err := w.PublicKeyBytes()
	if err != nil {
		return [crypto.AccountIDSize]byte{}, err
	}
	return crypto.CalcAccountID(pub), nil
}

// PublicKeyBytes returns the decoded public key.
func (w *Wallet) PublicKeyBytes() ([]byte, error) {
	pub, err := hex.DecodeString(w.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", addresscodec.ErrInvalidPublicKey, err)
	}
	if !crypto.IsValidPublicKey(pub) {
		return nil, addresscodec.ErrInvalidPublicKey
	}
	return pub, nil
}

// String returns the classic address so key material never ends up in logs.
func (w *Wallet) String() string {
	return w.ClassicAddress
}

func derive(seed string, accountIndex uint32) (*Wallet, error) {
	raw, algo, err := addresscodec.DecodeSeed(seed)
	if err != nil {
		return nil, err
	}
	defer crypto.SecureErase(raw)

	var privKey, pubKey string
	if indexed, ok := algo.(crypto.IndexedAlgorithm); ok {
		privKey, pubKey, err = indexed.DeriveAccountKeypair(raw, accountIndex)
	} else {
		privKey, pubKey, err = algo.DeriveKeypair(raw, false)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to derive %s keypair: %w", algo.KeyType(), err)
	}

	address, err := addresscodec.EncodeClassicAddressFromPublicKeyHex(pubKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encode address: %w", err)
	}

	return &Wallet{
		Seed:           seed,
		KeyType:        algo.KeyType(),
		AccountIndex:   accountIndex,
		PublicKey:      pubKey,
		PrivateKey:     privKey,
		ClassicAddress: address,
	}, nil
}
