package account

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	addresscodec "github.com/LeJamon/xrpl-testkit/internal/codec/address-codec"
	"github.com/LeJamon/xrpl-testkit/internal/crypto"
	"github.com/LeJamon/xrpl-testkit/internal/wallet"
)

// Keypair is a public/secret key pair with an optional account ID. An empty
// AccountID means it has not been computed.
type Keypair struct {
	PublicKey string `json:"public_key"`
	SecretKey string `json:"secret_key"`
	AccountID string `json:"account_id,omitempty"`
}

// HasAccountID reports whether the account ID has been computed.
func (k Keypair) HasAccountID() bool {
	return k.AccountID != ""
}

// KeypairFromWallet copies the hex key material of w.
func KeypairFromWallet(w *wallet.Wallet) Keypair {
	return Keypair{
		PublicKey: w.PublicKey,
		SecretKey: w.PrivateKey,
		AccountID: w.ClassicAddress,
	}
}

// ErrInvalidNodeKey is returned when a generated or supplied node key is
// not a well-formed public key.
var ErrInvalidNodeKey = errors.New("invalid node public key")

// NewNodeKeypair generates a random node identity. The public key is the
// base58 node public key, the secret key is uppercase hex. AccountID stays
// empty: node keys do not sign for accounts.
func NewNodeKeypair(keyType crypto.KeyType) (Keypair, error) {
	pub, priv, err := crypto.RandomKeyPair(keyType)
	if err != nil {
		return Keypair{}, err
	}
	defer crypto.SecureErase(priv)

	if crypto.PublicKeyType(pub) != keyType {
		return Keypair{}, fmt.Errorf("%w: generated %s key has %s format",
			ErrInvalidNodeKey, keyType, crypto.PublicKeyType(pub))
	}

	nodePublic, err := addresscodec.EncodeNodePublicKey(pub)
	if err != nil {
		return Keypair{}, fmt.Errorf("failed to encode node public key: %w", err)
	}

	return Keypair{
		PublicKey: nodePublic,
		SecretKey: strings.ToUpper(hex.EncodeToString(priv)),
	}, nil
}

// NodeID returns the uppercase hex node ID of a node keypair.
func NodeID(kp Keypair) (string, error) {
	pub, err := addresscodec.DecodeNodePublicKey(kp.PublicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidNodeKey, err)
	}
	if !crypto.IsValidPublicKey(pub) {
		return "", ErrInvalidNodeKey
	}
	id := crypto.CalcNodeID(pub)
	return strings.ToUpper(hex.EncodeToString(id[:])), nil
}
