package addresscodec

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/LeJamon/xrpl-testkit/internal/crypto"
)

var (
	// ErrInvalidClassicAddress is returned for strings that are not r-addresses.
	ErrInvalidClassicAddress = errors.New("invalid classic address")
	// ErrInvalidPublicKey is returned for public keys that are not 33 bytes.
	ErrInvalidPublicKey = errors.New("invalid public key")
)

// Sha256RipeMD160 returns RIPEMD160(SHA256(b)), the account/node ID hash.
func Sha256RipeMD160(b []byte) []byte {
	id := crypto.CalcAccountID(b)
	return id[:]
}

// EncodeAccountID encodes a 20-byte account ID as a classic address.
func EncodeAccountID(accountID []byte) (string, error) {
	if len(accountID) != AccountIDLength {
		return "", fmt.Errorf("%w: account ID must be %d bytes", ErrInvalidClassicAddress, AccountIDLength)
	}
	return Base58CheckEncode(accountID, AccountAddressPrefix), nil
}

// EncodeClassicAddressFromPublicKeyHex derives the classic address of a
// hex-encoded public key.
func EncodeClassicAddressFromPublicKeyHex(pubKeyHex string) (string, error) {
	pubKey, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	if len(pubKey) != PublicKeyLength {
		return "", ErrInvalidPublicKey
	}
	return EncodeAccountID(Sha256RipeMD160(pubKey))
}

// DecodeClassicAddressToAccountID returns the version prefix and the 20-byte
// account ID of a classic address.
func DecodeClassicAddressToAccountID(address string) (typePrefix, accountID []byte, err error) {
	id, err := decodeWithPrefix(address, []byte{AccountAddressPrefix}, AccountIDLength)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidClassicAddress, err)
	}
	return []byte{AccountAddressPrefix}, id, nil
}

// IsValidClassicAddress reports whether address decodes to an account ID.
func IsValidClassicAddress(address string) bool {
	_, _, err := DecodeClassicAddressToAccountID(address)
	return err == nil
}

// EncodeAccountPublicKey encodes a 33-byte public key with the 'a' prefix.
func EncodeAccountPublicKey(pubKey []byte) (string, error) {
	if len(pubKey) != PublicKeyLength {
		return "", ErrInvalidPublicKey
	}
	return Base58CheckEncode(pubKey, AccountPublicKeyPrefix), nil
}

// DecodeAccountPublicKey decodes an 'a'-prefixed account public key.
func DecodeAccountPublicKey(s string) ([]byte, error) {
	return decodeWithPrefix(s, []byte{AccountPublicKeyPrefix}, PublicKeyLength)
}

// EncodeNodePublicKey encodes a 33-byte public key with the 'n' prefix.
func EncodeNodePublicKey(pubKey []byte) (string, error) {
	if len(pubKey) != PublicKeyLength {
		return "", ErrInvalidPublicKey
	}
	return Base58CheckEncode(pubKey, NodePublicKeyPrefix), nil
}

// DecodeNodePublicKey decodes an 'n'-prefixed node public key.
func DecodeNodePublicKey(s string) ([]byte, error) {
	return decodeWithPrefix(s, []byte{NodePublicKeyPrefix}, PublicKeyLength)
}
