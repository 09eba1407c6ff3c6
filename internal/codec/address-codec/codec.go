// Package addresscodec encodes XRPL identifiers (classic addresses, seeds,
// public keys) in the ripple base58check format.
package addresscodec

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// Alphabet is the XRP Ledger base58 alphabet. It differs from Bitcoin's in
// ordering only, so leading zero bytes encode as 'r'.
const Alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// Version prefixes of the encoded types.
const (
	AccountAddressPrefix   byte = 0x00
	NodePublicKeyPrefix    byte = 0x1C
	NodePrivateKeyPrefix   byte = 0x20
	FamilySeedPrefix       byte = 0x21
	AccountSecretKeyPrefix byte = 0x22
	AccountPublicKeyPrefix byte = 0x23
)

// Payload lengths.
const (
	AccountIDLength  = 20
	SeedLength       = 16
	PublicKeyLength  = 33
	PrivateKeyLength = 32
	checksumLength   = 4
)

var (
	// ErrInvalidEncoding is returned for strings that are not valid base58.
	ErrInvalidEncoding = errors.New("invalid base58 encoding")
	// ErrChecksum is returned when the trailing checksum does not match.
	ErrChecksum = errors.New("base58check checksum mismatch")
)

var xrplAlphabet = base58.NewAlphabet(Alphabet)

// Base58CheckEncode prepends prefix to payload, appends the four-byte
// double-SHA256 checksum and encodes the result.
func Base58CheckEncode(payload []byte, prefix ...byte) string {
	buf := make([]byte, 0, len(prefix)+len(payload)+checksumLength)
	buf = append(buf, prefix...)
	buf = append(buf, payload...)
	sum := checksum(buf)
	buf = append(buf, sum[:]...)
	return base58.EncodeAlphabet(buf, xrplAlphabet)
}

// Base58CheckDecode decodes s and verifies its checksum. The returned slice
// still carries the version prefix.
func Base58CheckDecode(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrInvalidEncoding
	}
	raw, err := base58.DecodeAlphabet(s, xrplAlphabet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(raw) < checksumLength {
		return nil, ErrInvalidEncoding
	}

	body, sum := raw[:len(raw)-checksumLength], raw[len(raw)-checksumLength:]
	expected := checksum(body)
	if !bytes.Equal(sum, expected[:]) {
		return nil, ErrChecksum
	}
	return body, nil
}

// decodeWithPrefix decodes s and strips prefix, checking the payload length.
func decodeWithPrefix(s string, prefix []byte, payloadLen int) ([]byte, error) {
	body, err := Base58CheckDecode(s)
	if err != nil {
		return nil, err
	}
	if len(body) != len(prefix)+payloadLen || !bytes.HasPrefix(body, prefix) {
		return nil, ErrInvalidEncoding
	}
	return body[len(prefix):], nil
}

func checksum(b []byte) [checksumLength]byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])

	var out [checksumLength]byte
	copy(out[:], second[:checksumLength])
	return out
}
