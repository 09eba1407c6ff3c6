package crypto

import "errors"

// ErrValidatorNotSupported is returned by algorithms that cannot derive
// validator keys.
var ErrValidatorNotSupported = errors.New("validator keypairs not supported by this algorithm")

// Algorithm derives XRPL keypairs from a 16-byte family seed.
//
// Keys are returned as uppercase hex. Private keys carry a one-byte prefix
// (0x00 for secp256k1, 0xED for Ed25519) so that both algorithms produce
// 33-byte private keys.
type Algorithm interface {
	KeyType() KeyType
	DeriveKeypair(seed []byte, validator bool) (privateKey, publicKey string, err error)
}

// IndexedAlgorithm is implemented by algorithms whose account keys depend on
// an account family index in addition to the seed.
type IndexedAlgorithm interface {
	Algorithm
	DeriveAccountKeypair(seed []byte, accountIndex uint32) (privateKey, publicKey string, err error)
}
