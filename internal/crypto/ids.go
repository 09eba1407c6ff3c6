package crypto

import (
	"crypto/sha256"

	"github.com/decred/dcrd/crypto/ripemd160"
)

// AccountIDSize is the size of an XRPL account ID in bytes.
const AccountIDSize = 20

// NodeIDSize is the size of an XRPL node ID in bytes.
const NodeIDSize = 20

// CalcAccountID computes the account ID from a public key as
// RIPEMD160(SHA256(publicKey)). The whole public key, including its
// algorithm prefix byte, is hashed.
func CalcAccountID(publicKey []byte) [AccountIDSize]byte {
	sha256Hash := sha256.Sum256(publicKey)

	hasher := ripemd160.New()
	hasher.Write(sha256Hash[:])

	var result [AccountIDSize]byte
	copy(result[:], hasher.Sum(nil))
	return result
}

// CalcNodeID computes the node ID from a node public key. Node IDs use the
// same computation as account IDs.
func CalcNodeID(publicKey []byte) [NodeIDSize]byte {
	return CalcAccountID(publicKey)
}
