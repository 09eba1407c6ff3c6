package ed25519

import (
	"testing"

	"github.com/LeJamon/xrpl-testkit/internal/crypto"
	"github.com/LeJamon/xrpl-testkit/internal/crypto/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestED25519DeriveKeypair(t *testing.T) {
	h := common.Sha512Half([]byte("masterpassphrase"))
	seed := h[:crypto.SeedSize]

	priv, pub, err := ED25519().DeriveKeypair(seed, false)
	require.NoError(t, err)

	assert.Len(t, priv, 66)
	assert.Len(t, pub, 66)
	assert.Equal(t, "ED", priv[:2])
	assert.Equal(t, "ED", pub[:2])

	priv2, pub2, err := ED25519().DeriveKeypair(seed, false)
	require.NoError(t, err)
	assert.Equal(t, priv, priv2)
	assert.Equal(t, pub, pub2)
}

func TestED25519ValidatorNotSupported(t *testing.T) {
	_, _, err := ED25519().DeriveKeypair(make([]byte, crypto.SeedSize), true)
	require.ErrorIs(t, err, crypto.ErrValidatorNotSupported)
}

func TestED25519RejectsShortSeed(t *testing.T) {
	_, _, err := ED25519().DeriveKeypair([]byte("test seed"), false)
	require.ErrorIs(t, err, ErrInvalidSeed)
}
