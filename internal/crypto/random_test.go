package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomBytes(t *testing.T) {
	t.Run("Generates correct length", func(t *testing.T) {
		for _, n := range []int{1, 16, 32, 64} {
			b, err := RandomBytes(n)
			require.NoError(t, err)
			assert.Equal(t, n, len(b))
		}
	})

	t.Run("Non-positive length returns nil", func(t *testing.T) {
		b, err := RandomBytes(0)
		require.NoError(t, err)
		assert.Nil(t, b)

		b, err = RandomBytes(-1)
		require.NoError(t, err)
		assert.Nil(t, b)
	})
}

func TestRandomKeyPair(t *testing.T) {
	t.Run("Secp256k1 key pair", func(t *testing.T) {
		pub, priv, err := RandomKeyPair(KeyTypeSecp256k1)
		require.NoError(t, err)

		assert.Equal(t, 33, len(pub))
		assert.Equal(t, KeyTypeSecp256k1, PublicKeyType(pub))
		assert.Equal(t, 33, len(priv))
		assert.Equal(t, byte(0x00), priv[0])
	})

	t.Run("Ed25519 key pair", func(t *testing.T) {
		pub, priv, err := RandomKeyPair(KeyTypeEd25519)
		require.NoError(t, err)

		assert.Equal(t, KeyTypeEd25519, PublicKeyType(pub))
		assert.Equal(t, 33, len(priv))
		assert.Equal(t, byte(0xED), priv[0])
	})

	t.Run("Unknown key type returns error", func(t *testing.T) {
		pub, priv, err := RandomKeyPair(KeyTypeUnknown)
		assert.ErrorIs(t, err, ErrUnsupportedKeyType)
		assert.Nil(t, pub)
		assert.Nil(t, priv)
	})

	t.Run("Generates different key pairs", func(t *testing.T) {
		pub1, _, err := RandomKeyPair(KeyTypeSecp256k1)
		require.NoError(t, err)
		pub2, _, err := RandomKeyPair(KeyTypeSecp256k1)
		require.NoError(t, err)

		assert.False(t, bytes.Equal(pub1, pub2))
	})
}

func TestRandomSeed(t *testing.T) {
	seed1, err := RandomSeed()
	require.NoError(t, err)
	assert.Equal(t, SeedSize, len(seed1))

	seed2, err := RandomSeed()
	require.NoError(t, err)
	assert.False(t, bytes.Equal(seed1, seed2))
}
