package wallet

import (
	"encoding/hex"
	"strings"
	"testing"

	addresscodec "github.com/LeJamon/xrpl-testkit/internal/codec/address-codec"
	"github.com/LeJamon/xrpl-testkit/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const masterSeed = "snoPBrXtMeMyMHUVTgbuqAfg1SUTb"

func TestFromSeedMaster(t *testing.T) {
	w, err := FromSeed(masterSeed, DefaultAccountIndex)
	require.NoError(t, err)

	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", w.ClassicAddress)
	assert.Equal(t, "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020", w.PublicKey)
	assert.Equal(t, masterSeed, w.Seed)
	assert.Equal(t, crypto.KeyTypeSecp256k1, w.KeyType)
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", w.String())

	id, err := w.AccountID()
	require.NoError(t, err)
	assert.Equal(t, "b5f762798a53d543a014caf8b297cff8f2f937e8", hex.EncodeToString(id[:]))
}

func TestPublicKeyBytes(t *testing.T) {
	w, err := FromSeed(masterSeed, DefaultAccountIndex)
	require.NoError(t, err)

	pub, err := w.PublicKeyBytes()
	require.NoError(t, err)
	assert.Len(t, pub, 33)
	assert.Equal(t, crypto.KeyTypeSecp256k1, crypto.PublicKeyType(pub))

	bad := &Wallet{PublicKey: "zz"}
	_, err = bad.PublicKeyBytes()
	assert.ErrorIs(t, err, addresscodec.ErrInvalidPublicKey)

	_, err = bad.AccountID()
	assert.ErrorIs(t, err, addresscodec.ErrInvalidPublicKey)

	short := &Wallet{PublicKey: "0330E7FC"}
	_, err = short.PublicKeyBytes()
	assert.ErrorIs(t, err, addresscodec.ErrInvalidPublicKey)
}

func TestFromSeedAccountIndex(t *testing.T) {
	w0, err := FromSeed(masterSeed, 0)
	require.NoError(t, err)
	w1, err := FromSeed(masterSeed, 1)
	require.NoError(t, err)

	assert.NotEqual(t, w0.ClassicAddress, w1.ClassicAddress)
	assert.Equal(t, uint32(1), w1.AccountIndex)
}

func TestFromSeedEd25519IgnoresIndex(t *testing.T) {
	g, err := Generate(crypto.KeyTypeEd25519)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(g.Seed, "sEd"))

	w0, err := FromSeed(g.Seed, 0)
	require.NoError(t, err)
	w5, err := FromSeed(g.Seed, 5)
	require.NoError(t, err)

	assert.Equal(t, g.ClassicAddress, w0.ClassicAddress)
	assert.Equal(t, w0.ClassicAddress, w5.ClassicAddress)
}

func TestFromSeedInvalid(t *testing.T) {
	_, err := FromSeed("not-a-seed", 0)
	require.ErrorIs(t, err, addresscodec.ErrInvalidSeed)
}

func TestGenerate(t *testing.T) {
	for _, kt := range []crypto.KeyType{crypto.KeyTypeSecp256k1, crypto.KeyTypeEd25519} {
		t.Run(kt.String(), func(t *testing.T) {
			a, err := Generate(kt)
			require.NoError(t, err)
			b, err := Generate(kt)
			require.NoError(t, err)

			assert.NotEqual(t, a.ClassicAddress, b.ClassicAddress)
			assert.True(t, addresscodec.IsValidClassicAddress(a.ClassicAddress))
			assert.Equal(t, kt, a.KeyType)

			again, err := FromSeed(a.Seed, DefaultAccountIndex)
			require.NoError(t, err)
			assert.Equal(t, a, again)
		})
	}

	_, err := Generate(crypto.KeyTypeUnknown)
	require.ErrorIs(t, err, crypto.ErrUnsupportedKeyType)
}

func TestRandomGenerator(t *testing.T) {
	var gen Generator = NewGenerator(crypto.KeyTypeEd25519)
	w, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, crypto.KeyTypeEd25519, w.KeyType)
}
