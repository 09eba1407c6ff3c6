package account

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	addresscodec "github.com/LeJamon/xrpl-testkit/internal/codec/address-codec"
	"github.com/LeJamon/xrpl-testkit/internal/crypto"
	"github.com/LeJamon/xrpl-testkit/internal/wallet"
	"github.com/LeJamon/xrpl-testkit/internal/wallet/mocks"
)

const (
	masterSeed    = "snoPBrXtMeMyMHUVTgbuqAfg1SUTb"
	masterAddress = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
)

func TestNewUnchecked(t *testing.T) {
	a, err := New("rXYZ", "alice", masterSeed)
	require.NoError(t, err)

	assert.Equal(t, "rXYZ", a.AccountID())
	assert.Equal(t, "alice", a.Nickname())
	assert.Equal(t, masterSeed, a.Seed())
	require.True(t, a.HasWallet())
	assert.Equal(t, masterAddress, a.Wallet().ClassicAddress)

	err = a.Validate()
	assert.ErrorIs(t, err, ErrSeedMismatch)
}

func TestNewWatchOnly(t *testing.T) {
	a, err := New(masterAddress, "gw", "")
	require.NoError(t, err)
	assert.False(t, a.HasWallet())
	assert.Nil(t, a.Wallet())
	assert.NoError(t, a.Validate())

	_, err = a.Keypair()
	assert.ErrorIs(t, err, ErrWatchOnly)
}

func TestNewBadSeed(t *testing.T) {
	_, err := New(masterAddress, "bad", "snotaseed")
	require.ErrorIs(t, err, addresscodec.ErrInvalidSeed)
}

func TestFromSeed(t *testing.T) {
	a, err := FromSeed("master", masterSeed)
	require.NoError(t, err)

	assert.Equal(t, masterAddress, a.AccountID())
	assert.NoError(t, a.Validate())

	kp, err := a.Keypair()
	require.NoError(t, err)
	assert.Equal(t, "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020", kp.PublicKey)
	assert.Equal(t, masterAddress, kp.AccountID)
	assert.True(t, kp.HasAccountID())
}

func TestEquality(t *testing.T) {
	a, err := New("rSAME", "one", "")
	require.NoError(t, err)
	b, err := New("rSAME", "two", masterSeed)
	require.NoError(t, err)
	c, err := New("rOTHER", "one", "")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.True(t, a.Equal(*b))
	assert.False(t, a.NotEqual(b))

	assert.False(t, a.Equal(c))
	assert.True(t, a.NotEqual(c))

	assert.False(t, a.Equal("rSAME"))
	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal((*Account)(nil)))
	assert.True(t, a.NotEqual(42))

	assert.True(t, SameIdentity(a, b))
	assert.False(t, SameIdentity(a, c))
	assert.False(t, SameIdentity(a, nil))
}

func TestNilAccountComparisons(t *testing.T) {
	var missing *Account
	a, err := New("rSAME", "one", "")
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		assert.False(t, missing.Equal(a))
		assert.False(t, missing.Equal(missing))
		assert.False(t, missing.Equal(nil))
		assert.True(t, missing.NotEqual(a))
		assert.Equal(t, "<nil>", missing.String())
		assert.False(t, SameIdentity(missing, a))
		assert.False(t, SameIdentity(a, missing))
	})
}

func TestIdentityAsMapKey(t *testing.T) {
	a, _ := New("rSAME", "one", "")
	b, _ := New("rSAME", "two", "")

	set := map[string]*Account{a.Identity(): a}
	_, ok := set[b.Identity()]
	assert.True(t, ok)
}

func TestString(t *testing.T) {
	named, _ := New("rXYZ", "alice", "")
	assert.Equal(t, "alice", named.String())

	anon, _ := New("rXYZ", "", "")
	assert.Equal(t, "rXYZ", anon.String())
	assert.Equal(t, "rXYZ", fmt.Sprint(anon))
}

func TestAccountIDHex(t *testing.T) {
	a, _ := New("rXYZ", "", "")
	assert.Equal(t, "7258595a", a.AccountIDHex())

	empty, _ := New("", "", "")
	assert.Equal(t, "", empty.AccountIDHex())
}

func TestCreate(t *testing.T) {
	a, err := Create("a")
	require.NoError(t, err)
	b, err := Create("b")
	require.NoError(t, err)

	assert.NotEqual(t, a.AccountID(), b.AccountID())
	assert.False(t, a.Equal(b))
	assert.True(t, strings.HasPrefix(a.Seed(), "sEd"))
	assert.Equal(t, crypto.KeyTypeEd25519, a.Wallet().KeyType)
	assert.Equal(t, "a", a.String())
	assert.NoError(t, a.Validate())
}

func TestCreateWithGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)

	w, err := wallet.FromSeed(masterSeed, wallet.DefaultAccountIndex)
	require.NoError(t, err)
	gen.EXPECT().Generate().Return(w, nil)

	a, err := CreateWith(gen, "master")
	require.NoError(t, err)
	assert.Equal(t, masterAddress, a.AccountID())
	assert.Equal(t, masterSeed, a.Seed())
	assert.Equal(t, "master", a.Nickname())
}

func TestCreateWithGeneratorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)

	boom := errors.New("entropy exhausted")
	gen.EXPECT().Generate().Return(nil, boom)

	_, err := CreateWith(gen, "x")
	require.ErrorIs(t, err, boom)
}

func TestCreateConcurrent(t *testing.T) {
	const n = 32

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
		g    errgroup.Group
	)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("acct-%d", i)
		g.Go(func() error {
			a, err := Create(name)
			if err != nil {
				return err
			}
			mu.Lock()
			seen[a.Identity()] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Len(t, seen, n)
}
