// Package account models ledger accounts used by test scenarios: an account
// ID, a display nickname and the seed its signing wallet is derived from.
package account

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/LeJamon/xrpl-testkit/internal/crypto"
	"github.com/LeJamon/xrpl-testkit/internal/wallet"
)

var (
	// ErrSeedMismatch is reported by Validate when the seed derives a
	// different address than the stored account ID.
	ErrSeedMismatch = errors.New("seed does not derive account ID")
	// ErrWatchOnly is returned when key material is requested from an
	// account created without a seed.
	ErrWatchOnly = errors.New("account has no wallet")
)

var defaultGenerator wallet.Generator = wallet.NewGenerator(crypto.KeyTypeEd25519)

// Identified is implemented by values with a ledger identity.
type Identified interface {
	Identity() string
}

// Account is an immutable ledger account. Two accounts are equal when their
// account IDs match, whatever their nicknames or seeds.
type Account struct {
	accountID string
	nickname  string
	seed      string
	wallet    *wallet.Wallet
}

// New builds an account from its parts and derives the wallet from seed.
// It does not check that seed derives accountID; use FromSeed for that, or
// Validate afterwards. An empty seed yields a watch-only account.
func New(accountID, nickname, seed string) (*Account, error) {
	a := &Account{
		accountID: accountID,
		nickname:  nickname,
		seed:      seed,
	}
	if seed == "" {
		return a, nil
	}

	w, err := wallet.FromSeed(seed, wallet.DefaultAccountIndex)
	if err != nil {
		return nil, err
	}
	a.wallet = w
	return a, nil
}

// FromSeed builds an account whose ID is the address derived from seed.
func FromSeed(nickname, seed string) (*Account, error) {
	w, err := wallet.FromSeed(seed, wallet.DefaultAccountIndex)
	if err != nil {
		return nil, err
	}
	return &Account{
		accountID: w.ClassicAddress,
		nickname:  nickname,
		seed:      w.Seed,
		wallet:    w,
	}, nil
}

// Create builds an account from a fresh random Ed25519 wallet.
func Create(name string) (*Account, error) {
	return CreateWith(defaultGenerator, name)
}

// CreateWith builds an account from a wallet produced by gen.
func CreateWith(gen wallet.Generator, name string) (*Account, error) {
	w, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate wallet for %q: %w", name, err)
	}
	return &Account{
		accountID: w.ClassicAddress,
		nickname:  name,
		seed:      w.Seed,
		wallet:    w,
	}, nil
}

// AccountID returns the classic address of the account.
func (a *Account) AccountID() string { return a.accountID }

// Nickname returns the display name, possibly empty.
func (a *Account) Nickname() string { return a.nickname }

// Seed returns the encoded seed, empty for watch-only accounts.
func (a *Account) Seed() string { return a.seed }

// Wallet returns the derived wallet, nil for watch-only accounts.
func (a *Account) Wallet() *wallet.Wallet { return a.wallet }

// HasWallet reports whether the account can sign.
func (a *Account) HasWallet() bool { return a.wallet != nil }

// Identity implements Identified.
func (a *Account) Identity() string { return a.accountID }

// Equal reports whether other is an Account with the same account ID.
// A nil account equals nothing.
func (a *Account) Equal(other any) bool {
	if a == nil {
		return false
	}
	switch o := other.(type) {
	case *Account:
		if o == nil {
			return false
		}
		return a.accountID == o.accountID
	case Account:
		return a.accountID == o.accountID
	default:
		return false
	}
}

// NotEqual is the negation of Equal.
func (a *Account) NotEqual(other any) bool {
	return !a.Equal(other)
}

// SameIdentity reports whether a and b carry the same identity.
func SameIdentity(a, b Identified) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	return a.Identity() == b.Identity()
}

func isNil(v Identified) bool {
	if v == nil {
		return true
	}
	a, ok := v.(*Account)
	return ok && a == nil
}

// String returns the nickname, or the account ID when there is none.
func (a *Account) String() string {
	if a == nil {
		return "<nil>"
	}
	if a.nickname != "" {
		return a.nickname
	}
	return a.accountID
}

// AccountIDHex returns the lowercase hex of the account ID's text, not of
// the decoded 20-byte ID.
func (a *Account) AccountIDHex() string {
	return hex.EncodeToString([]byte(a.accountID))
}

// Keypair returns the wallet key material tagged with the account ID.
func (a *Account) Keypair() (Keypair, error) {
	if a.wallet == nil {
		return Keypair{}, fmt.Errorf("%w: %s", ErrWatchOnly, a)
	}
	kp := KeypairFromWallet(a.wallet)
	kp.AccountID = a.accountID
	return kp, nil
}

// Validate reports whether the seed derives the stored account ID.
// Watch-only accounts always validate.
func (a *Account) Validate() error {
	if a.wallet == nil {
		return nil
	}
	if a.wallet.ClassicAddress != a.accountID {
		return fmt.Errorf("%w: seed derives %s, account is %s",
			ErrSeedMismatch, a.wallet.ClassicAddress, a.accountID)
	}
	return nil
}
