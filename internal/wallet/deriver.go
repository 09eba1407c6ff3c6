package wallet

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of derived wallets kept by the package-level
// deriver.
const DefaultCacheSize = 256

type derivationKey struct {
	seed         string
	accountIndex uint32
}

// Deriver derives wallets from seeds and remembers recent results. It is safe
// for concurrent use.
type Deriver struct {
	cache *lru.Cache[derivationKey, Wallet]
}

var defaultDeriver = mustDeriver(DefaultCacheSize)

// NewDeriver creates a deriver caching up to size wallets.
func NewDeriver(size int) (*Deriver, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[derivationKey, Wallet](size)
	if err != nil {
		return nil, err
	}
	return &Deriver{cache: cache}, nil
}

func mustDeriver(size int) *Deriver {
	d, err := NewDeriver(size)
	if err != nil {
		panic("failed to create wallet deriver: " + err.Error())
	}
	return d
}

// FromSeed returns the wallet of seed at accountIndex, deriving it on a miss.
// Every call returns its own copy.
func (d *Deriver) FromSeed(seed string, accountIndex uint32) (*Wallet, error) {
	key := derivationKey{seed: seed, accountIndex: accountIndex}
	if w, ok := d.cache.Get(key); ok {
		return &w, nil
	}

	w, err := derive(seed, accountIndex)
	if err != nil {
		return nil, err
	}
	d.cache.Add(key, *w)
	return w, nil
}

// Len returns the number of cached wallets.
func (d *Deriver) Len() int {
	return d.cache.Len()
}

// Resize changes the capacity of the cache.
func (d *Deriver) Resize(size int) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	d.cache.Resize(size)
}

// ResizeCache changes the capacity of the package-level deriver used by FromSeed.
func ResizeCache(size int) {
	defaultDeriver.Resize(size)
}
