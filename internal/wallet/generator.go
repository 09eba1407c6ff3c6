package wallet

//go:generate mockgen -source=generator.go -destination=mocks/generator.go -package=mocks

import "github.com/LeJamon/xrpl-testkit/internal/crypto"

// Generator produces fresh random wallets.
type Generator interface {
	Generate() (*Wallet, error)
}

// RandomGenerator generates wallets of a fixed key type from the system CSPRNG.
type RandomGenerator struct {
	KeyType crypto.KeyType
}

// NewGenerator returns a RandomGenerator for keyType.
func NewGenerator(keyType crypto.KeyType) RandomGenerator {
	return RandomGenerator{KeyType: keyType}
}

// Generate implements Generator.
func (g RandomGenerator) Generate() (*Wallet, error) {
	return Generate(g.KeyType)
}
