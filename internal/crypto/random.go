package crypto

import (
	"crypto/rand"
	"math/big"
)

// RandomSource yields uniform random indexes. Implementations must be safe
// for concurrent use and must not bias any index in [0, n): repeated draws
// are independent samples.
type RandomSource interface {
	// IntN returns a uniform random int in [0, n). n must be positive.
	IntN(n int) (int, error)
}

// cryptoSource draws from crypto/rand. rand.Int uses rejection sampling,
// so draws stay uniform for pool sizes that do not divide the underlying
// byte range.
type cryptoSource struct{}

func (cryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
