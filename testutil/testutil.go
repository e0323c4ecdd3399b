package testutil

import (
	"math/big"
	"math/rand"
	"sync"

	"github.com/shopspring/decimal"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// SignedInt64 returns a pseudo-random int64 in (-maxAbs, maxAbs).
// maxAbs must be positive.
func (r *RNG) SignedInt64(maxAbs int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.rand.Int63n(maxAbs)
	if r.rand.Intn(2) == 0 {
		return -v
	}
	return v
}

// Float64Range returns, as a float64, a pseudo-random number in [minVal, maxVal).
func (r *RNG) Float64Range(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// Decimal returns a pseudo-random decimal with up to scale fractional digits and
// an integer part in (-maxAbs, maxAbs).
func (r *RNG) Decimal(maxAbs int64, scale int32) decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()

	unscaled := new(big.Int).Mul(big.NewInt(r.rand.Int63n(maxAbs)), new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil))
	unscaled.Add(unscaled, big.NewInt(r.rand.Int63n(pow10(scale))))
	if r.rand.Intn(2) == 0 {
		unscaled.Neg(unscaled)
	}
	return decimal.NewFromBigInt(unscaled, -scale)
}

// BigInt returns a pseudo-random signed integer of up to bits bits.
func (r *RNG) BigInt(bits int) *big.Int {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	v := new(big.Int).Rand(r.rand, limit)
	if r.rand.Intn(2) == 0 {
		v.Neg(v)
	}
	return v
}

func pow10(scale int32) int64 {
	p := int64(1)
	for range scale {
		p *= 10
	}
	return p
}
