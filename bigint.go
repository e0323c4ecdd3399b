package quantize

import "math/big"

type bigIntArithmetic struct{}

func (bigIntArithmetic) truncate(v *big.Int) *big.Int { return v }

func (bigIntArithmetic) quo(a, b *big.Int) *big.Int { return new(big.Int).Quo(a, b) }

func (bigIntArithmetic) mul(a, b *big.Int) *big.Int { return a.Mul(a, b) }

func (bigIntArithmetic) lift(i *big.Int) *big.Int { return i }

// NewBigInt returns a Quantizer that converts an integer to the nearest multiple
// of factor in the direction towards zero.
//
// Examples (factor 5):
//
//	 0 ->  0    -4 ->  0
//	 4 ->  0    -5 -> -5
//	 5 ->  5    -9 -> -5
//	 9 ->  5
//
// Integers have nothing to truncate, so there is no fallback mode: a factor
// below 2 fails with ErrInvalidConfiguration.
//
// Quantize never mutates its argument and always returns a new *big.Int.
// The argument must not be nil.
func NewBigInt(factor int, opts ...Option) (*Bucketer[*big.Int], error) {
	o := applyOptions(opts)

	s, err := Compress(factor)
	if err != nil {
		o.logger.LogConfigured(DomainBigInt, factor, s, err)
		return nil, err
	}

	o.logger.LogConfigured(DomainBigInt, factor, s, nil)
	return newBucketer[*big.Int, *big.Int](DomainBigInt, s, big.NewInt(int64(factor)), bigIntArithmetic{}), nil
}
