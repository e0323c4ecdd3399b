package quantize

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// decimalArithmetic buckets in the integer domain: truncation takes the integer
// component, and lift restores a decimal with exponent 0.
type decimalArithmetic struct {
	bigIntArithmetic
}

func (decimalArithmetic) truncate(v decimal.Decimal) *big.Int { return v.BigInt() }

func (decimalArithmetic) lift(i *big.Int) decimal.Decimal { return decimal.NewFromBigInt(i, 0) }

// NewDecimal returns a Quantizer that converts a decimal to the nearest multiple
// of factor in the direction towards zero.
//
// Examples (factor 5):
//
//	 0.0 -> 0    -0.0 ->  0
//	 4.2 -> 0    -4.2 ->  0
//	 5.0 -> 5    -5.0 -> -5
//	 9.9 -> 5    -9.9 -> -5
//
// A factor below 2 disables compression: everything after the decimal point is
// truncated and nothing else. Results always have exponent 0.
func NewDecimal(factor int, opts ...Option) *Bucketer[decimal.Decimal] {
	o := applyOptions(opts)
	s := StrategyFor(factor)
	o.logger.LogConfigured(DomainDecimal, factor, s, nil)
	return newDecimalBucketer(s)
}

// NewDecimalFromStrategy returns a decimal Quantizer for an explicit strategy.
func NewDecimalFromStrategy(s Strategy, opts ...Option) *Bucketer[decimal.Decimal] {
	o := applyOptions(opts)
	o.logger.LogConfigured(DomainDecimal, s.Factor(), s, nil)
	return newDecimalBucketer(s)
}

func newDecimalBucketer(s Strategy) *Bucketer[decimal.Decimal] {
	return newBucketer[decimal.Decimal, *big.Int](DomainDecimal, s, big.NewInt(int64(s.Factor())), decimalArithmetic{})
}
