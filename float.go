package quantize

import (
	"math"

	"github.com/hupe1980/quantize/internal/conv"
)

// MaxExactFloat64 is the largest magnitude below which every integer is exactly
// representable as a float64 (2^53). Compressing float64 quantizers guarantee
// idempotence and alignment to the factor only within this range.
const MaxExactFloat64 = 1 << 53

// InExactRange reports whether v lies within [-MaxExactFloat64, MaxExactFloat64].
// NaN is never in range.
func InExactRange(v float64) bool {
	return math.Abs(v) <= MaxExactFloat64
}

// floatArithmetic truncates in float64 itself, exact for every magnitude.
type floatArithmetic struct{}

func (floatArithmetic) truncate(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	t := math.Trunc(v)
	if t == 0 {
		return 0 // drop the sign of -0
	}
	return t
}

func (floatArithmetic) quo(a, b float64) float64 { return math.Trunc(a / b) }

func (floatArithmetic) mul(a, b float64) float64 { return a * b }

func (floatArithmetic) lift(i float64) float64 { return i }

// narrowedFloatArithmetic buckets through a saturating int64 intermediate.
type narrowedFloatArithmetic struct {
	integerArithmetic[int64]
}

func (narrowedFloatArithmetic) truncate(v float64) int64 { return conv.Float64ToInt64Saturating(v) }

func (narrowedFloatArithmetic) lift(i int64) float64 { return float64(i) }

// NewFloat64 returns a Quantizer that converts a float64 to the nearest multiple
// of factor in the direction towards zero.
//
// Examples (factor 5):
//
//	 0.0 -> 0    -0.0 ->  0
//	 4.2 -> 0    -4.2 ->  0
//	 5.0 -> 5    -5.0 -> -5
//	 9.9 -> 5    -9.9 -> -5
//
// A factor below 2 disables compression: the fractional part is discarded with
// math.Trunc, which is exact for every finite magnitude and keeps ±Inf.
//
// With compression enabled, values are narrowed to int64 before division.
// Narrowing saturates: NaN maps to 0, and magnitudes at or beyond 2^63 clamp to
// math.MaxInt64 or math.MinInt64. Bucket keys are exact multiples of factor only
// for inputs where InExactRange holds.
func NewFloat64(factor int, opts ...Option) *Bucketer[float64] {
	o := applyOptions(opts)
	s := StrategyFor(factor)
	o.logger.LogConfigured(DomainFloat64, factor, s, nil)
	return newFloat64Bucketer(s)
}

// NewFloat64FromStrategy returns a float64 Quantizer for an explicit strategy.
func NewFloat64FromStrategy(s Strategy, opts ...Option) *Bucketer[float64] {
	o := applyOptions(opts)
	o.logger.LogConfigured(DomainFloat64, s.Factor(), s, nil)
	return newFloat64Bucketer(s)
}

func newFloat64Bucketer(s Strategy) *Bucketer[float64] {
	if !s.Compressing() {
		return newBucketer[float64, float64](DomainFloat64, s, 1, floatArithmetic{})
	}
	return newBucketer[float64, int64](DomainFloat64, s, int64(s.Factor()), narrowedFloatArithmetic{})
}
