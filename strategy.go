package quantize

import "strconv"

// Strategy selects how a Bucketer coalesces values.
//
// The zero value truncates only. A compressing Strategy can only be obtained
// from Compress, which guarantees a factor of at least 2.
type Strategy struct {
	factor int // 0 for truncate-only
}

// Truncate returns the truncate-only strategy: values are cut toward zero to
// integer granularity and nothing else.
func Truncate() Strategy {
	return Strategy{}
}

// Compress returns a strategy that coalesces factor adjacent integers into one
// bucket, keyed by the multiple of factor nearest to zero.
func Compress(factor int) (Strategy, error) {
	if factor < 2 {
		return Strategy{}, newInvalidFactor(factor, nil)
	}
	return Strategy{factor: factor}, nil
}

// StrategyFor applies the factory fallback rule: a factor below 2 disables
// compression, anything else compresses by factor.
func StrategyFor(factor int) Strategy {
	if factor < 2 {
		return Truncate()
	}
	return Strategy{factor: factor}
}

// Compressing reports whether the strategy coalesces more than one integer per bucket.
func (s Strategy) Compressing() bool {
	return s.factor >= 2
}

// Factor returns the bucket width. Truncate-only buckets have width 1.
func (s Strategy) Factor() int {
	if !s.Compressing() {
		return 1
	}
	return s.factor
}

func (s Strategy) String() string {
	if !s.Compressing() {
		return "truncate"
	}
	return "compress(" + strconv.Itoa(s.factor) + ")"
}
