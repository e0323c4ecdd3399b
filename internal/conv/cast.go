package conv

import (
	"fmt"
	"math"
)

// Integer is the set of Go's built-in integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntTo converts int to any integer type, failing if the value does not survive the round trip.
func IntTo[T Integer](v int) (T, error) {
	t := T(v)
	if int(t) != v || (v < 0) != (t < 0) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to %T", v, t)
	}
	return t, nil
}

// Float64ToInt64Saturating truncates v toward zero into int64.
//
// Out-of-range input saturates instead of wrapping:
//   - NaN converts to 0
//   - v >= 2^63 (including +Inf) converts to math.MaxInt64
//   - v < -2^63 (including -Inf) converts to math.MinInt64
func Float64ToInt64Saturating(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= 0x1p63:
		return math.MaxInt64
	case v < -0x1p63:
		return math.MinInt64
	}
	return int64(v)
}
