// Package quantize maps raw numeric attribute values to coarser bucket keys.
//
// An index that stores bucket keys instead of raw values holds fewer distinct
// entries, trading filter granularity for memory. The index then post-filters
// the candidates of a bucket against the raw values.
//
// Every quantizer is a pure function: the same input always yields the same key,
// and inputs within factor adjacent integers share a key.
//
// # Domains
//
//	| Constructor | Type            | factor < 2          | factor >= 2              |
//	|-------------|-----------------|---------------------|--------------------------|
//	| NewBigInt   | *big.Int        | error               | truncating compression   |
//	| NewInt[T]   | built-in ints   | error               | truncating compression   |
//	| NewDecimal  | decimal.Decimal | truncate only       | truncate + compress      |
//	| NewFloat64  | float64         | truncate only       | truncate + compress (*)  |
//
// (*) narrowed through a saturating int64; see NewFloat64 and InExactRange.
//
// # Bucketing
//
// Compression keys each value by the multiple of the factor nearest to zero.
// With factor 5:
//
//	value:  -9.9  -5.0  -4.2  -0.0  0.0  4.2  5.0  9.9
//	key:      -5    -5     0     0    0    0    5    5
//
// Buckets are therefore half-open away from zero: [0, 5), [5, 10), ... on the
// positive side and (-5, 0], (-10, -5], ... on the negative side. The zero
// bucket is twice as wide, (-5, 5).
//
// # Usage
//
//	q := quantize.NewDecimal(5)
//	key := q.Quantize(decimal.RequireFromString("9.9")) // 5
//
//	iq, err := quantize.NewBigInt(1000)
//	if err != nil {
//	    // errors.Is(err, quantize.ErrInvalidConfiguration)
//	}
//
// All constructors share one generic algorithm; the compress/truncate choice is a
// Strategy value, which can also be passed explicitly:
//
//	s, err := quantize.Compress(10)
//	fq := quantize.NewFloat64FromStrategy(s)
//
// Quantizers are immutable and safe for concurrent use.
package quantize
