package quantize

// Quantizer maps a raw attribute value to the bucket key stored by an index.
//
// Implementations must be total, deterministic and idempotent:
// Quantize(Quantize(v)) == Quantize(v). They must not retain or mutate v.
type Quantizer[T any] interface {
	Quantize(v T) T
}

// Func adapts an ordinary function to the Quantizer interface.
type Func[T any] func(T) T

// Quantize calls f(v).
func (f Func[T]) Quantize(v T) T { return f(v) }

// Domain names the numeric domain a Bucketer operates on.
type Domain string

const (
	DomainBigInt  Domain = "bigint"
	DomainDecimal Domain = "decimal"
	DomainFloat64 Domain = "float64"
	DomainInteger Domain = "integer"
)
