package quantize

// arithmetic supplies the primitives of one numeric domain.
// T is the caller-visible value type, I the integer type bucketing runs in.
type arithmetic[T, I any] interface {
	// truncate narrows v toward zero into I.
	truncate(v T) I
	// quo is division truncated toward zero.
	quo(a, b I) I
	// mul may reuse a; it is only ever called on a fresh quotient.
	mul(a, b I) I
	lift(i I) T
}

var (
	_ Quantizer[float64] = (*Bucketer[float64])(nil)
	_ Quantizer[int64]   = Func[int64](nil)
)

// Bucketer is the Quantizer returned by every constructor in this package.
//
// A Bucketer is immutable and safe for concurrent use.
type Bucketer[T any] struct {
	domain   Domain
	strategy Strategy
	fn       func(T) T
}

// newBucketer builds the one bucketing algorithm shared by all domains:
//
//	truncate-only: lift(truncate(v))
//	compress:      lift(mul(quo(truncate(v), f), f))
//
// factor is ignored unless s is compressing.
func newBucketer[T, I any](domain Domain, s Strategy, factor I, a arithmetic[T, I]) *Bucketer[T] {
	b := &Bucketer[T]{domain: domain, strategy: s}

	if !s.Compressing() {
		b.fn = func(v T) T {
			return a.lift(a.truncate(v))
		}
		return b
	}

	b.fn = func(v T) T {
		return a.lift(a.mul(a.quo(a.truncate(v), factor), factor))
	}
	return b
}

// Quantize returns the bucket key for v.
func (b *Bucketer[T]) Quantize(v T) T {
	return b.fn(v)
}

// Strategy returns the strategy the Bucketer was built with.
func (b *Bucketer[T]) Strategy() Strategy {
	return b.strategy
}

// Domain returns the numeric domain of the Bucketer.
func (b *Bucketer[T]) Domain() Domain {
	return b.domain
}

func (b *Bucketer[T]) String() string {
	return string(b.domain) + "/" + b.strategy.String()
}
