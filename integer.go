package quantize

import "github.com/hupe1980/quantize/internal/conv"

// Integer is the set of Go's built-in integer kinds accepted by NewInt.
type Integer = conv.Integer

type integerArithmetic[I Integer] struct{}

func (integerArithmetic[I]) truncate(v I) I { return v }

// Go's integer division already truncates toward zero.
func (integerArithmetic[I]) quo(a, b I) I { return a / b }

func (integerArithmetic[I]) mul(a, b I) I { return a * b }

func (integerArithmetic[I]) lift(i I) I { return i }

// NewInt returns a Quantizer for machine integers with the same semantics as
// NewBigInt: the nearest multiple of factor in the direction towards zero.
//
// A factor below 2, or one that does not fit T, fails with ErrInvalidConfiguration.
func NewInt[T Integer](factor int, opts ...Option) (*Bucketer[T], error) {
	o := applyOptions(opts)

	s, err := Compress(factor)
	if err != nil {
		o.logger.LogConfigured(DomainInteger, factor, s, err)
		return nil, err
	}

	f, err := conv.IntTo[T](factor)
	if err != nil {
		err = newInvalidFactor(factor, err)
		o.logger.LogConfigured(DomainInteger, factor, Truncate(), err)
		return nil, err
	}

	o.logger.LogConfigured(DomainInteger, factor, s, nil)
	return newBucketer[T, T](DomainInteger, s, f, integerArithmetic[T]{}), nil
}
