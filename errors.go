package quantize

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when a quantizer cannot be built from
	// the supplied configuration. It is never returned by Quantize.
	ErrInvalidConfiguration = errors.New("invalid quantizer configuration")
)

// ErrInvalidCompressionFactor indicates a compression factor below 2 (or one that
// does not fit the target integer type) was passed to a compressing realization.
//
// It wraps ErrInvalidConfiguration, so errors.Is(err, ErrInvalidConfiguration) holds.
type ErrInvalidCompressionFactor struct {
	Factor int
	cause  error
}

func newInvalidFactor(factor int, cause error) *ErrInvalidCompressionFactor {
	if cause == nil {
		cause = ErrInvalidConfiguration
	} else {
		cause = fmt.Errorf("%w: %w", ErrInvalidConfiguration, cause)
	}
	return &ErrInvalidCompressionFactor{Factor: factor, cause: cause}
}

func (e *ErrInvalidCompressionFactor) Error() string {
	if e.cause != nil && e.cause != ErrInvalidConfiguration {
		return fmt.Sprintf("invalid compression factor %d: %v", e.Factor, e.cause)
	}
	return fmt.Sprintf("invalid compression factor, must be >= 2: %d", e.Factor)
}

func (e *ErrInvalidCompressionFactor) Unwrap() error { return e.cause }
