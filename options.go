package quantize

import "log/slog"

type options struct {
	logger *Logger
}

// Option configures quantizer construction.
//
// Options only affect construction; a built quantizer has no tunables.
type Option func(*options)

// WithLogger configures structured logging of quantizer construction.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := quantize.NewJSONLogger(slog.LevelDebug)
//	q := quantize.NewDecimal(5, quantize.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
