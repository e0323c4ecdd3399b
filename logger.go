package quantize

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with quantizer-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDomain adds a domain field to the logger.
func (l *Logger) WithDomain(domain Domain) *Logger {
	return &Logger{
		Logger: l.Logger.With("domain", string(domain)),
	}
}

// LogConfigured logs the outcome of building a quantizer.
// requested is the factor the caller asked for, s the strategy actually used.
// A nil Logger logs nothing.
func (l *Logger) LogConfigured(domain Domain, requested int, s Strategy, err error) {
	if l == nil || l.Logger == nil {
		return
	}

	if err != nil {
		l.Warn("quantizer configuration rejected",
			"domain", string(domain),
			"factor", requested,
			"error", err,
		)
		return
	}

	if !s.Compressing() {
		l.Info("compression disabled, truncating only",
			"domain", string(domain),
			"factor", requested,
		)
		return
	}

	l.Debug("quantizer configured",
		"domain", string(domain),
		"strategy", s.String(),
		"factor", s.Factor(),
	)
}
