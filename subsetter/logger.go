package subsetter

import "log/slog"

// Logger is the interface that oasubset uses for structured logging.
//
// The interface is minimal yet compatible with popular logging libraries
// including log/slog, zap, and zerolog. It uses variadic key-value pairs for
// structured attributes, following the same convention as log/slog:
//
//	logger.Warn("dangling reference", "schema", "Ghost")
//
// Use [NewSlogAdapter] to wrap a standard library slog.Logger.
type Logger interface {
	// Debug logs at debug level. Use for detailed diagnostic information.
	Debug(msg string, attrs ...any)

	// Info logs at info level. Use for general operational information.
	Info(msg string, attrs ...any)

	// Warn logs at warn level. Use for potentially harmful situations.
	Warn(msg string, attrs ...any)

	// Error logs at error level. Use for error conditions.
	Error(msg string, attrs ...any)

	// With returns a new Logger with the given attributes prepended to every log.
	With(attrs ...any) Logger
}

// NopLogger is a no-op logger that discards all output.
// It is the default logger used when no logger is configured.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(_ string, _ ...any) {}

// Info implements Logger.
func (NopLogger) Info(_ string, _ ...any) {}

// Warn implements Logger.
func (NopLogger) Warn(_ string, _ ...any) {}

// Error implements Logger.
func (NopLogger) Error(_ string, _ ...any) {}

// With implements Logger.
func (l NopLogger) With(_ ...any) Logger { return l }

// slogAdapter adapts a *slog.Logger to the Logger interface.
type slogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps a standard library slog.Logger as a Logger.
// A nil argument wraps slog.Default().
func NewSlogAdapter(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogAdapter{logger: logger}
}

// Debug implements Logger.
func (a *slogAdapter) Debug(msg string, attrs ...any) { a.logger.Debug(msg, attrs...) }

// Info implements Logger.
func (a *slogAdapter) Info(msg string, attrs ...any) { a.logger.Info(msg, attrs...) }

// Warn implements Logger.
func (a *slogAdapter) Warn(msg string, attrs ...any) { a.logger.Warn(msg, attrs...) }

// Error implements Logger.
func (a *slogAdapter) Error(msg string, attrs ...any) { a.logger.Error(msg, attrs...) }

// With implements Logger.
func (a *slogAdapter) With(attrs ...any) Logger {
	return &slogAdapter{logger: a.logger.With(attrs...)}
}
