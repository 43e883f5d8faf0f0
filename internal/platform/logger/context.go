package logger

import (
	"context"
	"log/slog"
)

// contextKey is a private type for context keys defined in this package,
// preventing collisions with keys from other packages.
type contextKey int

const (
	// loggerKey is the context key under which a request-scoped logger is stored.
	loggerKey contextKey = iota
	// requestIDKey is the context key under which a trace/request ID is stored.
	requestIDKey
)

// WithLogger returns a new context carrying the provided logger. Handlers
// and middleware use this to make a request-scoped logger (typically
// enriched with a trace ID) available to downstream code.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	if log == nil {
		// ALLOW-PANIC: storing a nil logger would turn every downstream
		// FromContext call into a latent nil dereference
		panic("logger cannot be nil when stored in context")
	}
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext returns the logger stored in the context, or nil if the
// context does not carry one. Most callers should prefer
// FromContextOrDefault.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nil
	}
	log, _ := ctx.Value(loggerKey).(*slog.Logger)
	return log
}

// FromContextOrDefault returns the logger stored in the context when
// present, the provided default when not, and slog.Default() when both
// are absent. It never returns nil.
func FromContextOrDefault(ctx context.Context, defaultLogger *slog.Logger) *slog.Logger {
	if log := FromContext(ctx); log != nil {
		return log
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return slog.Default()
}

// WithRequestID returns a new context carrying the given request/trace
// identifier.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request/trace identifier stored in the
// context, or an empty string if none is present.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
