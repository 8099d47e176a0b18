package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// loggerKey is the context key under which the logger travels. An unexported
// struct type cannot collide with keys from other packages.
type loggerKey struct{}

// WithLogger returns a context carrying the given logger. A nil logger
// stores the package default instead.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, falling back to the package
// default when the context carries none.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*zerolog.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}

// Ctx is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithFields returns a context whose logger carries the given fields on
// every subsequent event. Values keep their type in the JSON output, and
// zerolog writes map fields in sorted key order.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	logger := FromContext(ctx).With().Fields(fields).Logger()
	return WithLogger(ctx, &logger)
}

// WithField returns a context whose logger carries one extra field.
func WithField(ctx context.Context, key string, value any) context.Context {
	return WithFields(ctx, map[string]any{key: value})
}

// WithOperation tags the context logger with the public operation being
// served, such as "unmark" or "remark".
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithField(ctx, "operation", operation)
}

// WithStage tags the context logger with the reconciliation stage.
func WithStage(ctx context.Context, stage string) context.Context {
	return WithField(ctx, "stage", stage)
}

// WithDocument tags the context logger with the document side being
// processed, "original" or "edited".
func WithDocument(ctx context.Context, side string) context.Context {
	return WithField(ctx, "document", side)
}
