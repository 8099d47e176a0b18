// Package logging provides structured logging for remarkup using zerolog.
// Output is JSON by default and switches to a human-readable console format
// when attached to a terminal. Loggers travel through context.Context so
// library code picks up whatever the caller configured.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("operation", "remark").Msg("Reconciling fragments")
//
//	ctx := logging.WithLogger(context.Background(), log)
//	logging.FromContext(ctx).Debug().Msg("Using logger from context")
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger backs the package-level event constructors and serves as
// the fallback when a context carries no logger. It is built from the
// environment at startup and replaced by SetDefault.
var defaultLogger zerolog.Logger

func init() {
	defaultLogger = NewLoggerFromConfig(envConfig())
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger { return &defaultLogger }

// SetDefault replaces the process-wide logger. zerolog's own global logger
// is kept in sync so third-party code logging through it agrees.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// New creates a JSON logger writing to w at the current global level.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.GlobalLevel()).With().Timestamp().Logger()
}

// NewJSON creates a JSON logger writing to w, defaulting to stderr.
func NewJSON(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return New(w)
}

// With opens a child context on the default logger for attaching fields.
func With() zerolog.Context { return defaultLogger.With() }

// Debug starts a debug level event on the default logger.
func Debug() *zerolog.Event { return defaultLogger.Debug() }

// Info starts an info level event on the default logger.
func Info() *zerolog.Event { return defaultLogger.Info() }

// Warn starts a warning level event on the default logger.
func Warn() *zerolog.Event { return defaultLogger.Warn() }

// Error starts an error level event on the default logger.
func Error() *zerolog.Event { return defaultLogger.Error() }

// Fatal starts a fatal level event on the default logger. The process
// exits once the event is sent.
func Fatal() *zerolog.Event { return defaultLogger.Fatal() }

// Err starts an error level event carrying err on the default logger.
func Err(err error) *zerolog.Event { return defaultLogger.Err(err) }
