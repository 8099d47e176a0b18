package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/addaleax/remarkup/pkg/logging"
)

// NewLogger builds the CLI logger from the application configuration.
//
// Level precedence, highest first: an explicit level (--log-level flag or
// LOG_LEVEL), then -v (debug), then -q (warn), then info. Caller
// annotations switch on automatically at debug and below.
func NewLogger(config *Config) zerolog.Logger {
	level := determineLogLevel(config)

	return logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level == "debug" || level == "trace",
	})
}

// determineLogLevel applies the documented precedence. Conflicting -v and
// -q resolve to quiet, with a warning on stderr.
func determineLogLevel(config *Config) string {
	if config.LogLevel != "" {
		validated := validateLogLevel(config.LogLevel)
		if validated != config.LogLevel {
			fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using %q\n", config.LogLevel, validated)
		}
		return validated
	}

	switch {
	case config.Verbose && config.Quiet:
		fmt.Fprintln(os.Stderr, "Warning: both --verbose and --quiet given, keeping --quiet")
		return "warn"
	case config.Verbose:
		return "debug"
	case config.Quiet:
		return "warn"
	default:
		return "info"
	}
}

// validateLogLevel returns level if it names a level the CLI accepts, info
// otherwise.
func validateLogLevel(level string) string {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	default:
		return "info"
	}
}
