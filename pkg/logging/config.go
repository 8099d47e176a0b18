package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// logFilePermissions is the mode used when logs are appended to a file.
const logFilePermissions = 0o644

// Config holds logger construction options.
type Config struct {
	// Level is the minimum level that gets emitted.
	Level string

	// Format selects the output encoding: json, console, or auto. Auto
	// picks console when the destination is a terminal, JSON otherwise.
	Format string

	// Output is the destination: stderr, stdout, discard, or a file path.
	Output string

	// TimeFormat controls timestamp rendering in console mode (kitchen,
	// rfc3339, unix, stamp, or a custom layout).
	TimeFormat string

	// NoColor disables color in console mode.
	NoColor bool

	// AddCaller includes file:line in every event.
	AddCaller bool

	// Fields are attached to every event the logger emits.
	Fields map[string]any
}

// DefaultConfig returns the configuration used when nothing else is given:
// info level, auto format, stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "auto",
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

// envConfig builds the startup configuration from LOG_LEVEL, LOG_FORMAT,
// LOG_OUTPUT and NO_COLOR. DEBUG=1 is accepted as a shorthand for
// LOG_LEVEL=debug.
func envConfig() *Config {
	cfg := DefaultConfig()
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	} else if os.Getenv("DEBUG") != "" {
		cfg.Level = "debug"
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOG_OUTPUT"); v != "" {
		cfg.Output = v
	}
	return cfg
}

// NewLoggerFromConfig creates a logger from cfg. The global zerolog level is
// moved to cfg.Level so child loggers derived via New inherit it.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(newWriter(cfg)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	if len(cfg.Fields) > 0 {
		logger = logger.With().Fields(cfg.Fields).Logger()
	}

	return logger
}

// Configure rebuilds the default logger from cfg.
func Configure(cfg *Config) {
	SetDefault(NewLoggerFromConfig(cfg))
}

// newWriter resolves the configured destination and wraps it in a console
// writer when the format calls for one.
func newWriter(cfg *Config) io.Writer {
	output := openOutput(cfg.Output)

	format := strings.ToLower(cfg.Format)
	if format == "auto" {
		format = "json"
		if f, ok := output.(*os.File); ok {
			if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
				format = "console"
			}
		}
	}

	switch format {
	case "console", "pretty":
		return zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: timeLayout(cfg.TimeFormat),
			NoColor:    cfg.NoColor,
		}
	default:
		return output
	}
}

// openOutput maps the configured destination name to a writer. Unknown
// names are treated as file paths; failing that, stderr.
func openOutput(name string) io.Writer {
	switch strings.ToLower(name) {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	case "discard", "none":
		return io.Discard
	default:
		file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePermissions)
		if err != nil {
			return os.Stderr
		}
		return file
	}
}

// parseLevel maps a level name to a zerolog level, accepting a few aliases
// on top of zerolog's own names. Unknown names fall back to info.
func parseLevel(level string) zerolog.Level {
	switch name := strings.ToLower(level); name {
	case "":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	case "none", "off":
		return zerolog.Disabled
	default:
		if l, err := zerolog.ParseLevel(name); err == nil {
			return l
		}
		return zerolog.InfoLevel
	}
}

// timeLayouts maps timestamp format names to layout strings. The empty
// layout renders Unix timestamps.
var timeLayouts = map[string]string{
	"kitchen":     time.Kitchen,
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"unix":        "",
	"epoch":       "",
	"stamp":       time.Stamp,
}

// timeLayout resolves a timestamp format name. Strings that already look
// like a layout pass through unchanged; anything else falls back to kitchen.
func timeLayout(format string) string {
	if layout, ok := timeLayouts[strings.ToLower(format)]; ok {
		return layout
	}
	if strings.Contains(format, "2006") || strings.Contains(format, "15:04") {
		return format
	}
	return time.Kitchen
}
