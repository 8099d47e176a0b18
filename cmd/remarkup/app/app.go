// Package app wires the remarkup CLI together. It owns the configuration,
// the logger, and the shared reconciler instance, and hands them to the
// individual commands through a single injection point.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/addaleax/remarkup"
	"github.com/addaleax/remarkup/internal/cmd/globals"
	"github.com/addaleax/remarkup/internal/profile"
)

// buildInfo carries the version identifiers stamped in at build time.
type buildInfo struct {
	version string
	commit  string
	date    string
	builtBy string
}

// App holds the dependencies shared by all remarkup commands.
type App struct {
	build  buildInfo
	config *Config
	logger *zerolog.Logger

	// Global flags bound to the root command
	flags *globals.Flags

	// Shared reconciler, created lazily on first use
	mu       sync.RWMutex
	remarkup *remarkup.Remarkup
}

// New creates an App with the given build information. Configuration is
// loaded from the environment before any functional options run, so options
// can replace what the environment provided.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := NewLogger(config)

	app := &App{
		build:  buildInfo{version: version, commit: commit, date: date, builtBy: builtBy},
		config: config,
		logger: &logger,
		flags:  &globals.Flags{},
	}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// Option customizes an App during New.
type Option func(*App) error

// WithConfig replaces the configuration loaded from the environment.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger replaces the default logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithRemarkup presets the shared reconciler, bypassing lazy creation.
// Useful for tests that need a reconciler with known settings.
func WithRemarkup(rm *remarkup.Remarkup) Option {
	return func(a *App) error {
		a.remarkup = rm
		return nil
	}
}

// Version returns the release version.
func (a *App) Version() string { return a.build.version }

// Commit returns the git commit the binary was built from.
func (a *App) Commit() string { return a.build.commit }

// Date returns the build date.
func (a *App) Date() string { return a.build.date }

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string { return a.build.builtBy }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// Remarkup returns the shared reconciler. Without options it creates the
// instance on first use and returns the same one afterwards, safe for
// concurrent callers. With options it builds a fresh instance each call,
// for commands whose settings differ from the app defaults.
func (a *App) Remarkup(opts ...remarkup.Option) (*remarkup.Remarkup, error) {
	if len(opts) > 0 {
		return remarkup.New(opts...)
	}

	a.mu.RLock()
	rm := a.remarkup
	a.mu.RUnlock()
	if rm != nil {
		return rm, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.remarkup == nil {
		configOpts, err := a.profileOptions()
		if err != nil {
			return nil, err
		}
		rm, err := remarkup.New(configOpts...)
		if err != nil {
			return nil, err
		}
		a.remarkup = rm
	}
	return a.remarkup, nil
}

// profileOptions translates the configured profile, if any, into reconciler
// options. Without a profile the reconciler runs with its defaults.
func (a *App) profileOptions() ([]remarkup.Option, error) {
	if a.config.ProfilePath == "" {
		return nil, nil
	}
	p, err := profile.Load(a.config.ProfilePath)
	if err != nil {
		return nil, err
	}
	return p.Options(), nil
}

// Shutdown gives main a single cleanup point. The reconciler holds no
// background state, so there is nothing to stop today.
func (a *App) Shutdown(_ context.Context) error {
	return nil
}
