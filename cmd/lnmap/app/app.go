// Package app provides the application context and dependency management
// for the lnmap CLI. It centralizes configuration, logging and the lazily
// created lnmap client.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/lnmap"
	"github.com/agentstation/lnmap/internal/appcontext"
	"github.com/agentstation/lnmap/internal/tools"
	"github.com/agentstation/lnmap/pkg/errors"
)

// App represents the lnmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Client and registry (lazy-initialized, singleton)
	mu       sync.RWMutex
	client   *lnmap.Client
	registry *tools.Registry
}

var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment
// that can be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// ReserveStdout rebuilds the logger so it never writes to stdout.
func (a *App) ReserveStdout() {
	a.config.ReserveStdout = true
	logger := NewLogger(a.config)
	a.logger = &logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Client returns the lnmap client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (*lnmap.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	c, err := lnmap.New(a.clientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}
	a.client = c
	return c, nil
}

// Tools returns the operation registry bound to the client.
func (a *App) Tools() (*tools.Registry, error) {
	a.mu.RLock()
	reg := a.registry
	a.mu.RUnlock()
	if reg != nil {
		return reg, nil
	}

	c, err := a.Client()
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.registry == nil {
		a.registry = tools.New(c)
	}
	return a.registry, nil
}

// Shutdown performs graceful shutdown of the application. Requests in
// flight are bounded by their own timeouts, so there is nothing to drain.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Debug().Msg("shutting down")
	return ctx.Err()
}

// clientOptions constructs lnmap options from the app configuration.
func (a *App) clientOptions() []lnmap.Option {
	opts := []lnmap.Option{
		lnmap.WithUserAgent("lnmap/" + a.version),
	}

	if a.config.AmbossAPIKey != "" {
		opts = append(opts, lnmap.WithAmbossAPIKey(a.config.AmbossAPIKey))
	}
	if a.config.Timeout > 0 {
		opts = append(opts, lnmap.WithTimeout(a.config.Timeout))
	}
	if a.config.AmbossURL != "" {
		opts = append(opts, lnmap.WithAmbossURL(a.config.AmbossURL))
	}
	if a.config.OneMLURL != "" {
		opts = append(opts, lnmap.WithOneMLURL(a.config.OneMLURL))
	}
	if a.config.LNPlusURL != "" {
		opts = append(opts, lnmap.WithLNPlusURL(a.config.LNPlusURL))
	}
	if a.config.LNPlusAPIURL != "" {
		opts = append(opts, lnmap.WithLNPlusAPIURL(a.config.LNPlusAPIURL))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client (useful for testing).
func WithClient(c *lnmap.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
