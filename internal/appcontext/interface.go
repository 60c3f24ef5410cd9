// Package appcontext provides the shared application context interface
// used by all commands. Commands accept it rather than the concrete App so
// they can be tested with a Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/lnmap"
	"github.com/agentstation/lnmap/internal/tools"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/lnmap/app implements it.
type Interface interface {
	// Client returns the lnmap client, creating it lazily if needed.
	Client() (*lnmap.Client, error)

	// Tools returns the named operation registry bound to the client.
	Tools() (*tools.Registry, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// ReserveStdout rebuilds the logger so that nothing but responses is
	// written to stdout.
	ReserveStdout()

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
