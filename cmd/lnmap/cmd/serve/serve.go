// Package serve provides the stdio server command for the lnmap CLI.
package serve

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/lnmap/internal/appcontext"
	"github.com/agentstation/lnmap/internal/mcp"
)

// NewCommand creates the serve command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server", "mcp"},
		GroupID: "server",
		Short:   "Serve the node directory tools over stdio",
		Long: `Serve exposes the lnmap operations as MCP tools over standard input
and output. Each request is one JSON-RPC message per line; responses are
written to stdout. Logs always go to stderr while serving.`,
		Example: `  # Register with an MCP client
  lnmap serve

  # Authenticated Amboss access
  AMBOSS_API_KEY=... lnmap serve --log-level debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd.Context(), app, os.Stdin, os.Stdout)
		},
	}
}

// Run serves requests read from in until in closes or ctx is cancelled.
func Run(ctx context.Context, app appcontext.Interface, in io.Reader, out io.Writer) error {
	app.ReserveStdout()
	logger := app.Logger()

	registry, err := app.Tools()
	if err != nil {
		return err
	}

	logger.Debug().Str("version", app.Version()).Msg("starting server")

	err = mcp.New(registry, app.Version(), logger).Serve(ctx, in, out)
	if err != nil && ctx.Err() != nil {
		logger.Info().Msg("server stopped")
		return nil
	}
	return err
}
