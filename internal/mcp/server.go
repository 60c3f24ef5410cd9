// Package mcp serves the node directory tools over a line-delimited
// JSON-RPC stream on stdin and stdout. Stdout carries only protocol
// messages; all logging goes to stderr.
package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log"

	gomcp "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/agentstation/lnmap/internal/tools"
	"github.com/agentstation/lnmap/internal/utils/ptr"
	"github.com/agentstation/lnmap/pkg/logging"
)

// Name is the server name announced during initialization.
const Name = "lnmap"

// Server exposes a tools.Registry as a stdio request/response server.
type Server struct {
	registry *tools.Registry
	server   *server.MCPServer
	logger   *zerolog.Logger
}

// New creates a Server for registry. A nil logger selects the default logger.
func New(registry *tools.Registry, version string, logger *zerolog.Logger) *Server {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Server{
		registry: registry,
		logger:   logger,
		server: server.NewMCPServer(Name, version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
	}
	for _, t := range registry.Tools() {
		s.server.AddTool(toolDefinition(t), s.handle(t.Name))
	}
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.server
}

// Serve reads requests from in and writes responses to out until in is
// exhausted or ctx is cancelled.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.server)
	stdio.SetErrorLogger(log.New(s.logger, "", 0))
	stdio.SetContextFunc(func(ctx context.Context) context.Context {
		return logging.WithLogger(ctx, s.logger)
	})

	s.logger.Info().Int("tools", len(s.registry.Tools())).Msg("lnmap server running on stdio")
	return stdio.Listen(ctx, in, out)
}

// handle adapts a registry tool to a protocol handler. Tool failures become
// error results; the protocol call itself succeeds.
func (s *Server) handle(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		ctx = logging.WithLogger(ctx, s.logger)
		args, err := json.Marshal(req.Params.Arguments)
		if err != nil {
			return gomcp.NewToolResultError("invalid arguments: " + err.Error()), nil
		}

		res, err := s.registry.Call(ctx, name, args)
		if err != nil {
			return gomcp.NewToolResultError(err.Error()), nil
		}
		return gomcp.NewToolResultText(res.Text), nil
	}
}

func toolDefinition(t tools.Tool) gomcp.Tool {
	def := gomcp.NewToolWithRawSchema(t.Name, t.Description, t.InputSchema)
	def.Annotations = gomcp.ToolAnnotation{
		Title:           t.Title,
		ReadOnlyHint:    ptr.To(true),
		DestructiveHint: ptr.To(false),
		IdempotentHint:  ptr.To(true),
		OpenWorldHint:   ptr.To(t.OpenWorld),
	}
	return def
}
