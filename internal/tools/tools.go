// Package tools defines the named node directory operations. Each tool
// decodes and validates its JSON arguments, runs one lnmap operation and
// renders the result as text. The stdio server and the CLI share them.
package tools

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/agentstation/lnmap"
	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/logging"
)

// Service is the set of lnmap operations the tools call.
// *lnmap.Client implements it.
type Service interface {
	Lookup(ctx context.Context, pubkey string) (*lnmap.NodeReport, error)
	TopNodes(ctx context.Context, order lnmap.Order, limit int) (*lnmap.TopNodes, error)
	NodesByRank(ctx context.Context, q lnmap.RankSearch) (*lnmap.RankedNodes, error)
	HighestRated(ctx context.Context, q lnmap.RatedSearch) (*lnmap.RatedNodes, error)
	FindSwaps(ctx context.Context, q lnmap.SwapSearch) (*lnmap.Swaps, error)
	FindPath(ctx context.Context, origin, destination string, amountSats int64) error
	Compare(ctx context.Context, pubkeys []string) (*lnmap.Comparison, error)
	Introspect(ctx context.Context) (string, error)
	SearchByAlias(ctx context.Context, query string, limit int) (*lnmap.SearchResult, error)
}

var _ Service = (*lnmap.Client)(nil)

// Result is the output of one tool call.
type Result struct {
	// Text is the response document: indented JSON, or a plain message
	// when there is nothing to list.
	Text string

	// Data is the structured value Text was rendered from. It is nil for
	// plain messages.
	Data any
}

// Handler runs a tool with raw JSON arguments.
type Handler func(ctx context.Context, args json.RawMessage) (*Result, error)

// Tool describes one named operation.
type Tool struct {
	Name        string
	Title       string
	Description string
	InputSchema json.RawMessage

	// OpenWorld is set when the tool reaches upstream services whose
	// content is outside our control.
	OpenWorld bool

	Handler Handler
}

// Registry holds the tools by name.
type Registry struct {
	tools map[string]Tool
}

// New creates a Registry with every tool bound to svc.
func New(svc Service) *Registry {
	h := &handlers{svc: svc}
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range h.tools() {
		r.tools[t.Name] = t
	}
	return r
}

// Tools returns every tool sorted by name.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Call runs the named tool. Validation failures return a
// *errors.ValidationError before any upstream is contacted.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (*Result, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, errors.NewNotFoundError("tool", name)
	}

	ctx = logging.WithField(ctx, "tool", name)
	logger := logging.FromContext(ctx)
	logger.Debug().RawJSON("args", compact(args)).Msg("tool call")

	res, err := t.Handler(ctx, args)
	if err != nil {
		logger.Warn().Err(err).Msg("tool call failed")
		return nil, err
	}
	return res, nil
}

func compact(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || !json.Valid(raw) {
		return json.RawMessage(`{}`)
	}
	return raw
}
