// Package amboss provides a client for the Amboss GraphQL API.
package amboss

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/agentstation/lnmap/internal/transport"
	"github.com/agentstation/lnmap/pkg/constants"
	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/logging"
	"github.com/agentstation/lnmap/pkg/records"
	"github.com/agentstation/lnmap/pkg/sources"
)

// Client talks to the Amboss GraphQL endpoint.
type Client struct {
	transport *transport.Client
	url       string
}

// NewClient creates a new Amboss client. An empty url selects the public
// endpoint and an empty apiKey leaves requests unauthenticated.
func NewClient(url, apiKey string, opts ...transport.Option) *Client {
	if url == "" {
		url = constants.AmbossGraphQLURL
	}
	opts = append([]transport.Option{transport.WithAuth(&transport.BearerAuth{}, apiKey)}, opts...)
	return &Client{
		transport: transport.New(sources.AmbossID.String(), opts...),
		url:       url,
	}
}

// HasAPIKey returns true if requests carry a bearer credential.
func (c *Client) HasAPIKey() bool {
	return c.transport.Authenticated()
}

// Lookup returns the access chain for a node lookup. Amboss has a single
// channel; the reduced query is a degradation inside that channel, not a
// separate one.
func (c *Client) Lookup(pubkey string) sources.Chain[*records.Node] {
	return sources.Chain[*records.Node]{
		Source: sources.AmbossID,
		Primary: func(ctx context.Context) (*records.Node, error) {
			return c.Node(ctx, pubkey)
		},
	}
}

// Node fetches a node with the enriched query. When that query fails at the
// extraction layer (a GraphQL error payload or an unexpected data shape) the
// reduced query is tried instead.
func (c *Client) Node(ctx context.Context, pubkey string) (*records.Node, error) {
	node, err := c.node(ctx, nodeQuery, pubkey)
	if err == nil || !(errors.IsGraphQL(err) || errors.IsParse(err)) {
		return node, err
	}

	logging.Ctx(ctx).Warn().Err(err).Msg("enriched node query failed, retrying with reduced query")
	return c.node(ctx, simpleNodeQuery, pubkey)
}

func (c *Client) node(ctx context.Context, query, pubkey string) (*records.Node, error) {
	var resp nodeResponse
	if err := c.transport.GraphQL(ctx, c.url, query, map[string]any{"pubkey": pubkey}, &resp); err != nil {
		return nil, err
	}
	node := convertNode(&resp, pubkey)
	if node == nil {
		return nil, errors.NewNotFoundError("node", pubkey)
	}
	return node, nil
}

// Search finds nodes whose alias matches query. At most limit results are returned.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]*records.Node, error) {
	var resp searchResponse
	if err := c.transport.GraphQL(ctx, c.url, searchQuery, map[string]any{"query": query}, &resp); err != nil {
		return nil, err
	}
	return convertSearch(&resp, limit), nil
}

// Introspect returns the query type of the Amboss schema as indented JSON.
func (c *Client) Introspect(ctx context.Context) (string, error) {
	var data json.RawMessage
	if err := c.transport.GraphQL(ctx, c.url, introspectionQuery, nil, &data); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return "", errors.WrapParse("json", sources.AmbossID.String(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}
