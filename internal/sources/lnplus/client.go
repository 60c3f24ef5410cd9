// Package lnplus provides a client for Lightning Network Plus. Node profiles
// and listings are scraped from the website; swaps come from the JSON API
// with the website as a fallback.
package lnplus

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/agentstation/lnmap/internal/transport"
	"github.com/agentstation/lnmap/pkg/constants"
	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/records"
	"github.com/agentstation/lnmap/pkg/sources"
)

// Client talks to Lightning Network Plus.
type Client struct {
	transport *transport.Client
	baseURL   string
	apiURL    string
}

// NewClient creates a new LN+ client. Empty URLs select the public site and API.
func NewClient(baseURL, apiURL string, opts ...transport.Option) *Client {
	if baseURL == "" {
		baseURL = constants.LNPlusBaseURL
	}
	if apiURL == "" {
		apiURL = constants.LNPlusAPIURL
	}
	return &Client{
		transport: transport.New(sources.LNPlusID.String(), opts...),
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiURL:    strings.TrimRight(apiURL, "/"),
	}
}

// Lookup returns the access chain for a node lookup. LN+ publishes no node
// API, so the profile page is the only channel.
func (c *Client) Lookup(pubkey string) sources.Chain[*records.Node] {
	return sources.Chain[*records.Node]{
		Source: sources.LNPlusID,
		Primary: func(ctx context.Context) (*records.Node, error) {
			return c.Node(ctx, pubkey)
		},
	}
}

// Node scrapes a node profile page.
func (c *Client) Node(ctx context.Context, pubkey string) (*records.Node, error) {
	doc, err := c.transport.GetDocument(ctx, c.baseURL+"/nodes/"+url.PathEscape(pubkey))
	if err != nil {
		return nil, err
	}
	node := parseProfile(doc, pubkey)
	if node == nil {
		return nil, errors.NewNotFoundError("node", pubkey)
	}
	return node, nil
}

// SwapQuery selects swaps by status and page.
type SwapQuery struct {
	Status records.SwapStatus
	Page   int
}

// Swaps returns the access chain for a swap listing: the JSON API first,
// then the swaps page.
func (c *Client) Swaps(q SwapQuery) sources.Chain[[]*records.Swap] {
	return sources.Chain[[]*records.Swap]{
		Source: sources.LNPlusID,
		Primary: func(ctx context.Context) ([]*records.Swap, error) {
			return c.SwapsAPI(ctx, q)
		},
		Secondary: func(ctx context.Context) ([]*records.Swap, error) {
			return c.SwapsHTML(ctx, q)
		},
	}
}

// SwapsAPI lists swaps through the JSON API. The API is not paginated; it
// returns the most recent swaps up to a fixed page size.
func (c *Client) SwapsAPI(ctx context.Context, q SwapQuery) ([]*records.Swap, error) {
	parts := make([]string, 0, 2)
	if q.Status != "" {
		parts = append(parts, "status="+url.PathEscape(string(q.Status)))
	}
	parts = append(parts, fmt.Sprintf("limit=%d", constants.SwapAPIPageSize))

	var resp []swapResponse
	if err := c.transport.GetJSON(ctx, c.apiURL+"/get_swaps/"+strings.Join(parts, "/"), &resp); err != nil {
		return nil, err
	}
	swaps := make([]*records.Swap, 0, len(resp))
	for i := range resp {
		swaps = append(swaps, convertSwap(&resp[i]))
	}
	return swaps, nil
}

// SwapsHTML scrapes swaps from the swaps page.
func (c *Client) SwapsHTML(ctx context.Context, q SwapQuery) ([]*records.Swap, error) {
	params := url.Values{}
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}
	if q.Page > 1 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	params.Set("commit", "Search")

	doc, err := c.transport.GetDocument(ctx, c.baseURL+"/swaps?"+params.Encode())
	if err != nil {
		return nil, err
	}
	status := q.Status
	if status == "" {
		status = records.SwapPending
	}
	return parseSwapCards(doc, status), nil
}

// RankQuery selects one page of the node listing for a single rank tier.
type RankQuery struct {
	Rank int
	Page int

	// Server-side filter hints. They are coarse buckets; callers still
	// filter the results exactly.
	MinCapacityBTC *float64
	MinChannels    *int64
}

// NodesByRank scrapes one page of the node listing for a rank tier.
func (c *Client) NodesByRank(ctx context.Context, q RankQuery) ([]*records.Node, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(max(q.Page, 1)))
	params.Set("rank", strconv.Itoa(q.Rank))
	params.Set("commit", "Search")
	if q.MinCapacityBTC != nil {
		if v := capacityFilter(*q.MinCapacityBTC); v != "" {
			params.Set("capacity", v)
		}
	}
	if q.MinChannels != nil {
		if v := channelFilter(*q.MinChannels); v != "" {
			params.Set("channel", v)
		}
	}
	return c.listing(ctx, "/nodes", params, 0)
}

// PrimeNodes scrapes one page of the highest rated node listing. A rank
// above zero restricts it to that tier.
func (c *Client) PrimeNodes(ctx context.Context, rank, page, limit int) ([]*records.Node, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(max(page, 1)))
	if rank > 0 {
		params.Set("rank", strconv.Itoa(rank))
	}
	return c.listing(ctx, "/prime_nodes", params, limit)
}

// Search scrapes the node listing for nodes whose alias matches query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]*records.Node, error) {
	params := url.Values{}
	params.Set("search", query)
	params.Set("commit", "Search")
	return c.listing(ctx, "/nodes", params, limit)
}

func (c *Client) listing(ctx context.Context, path string, params url.Values, limit int) ([]*records.Node, error) {
	doc, err := c.transport.GetDocument(ctx, c.baseURL+path+"?"+params.Encode())
	if err != nil {
		return nil, err
	}
	nodes := parseNodeCards(doc, c.baseURL)
	if limit > 0 && len(nodes) > limit {
		nodes = nodes[:limit]
	}
	return nodes, nil
}
