// Package oneml provides a client for 1ML. Node data comes from the JSON view
// of a node page, with the HTML page itself as a fallback. Ranked listings
// are only published as HTML.
package oneml

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/agentstation/lnmap/internal/transport"
	"github.com/agentstation/lnmap/pkg/constants"
	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/records"
	"github.com/agentstation/lnmap/pkg/sources"
)

// Order is a 1ML ranking criterion.
type Order string

// Orders accepted by the ranked node listing.
const (
	OrderCapacity           Order = "capacity"
	OrderChannelCount       Order = "channelcount"
	OrderAge                Order = "age"
	OrderGrowth             Order = "growth"
	OrderAvailability       Order = "availability"
	OrderCapacityChange     Order = "capacitychange"
	OrderChannelCountChange Order = "channelcountchange"
)

// Orders lists every ranking criterion.
var Orders = []Order{
	OrderCapacity, OrderChannelCount, OrderAge, OrderGrowth,
	OrderAvailability, OrderCapacityChange, OrderChannelCountChange,
}

// Client talks to 1ML.
type Client struct {
	transport *transport.Client
	baseURL   string
}

// NewClient creates a new 1ML client. An empty baseURL selects the public site.
func NewClient(baseURL string, opts ...transport.Option) *Client {
	if baseURL == "" {
		baseURL = constants.OneMLBaseURL
	}
	return &Client{
		transport: transport.New(sources.OneMLID.String(), opts...),
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Lookup returns the access chain for a node lookup: the JSON view first,
// then the HTML page.
func (c *Client) Lookup(pubkey string) sources.Chain[*records.Node] {
	return sources.Chain[*records.Node]{
		Source: sources.OneMLID,
		Primary: func(ctx context.Context) (*records.Node, error) {
			return c.NodeJSON(ctx, pubkey)
		},
		Secondary: func(ctx context.Context) (*records.Node, error) {
			return c.NodeHTML(ctx, pubkey)
		},
	}
}

// NodeJSON fetches a node from the JSON view of its page.
func (c *Client) NodeJSON(ctx context.Context, pubkey string) (*records.Node, error) {
	var resp nodeResponse
	if err := c.transport.GetJSON(ctx, c.nodeURL(pubkey)+"/json", &resp); err != nil {
		return nil, err
	}
	return convertNode(&resp, pubkey), nil
}

// NodeHTML scrapes a node from its HTML page.
func (c *Client) NodeHTML(ctx context.Context, pubkey string) (*records.Node, error) {
	doc, err := c.transport.GetDocument(ctx, c.nodeURL(pubkey))
	if err != nil {
		return nil, err
	}
	node := parseNodePage(doc, pubkey)
	if node == nil {
		return nil, errors.NewNotFoundError("node", pubkey)
	}
	return node, nil
}

// TopNodes scrapes the ranked node listing for order. At most limit nodes
// are returned.
func (c *Client) TopNodes(ctx context.Context, order Order, limit int) ([]*records.Node, error) {
	if order == "" {
		order = OrderCapacity
	}
	u := fmt.Sprintf("%s/node?order=%s", c.baseURL, url.QueryEscape(string(order)))
	doc, err := c.transport.GetDocument(ctx, u)
	if err != nil {
		return nil, err
	}
	return parseTopNodes(doc, limit), nil
}

func (c *Client) nodeURL(pubkey string) string {
	return c.baseURL + "/node/" + url.PathEscape(pubkey)
}
