package lnmap

import (
	"context"

	"github.com/agentstation/lnmap/internal/sources/lnplus"
	"github.com/agentstation/lnmap/internal/sources/oneml"
	"github.com/agentstation/lnmap/pkg/classify"
	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/logging"
	"github.com/agentstation/lnmap/pkg/reconciler"
	"github.com/agentstation/lnmap/pkg/records"
	"github.com/agentstation/lnmap/pkg/sources"
	"github.com/agentstation/lnmap/pkg/sweep"
	"github.com/agentstation/lnmap/pkg/units"
)

// Order is a 1ML ranking criterion.
type Order = oneml.Order

// Ranking criteria for TopNodes.
const (
	OrderCapacity           = oneml.OrderCapacity
	OrderChannelCount       = oneml.OrderChannelCount
	OrderAge                = oneml.OrderAge
	OrderGrowth             = oneml.OrderGrowth
	OrderAvailability       = oneml.OrderAvailability
	OrderCapacityChange     = oneml.OrderCapacityChange
	OrderChannelCountChange = oneml.OrderChannelCountChange
)

// TopNodes returns the 1ML ranking for order.
func (c *Client) TopNodes(ctx context.Context, order Order, limit int) (*TopNodes, error) {
	if order == "" {
		order = OrderCapacity
	}
	ctx = logging.WithOperation(ctx, "top_nodes")

	out := run(ctx, c, single(sources.OneMLID, func(ctx context.Context) ([]*records.Node, error) {
		return c.oneml.TopNodes(ctx, order, limit)
	}))
	if out.Failed() {
		return nil, out.Err
	}

	nodes := out.Value
	if nodes == nil {
		nodes = []*records.Node{}
	}
	return &TopNodes{Count: len(nodes), Order: string(order), Nodes: nodes}, nil
}

// RankSearch selects nodes by LN+ rank tier.
type RankSearch struct {
	MinRank        int
	MaxRank        int
	MinCapacityBTC *float64
	MinChannels    *int64
	ConnectionType classify.ConnectionType
	Limit          int
	Page           int
}

// accept applies the exact client-side filters.
func (q RankSearch) accept(n *records.Node) bool {
	if q.MinCapacityBTC != nil && n.CapacitySat < units.BTCToSats(*q.MinCapacityBTC) {
		return false
	}
	if q.MinChannels != nil && n.ChannelCount < *q.MinChannels {
		return false
	}
	return n.ConnectionType.Matches(q.ConnectionType)
}

// NodesByRank sweeps the LN+ listing from MaxRank down to MinRank, one tier
// at a time, until Limit nodes pass the filters.
//
// When a tier fails after earlier tiers produced nodes, the nodes found so
// far are returned and the failure is listed in Errors.
func (c *Client) NodesByRank(ctx context.Context, q RankSearch) (*RankedNodes, error) {
	ctx = logging.WithOperation(ctx, "nodes_by_rank")

	s := sweep.Sweep[*records.Node]{
		Min:    q.MinRank,
		Max:    q.MaxRank,
		Limit:  q.Limit,
		Accept: q.accept,
		Fetch: func(ctx context.Context, tier int) ([]*records.Node, error) {
			ctx, cancel := c.attemptContext(ctx)
			defer cancel()
			return emptyIfNotFound(c.lnplus.NodesByRank(ctx, lnplus.RankQuery{
				Rank:           tier,
				Page:           q.Page,
				MinCapacityBTC: q.MinCapacityBTC,
				MinChannels:    q.MinChannels,
			}))
		},
	}

	res, err := s.Run(ctx)
	if res == nil || (err != nil && len(res.Items) == 0) {
		return nil, err
	}

	out := &RankedNodes{
		Count: len(res.Items),
		Filter: RankFilter{
			MinRank:        q.MinRank,
			MaxRank:        q.MaxRank,
			MinCapacityBTC: q.MinCapacityBTC,
			MinChannels:    q.MinChannels,
			ConnectionType: q.ConnectionType,
		},
		Nodes: res.Items,
	}
	if err != nil {
		out.Errors = []string{reconciler.SourceError{Source: sources.LNPlusID, Message: err.Error()}.String()}
	}
	return out, nil
}

// RatedSearch selects nodes from the LN+ highest rated listing.
type RatedSearch struct {
	MinRank int
	Limit   int
	Page    int
}

// HighestRated returns the LN+ highest rated listing. With a MinRank above
// zero the listing is swept from the top tier down to MinRank.
func (c *Client) HighestRated(ctx context.Context, q RatedSearch) (*RatedNodes, error) {
	ctx = logging.WithOperation(ctx, "highest_rated")
	page := max(q.Page, 1)

	if q.MinRank <= 0 {
		out := run(ctx, c, single(sources.LNPlusID, func(ctx context.Context) ([]*records.Node, error) {
			return c.lnplus.PrimeNodes(ctx, 0, page, q.Limit)
		}))
		if out.Failed() {
			return nil, out.Err
		}
		nodes := out.Value
		if nodes == nil {
			nodes = []*records.Node{}
		}
		return &RatedNodes{Count: len(nodes), Page: page, Nodes: nodes}, nil
	}

	s := sweep.Sweep[*records.Node]{
		Min:   q.MinRank,
		Max:   classify.MaxTier,
		Limit: q.Limit,
		Fetch: func(ctx context.Context, tier int) ([]*records.Node, error) {
			ctx, cancel := c.attemptContext(ctx)
			defer cancel()
			return emptyIfNotFound(c.lnplus.PrimeNodes(ctx, tier, page, 0))
		},
	}
	res, err := s.Run(ctx)
	if res == nil || (err != nil && len(res.Items) == 0) {
		return nil, err
	}

	out := &RatedNodes{Count: len(res.Items), Page: page, Nodes: res.Items}
	if err != nil {
		out.Errors = []string{reconciler.SourceError{Source: sources.LNPlusID, Message: err.Error()}.String()}
	}
	return out, nil
}

// SwapSearch selects liquidity swaps.
type SwapSearch struct {
	Status records.SwapStatus
	Shape  classify.Shape
	Size   classify.SizeBucket
	Page   int
}

// FindSwaps lists LN+ swaps of a status, filtered by shape and size. The
// JSON API is tried first and the swaps page second.
func (c *Client) FindSwaps(ctx context.Context, q SwapSearch) (*Swaps, error) {
	if q.Status == "" {
		q.Status = records.SwapPending
	}
	ctx = logging.WithOperation(ctx, "find_swaps")

	out := run(ctx, c, c.lnplus.Swaps(lnplus.SwapQuery{Status: q.Status, Page: q.Page}))
	if out.Failed() {
		return nil, out.Err
	}

	filter := records.SwapFilter{Shape: q.Shape, Size: q.Size}
	swaps := []*records.Swap{}
	for _, s := range out.Value {
		if filter.Match(*s) {
			swaps = append(swaps, s)
		}
	}

	return &Swaps{
		Count:  len(swaps),
		Filter: SwapFilterEcho{Status: q.Status, Shape: q.Shape, Size: q.Size},
		Swaps:  swaps,
	}, nil
}

// SearchByAlias searches Amboss and LN+ concurrently and merges the hits by
// pubkey. Amboss wins every field it supplies; LN+ fills the rest.
func (c *Client) SearchByAlias(ctx context.Context, query string, limit int) (*SearchResult, error) {
	if query == "" {
		return nil, errors.NewValidationError("query", query, "cannot be empty")
	}
	ctx = logging.WithOperation(ctx, "search_by_alias")

	outcomes := reconciler.Gather(ctx, []reconciler.Task[[]*records.Node]{
		task(c, single(sources.AmbossID, func(ctx context.Context) ([]*records.Node, error) {
			return c.amboss.Search(ctx, query, limit)
		})),
		task(c, single(sources.LNPlusID, func(ctx context.Context) ([]*records.Node, error) {
			return c.lnplus.Search(ctx, query, limit)
		})),
	})

	entries, errs := c.lookup.MergeLists(outcomes, reconciler.NodeKey)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	hits := make([]SearchHit, 0, len(entries))
	for _, e := range entries {
		node := e.Value
		node.Pubkey = e.Key
		node.Normalize()
		hits = append(hits, SearchHit{Node: node, Sources: e.Sources})
	}

	out := &SearchResult{Query: query, Count: len(hits), Nodes: hits}
	if len(errs) > 0 {
		out.Errors = errorStrings(errs)
	}
	return out, nil
}

// emptyIfNotFound turns a missing listing page into an empty one.
func emptyIfNotFound(nodes []*records.Node, err error) ([]*records.Node, error) {
	if errors.IsNotFound(err) {
		return nil, nil
	}
	return nodes, err
}
