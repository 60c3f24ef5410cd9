package tools

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/agentstation/lnmap"
	"github.com/agentstation/lnmap/internal/bind"
	"github.com/agentstation/lnmap/internal/utils/ptr"
	"github.com/agentstation/lnmap/pkg/classify"
)

// Tool names.
const (
	LookupNode    = "ln_lookup_node"
	TopNodes      = "ln_search_top_nodes"
	NodesByRank   = "ln_search_nodes_by_rank"
	HighestRated  = "ln_get_highest_rated"
	FindSwaps     = "ln_find_swaps"
	FindPath      = "ln_find_path"
	CompareNodes  = "ln_compare_nodes"
	Introspect    = "ln_introspect_amboss"
	SearchByAlias = "ln_search_by_alias"
)

type handlers struct {
	svc Service
}

func (h *handlers) tools() []Tool {
	return []Tool{
		{
			Name:  LookupNode,
			Title: "Lookup Lightning Node",
			Description: "Look up a Lightning Network node by its public key. Combines Amboss (graph data, socials, " +
				"claim status), 1ML (rankings, capacity) and LN+ (rank tier, ratings), and lists sources that failed.",
			InputSchema: lookupNodeSchema,
			OpenWorld:   true,
			Handler:     h.lookupNode,
		},
		{
			Name:        TopNodes,
			Title:       "Search Top Lightning Nodes",
			Description: "List the top Lightning Network nodes on 1ML by capacity, channel count, age, growth, availability or their recent change.",
			InputSchema: topNodesSchema,
			OpenWorld:   true,
			Handler:     h.topNodes,
		},
		{
			Name:  NodesByRank,
			Title: "Search Nodes by LN+ Rank Tier",
			Description: "Search nodes by LN+ rank tier (1=Aluminium .. 10=Iridium). Tiers are scanned from max_rank down " +
				"until limit nodes pass the capacity, channel and connection filters.",
			InputSchema: nodesByRankSchema,
			OpenWorld:   true,
			Handler:     h.nodesByRank,
		},
		{
			Name:        HighestRated,
			Title:       "Get Highest Rated LN+ Nodes",
			Description: "List the highest rated node operators on LN+ by community ratings from liquidity swaps.",
			InputSchema: highestRatedSchema,
			OpenWorld:   true,
			Handler:     h.highestRated,
		},
		{
			Name:        FindSwaps,
			Title:       "Find Liquidity Swaps",
			Description: "Search LN+ liquidity swaps by status, shape and channel size.",
			InputSchema: findSwapsSchema,
			OpenWorld:   true,
			Handler:     h.findSwaps,
		},
		{
			Name:        FindPath,
			Title:       "Find Payment Path",
			Description: "Find a payment route between two nodes. No source currently exposes pathfinding, so this reports it as unavailable.",
			InputSchema: findPathSchema,
			OpenWorld:   true,
			Handler:     h.findPath,
		},
		{
			Name:        CompareNodes,
			Title:       "Compare Lightning Nodes",
			Description: "Compare 2 to 10 nodes side by side using 1ML and LN+ data.",
			InputSchema: compareNodesSchema,
			OpenWorld:   true,
			Handler:     h.compareNodes,
		},
		{
			Name:        Introspect,
			Title:       "Introspect Amboss GraphQL Schema",
			Description: "Fetch the Amboss GraphQL schema to discover the available queries and their arguments.",
			InputSchema: introspectSchema,
			Handler:     h.introspect,
		},
		{
			Name:        SearchByAlias,
			Title:       "Search Nodes by Alias",
			Description: "Search nodes by alias on Amboss and LN+ and merge the matches by pubkey.",
			InputSchema: searchByAliasSchema,
			OpenWorld:   true,
			Handler:     h.searchByAlias,
		},
	}
}

func (h *handlers) lookupNode(ctx context.Context, raw json.RawMessage) (*Result, error) {
	args, err := bind.Decode[LookupNodeArgs](raw)
	if err != nil {
		return nil, err
	}

	report, err := h.svc.Lookup(ctx, args.Pubkey)
	if stderrors.Is(err, lnmap.ErrNoData) {
		return message("No data found for pubkey: %s", args.Pubkey), nil
	}
	if err != nil {
		return nil, err
	}
	return document(report)
}

func (h *handlers) topNodes(ctx context.Context, raw json.RawMessage) (*Result, error) {
	args, err := bind.Decode[TopNodesArgs](raw)
	if err != nil {
		return nil, err
	}

	top, err := h.svc.TopNodes(ctx, lnmap.Order(args.Order), args.Limit)
	if err != nil {
		return nil, err
	}
	if top.Count == 0 {
		return message("No nodes found for the given criteria."), nil
	}
	return document(top)
}

func (h *handlers) nodesByRank(ctx context.Context, raw json.RawMessage) (*Result, error) {
	args, err := bind.Decode[NodesByRankArgs](raw)
	if err != nil {
		return nil, err
	}

	ranked, err := h.svc.NodesByRank(ctx, lnmap.RankSearch{
		MinRank:        args.MinRank,
		MaxRank:        args.MaxRank,
		MinCapacityBTC: args.MinCapacityBTC,
		MinChannels:    args.MinChannels,
		ConnectionType: classify.ConnectionType(args.ConnectionType),
		Limit:          args.Limit,
		Page:           args.Page,
	})
	if err != nil {
		return nil, err
	}
	if ranked.Count == 0 {
		return message("No nodes found with rank %d(%s)-%d(%s) matching criteria.",
			args.MinRank, classify.TierName(args.MinRank),
			args.MaxRank, classify.TierName(args.MaxRank)), nil
	}
	return document(ranked)
}

func (h *handlers) highestRated(ctx context.Context, raw json.RawMessage) (*Result, error) {
	args, err := bind.Decode[HighestRatedArgs](raw)
	if err != nil {
		return nil, err
	}

	rated, err := h.svc.HighestRated(ctx, lnmap.RatedSearch{
		MinRank: ptr.Deref(args.MinRank),
		Limit:   args.Limit,
		Page:    args.Page,
	})
	if err != nil {
		return nil, err
	}
	if rated.Count == 0 {
		return message("No rated nodes found."), nil
	}
	return document(rated)
}

func (h *handlers) findSwaps(ctx context.Context, raw json.RawMessage) (*Result, error) {
	args, err := bind.Decode[FindSwapsArgs](raw)
	if err != nil {
		return nil, err
	}

	swaps, err := h.svc.FindSwaps(ctx, lnmap.SwapSearch{
		Status: args.Status,
		Shape:  args.Shape,
		Size:   args.Size,
		Page:   args.Page,
	})
	if err != nil {
		return nil, err
	}
	if swaps.Count == 0 {
		return message("No swaps found matching criteria."), nil
	}
	return document(swaps)
}

func (h *handlers) findPath(ctx context.Context, raw json.RawMessage) (*Result, error) {
	args, err := bind.Decode[FindPathArgs](raw)
	if err != nil {
		return nil, err
	}

	err = h.svc.FindPath(ctx, args.Origin, args.Destination, args.AmountSats)
	var unavailable *lnmap.PathUnavailableError
	if stderrors.As(err, &unavailable) {
		return &Result{Text: unavailable.Error()}, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("pathfinding returned no result")
}

func (h *handlers) compareNodes(ctx context.Context, raw json.RawMessage) (*Result, error) {
	args, err := bind.Decode[CompareNodesArgs](raw)
	if err != nil {
		return nil, err
	}

	cmp, err := h.svc.Compare(ctx, args.Pubkeys)
	if err != nil {
		return nil, err
	}
	return document(cmp)
}

func (h *handlers) introspect(ctx context.Context, raw json.RawMessage) (*Result, error) {
	if _, err := bind.Decode[IntrospectArgs](raw); err != nil {
		return nil, err
	}

	schema, err := h.svc.Introspect(ctx)
	if err != nil {
		return nil, err
	}
	return &Result{Text: truncate(schema)}, nil
}

func (h *handlers) searchByAlias(ctx context.Context, raw json.RawMessage) (*Result, error) {
	args, err := bind.Decode[SearchByAliasArgs](raw)
	if err != nil {
		return nil, err
	}

	found, err := h.svc.SearchByAlias(ctx, args.Query, args.Limit)
	if err != nil {
		return nil, err
	}
	if found.Count == 0 {
		return message("No nodes found matching \"%s\".", args.Query), nil
	}
	return document(found)
}
