package lnmap

import (
	"fmt"
	"time"

	"github.com/agentstation/lnmap/internal/utils/ptr"
	"github.com/agentstation/lnmap/pkg/classify"
	"github.com/agentstation/lnmap/pkg/constants"
	"github.com/agentstation/lnmap/pkg/reconciler"
	"github.com/agentstation/lnmap/pkg/records"
	"github.com/agentstation/lnmap/pkg/sources"
	"github.com/agentstation/lnmap/pkg/units"
)

// NodeReport is the merged result of a node lookup.
type NodeReport struct {
	records.Node

	// Provenance maps each merged field to the source that supplied it.
	Provenance map[string]sources.ID `json:"provenance,omitempty"`

	Amboss *AmbossDetail `json:"amboss"`
	OneML  *OneMLDetail  `json:"oneml"`
	LNPlus *LNPlusDetail `json:"lnplus"`

	// Errors holds one "source: message" entry per failed source.
	Errors []string `json:"errors"`
}

// AmbossDetail is what only Amboss reports about a node.
type AmbossDetail struct {
	IsClaimed     bool              `json:"is_claimed"`
	Socials       map[string]string `json:"socials"`
	Addresses     []records.Address `json:"addresses"`
	ChannelIDs    []string          `json:"channel_ids"`
	TotalChannels int64             `json:"total_channels"`
	LastUpdate    *time.Time        `json:"last_update"`
}

// OneMLDetail is what only 1ML reports about a node.
type OneMLDetail struct {
	Rank       *records.NodeRank `json:"rank"`
	Addresses  []records.Address `json:"addresses"`
	LastUpdate *time.Time        `json:"last_update"`
}

// LNPlusDetail is what only LN+ reports about a node.
type LNPlusDetail struct {
	Rank             int                     `json:"rank"`
	RankName         string                  `json:"rank_name"`
	ConnectionType   classify.ConnectionType `json:"connection_type"`
	MinChannelSize   int64                   `json:"min_channel_size"`
	LiquidityCredits int64                   `json:"liquidity_credits"`
	Ratings          records.Ratings         `json:"ratings"`
}

func newAmbossDetail(n *records.Node) *AmbossDetail {
	if n == nil {
		return nil
	}
	d := &AmbossDetail{
		IsClaimed:     ptr.Deref(n.IsClaimed),
		Socials:       n.Socials,
		Addresses:     n.Addresses,
		ChannelIDs:    n.ChannelIDs,
		TotalChannels: n.ChannelCount,
		LastUpdate:    n.LastUpdate,
	}
	if len(d.ChannelIDs) > constants.MaxChannelIDs {
		d.ChannelIDs = d.ChannelIDs[:constants.MaxChannelIDs]
	}
	if d.Socials == nil {
		d.Socials = map[string]string{}
	}
	if d.Addresses == nil {
		d.Addresses = []records.Address{}
	}
	if d.ChannelIDs == nil {
		d.ChannelIDs = []string{}
	}
	return d
}

func newOneMLDetail(n *records.Node) *OneMLDetail {
	if n == nil {
		return nil
	}
	d := &OneMLDetail{Rank: n.NodeRank, Addresses: n.Addresses, LastUpdate: n.LastUpdate}
	if d.Addresses == nil {
		d.Addresses = []records.Address{}
	}
	return d
}

func newLNPlusDetail(n *records.Node) *LNPlusDetail {
	if n == nil {
		return nil
	}
	d := &LNPlusDetail{
		Rank:             ptr.Deref(n.RankTier),
		RankName:         n.RankTierName,
		ConnectionType:   n.ConnectionType,
		MinChannelSize:   n.MinChannelSizeSat,
		LiquidityCredits: n.LiquidityCreditsSat,
		Ratings:          ptr.Deref(n.Ratings),
	}
	if d.RankName == "" {
		d.RankName = classify.UnknownTier
	}
	return d
}

// errorStrings renders source errors as "source: message" lines. The result
// is never nil.
func errorStrings(errs []reconciler.SourceError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.String())
	}
	return out
}

// ComparisonRow is one node of a side-by-side comparison.
type ComparisonRow struct {
	Pubkey       string            `json:"pubkey"`
	Alias        string            `json:"alias"`
	CapacitySat  int64             `json:"capacity_sat"`
	CapacityBTC  string            `json:"capacity_btc"`
	ChannelCount int64             `json:"channel_count"`
	OneMLRank    *records.NodeRank `json:"oneml_rank"`
	LNPlusRank   *int              `json:"lnplus_rank"`
	LNPlusTier   string            `json:"lnplus_tier"`
	Connection   string            `json:"connection"`
	Ratings      *records.Ratings  `json:"ratings"`
	Errors       []string          `json:"errors,omitempty"`
}

func newComparisonRow(pubkey string, res *reconciler.Result[records.Node]) ComparisonRow {
	row := ComparisonRow{
		Pubkey:     pubkey,
		Alias:      records.ShortPubkey(pubkey, 16),
		LNPlusTier: "unknown",
		Connection: string(classify.ConnectionUnknown),
		Errors:     errorStrings(res.Errors),
	}

	merged := res.Value
	if merged.Alias != "" {
		row.Alias = merged.Alias
	}
	row.CapacitySat = merged.CapacitySat
	row.CapacityBTC = fmt.Sprintf("%.3f", units.SatsToBTC(merged.CapacitySat))
	row.ChannelCount = merged.ChannelCount

	if o := res.Record(sources.OneMLID); o != nil {
		row.OneMLRank = o.NodeRank
	}
	if l := res.Record(sources.LNPlusID); l != nil {
		rank := ptr.Deref(l.RankTier)
		name := l.RankTierName
		if name == "" {
			name = classify.UnknownTier
		}
		row.LNPlusRank = &rank
		row.LNPlusTier = fmt.Sprintf("%d/%s", rank, name)
		row.Connection = string(l.ConnectionType)
		row.Ratings = &records.Ratings{}
		if l.Ratings != nil {
			*row.Ratings = *l.Ratings
		}
	}
	return row
}

// Comparison is the result of comparing several nodes.
type Comparison struct {
	NodeCount  int             `json:"node_count"`
	Comparison []ComparisonRow `json:"comparison"`
}

// SearchHit is one node found by an alias search.
type SearchHit struct {
	records.Node
	Sources []sources.ID `json:"source"`
}

// SearchResult is the result of an alias search.
type SearchResult struct {
	Query  string      `json:"query"`
	Count  int         `json:"count"`
	Nodes  []SearchHit `json:"nodes"`
	Errors []string    `json:"errors,omitempty"`
}

// TopNodes is the result of a ranked 1ML listing.
type TopNodes struct {
	Count int             `json:"count"`
	Order string          `json:"order"`
	Nodes []*records.Node `json:"nodes"`
}

// RankFilter echoes the filters of a rank search.
type RankFilter struct {
	MinRank        int                     `json:"min_rank"`
	MaxRank        int                     `json:"max_rank"`
	MinCapacityBTC *float64                `json:"min_capacity_btc,omitempty"`
	MinChannels    *int64                  `json:"min_channels,omitempty"`
	ConnectionType classify.ConnectionType `json:"connection_type,omitempty"`
}

// RankedNodes is the result of a rank range search.
type RankedNodes struct {
	Count  int             `json:"count"`
	Filter RankFilter      `json:"filter"`
	Nodes  []*records.Node `json:"nodes"`

	// Errors reports a tier that failed after earlier tiers succeeded.
	Errors []string `json:"errors,omitempty"`
}

// RatedNodes is the result of a highest rated listing.
type RatedNodes struct {
	Count  int             `json:"count"`
	Page   int             `json:"page"`
	Nodes  []*records.Node `json:"nodes"`
	Errors []string        `json:"errors,omitempty"`
}

// SwapFilterEcho echoes the filters of a swap search.
type SwapFilterEcho struct {
	Status records.SwapStatus  `json:"status"`
	Shape  classify.Shape      `json:"shape,omitempty"`
	Size   classify.SizeBucket `json:"size,omitempty"`
}

// Swaps is the result of a swap search.
type Swaps struct {
	Count  int             `json:"count"`
	Filter SwapFilterEcho  `json:"filter"`
	Swaps  []*records.Swap `json:"swaps"`
}
