// Package records defines the canonical, source-independent shapes that every
// extractor produces: nodes and liquidity swaps.
//
// Records are built fresh for each request and are never persisted. Numeric
// fields are never negative and default to zero when a source omits them.
package records

import (
	"regexp"
	"time"

	"github.com/agentstation/lnmap/pkg/classify"
)

// pubkeyPattern matches a compressed secp256k1 public key in lowercase hex.
var pubkeyPattern = regexp.MustCompile(`^[0-9a-f]{66}$`)

// PubkeyLength is the length of a hex encoded node public key.
const PubkeyLength = 66

// ValidPubkey reports whether s is a 66 character lowercase hex public key.
func ValidPubkey(s string) bool {
	return pubkeyPattern.MatchString(s)
}

// ShortPubkey returns the first n characters of a pubkey followed by "...".
func ShortPubkey(pubkey string, n int) string {
	if len(pubkey) <= n {
		return pubkey
	}
	return pubkey[:n] + "..."
}

// Address is one advertised network address of a node.
type Address struct {
	Address string `json:"address"`
	Network string `json:"network"`
}

// Ratings are community swap ratings.
type Ratings struct {
	Positive int64 `json:"positive"`
	Negative int64 `json:"negative"`
}

// NodeRank holds the 1ML rank positions of a node on each ordering.
type NodeRank struct {
	Capacity     int64 `json:"capacity"`
	ChannelCount int64 `json:"channelcount"`
	Age          int64 `json:"age"`
	Growth       int64 `json:"growth"`
	Availability int64 `json:"availability"`
}

// Node is the canonical record of a network node.
type Node struct {
	Pubkey         string                  `json:"pubkey"`
	Alias          string                  `json:"alias"`
	CapacitySat    int64                   `json:"capacity_sat"`
	ChannelCount   int64                   `json:"channel_count"`
	Color          string                  `json:"color,omitempty"`
	Addresses      []Address               `json:"addresses,omitempty"`
	RankTier       *int                    `json:"rank_tier,omitempty"`
	RankTierName   string                  `json:"rank_tier_name,omitempty"`
	ConnectionType classify.ConnectionType `json:"connection_type"`
	Ratings        *Ratings                `json:"ratings,omitempty"`
	Socials        map[string]string       `json:"socials,omitempty"`
	IsClaimed      *bool                   `json:"is_claimed,omitempty"`
	IsVerified     *bool                   `json:"is_verified,omitempty"`
	LastUpdate     *time.Time              `json:"last_update,omitempty"`

	// Source specific extras. These are reported per source and never merged.
	NodeRank            *NodeRank `json:"node_rank,omitempty"`
	MinChannelSizeSat   int64     `json:"min_channel_size_sat,omitempty"`
	LiquidityCreditsSat int64     `json:"liquidity_credits_sat,omitempty"`
	ChannelIDs          []string  `json:"channel_ids,omitempty"`
	ProfileURL          string    `json:"profile_url,omitempty"`
}

// Normalize enforces the record invariants in place: non-negative numbers, a
// known connection type and a tier name that matches the tier.
func (n *Node) Normalize() *Node {
	n.CapacitySat = max(n.CapacitySat, 0)
	n.ChannelCount = max(n.ChannelCount, 0)
	n.MinChannelSizeSat = max(n.MinChannelSizeSat, 0)
	n.LiquidityCreditsSat = max(n.LiquidityCreditsSat, 0)

	if n.ConnectionType == "" || n.ConnectionType == classify.ConnectionUnknown {
		addrs := make([]string, 0, len(n.Addresses))
		for _, a := range n.Addresses {
			addrs = append(addrs, a.Address)
		}
		n.ConnectionType = classify.ConnectionFromAddresses(addrs)
	}

	if n.RankTier != nil && n.RankTierName == "" {
		n.RankTierName = classify.TierName(*n.RankTier)
	}
	if n.Ratings != nil {
		n.Ratings.Positive = max(n.Ratings.Positive, 0)
		n.Ratings.Negative = max(n.Ratings.Negative, 0)
	}
	return n
}

// SwapStatus is the lifecycle state of a liquidity swap.
type SwapStatus string

// Swap statuses.
const (
	SwapPending   SwapStatus = "pending"
	SwapOpening   SwapStatus = "opening"
	SwapCompleted SwapStatus = "completed"
)

// Swap is the canonical record of a liquidity swap.
type Swap struct {
	ID                  int64                   `json:"id"`
	Status              SwapStatus              `json:"status"`
	Shape               classify.Shape          `json:"shape"`
	CapacitySat         int64                   `json:"capacity_sat"`
	ParticipantsCurrent int                     `json:"participants_current"`
	ParticipantsTotal   int                     `json:"participants_total"`
	ConnectionType      classify.ConnectionType `json:"connection_type"`
	Restrictions        []string                `json:"restrictions"`
}

// Normalize enforces the swap invariants in place.
func (s *Swap) Normalize() *Swap {
	s.CapacitySat = max(s.CapacitySat, 0)
	s.ParticipantsTotal = max(s.ParticipantsTotal, 0)
	s.ParticipantsCurrent = max(s.ParticipantsCurrent, 0)
	if s.ParticipantsTotal > 0 {
		s.ParticipantsCurrent = min(s.ParticipantsCurrent, s.ParticipantsTotal)
	}
	if s.Shape == "" {
		s.Shape = classify.ShapeForParticipants(s.ParticipantsTotal)
	}
	if s.ConnectionType == "" {
		s.ConnectionType = classify.ConnectionUnknown
	}
	if s.Restrictions == nil {
		s.Restrictions = []string{}
	}
	return s
}

// SwapFilter selects swaps by shape and size. Empty fields match everything.
type SwapFilter struct {
	Shape classify.Shape
	Size  classify.SizeBucket
}

// Match reports whether s passes the filter.
func (f SwapFilter) Match(s Swap) bool {
	if f.Shape != "" && s.Shape != f.Shape {
		return false
	}
	if f.Size != "" && !f.Size.Contains(s.CapacitySat) {
		return false
	}
	return true
}
