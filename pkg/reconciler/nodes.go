package reconciler

import (
	"time"

	"github.com/agentstation/lnmap/pkg/classify"
	"github.com/agentstation/lnmap/pkg/records"
)

// NodeSchema returns the merge schema of a node record, in field order.
// The pubkey is the merge key and is not part of the schema.
func NodeSchema() Schema[records.Node] {
	rankTier := Pointer("rank_tier", func(n *records.Node) **int { return &n.RankTier })
	copyTier := rankTier.Copy
	rankTier.Copy = func(dst, src *records.Node) {
		copyTier(dst, src)
		dst.RankTierName = src.RankTierName
	}

	return Schema[records.Node]{
		Value("alias", func(n *records.Node) *string { return &n.Alias }),
		Value("capacity_sat", func(n *records.Node) *int64 { return &n.CapacitySat }),
		Value("channel_count", func(n *records.Node) *int64 { return &n.ChannelCount }),
		Value("color", func(n *records.Node) *string { return &n.Color }),
		Slice("addresses", func(n *records.Node) *[]records.Address { return &n.Addresses }),
		rankTier,
		Value("connection_type", func(n *records.Node) *classify.ConnectionType { return &n.ConnectionType }, classify.ConnectionUnknown),
		Pointer("ratings", func(n *records.Node) **records.Ratings { return &n.Ratings }),
		Map("socials", func(n *records.Node) *map[string]string { return &n.Socials }),
		Pointer("is_claimed", func(n *records.Node) **bool { return &n.IsClaimed }),
		Pointer("is_verified", func(n *records.Node) **bool { return &n.IsVerified }),
		Pointer("last_update", func(n *records.Node) **time.Time { return &n.LastUpdate }),
	}
}

// NodeKey returns the merge key of a node record.
func NodeKey(n *records.Node) string {
	return n.Pubkey
}
