package tools

import (
	"github.com/agentstation/lnmap/pkg/classify"
	"github.com/agentstation/lnmap/pkg/records"
)

// LookupNodeArgs are the arguments of ln_lookup_node.
type LookupNodeArgs struct {
	Pubkey string `json:"pubkey" validate:"required,pubkey"`
}

// TopNodesArgs are the arguments of ln_search_top_nodes.
type TopNodesArgs struct {
	Order string `json:"order" validate:"oneof=capacity channelcount age growth availability capacitychange channelcountchange"`
	Limit int    `json:"limit" validate:"min=1,max=50"`
}

// SetDefaults implements bind.Defaulter.
func (a *TopNodesArgs) SetDefaults() {
	a.Order = "capacity"
	a.Limit = 20
}

// NodesByRankArgs are the arguments of ln_search_nodes_by_rank.
type NodesByRankArgs struct {
	MinRank        int      `json:"min_rank" validate:"min=1,max=10,ltefield=MaxRank"`
	MaxRank        int      `json:"max_rank" validate:"min=1,max=10"`
	MinCapacityBTC *float64 `json:"min_capacity_btc,omitempty" validate:"omitempty,min=0"`
	MinChannels    *int64   `json:"min_channels,omitempty" validate:"omitempty,min=0"`
	ConnectionType string   `json:"connection_type,omitempty" validate:"omitempty,oneof=clearnet tor both"`
	Limit          int      `json:"limit" validate:"min=1,max=100"`
	Page           int      `json:"page" validate:"min=1"`
}

// SetDefaults implements bind.Defaulter.
func (a *NodesByRankArgs) SetDefaults() {
	a.MinRank = 8
	a.MaxRank = 10
	a.Limit = 30
	a.Page = 1
}

// HighestRatedArgs are the arguments of ln_get_highest_rated.
type HighestRatedArgs struct {
	MinRank *int `json:"min_rank,omitempty" validate:"omitempty,min=0,max=10"`
	Limit   int  `json:"limit" validate:"min=1,max=50"`
	Page    int  `json:"page" validate:"min=1"`
}

// SetDefaults implements bind.Defaulter.
func (a *HighestRatedArgs) SetDefaults() {
	a.Limit = 20
	a.Page = 1
}

// FindSwapsArgs are the arguments of ln_find_swaps.
type FindSwapsArgs struct {
	Status records.SwapStatus  `json:"status" validate:"oneof=pending opening completed"`
	Shape  classify.Shape      `json:"shape,omitempty" validate:"omitempty,oneof=dual triangle square pentagon"`
	Size   classify.SizeBucket `json:"size,omitempty" validate:"omitempty,oneof=xs sm md lg xl xxl"`
	Page   int                 `json:"page" validate:"min=1"`
}

// SetDefaults implements bind.Defaulter.
func (a *FindSwapsArgs) SetDefaults() {
	a.Status = records.SwapPending
	a.Page = 1
}

// FindPathArgs are the arguments of ln_find_path.
type FindPathArgs struct {
	Origin      string `json:"origin" validate:"required,pubkey"`
	Destination string `json:"destination" validate:"required,pubkey"`
	AmountSats  int64  `json:"amount_sats" validate:"required,min=1"`
}

// CompareNodesArgs are the arguments of ln_compare_nodes.
type CompareNodesArgs struct {
	Pubkeys []string `json:"pubkeys" validate:"required,min=2,max=10,dive,pubkey"`
}

// IntrospectArgs are the arguments of ln_introspect_amboss. It takes none.
type IntrospectArgs struct{}

// SearchByAliasArgs are the arguments of ln_search_by_alias.
type SearchByAliasArgs struct {
	Query string `json:"query" validate:"required,min=1,max=100"`
	Limit int    `json:"limit" validate:"min=1,max=50"`
}

// SetDefaults implements bind.Defaulter.
func (a *SearchByAliasArgs) SetDefaults() {
	a.Limit = 10
}
