// Package table converts lnmap results into table rows for CLI output.
package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agentstation/lnmap"
	"github.com/agentstation/lnmap/pkg/records"
	"github.com/agentstation/lnmap/pkg/sources"
	"github.com/agentstation/lnmap/pkg/units"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// For converts a known lnmap result into table data. The second result is
// false for values without a table layout.
func For(v any) (Data, bool) {
	switch r := v.(type) {
	case *lnmap.NodeReport:
		return ReportToTableData(r), true
	case *lnmap.TopNodes:
		return NodesToTableData(r.Nodes), true
	case *lnmap.RankedNodes:
		return NodesToTableData(r.Nodes), true
	case *lnmap.RatedNodes:
		return NodesToTableData(r.Nodes), true
	case *lnmap.Swaps:
		return SwapsToTableData(r.Swaps), true
	case *lnmap.Comparison:
		return ComparisonToTableData(r.Comparison), true
	case *lnmap.SearchResult:
		return SearchToTableData(r.Nodes), true
	default:
		return Data{}, false
	}
}

var nodeAlignment = []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft, AlignLeft}

// NodesToTableData converts node records to table format.
func NodesToTableData(nodes []*records.Node) Data {
	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, []string{
			records.ShortPubkey(n.Pubkey, 20),
			orDash(n.Alias),
			FormatBTC(n.CapacitySat),
			FormatNumber(n.ChannelCount),
			FormatTier(n),
			string(n.ConnectionType),
		})
	}
	return Data{
		Headers:         []string{"Pubkey", "Alias", "Capacity", "Channels", "Rank", "Connection"},
		Rows:            rows,
		ColumnAlignment: nodeAlignment,
	}
}

// SearchToTableData converts alias search hits to table format.
func SearchToTableData(hits []lnmap.SearchHit) Data {
	rows := make([][]string, 0, len(hits))
	for _, h := range hits {
		names := make([]string, 0, len(h.Sources))
		for _, s := range h.Sources {
			names = append(names, s.String())
		}
		rows = append(rows, []string{
			records.ShortPubkey(h.Pubkey, 20),
			orDash(h.Alias),
			FormatBTC(h.CapacitySat),
			FormatNumber(h.ChannelCount),
			FormatTier(&h.Node),
			strings.Join(names, ", "),
		})
	}
	return Data{
		Headers:         []string{"Pubkey", "Alias", "Capacity", "Channels", "Rank", "Sources"},
		Rows:            rows,
		ColumnAlignment: nodeAlignment,
	}
}

// SwapsToTableData converts swaps to table format.
func SwapsToTableData(swaps []*records.Swap) Data {
	rows := make([][]string, 0, len(swaps))
	for _, s := range swaps {
		restrictions := strings.Join(s.Restrictions, "; ")
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			string(s.Status),
			string(s.Shape),
			FormatNumber(s.CapacitySat),
			fmt.Sprintf("%d/%d", s.ParticipantsCurrent, s.ParticipantsTotal),
			string(s.ConnectionType),
			orDash(restrictions),
		})
	}
	return Data{
		Headers: []string{"ID", "Status", "Shape", "Capacity (sat)", "Participants", "Connection", "Restrictions"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignRight, AlignLeft, AlignLeft, AlignRight, AlignCenter, AlignLeft, AlignLeft,
		},
	}
}

// ComparisonToTableData converts comparison rows to table format.
func ComparisonToTableData(rows []lnmap.ComparisonRow) Data {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		ratings := "-"
		if r.Ratings != nil {
			ratings = fmt.Sprintf("+%d / -%d", r.Ratings.Positive, r.Ratings.Negative)
		}
		out = append(out, []string{
			r.Alias,
			r.CapacityBTC + " BTC",
			FormatNumber(r.ChannelCount),
			r.LNPlusTier,
			r.Connection,
			ratings,
		})
	}
	return Data{
		Headers: []string{"Alias", "Capacity", "Channels", "LN+ Tier", "Connection", "Ratings"},
		Rows:    out,
		ColumnAlignment: []Align{
			AlignLeft, AlignRight, AlignRight, AlignLeft, AlignLeft, AlignRight,
		},
	}
}

// ReportToTableData converts a lookup report to a property table. Each
// property names the source that supplied it when provenance is known.
func ReportToTableData(r *lnmap.NodeReport) Data {
	rows := [][]string{
		{"Pubkey", r.Pubkey, ""},
		{"Alias", orDash(r.Alias), source(r.Provenance, "alias")},
		{"Capacity", FormatBTC(r.CapacitySat), source(r.Provenance, "capacity_sat")},
		{"Channels", FormatNumber(r.ChannelCount), source(r.Provenance, "channel_count")},
		{"Color", orDash(r.Color), source(r.Provenance, "color")},
		{"Rank", FormatTier(&r.Node), source(r.Provenance, "rank_tier")},
		{"Connection", string(r.ConnectionType), source(r.Provenance, "connection_type")},
	}
	for _, a := range r.Addresses {
		rows = append(rows, []string{"Address", a.Address + " (" + a.Network + ")", source(r.Provenance, "addresses")})
	}
	for _, e := range r.Errors {
		rows = append(rows, []string{"Error", e, ""})
	}
	return Data{
		Headers: []string{"Property", "Value", "Source"},
		Rows:    rows,
	}
}

// ProvenanceToTableData lists which source supplied each merged field.
func ProvenanceToTableData(prov map[string]sources.ID) Data {
	fields := make([]string, 0, len(prov))
	for field := range prov {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	rows := make([][]string, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, []string{field, prov[field].String()})
	}
	return Data{Headers: []string{"Field", "Source"}, Rows: rows}
}

// FormatTier renders a node's rank tier as "8 (Gold)".
func FormatTier(n *records.Node) string {
	if n.RankTier == nil {
		return "-"
	}
	return fmt.Sprintf("%d (%s)", *n.RankTier, n.RankTierName)
}

// FormatBTC renders a satoshi amount in bitcoin.
func FormatBTC(sats int64) string {
	if sats == 0 {
		return "-"
	}
	return fmt.Sprintf("%.3f BTC", units.SatsToBTC(sats))
}

// FormatNumber formats large numbers with comma separators.
func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(str, "-")
	if neg {
		str = str[1:]
	}
	if len(str) <= 3 {
		if neg {
			return "-" + str
		}
		return str
	}

	var b strings.Builder
	lead := len(str) % 3
	if lead > 0 {
		b.WriteString(str[:lead])
	}
	for i := lead; i < len(str); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(str[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func source(prov map[string]sources.ID, field string) string {
	if id, ok := prov[field]; ok {
		return id.String()
	}
	return ""
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
