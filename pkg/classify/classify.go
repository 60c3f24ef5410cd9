// Package classify holds the static lookup tables shared by every extractor:
// rank tier names, swap shapes, capacity size buckets and connection kinds.
//
// All functions are pure and safe for concurrent use.
package classify

import (
	"net"
	"strings"

	"golang.org/x/text/cases"
)

// Rank tier bounds.
const (
	MinTier = 0
	MaxTier = 10
)

// UnknownTier is the name returned for a rank outside the tier table.
const UnknownTier = "Unknown"

var tierNames = [...]string{
	"Unranked",
	"Aluminium",
	"Iron",
	"Copper",
	"Mercury",
	"Titanium",
	"Tungsten",
	"Silver",
	"Gold",
	"Platinum",
	"Iridium",
}

// TierName returns the display name of a rank tier.
func TierName(rank int) string {
	if rank < MinTier || rank > MaxTier {
		return UnknownTier
	}
	return tierNames[rank]
}

// Shape is the topology of a liquidity swap.
type Shape string

// Swap shapes.
const (
	ShapeDual     Shape = "dual"
	ShapeTriangle Shape = "triangle"
	ShapeSquare   Shape = "square"
	ShapePentagon Shape = "pentagon"
	ShapeUnknown  Shape = "unknown"
)

// Shapes lists the known shapes in participant order.
var Shapes = []Shape{ShapeDual, ShapeTriangle, ShapeSquare, ShapePentagon}

// ShapeForParticipants maps a participant count to its shape.
func ShapeForParticipants(n int) Shape {
	switch n {
	case 2:
		return ShapeDual
	case 3:
		return ShapeTriangle
	case 4:
		return ShapeSquare
	case 5:
		return ShapePentagon
	default:
		return ShapeUnknown
	}
}

// ParseShape reads a shape label such as "Triangle". Unrecognized labels
// map to ShapeUnknown.
func ParseShape(label string) Shape {
	s := Shape(fold(strings.TrimSpace(label)))
	for _, known := range Shapes {
		if s == known {
			return s
		}
	}
	return ShapeUnknown
}

// SizeBucket names a half-open range of channel capacity in satoshis.
type SizeBucket string

// Size buckets in ascending order.
const (
	SizeXS  SizeBucket = "xs"
	SizeSM  SizeBucket = "sm"
	SizeMD  SizeBucket = "md"
	SizeLG  SizeBucket = "lg"
	SizeXL  SizeBucket = "xl"
	SizeXXL SizeBucket = "xxl"
)

// bucket is one row of the size table. Max is exclusive; zero means unbounded.
type bucket struct {
	Name SizeBucket
	Min  int64
	Max  int64
}

var sizeTable = []bucket{
	{SizeXS, 0, 500_000},
	{SizeSM, 500_000, 1_000_000},
	{SizeMD, 1_000_000, 3_000_000},
	{SizeLG, 3_000_000, 5_000_000},
	{SizeXL, 5_000_000, 10_000_000},
	{SizeXXL, 10_000_000, 0},
}

func (b bucket) contains(capacity int64) bool {
	return capacity >= b.Min && (b.Max == 0 || capacity < b.Max)
}

// BucketFor returns the first bucket whose range contains capacity.
func BucketFor(capacity int64) SizeBucket {
	for _, b := range sizeTable {
		if b.contains(capacity) {
			return b.Name
		}
	}
	return SizeXS
}

// Contains reports whether capacity falls inside the bucket. Unknown bucket
// names contain everything.
func (s SizeBucket) Contains(capacity int64) bool {
	for _, b := range sizeTable {
		if b.Name == s {
			return b.contains(capacity)
		}
	}
	return true
}

// ConnectionType is how a node accepts peer connections.
type ConnectionType string

// Connection types.
const (
	ConnectionClearnet ConnectionType = "clearnet"
	ConnectionTor      ConnectionType = "tor"
	ConnectionBoth     ConnectionType = "both"
	ConnectionUnknown  ConnectionType = "unknown"
)

// ParseConnection classifies a free-text connection descriptor such as
// "Clearnet & Tor" or "clearnet/tor".
func ParseConnection(desc string) ConnectionType {
	d := fold(desc)
	clearnet := strings.Contains(d, "clearnet") || strings.Contains(d, "ipv4") || strings.Contains(d, "ipv6")
	tor := strings.Contains(d, "tor") || strings.Contains(d, "onion")
	if strings.Contains(d, "both") || strings.Contains(d, "hybrid") {
		return ConnectionBoth
	}
	return ConnectionFromFlags(clearnet, tor)
}

// ConnectionFromFlags combines allowed-network flags.
func ConnectionFromFlags(clearnet, tor bool) ConnectionType {
	switch {
	case clearnet && tor:
		return ConnectionBoth
	case clearnet:
		return ConnectionClearnet
	case tor:
		return ConnectionTor
	default:
		return ConnectionUnknown
	}
}

// ConnectionFromAddresses derives the connection type from advertised
// addresses. Onion hosts count as tor and everything else as clearnet.
func ConnectionFromAddresses(addrs []string) ConnectionType {
	var clearnet, tor bool
	for _, a := range addrs {
		if a == "" {
			continue
		}
		if IsOnion(a) {
			tor = true
		} else {
			clearnet = true
		}
	}
	return ConnectionFromFlags(clearnet, tor)
}

// Matches reports whether c satisfies a requested connection filter. The
// "both" filter, and an empty one, accept every node.
func (c ConnectionType) Matches(filter ConnectionType) bool {
	switch filter {
	case "", ConnectionBoth:
		return true
	case ConnectionClearnet:
		return c == ConnectionClearnet || c == ConnectionBoth
	case ConnectionTor:
		return c == ConnectionTor || c == ConnectionBoth
	default:
		return c == filter
	}
}

// IsOnion reports whether addr is a tor hidden service address.
func IsOnion(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	return strings.HasSuffix(fold(host), ".onion")
}

// fold returns the case-folded form of s. Casers carry state, so each call
// gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
