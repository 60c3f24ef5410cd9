package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/lnmap/pkg/classify"
)

func TestTierName(t *testing.T) {
	tests := map[int]string{
		0:  "Unranked",
		1:  "Aluminium",
		5:  "Titanium",
		8:  "Gold",
		9:  "Platinum",
		10: "Iridium",
		11: classify.UnknownTier,
		-1: classify.UnknownTier,
	}
	for rank, want := range tests {
		assert.Equal(t, want, classify.TierName(rank), "rank %d", rank)
	}
}

func TestShapeForParticipants(t *testing.T) {
	assert.Equal(t, classify.ShapeDual, classify.ShapeForParticipants(2))
	assert.Equal(t, classify.ShapeTriangle, classify.ShapeForParticipants(3))
	assert.Equal(t, classify.ShapeSquare, classify.ShapeForParticipants(4))
	assert.Equal(t, classify.ShapePentagon, classify.ShapeForParticipants(5))
	assert.Equal(t, classify.ShapeUnknown, classify.ShapeForParticipants(7))
	assert.Equal(t, classify.ShapeUnknown, classify.ShapeForParticipants(0))
}

func TestParseShape(t *testing.T) {
	assert.Equal(t, classify.ShapeTriangle, classify.ParseShape(" Triangle "))
	assert.Equal(t, classify.ShapePentagon, classify.ParseShape("PENTAGON"))
	assert.Equal(t, classify.ShapeUnknown, classify.ParseShape("hexagon"))
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		capacity int64
		want     classify.SizeBucket
	}{
		{0, classify.SizeXS},
		{499_999, classify.SizeXS},
		{500_000, classify.SizeSM},
		{999_999, classify.SizeSM},
		{1_000_000, classify.SizeMD},
		{3_000_000, classify.SizeLG},
		{5_000_000, classify.SizeXL},
		{9_999_999, classify.SizeXL},
		{10_000_000, classify.SizeXXL},
		{2_100_000_000_000_000, classify.SizeXXL},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classify.BucketFor(tt.capacity), "capacity %d", tt.capacity)
	}
}

func TestSizeBucketContains(t *testing.T) {
	assert.True(t, classify.SizeMD.Contains(1_000_000))
	assert.False(t, classify.SizeMD.Contains(3_000_000))
	assert.True(t, classify.SizeXXL.Contains(50_000_000_000))
	assert.True(t, classify.SizeBucket("bogus").Contains(1))
}

func TestParseConnection(t *testing.T) {
	tests := map[string]classify.ConnectionType{
		"Clearnet & Tor": classify.ConnectionBoth,
		"clearnet/tor":   classify.ConnectionBoth,
		"Clearnet only":  classify.ConnectionClearnet,
		"TOR":            classify.ConnectionTor,
		"Hybrid":         classify.ConnectionBoth,
		"":               classify.ConnectionUnknown,
		"whatever":       classify.ConnectionUnknown,
	}
	for in, want := range tests {
		assert.Equal(t, want, classify.ParseConnection(in), in)
	}
}

func TestConnectionFromAddresses(t *testing.T) {
	onion := "abcdefghijklmnopqrstuvwxyz234567abcdefghijklmnopqrstuvwx.onion:9735"
	assert.Equal(t, classify.ConnectionTor, classify.ConnectionFromAddresses([]string{onion}))
	assert.Equal(t, classify.ConnectionClearnet, classify.ConnectionFromAddresses([]string{"203.0.113.7:9735"}))
	assert.Equal(t, classify.ConnectionBoth, classify.ConnectionFromAddresses([]string{onion, "[2001:db8::1]:9735"}))
	assert.Equal(t, classify.ConnectionUnknown, classify.ConnectionFromAddresses(nil))
}

func TestConnectionMatches(t *testing.T) {
	assert.True(t, classify.ConnectionTor.Matches(""))
	assert.True(t, classify.ConnectionTor.Matches(classify.ConnectionBoth))
	assert.True(t, classify.ConnectionBoth.Matches(classify.ConnectionClearnet))
	assert.False(t, classify.ConnectionTor.Matches(classify.ConnectionClearnet))
	assert.False(t, classify.ConnectionUnknown.Matches(classify.ConnectionTor))
}

func TestIsOnion(t *testing.T) {
	assert.True(t, classify.IsOnion("xyz.ONION"))
	assert.True(t, classify.IsOnion("xyz.onion:9735"))
	assert.False(t, classify.IsOnion("1.2.3.4:9735"))
}
