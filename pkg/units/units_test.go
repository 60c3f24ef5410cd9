package units_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lnmap/pkg/units"
)

func TestParseCapacity(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"~0.5 BTC", 50_000_000},
		{"12.34567891 BTC", 1_234_567_891},
		{"Capacity ~1.2btc", 120_000_000},
		{"123,456 SAT", 123_456},
		{"  987 sat ", 987},
		{"1,234.9 SAT", 1_234},
		{"no numbers here", 0},
		{"", 0},
		{"BTC", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, units.ParseCapacity(tt.in))
		})
	}
}

func TestParseSatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"2.5M SAT", 2_500_000},
		{"500K sat", 500_000},
		{"1 B SAT", 1_000_000_000},
		{"1,500 SAT", 1_500},
		{"Min channel: 3m sats", 3_000_000},
		{"2.5M", 0},
		{"unmatched", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, units.ParseSatAmount(tt.in))
		})
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, int64(1234), units.ParseCount("Channels: 1,234 open"))
	assert.Equal(t, int64(7), units.ParseCount("7"))
	assert.Equal(t, int64(0), units.ParseCount("none"))
}

func TestParseRank(t *testing.T) {
	rank, name, ok := units.ParseRank("Rank: 8 / Gold")
	assert.True(t, ok)
	assert.Equal(t, 8, rank)
	assert.Equal(t, "Gold", name)

	rank, name, ok = units.ParseRank("rank 10")
	assert.True(t, ok)
	assert.Equal(t, 10, rank)
	assert.Empty(t, name)

	_, _, ok = units.ParseRank("unranked")
	assert.False(t, ok)
}

func TestParseConnection(t *testing.T) {
	assert.Equal(t, "Clearnet & Tor", units.ParseConnection("Connection: Clearnet & Tor"))
	assert.Equal(t, "tor", units.ParseConnection("connection tor"))
	assert.Empty(t, units.ParseConnection("nothing"))
}

func TestBTCConversions(t *testing.T) {
	assert.Equal(t, int64(100_000_000), units.BTCToSats(1))
	assert.Equal(t, int64(0), units.BTCToSats(-2))
	assert.InDelta(t, 0.5, units.SatsToBTC(50_000_000), 1e-9)
}

func TestNumberUnmarshal(t *testing.T) {
	var payload struct {
		A units.Number `json:"a"`
		B units.Number `json:"b"`
		C units.Number `json:"c"`
		D units.Number `json:"d"`
		E units.Number `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a":"123456","b":789,"c":null,"d":"garbage","e":12.6}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, int64(123456), payload.A.Int64())
	assert.Equal(t, int64(789), payload.B.Int64())
	assert.Equal(t, int64(0), payload.C.Int64())
	assert.Equal(t, int64(0), payload.D.Int64())
	assert.Equal(t, int64(12), payload.E.Int64())
}

func TestTimestampUnmarshal(t *testing.T) {
	var payload struct {
		Unix    units.Timestamp `json:"unix"`
		Str     units.Timestamp `json:"str"`
		RFC     units.Timestamp `json:"rfc"`
		Zero    units.Timestamp `json:"zero"`
		Missing units.Timestamp `json:"missing"`
	}
	err := json.Unmarshal([]byte(`{"unix":1700000000,"str":"1700000000","rfc":"2024-01-02T03:04:05Z","zero":0}`), &payload)
	require.NoError(t, err)

	require.NotNil(t, payload.Unix.Ptr())
	assert.Equal(t, int64(1700000000), payload.Unix.Ptr().Unix())
	assert.Equal(t, payload.Unix.Ptr(), payload.Str.Ptr())
	assert.Equal(t, "2024-01-02T03:04:05Z", payload.RFC.Ptr().Format(time.RFC3339))
	assert.Nil(t, payload.Zero.Ptr())
	assert.Nil(t, payload.Missing.Ptr())
}
