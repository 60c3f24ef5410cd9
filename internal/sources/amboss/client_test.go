package amboss

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lnmap/pkg/classify"
	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/sources"
)

const acinq = "03864ef025fde8fb587d989186ce6a4a186895ee44a926bfc370e2c366597a3f8f"

func loadTestdata(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

// newTestServer answers enriched queries with enriched and reduced queries
// with simple. It counts how many queries of each kind it served.
func newTestServer(t *testing.T, enriched, simple string) (*httptest.Server, *atomic.Int32, *atomic.Int32) {
	t.Helper()
	var enrichedCalls, simpleCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if strings.Contains(req.Query, "socials") {
			enrichedCalls.Add(1)
			_, _ = w.Write([]byte(enriched))
			return
		}
		simpleCalls.Add(1)
		_, _ = w.Write([]byte(simple))
	}))
	t.Cleanup(srv.Close)
	return srv, &enrichedCalls, &simpleCalls
}

func TestNodeEnriched(t *testing.T) {
	srv, _, simpleCalls := newTestServer(t, loadTestdata(t, "node_enriched.json"), "")
	c := NewClient(srv.URL, "")

	node, err := c.Node(context.Background(), acinq)
	require.NoError(t, err)

	assert.Equal(t, acinq, node.Pubkey)
	assert.Equal(t, "ACINQ", node.Alias)
	assert.Equal(t, "#49daaa", node.Color)
	assert.Equal(t, int64(38_500_000_000), node.CapacitySat)
	assert.Equal(t, int64(2300), node.ChannelCount)
	assert.Len(t, node.Addresses, 2)
	assert.Equal(t, classify.ConnectionBoth, node.ConnectionType)
	assert.Equal(t, []string{"800000x1x0", "800000x2x1"}, node.ChannelIDs)
	assert.Equal(t, map[string]string{"twitter": "acinq_co", "website": "https://acinq.co"}, node.Socials)
	require.NotNil(t, node.IsClaimed)
	assert.True(t, *node.IsClaimed)
	require.NotNil(t, node.LastUpdate)
	assert.Equal(t, int64(1700000000), node.LastUpdate.Unix())
	assert.Zero(t, simpleCalls.Load())
}

func TestNodeDegradesToReducedQuery(t *testing.T) {
	schemaDrift := `{"errors":[{"message":"Cannot query field \"socials\" on type \"Node\""}]}`
	srv, enrichedCalls, simpleCalls := newTestServer(t, schemaDrift, loadTestdata(t, "node_simple.json"))
	c := NewClient(srv.URL, "")

	node, err := c.Node(context.Background(), acinq)
	require.NoError(t, err)

	assert.Equal(t, int32(1), enrichedCalls.Load())
	assert.Equal(t, int32(1), simpleCalls.Load())
	assert.Equal(t, "ACINQ", node.Alias)
	assert.Equal(t, int64(2300), node.ChannelCount)
	assert.Nil(t, node.IsClaimed)
	assert.Nil(t, node.Socials)
	assert.Equal(t, classify.ConnectionClearnet, node.ConnectionType)
}

func TestNodeTransportFailureDoesNotDegrade(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Node(context.Background(), acinq)
	require.Error(t, err)
	assert.True(t, errors.IsProviderUnavailable(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestNodeNotFound(t *testing.T) {
	srv, _, _ := newTestServer(t, `{"data":{"getNode":null}}`, "")

	out := NewClient(srv.URL, "").Lookup(acinq).Run(context.Background())
	assert.Equal(t, sources.StatusNotFound, out.Status)
	assert.NoError(t, out.Err)
}

func TestBearerCredential(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data":{"getNode":null}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key123")
	assert.True(t, c.HasAPIKey())
	_, _ = c.Node(context.Background(), acinq)
	assert.Equal(t, "Bearer key123", auth)
}

func TestSearch(t *testing.T) {
	srv, _, _ := newTestServer(t, "", loadTestdata(t, "search.json"))
	c := NewClient(srv.URL, "")

	nodes, err := c.Search(context.Background(), "acinq", 10)
	require.NoError(t, err)
	require.Len(t, nodes, 2, "results without a valid pubkey are dropped")
	assert.Equal(t, "ACINQ", nodes[0].Alias)
	assert.Equal(t, int64(38_500_000_000), nodes[0].CapacitySat)
	assert.Equal(t, int64(0), nodes[1].CapacitySat)
	assert.Equal(t, int64(4), nodes[1].ChannelCount)

	nodes, err = c.Search(context.Background(), "acinq", 1)
	require.NoError(t, err)
	assert.Len(t, nodes, 1)
}

func TestIntrospect(t *testing.T) {
	srv, _, _ := newTestServer(t, "", `{"data":{"__schema":{"queryType":{"name":"Query","fields":[]}}}}`)

	out, err := NewClient(srv.URL, "").Introspect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"__schema\": {\n    \"queryType\": {\n      \"name\": \"Query\",\n      \"fields\": []\n    }\n  }\n}", out)
}

func TestConvertNodeCapsChannels(t *testing.T) {
	var resp nodeResponse
	list := make([]map[string]any, 40)
	for i := range list {
		list[i] = map[string]any{"short_channel_id": "x", "capacity": 1}
	}
	payload, err := json.Marshal(map[string]any{
		"getNode": map[string]any{
			"graph_info": map[string]any{
				"channels": map[string]any{"channel_list": map[string]any{"list": list}},
			},
		},
	})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, &resp))

	node := convertNode(&resp, acinq)
	require.NotNil(t, node)
	assert.Len(t, node.ChannelIDs, 30)
	assert.Empty(t, node.Alias)
	assert.Equal(t, classify.ConnectionUnknown, node.ConnectionType)
}
