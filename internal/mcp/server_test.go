package mcp_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lnmap"
	"github.com/agentstation/lnmap/internal/mcp"
	"github.com/agentstation/lnmap/internal/tools"
	"github.com/agentstation/lnmap/pkg/logging"
	"github.com/agentstation/lnmap/pkg/records"
)

// stubService answers lookups for one known node. Every other operation is
// unused here; the embedded interface panics if one is called.
type stubService struct {
	tools.Service
	known string
}

func (s stubService) Lookup(_ context.Context, pk string) (*lnmap.NodeReport, error) {
	if pk != s.known {
		return &lnmap.NodeReport{Errors: []string{}}, lnmap.ErrNoData
	}
	return &lnmap.NodeReport{
		Node:   records.Node{Pubkey: pk, Alias: "ACINQ", CapacitySat: 42},
		Errors: []string{},
	}, nil
}

type rpcResponse struct {
	Result struct {
		Tools []struct {
			Name        string          `json:"name"`
			InputSchema json.RawMessage `json:"inputSchema"`
			Annotations struct {
				Title        string `json:"title"`
				ReadOnlyHint *bool  `json:"readOnlyHint"`
			} `json:"annotations"`
		} `json:"tools"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	} `json:"result"`
}

func roundTrip(t *testing.T, s *mcp.Server, request string) rpcResponse {
	t.Helper()
	msg := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(request))
	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(data, &resp), string(data))
	return resp
}

func newServer(known string) *mcp.Server {
	return mcp.New(tools.New(stubService{known: known}), "test", logging.NewNopLogger())
}

func TestListTools(t *testing.T) {
	s := newServer("")
	resp := roundTrip(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)

	require.Len(t, resp.Result.Tools, 9)
	byName := map[string]int{}
	for i, tool := range resp.Result.Tools {
		byName[tool.Name] = i
		assert.True(t, json.Valid(tool.InputSchema))
		require.NotNil(t, tool.Annotations.ReadOnlyHint)
		assert.True(t, *tool.Annotations.ReadOnlyHint)
	}
	require.Contains(t, byName, tools.LookupNode)
	assert.Equal(t, "Lookup Lightning Node", resp.Result.Tools[byName[tools.LookupNode]].Annotations.Title)
}

func TestCallToolReturnsDocument(t *testing.T) {
	pk := strings.Repeat("c", 66)
	s := newServer(pk)
	resp := roundTrip(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"ln_lookup_node","arguments":{"pubkey":"`+pk+`"}}}`)

	require.Len(t, resp.Result.Content, 1)
	assert.False(t, resp.Result.IsError)
	assert.Equal(t, "text", resp.Result.Content[0].Type)
	assert.Contains(t, resp.Result.Content[0].Text, `"alias": "ACINQ"`)
}

func TestCallToolNoData(t *testing.T) {
	pk := strings.Repeat("d", 66)
	s := newServer("")
	resp := roundTrip(t, s, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"ln_lookup_node","arguments":{"pubkey":"`+pk+`"}}}`)

	require.Len(t, resp.Result.Content, 1)
	assert.False(t, resp.Result.IsError)
	assert.Equal(t, "No data found for pubkey: "+pk, resp.Result.Content[0].Text)
}

func TestCallToolValidationError(t *testing.T) {
	s := newServer("")
	resp := roundTrip(t, s, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"ln_lookup_node","arguments":{"pubkey":"xyz"}}}`)

	require.Len(t, resp.Result.Content, 1)
	assert.True(t, resp.Result.IsError)
	assert.Contains(t, resp.Result.Content[0].Text, "66-character lowercase hex public key")
}
