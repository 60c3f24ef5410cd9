package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lnmap/internal/transport"
	"github.com/agentstation/lnmap/pkg/errors"
)

func graphQLServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGraphQLDecodesData(t *testing.T) {
	srv := graphQLServer(t, http.StatusOK, `{"data":{"getNode":{"alias":"ACINQ"}}}`)

	var out struct {
		GetNode *struct {
			Alias string `json:"alias"`
		} `json:"getNode"`
	}
	err := transport.New("amboss").GraphQL(context.Background(), srv.URL, "query { getNode }", map[string]any{"pubkey": "x"}, &out)
	require.NoError(t, err)
	require.NotNil(t, out.GetNode)
	assert.Equal(t, "ACINQ", out.GetNode.Alias)
}

func TestGraphQLErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"error payload", http.StatusOK, `{"errors":[{"message":"Cannot query field \"socials\""}]}`, `GraphQL error: Cannot query field "socials"`},
		{"bad request payload", http.StatusBadRequest, `{"errors":[{"message":"a"},{"message":"b"}]}`, "GraphQL error: a; b"},
		{"missing data", http.StatusOK, `{"data":null}`, "GraphQL response has no data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := graphQLServer(t, tt.status, tt.body)
			err := transport.New("amboss").GraphQL(context.Background(), srv.URL, "query { x }", nil, nil)
			require.Error(t, err)
			assert.True(t, errors.IsGraphQL(err))
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestGraphQLTransportFailures(t *testing.T) {
	t.Run("bad request without payload", func(t *testing.T) {
		srv := graphQLServer(t, http.StatusBadRequest, `bad`)
		err := transport.New("amboss").GraphQL(context.Background(), srv.URL, "query { x }", nil, nil)
		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := graphQLServer(t, http.StatusOK, `{`)
		err := transport.New("amboss").GraphQL(context.Background(), srv.URL, "query { x }", nil, nil)
		assert.True(t, errors.IsParse(err))
	})

	t.Run("unexpected data shape", func(t *testing.T) {
		srv := graphQLServer(t, http.StatusOK, `{"data":{"getNode":"oops"}}`)
		var out struct {
			GetNode struct{ Alias string } `json:"getNode"`
		}
		err := transport.New("amboss").GraphQL(context.Background(), srv.URL, "query { x }", nil, &out)
		assert.True(t, errors.IsParse(err))
	})
}
