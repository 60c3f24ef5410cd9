package serve_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lnmap/cmd/lnmap/cmd/serve"
	"github.com/agentstation/lnmap/internal/appcontext"
	"github.com/agentstation/lnmap/internal/tools"
)

// idle is a service no test request reaches.
type idle struct{ tools.Service }

func TestRunListsTools(t *testing.T) {
	reserved := false
	app := &appcontext.Mock{
		ReserveFunc: func() { reserved = true },
		ToolsFunc:   func() (*tools.Registry, error) { return tools.New(idle{}), nil },
	}

	in := strings.NewReader(strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
	}, "\n") + "\n")
	var out bytes.Buffer

	require.NoError(t, serve.Run(context.Background(), app, in, &out))
	assert.True(t, reserved, "stdout must be reserved before serving")

	var names []string
	scanner := bufio.NewScanner(&out)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		var msg struct {
			ID     int `json:"id"`
			Result struct {
				Tools []struct {
					Name string `json:"name"`
				} `json:"tools"`
			} `json:"result"`
		}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &msg), "stdout carries only protocol messages")
		if msg.ID == 2 {
			for _, tool := range msg.Result.Tools {
				names = append(names, tool.Name)
			}
		}
	}

	assert.Len(t, names, 9)
	assert.Contains(t, names, tools.LookupNode)
	assert.Contains(t, names, tools.SearchByAlias)
}

func TestRunToolsError(t *testing.T) {
	app := &appcontext.Mock{
		ToolsFunc: func() (*tools.Registry, error) { return nil, assert.AnError },
	}
	err := serve.Run(context.Background(), app, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, assert.AnError)
}
