package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lnmap"
	"github.com/agentstation/lnmap/internal/cmd/output"
	"github.com/agentstation/lnmap/internal/tools"
	"github.com/agentstation/lnmap/pkg/classify"
	"github.com/agentstation/lnmap/pkg/records"
)

func sampleSwaps() *lnmap.Swaps {
	return &lnmap.Swaps{
		Count:  1,
		Filter: lnmap.SwapFilterEcho{Status: records.SwapPending},
		Swaps: []*records.Swap{{
			ID:                  7,
			Status:              records.SwapPending,
			Shape:               classify.ShapeTriangle,
			CapacitySat:         2_000_000,
			ParticipantsCurrent: 1,
			ParticipantsTotal:   3,
			ConnectionType:      classify.ConnectionClearnet,
			Restrictions:        []string{},
		}},
	}
}

func TestResultPlainMessage(t *testing.T) {
	var buf bytes.Buffer
	err := output.Result(&buf, output.FormatTable, &tools.Result{Text: "No swaps found matching criteria."})
	require.NoError(t, err)
	assert.Equal(t, "No swaps found matching criteria.\n", buf.String())
}

func TestResultJSONUsesRenderedText(t *testing.T) {
	var buf bytes.Buffer
	res := &tools.Result{Text: "{\n  \"count\": 1\n}", Data: sampleSwaps()}
	require.NoError(t, output.Result(&buf, output.FormatJSON, res))
	assert.Equal(t, "{\n  \"count\": 1\n}\n", buf.String())
}

func TestResultTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Result(&buf, output.FormatTable, &tools.Result{Text: "x", Data: sampleSwaps()}))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "PARTICIPANTS")
	assert.Contains(t, out, "triangle")
	assert.Contains(t, out, "2,000,000")
	assert.Contains(t, out, "1/3")
}

func TestResultYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Result(&buf, output.FormatYAML, &tools.Result{Text: "x", Data: sampleSwaps()}))

	out := buf.String()
	assert.Contains(t, out, "count: 1")
	assert.Contains(t, out, "shape: triangle")
	assert.Contains(t, out, "capacity_sat: 2000000")
}

func TestTableFallsBackToProperties(t *testing.T) {
	var buf bytes.Buffer
	data := struct {
		NodeCount int `json:"node_count"`
	}{NodeCount: 3}
	require.NoError(t, output.NewFormatter(output.FormatTable).Format(&buf, data))
	assert.Contains(t, strings.ToLower(buf.String()), "node count")
}

func TestParseFormat(t *testing.T) {
	f, err := output.ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, output.FormatYAML, f)

	_, err = output.ParseFormat("wide")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, output.FormatJSON, output.DetectFormat("json"))
}
