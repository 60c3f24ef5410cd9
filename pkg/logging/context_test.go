package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/lnmap/pkg/logging"
)

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithSource(ctx, "oneml")
	ctx = logging.WithChannel(ctx, "secondary")
	ctx = logging.WithOperation(ctx, "ln_lookup_node")

	logging.Ctx(ctx).Info().Msg("attempt")

	testLogger.AssertContains(t, `"source":"oneml"`)
	testLogger.AssertContains(t, `"channel":"secondary"`)
	testLogger.AssertContains(t, `"operation":"ln_lookup_node"`)
	assert.Len(t, testLogger.Lines(), 1)
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, logging.Default(), logging.FromContext(nil))
}

func TestWithFields(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithFields(ctx, map[string]any{"page": 2, "rank": int64(9)})

	logging.Ctx(ctx).Debug().Msg("sweep")

	testLogger.AssertContains(t, `"page":2`)
	testLogger.AssertContains(t, `"rank":9`)
}

func TestCaptureLoggingForTest(t *testing.T) {
	captured := logging.CaptureLoggingForTest(t)
	logging.Warn().Str("source", "lnplus").Msg("fallback")
	captured.AssertContains(t, "fallback")
	captured.AssertContains(t, "lnplus")
}
