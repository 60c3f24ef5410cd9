package sweep_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lnmap/pkg/sweep"
)

type item struct {
	tier int
	n    int
}

// listing returns size items per tier and records the tiers requested.
func listing(size int, calls *[]int) sweep.Fetch[item] {
	return func(_ context.Context, tier int) ([]item, error) {
		*calls = append(*calls, tier)
		out := make([]item, size)
		for i := range out {
			out[i] = item{tier: tier, n: i}
		}
		return out, nil
	}
}

func TestSweepStopsOnceLimitIsMet(t *testing.T) {
	var calls []int
	res, err := sweep.Sweep[item]{Min: 8, Max: 10, Limit: 5, Fetch: listing(3, &calls)}.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{10, 9}, calls, "rank 8 must not be fetched")
	assert.Equal(t, []int{10, 9}, res.Visited)
	require.Len(t, res.Items, 5)
	assert.Equal(t, item{tier: 10, n: 0}, res.Items[0])
	assert.Equal(t, item{tier: 9, n: 1}, res.Items[4])
}

func TestSweepExhaustsRange(t *testing.T) {
	var calls []int
	res, err := sweep.Sweep[item]{Min: 1, Max: 10, Limit: 100, Fetch: listing(2, &calls)}.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, calls, 10)
	assert.Len(t, res.Items, 20)
}

func TestSweepAppliesFilter(t *testing.T) {
	var calls []int
	res, err := sweep.Sweep[item]{
		Min:    5,
		Max:    7,
		Limit:  2,
		Accept: func(it item) bool { return it.n%2 == 1 },
		Fetch:  listing(2, &calls),
	}.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{7, 6}, calls)
	assert.Equal(t, []item{{7, 1}, {6, 1}}, res.Items)
}

func TestSweepSingleTier(t *testing.T) {
	var calls []int
	res, err := sweep.Sweep[item]{Min: 9, Max: 9, Fetch: listing(4, &calls)}.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{9}, calls)
	assert.Len(t, res.Items, 4)
}

func TestSweepStopsOnError(t *testing.T) {
	fetch := func(_ context.Context, tier int) ([]item, error) {
		if tier == 9 {
			return nil, errors.New("HTTP 503")
		}
		return []item{{tier: tier}}, nil
	}

	res, err := sweep.Sweep[item]{Min: 8, Max: 10, Limit: 10, Fetch: fetch}.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tier 9")
	assert.Equal(t, []item{{tier: 10}}, res.Items)
	assert.Equal(t, []int{10, 9}, res.Visited)
}

func TestSweepRejectsInvertedRange(t *testing.T) {
	var calls []int
	_, err := sweep.Sweep[item]{Min: 10, Max: 8, Fetch: listing(1, &calls)}.Run(context.Background())
	assert.Error(t, err)
	assert.Empty(t, calls)
}

func TestSweepHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls []int
	_, err := sweep.Sweep[item]{Min: 1, Max: 3, Fetch: listing(1, &calls)}.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, calls)
}
