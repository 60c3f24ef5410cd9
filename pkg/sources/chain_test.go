package sources_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/sources"
)

// recorder counts calls to an attempt.
type recorder struct {
	calls int
	value string
	err   error
}

func (r *recorder) attempt(context.Context) (string, error) {
	r.calls++
	return r.value, r.err
}

func TestChainPrimaryFound(t *testing.T) {
	primary := &recorder{value: "alias"}
	secondary := &recorder{value: "other"}

	out := sources.Chain[string]{Source: sources.OneMLID, Primary: primary.attempt, Secondary: secondary.attempt}.Run(context.Background())

	assert.True(t, out.Found())
	assert.Equal(t, "alias", out.Value)
	assert.Equal(t, sources.Primary, out.Channel)
	assert.Zero(t, secondary.calls)
}

func TestChainNotFoundShortCircuits(t *testing.T) {
	primary := &recorder{err: pkgerrors.NewAPIError("oneml", 404, "Not Found")}
	secondary := &recorder{value: "should not be used"}

	out := sources.Chain[string]{Source: sources.OneMLID, Primary: primary.attempt, Secondary: secondary.attempt}.Run(context.Background())

	assert.Equal(t, sources.StatusNotFound, out.Status)
	assert.NoError(t, out.Err)
	assert.Equal(t, 1, primary.calls)
	assert.Zero(t, secondary.calls, "secondary must not run after an explicit not-found")
}

func TestChainFallsBackOnTransientFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"server error", pkgerrors.NewAPIError("oneml", 503, "busy")},
		{"parse error", pkgerrors.NewParseError("json", "oneml", "unexpected token", nil)},
		{"network error", errors.New("connection reset by peer")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &recorder{err: tt.err}
			secondary := &recorder{value: "scraped"}

			out := sources.Chain[string]{Source: sources.OneMLID, Primary: primary.attempt, Secondary: secondary.attempt}.Run(context.Background())

			require.True(t, out.Found())
			assert.Equal(t, "scraped", out.Value)
			assert.Equal(t, sources.Secondary, out.Channel)
			assert.Equal(t, 1, secondary.calls)
		})
	}
}

func TestChainSecondaryOutcomes(t *testing.T) {
	t.Run("secondary not found", func(t *testing.T) {
		primary := &recorder{err: errors.New("timeout")}
		secondary := &recorder{err: pkgerrors.NewNotFoundError("node", "pk")}

		out := sources.Chain[string]{Source: sources.LNPlusID, Primary: primary.attempt, Secondary: secondary.attempt}.Run(context.Background())
		assert.Equal(t, sources.StatusNotFound, out.Status)
		assert.Equal(t, sources.Secondary, out.Channel)
	})

	t.Run("secondary failure carries latest error", func(t *testing.T) {
		primary := &recorder{err: errors.New("first")}
		secondary := &recorder{err: errors.New("second")}

		out := sources.Chain[string]{Source: sources.LNPlusID, Primary: primary.attempt, Secondary: secondary.attempt}.Run(context.Background())
		assert.True(t, out.Failed())
		assert.EqualError(t, out.Err, "second")
	})
}

func TestChainSingleChannel(t *testing.T) {
	primary := &recorder{err: errors.New("boom")}

	out := sources.Chain[string]{Source: sources.AmbossID, Primary: primary.attempt}.Run(context.Background())

	assert.True(t, out.Failed())
	assert.EqualError(t, out.Err, "boom")
	assert.Equal(t, sources.Primary, out.Channel)
}

func TestChainPerAttemptTimeout(t *testing.T) {
	slow := func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}
	fast := &recorder{value: "fallback"}

	out := sources.Chain[string]{
		Source:    sources.OneMLID,
		Primary:   slow,
		Secondary: fast.attempt,
		Timeout:   20 * time.Millisecond,
	}.Run(context.Background())

	require.True(t, out.Found(), "the secondary gets its own timeout budget")
	assert.Equal(t, "fallback", out.Value)
}

func TestChainTimeoutIsClassified(t *testing.T) {
	slow := func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}

	out := sources.Chain[string]{Source: sources.AmbossID, Primary: slow, Timeout: 10 * time.Millisecond}.Run(context.Background())

	require.True(t, out.Failed())
	assert.True(t, pkgerrors.IsTimeout(out.Err))
}

func TestChainCancelledParentSkipsSecondary(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	primary := func(context.Context) (string, error) {
		cancel()
		return "", errors.New("aborted")
	}
	secondary := &recorder{value: "x"}

	out := sources.Chain[string]{Source: sources.OneMLID, Primary: primary, Secondary: secondary.attempt}.Run(ctx)

	assert.True(t, out.Failed())
	assert.ErrorIs(t, out.Err, context.Canceled)
	assert.Zero(t, secondary.calls)
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []sources.ID{sources.AmbossID, sources.OneMLID, sources.LNPlusID}, sources.IDs())
	assert.True(t, sources.OneMLID.IsValid())
	assert.False(t, sources.ID("mempool").IsValid())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "oneml: found", sources.Found(sources.OneMLID, sources.Primary, 1).String())
	assert.Equal(t, "amboss: failed (boom)", sources.Failed[int](sources.AmbossID, sources.Primary, errors.New("boom")).String())
}
