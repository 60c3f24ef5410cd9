package sources

import (
	"context"
	"time"

	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/logging"
)

// Channel names an access path into a source.
type Channel string

// Access channels.
const (
	Primary   Channel = "primary"
	Secondary Channel = "secondary"
)

// Attempt performs one access against a source. It returns an error matching
// errors.ErrNotFound when the source explicitly reports the resource absent.
type Attempt[T any] func(ctx context.Context) (T, error)

// Chain runs a primary attempt and, when it fails for any reason other than
// not-found, a secondary attempt for the same logical query.
//
// A nil Secondary makes the chain single-channel: a primary failure is final.
type Chain[T any] struct {
	Source    ID
	Primary   Attempt[T]
	Secondary Attempt[T]

	// Timeout bounds each attempt separately. Zero means no per-attempt bound.
	Timeout time.Duration
}

// Run executes the chain. It never returns an error; failures are carried
// in the outcome.
func (c Chain[T]) Run(ctx context.Context) Outcome[T] {
	ctx = logging.WithSource(ctx, c.Source.String())
	logger := logging.FromContext(ctx)

	v, err := c.attempt(ctx, Primary, c.Primary)
	switch {
	case err == nil:
		return Found(c.Source, Primary, v)
	case errors.IsNotFound(err):
		logger.Debug().Str("channel", string(Primary)).Msg("source reports not found")
		return NotFound[T](c.Source, Primary)
	case c.Secondary == nil:
		return Failed[T](c.Source, Primary, err)
	case ctx.Err() != nil:
		return Failed[T](c.Source, Primary, ctx.Err())
	}

	logger.Warn().Err(err).Msg("primary channel failed, falling back to secondary")

	v, err = c.attempt(ctx, Secondary, c.Secondary)
	switch {
	case err == nil:
		return Found(c.Source, Secondary, v)
	case errors.IsNotFound(err):
		return NotFound[T](c.Source, Secondary)
	default:
		return Failed[T](c.Source, Secondary, err)
	}
}

func (c Chain[T]) attempt(ctx context.Context, ch Channel, fn Attempt[T]) (T, error) {
	var zero T
	if fn == nil {
		return zero, errors.ErrNotImplemented
	}

	ctx = logging.WithChannel(ctx, string(ch))
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	logging.FromContext(ctx).Debug().Msg("source attempt")
	v, err := fn(ctx)
	if err != nil && ctx.Err() == context.DeadlineExceeded && !errors.IsTimeout(err) {
		err = errors.NewTimeoutError(string(c.Source)+" "+string(ch), c.Timeout.String(), err.Error())
	}
	return v, err
}
