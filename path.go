package lnmap

import (
	"context"
	"fmt"

	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/logging"
	"github.com/agentstation/lnmap/pkg/records"
)

// PathUnavailableError reports that no source can compute a payment route.
// It matches errors.ErrNotImplemented.
type PathUnavailableError struct {
	Origin      string
	Destination string
	AmountSats  int64
}

// Error returns the unavailable message naming the requested route.
func (e *PathUnavailableError) Error() string {
	return fmt.Sprintf("Pathfinding is not currently available. "+
		"The Amboss public GraphQL API does not expose a pathfinding query. "+
		"Requested: %s... → %s... for %d sats.",
		prefix(e.Origin, 12), prefix(e.Destination, 12), e.AmountSats)
}

// Unwrap returns errors.ErrNotImplemented.
func (e *PathUnavailableError) Unwrap() error {
	return errors.ErrNotImplemented
}

// FindPath validates the route request. No source exposes pathfinding, so
// a valid request always ends in a *PathUnavailableError.
func (c *Client) FindPath(_ context.Context, origin, destination string, amountSats int64) error {
	if !records.ValidPubkey(origin) {
		return errors.NewValidationError("origin", origin, "must be a 66-character lowercase hex public key")
	}
	if !records.ValidPubkey(destination) {
		return errors.NewValidationError("destination", destination, "must be a 66-character lowercase hex public key")
	}
	if amountSats < 1 {
		return errors.NewValidationError("amount_sats", amountSats, "must be at least 1")
	}
	return &PathUnavailableError{Origin: origin, Destination: destination, AmountSats: amountSats}
}

// Introspect returns the Amboss GraphQL schema as indented JSON text.
func (c *Client) Introspect(ctx context.Context) (string, error) {
	ctx = logging.WithOperation(ctx, "introspect_amboss")
	ctx, cancel := c.attemptContext(ctx)
	defer cancel()
	return c.amboss.Introspect(ctx)
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
