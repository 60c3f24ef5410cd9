// Package sweep drives descending multi-tier scans, such as a rank-range
// search, one tier at a time until a result target is met.
//
// A sweep over [Min, Max] makes at most Max-Min+1 fetches and stops as soon
// as Limit accepted items have been collected. Items keep descending tier
// order, then listing order within a tier.
package sweep

import (
	"context"
	"fmt"

	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/logging"
)

// Fetch returns the listing of one tier.
type Fetch[T any] func(ctx context.Context, tier int) ([]T, error)

// Sweep describes one bounded descending scan.
type Sweep[T any] struct {
	// Min and Max bound the tiers, inclusive. The scan starts at Max.
	Min, Max int

	// Limit is the number of accepted items to collect. Zero means no limit.
	Limit int

	// Accept filters fetched items. A nil Accept keeps everything.
	Accept func(T) bool

	Fetch Fetch[T]
}

// Result is what a sweep collected.
type Result[T any] struct {
	Items []T

	// Visited lists the tiers fetched, in fetch order.
	Visited []int
}

// Run executes the sweep. On a fetch failure it stops and returns the items
// collected so far together with the error.
func (s Sweep[T]) Run(ctx context.Context) (*Result[T], error) {
	if s.Fetch == nil {
		return nil, &errors.ValidationError{Field: "fetch", Message: "cannot be nil"}
	}
	if s.Min > s.Max {
		return nil, &errors.ValidationError{
			Field:   "min",
			Value:   s.Min,
			Message: fmt.Sprintf("must not exceed max (%d)", s.Max),
		}
	}

	logger := logging.Ctx(ctx)
	res := &Result[T]{Items: []T{}}

	for tier := s.Max; tier >= s.Min && !s.full(res); tier-- {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		res.Visited = append(res.Visited, tier)
		items, err := s.Fetch(ctx, tier)
		if err != nil {
			return res, fmt.Errorf("tier %d: %w", tier, err)
		}

		before := len(res.Items)
		for _, item := range items {
			if s.Accept != nil && !s.Accept(item) {
				continue
			}
			res.Items = append(res.Items, item)
			if s.full(res) {
				break
			}
		}

		logger.Debug().
			Int("tier", tier).
			Int("fetched", len(items)).
			Int("accepted", len(res.Items)-before).
			Msg("sweep tier")
	}

	return res, nil
}

func (s Sweep[T]) full(res *Result[T]) bool {
	return s.Limit > 0 && len(res.Items) >= s.Limit
}
