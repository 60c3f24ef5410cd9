package reconciler

import (
	"slices"

	"github.com/agentstation/lnmap/pkg/sources"
)

// SourceOrder is a fixed source priority, highest first.
type SourceOrder []sources.ID

// Rank returns the position of id in the order. Unlisted sources rank after
// every listed one.
func (o SourceOrder) Rank(id sources.ID) int {
	if i := slices.Index(o, id); i >= 0 {
		return i
	}
	return len(o)
}

// Sorted returns a copy of outcomes ordered by the priority of o. Outcomes of
// equal rank keep their relative order.
func Sorted[T any](o SourceOrder, outcomes []sources.Outcome[T]) []sources.Outcome[T] {
	out := slices.Clone(outcomes)
	slices.SortStableFunc(out, func(a, b sources.Outcome[T]) int {
		return o.Rank(a.Source) - o.Rank(b.Source)
	})
	return out
}
