// Package reconciler fans a query out to several sources concurrently and
// folds their records into one, field by field, under a fixed source
// priority.
//
// For every field of the schema, in schema order, the first source in
// priority order that supplies a non-default value wins. Completion order
// never affects the result. Failed sources are reported as data in
// Result.Errors; a source that explicitly reports not-found contributes
// neither a value nor an error.
package reconciler

import (
	"context"

	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/logging"
	"github.com/agentstation/lnmap/pkg/provenance"
	"github.com/agentstation/lnmap/pkg/sources"
)

// ErrNoData is returned when every source reported not-found or failed.
var ErrNoData = errors.New("no data found")

// Reconciler merges per-source records of type T.
type Reconciler[T any] struct {
	schema   Schema[T]
	order    SourceOrder
	tracking bool
}

// New creates a new Reconciler for schema with options.
func New[T any](schema Schema[T], opts ...Option) (*Reconciler[T], error) {
	if len(schema) == 0 {
		return nil, &errors.ValidationError{Field: "schema", Message: "cannot be empty"}
	}

	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Reconciler[T]{
		schema:   schema,
		order:    options.order,
		tracking: options.tracking,
	}, nil
}

// Order returns the source priority this reconciler merges under.
func (r *Reconciler[T]) Order() SourceOrder {
	return r.order
}

// Reconcile runs every task concurrently and merges the outcomes.
//
// When no source produced a record the returned error is ErrNoData and the
// result still carries the per-source errors.
func (r *Reconciler[T]) Reconcile(ctx context.Context, tasks []Task[*T]) (*Result[T], error) {
	return r.Merge(ctx, Gather(ctx, tasks))
}

// Merge folds already collected outcomes. See Reconcile.
func (r *Reconciler[T]) Merge(ctx context.Context, outcomes []sources.Outcome[*T]) (*Result[T], error) {
	ordered := Sorted(r.order, outcomes)

	result := &Result[T]{
		Outcomes: ordered,
		Errors:   Errors(ordered),
	}

	var found []sourced[T]
	for _, o := range ordered {
		if o.Found() && o.Value != nil {
			found = append(found, sourced[T]{source: o.Source, value: o.Value})
			result.Found = append(result.Found, o.Source)
		}
	}

	logging.Ctx(ctx).Debug().
		Int("sources", len(ordered)).
		Int("found", len(found)).
		Int("failed", len(result.Errors)).
		Msg("merging source outcomes")

	if len(found) == 0 {
		return result, ErrNoData
	}

	result.Value, result.Provenance = r.fold(found)
	return result, nil
}

// sourced pairs a record with the source that produced it.
type sourced[T any] struct {
	source sources.ID
	value  *T
}

// fold merges items, which must already be in priority order.
func (r *Reconciler[T]) fold(items []sourced[T]) (T, provenance.Map) {
	var merged T
	tracker := provenance.NewTracker(r.tracking)

	for _, field := range r.schema {
		won := false
		for _, item := range items {
			v, ok := field.Value(item.value)
			if !ok {
				continue
			}
			if won {
				tracker.Offer(field.Name, item.source, v)
				continue
			}
			field.Copy(&merged, item.value)
			tracker.Track(field.Name, item.source, v)
			won = true
		}
	}

	return merged, tracker.Map()
}
