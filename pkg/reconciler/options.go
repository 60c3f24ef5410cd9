package reconciler

import (
	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/sources"
)

// options configures a reconciler.
type options struct {
	order    SourceOrder
	tracking bool
}

func defaultOptions() *options {
	return &options{
		order:    SourceOrder(sources.IDs()),
		tracking: true,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithSourceOrder sets the merge priority, highest first.
func WithSourceOrder(ids ...sources.ID) Option {
	return func(o *options) error {
		if len(ids) == 0 {
			return &errors.ValidationError{
				Field:   "order",
				Message: "cannot be empty",
			}
		}
		seen := make(map[sources.ID]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				return &errors.ValidationError{
					Field:   "order",
					Value:   id,
					Message: "duplicate source " + id.String(),
				}
			}
			seen[id] = true
		}
		o.order = SourceOrder(ids)
		return nil
	}
}

// WithProvenance enables field-level tracking.
func WithProvenance(enabled bool) Option {
	return func(o *options) error {
		o.tracking = enabled
		return nil
	}
}
