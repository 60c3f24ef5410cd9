package reconciler

import (
	"github.com/agentstation/lnmap/pkg/provenance"
	"github.com/agentstation/lnmap/pkg/sources"
)

// Result is the outcome of one reconciliation.
type Result[T any] struct {
	// Value is the merged record. It is the zero value when nothing was found.
	Value T

	// Provenance maps each merged field to the source that supplied it.
	Provenance provenance.Map

	// Outcomes holds every source outcome in priority order.
	Outcomes []sources.Outcome[*T]

	// Found lists the sources that produced a record, in priority order.
	Found []sources.ID

	// Errors holds one entry per failed source, in priority order.
	Errors []SourceError
}

// Outcome returns the outcome of source, if it took part.
func (r *Result[T]) Outcome(source sources.ID) (sources.Outcome[*T], bool) {
	for _, o := range r.Outcomes {
		if o.Source == source {
			return o, true
		}
	}
	return sources.Outcome[*T]{}, false
}

// Record returns the record source produced, or nil.
func (r *Result[T]) Record(source sources.ID) *T {
	if o, ok := r.Outcome(source); ok && o.Found() {
		return o.Value
	}
	return nil
}

// SourceError reports the failure of one source.
type SourceError struct {
	Source  sources.ID `json:"source" yaml:"source"`
	Message string     `json:"message" yaml:"message"`
}

// String implements fmt.Stringer.
func (e SourceError) String() string {
	return e.Source.String() + ": " + e.Message
}

// Errors returns one SourceError per failed outcome, in input order. The
// result is never nil.
func Errors[T any](outcomes []sources.Outcome[T]) []SourceError {
	errs := []SourceError{}
	for _, o := range outcomes {
		if !o.Failed() {
			continue
		}
		msg := "unknown error"
		if o.Err != nil {
			msg = o.Err.Error()
		}
		errs = append(errs, SourceError{Source: o.Source, Message: msg})
	}
	return errs
}
