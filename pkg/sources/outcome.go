package sources

import "fmt"

// Status is the terminal state of a source query.
type Status int

// Terminal states.
const (
	StatusFailed Status = iota
	StatusNotFound
	StatusFound
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not_found"
	default:
		return "failed"
	}
}

// Outcome is the result of one source query. Value is only meaningful when
// Status is StatusFound, and Err only when Status is StatusFailed.
type Outcome[T any] struct {
	Source  ID
	Status  Status
	Value   T
	Err     error
	Channel Channel
}

// Found reports whether the query produced a value.
func (o Outcome[T]) Found() bool {
	return o.Status == StatusFound
}

// Failed reports whether the query failed on every channel it tried.
func (o Outcome[T]) Failed() bool {
	return o.Status == StatusFailed
}

// String implements fmt.Stringer.
func (o Outcome[T]) String() string {
	if o.Failed() && o.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", o.Source, o.Status, o.Err)
	}
	return fmt.Sprintf("%s: %s", o.Source, o.Status)
}

// Found returns a successful outcome.
func Found[T any](source ID, ch Channel, v T) Outcome[T] {
	return Outcome[T]{Source: source, Status: StatusFound, Value: v, Channel: ch}
}

// NotFound returns an outcome for an explicitly absent resource.
func NotFound[T any](source ID, ch Channel) Outcome[T] {
	return Outcome[T]{Source: source, Status: StatusNotFound, Channel: ch}
}

// Failed returns an outcome carrying err.
func Failed[T any](source ID, ch Channel, err error) Outcome[T] {
	return Outcome[T]{Source: source, Status: StatusFailed, Err: err, Channel: ch}
}
