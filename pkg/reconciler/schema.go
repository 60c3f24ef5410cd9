package reconciler

import (
	"maps"
	"slices"
)

// Field is one mergeable field of T.
type Field[T any] struct {
	// Name is the field name reported in provenance.
	Name string

	// Value returns the field value of a record and whether it is
	// non-default, that is, whether the record supplies it.
	Value func(*T) (any, bool)

	// Copy copies the field from src into dst.
	Copy func(dst, src *T)
}

// Schema is the ordered list of fields a Reconciler folds.
type Schema[T any] []Field[T]

// Names returns the field names in schema order.
func (s Schema[T]) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Value builds a field over a comparable value. The zero value, and any
// of defaults, count as not supplied.
func Value[T any, V comparable](name string, get func(*T) *V, defaults ...V) Field[T] {
	return Field[T]{
		Name: name,
		Value: func(t *T) (any, bool) {
			var zero V
			v := *get(t)
			return v, v != zero && !slices.Contains(defaults, v)
		},
		Copy: func(dst, src *T) {
			*get(dst) = *get(src)
		},
	}
}

// Slice builds a field over a slice. Empty slices count as not supplied.
func Slice[T any, E any](name string, get func(*T) *[]E) Field[T] {
	return Field[T]{
		Name: name,
		Value: func(t *T) (any, bool) {
			v := *get(t)
			return v, len(v) > 0
		},
		Copy: func(dst, src *T) {
			*get(dst) = slices.Clone(*get(src))
		},
	}
}

// Map builds a field over a map. Empty maps count as not supplied.
func Map[T any, K comparable, V any](name string, get func(*T) *map[K]V) Field[T] {
	return Field[T]{
		Name: name,
		Value: func(t *T) (any, bool) {
			v := *get(t)
			return v, len(v) > 0
		},
		Copy: func(dst, src *T) {
			*get(dst) = maps.Clone(*get(src))
		},
	}
}

// Pointer builds a field over an optional value. Nil counts as not supplied.
func Pointer[T any, V any](name string, get func(*T) **V) Field[T] {
	return Field[T]{
		Name: name,
		Value: func(t *T) (any, bool) {
			p := *get(t)
			if p == nil {
				return nil, false
			}
			return *p, true
		},
		Copy: func(dst, src *T) {
			v := **get(src)
			*get(dst) = &v
		},
	}
}
