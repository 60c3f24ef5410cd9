package reconciler

import (
	"slices"

	"github.com/agentstation/lnmap/pkg/provenance"
	"github.com/agentstation/lnmap/pkg/sources"
)

// Entry is one record merged from every source listing that shares its key.
type Entry[T any] struct {
	Key        string
	Value      T
	Sources    []sources.ID
	Provenance provenance.Map
}

// MergeLists merges record listings from several sources by key. Entries
// keep the order in which their key first appears, scanning sources in
// priority order. Within an entry the first source wins every field it
// supplies; later sources only fill fields still at their default.
//
// Records with an empty key are dropped.
func (r *Reconciler[T]) MergeLists(outcomes []sources.Outcome[[]*T], key func(*T) string) ([]Entry[T], []SourceError) {
	ordered := Sorted(r.order, outcomes)

	var keys []string
	groups := make(map[string][]sourced[T])
	for _, o := range ordered {
		if !o.Found() {
			continue
		}
		for _, item := range o.Value {
			if item == nil {
				continue
			}
			k := key(item)
			if k == "" {
				continue
			}
			if _, ok := groups[k]; !ok {
				keys = append(keys, k)
			}
			groups[k] = append(groups[k], sourced[T]{source: o.Source, value: item})
		}
	}

	entries := make([]Entry[T], 0, len(keys))
	for _, k := range keys {
		group := groups[k]
		value, prov := r.fold(group)

		var ids []sources.ID
		for _, item := range group {
			if !slices.Contains(ids, item.source) {
				ids = append(ids, item.source)
			}
		}

		entries = append(entries, Entry[T]{Key: k, Value: value, Sources: ids, Provenance: prov})
	}

	return entries, Errors(ordered)
}
