package diagstyle

import (
	"iter"
	"maps"
	"slices"
)

// Registry is a read-only mapping from criteria to Record.
// The zero value is an empty registry on which every lookup misses.
// A Registry returned by Builder.Build is never mutated and may be shared
// between goroutines.
type Registry struct {
	records map[string]Record
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Lookup returns the record for an exact criteria match.
// ok is false when the criteria is not registered; no placeholder is returned.
func (r *Registry) Lookup(criteria string) (rec Record, ok bool) {
	if r == nil {
		return Record{}, false
	}
	rec, ok = r.records[criteria]
	return rec, ok
}

// Has reports whether criteria is registered.
func (r *Registry) Has(criteria string) bool {
	_, ok := r.Lookup(criteria)
	return ok
}

// Len returns the number of registered records.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.records)
}

// All returns every registered record in unspecified order.
// The sequence can be ranged over any number of times.
func (r *Registry) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		if r == nil {
			return
		}
		for _, rec := range r.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// Records returns a copy of every registered record in unspecified order.
func (r *Registry) Records() []Record {
	out := make([]Record, 0, r.Len())
	for rec := range r.All() {
		out = append(out, rec)
	}
	return out
}

// Criteria returns the registered keys in lexical order.
func (r *Registry) Criteria() []string {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.records))
}
