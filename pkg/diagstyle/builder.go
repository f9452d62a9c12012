package diagstyle

import "maps"

// Builder collects records during initialization and publishes them as an
// immutable Registry. The zero value is ready to use with an empty default
// style. A Builder is not safe for concurrent use.
type Builder struct {
	def     Style
	records map[string]Record
}

// NewBuilder returns a builder whose bulk-mode entries use def.
func NewBuilder(def Style) *Builder {
	return &Builder{def: def, records: make(map[string]Record)}
}

// AddLabels inserts one record per (criteria, label) pair using the
// builder's default style. Existing entries with the same criteria are
// replaced.
func (b *Builder) AddLabels(labels map[string]string) *Builder {
	b.init()
	for criteria, label := range labels {
		b.records[criteria] = b.def.Record(criteria, label)
	}
	return b
}

// AddCriteria inserts criteria in bulk mode with the key doubling as label.
func (b *Builder) AddCriteria(criteria ...string) *Builder {
	b.init()
	for _, c := range criteria {
		b.records[c] = b.def.Record(c, c)
	}
	return b
}

// Add inserts records exactly as given, in order. A later record replaces
// an earlier one with the same criteria.
func (b *Builder) Add(records ...Record) *Builder {
	b.init()
	for _, rec := range records {
		b.records[rec.Criteria] = rec
	}
	return b
}

func (b *Builder) init() {
	if b.records == nil {
		b.records = make(map[string]Record)
	}
}

// Len returns the number of collected records.
func (b *Builder) Len() int {
	return len(b.records)
}

// Build publishes the collected records. The builder can keep being used;
// later changes do not affect registries already built.
func (b *Builder) Build() *Registry {
	return &Registry{records: maps.Clone(b.records)}
}

// FromLabels builds a bulk-mode registry with DefaultStyle.
func FromLabels(labels map[string]string) *Registry {
	return NewBuilder(DefaultStyle()).AddLabels(labels).Build()
}

// FromRecords builds an explicit-mode registry.
func FromRecords(records ...Record) *Registry {
	return NewBuilder(DefaultStyle()).Add(records...).Build()
}
