package diagstyle

// Table is a declarative registry definition, suitable for YAML or JSON
// configuration.
//
//	default:
//	  backgroundColor: orange
//	  borderColor: red
//	  index: 6
//	criteria: [std.code.lines.total]
//	labels:
//	  std.code.complexity.maxindent: max indent
//	overrides:
//	  - criteria: std.code.lines.code
//	    criteriaLabel: lines of code per file
//	    backgroundColor: lightblue
//	    borderColor: blue
//	    index: 8
type Table struct {
	// Default styles Criteria and Labels entries. Nil means DefaultStyle.
	Default   *Style            `json:"default,omitempty" yaml:"default,omitempty"`
	Criteria  []string          `json:"criteria,omitempty" yaml:"criteria,omitempty"`
	Labels    map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Overrides []Record          `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// DefaultStyle returns the table's bulk style.
func (t Table) DefaultStyle() Style {
	if t.Default == nil {
		return DefaultStyle()
	}
	return *t.Default
}

// Builder returns a builder loaded with the table: Criteria first, then
// Labels, then Overrides, so overrides always win.
func (t Table) Builder() *Builder {
	return NewBuilder(t.DefaultStyle()).
		AddCriteria(t.Criteria...).
		AddLabels(t.Labels).
		Add(t.Overrides...)
}

// Build publishes the table as a registry.
func (t Table) Build() *Registry {
	return t.Builder().Build()
}

// IsEmpty reports whether the table defines no entries.
func (t Table) IsEmpty() bool {
	return len(t.Criteria) == 0 && len(t.Labels) == 0 && len(t.Overrides) == 0
}
