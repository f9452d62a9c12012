package diagstyle

// Default styling applied to bulk-mode entries.
const (
	DefaultBackgroundColor = "orange"
	DefaultBorderColor     = "red"
	DefaultIndex           = 6
)

// Record is the style of one criteria. Field names in JSON and YAML match
// what diagram consumers read.
type Record struct {
	Criteria        string `json:"criteria" yaml:"criteria"`
	CriteriaLabel   string `json:"criteriaLabel" yaml:"criteriaLabel"`
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor"`
	BorderColor     string `json:"borderColor" yaml:"borderColor"`
	Index           int    `json:"index" yaml:"index"`
}

// Style is the label-independent part of a Record.
type Style struct {
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor"`
	BorderColor     string `json:"borderColor" yaml:"borderColor"`
	Index           int    `json:"index" yaml:"index"`
}

// DefaultStyle returns the bulk-mode default: orange fill, red border, index 6.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: DefaultBackgroundColor,
		BorderColor:     DefaultBorderColor,
		Index:           DefaultIndex,
	}
}

// NewRecord builds a Record from its five fields.
func NewRecord(criteria, label, background, border string, index int) Record {
	return Record{
		Criteria:        criteria,
		CriteriaLabel:   label,
		BackgroundColor: background,
		BorderColor:     border,
		Index:           index,
	}
}

// Record applies s to a criteria and label.
func (s Style) Record(criteria, label string) Record {
	return NewRecord(criteria, label, s.BackgroundColor, s.BorderColor, s.Index)
}

// Style returns the styling fields of r.
func (r Record) Style() Style {
	return Style{
		BackgroundColor: r.BackgroundColor,
		BorderColor:     r.BorderColor,
		Index:           r.Index,
	}
}

// HasCustomLabel reports whether the label differs from the criteria key.
func (r Record) HasCustomLabel() bool {
	return r.CriteriaLabel != r.Criteria
}
