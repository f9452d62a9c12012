// Package render formats diagstyle registry snapshots for terminals and
// automation.
package render

import (
	"cmp"
	"slices"

	"github.com/dkoosis/diagstyle/pkg/diagstyle"
)

// Renderer converts records to formatted output.
type Renderer interface {
	Render(records []diagstyle.Record) string
}

// SortRecords returns a copy of records ordered by Index, ties broken by
// Criteria.
func SortRecords(records []diagstyle.Record) []diagstyle.Record {
	out := slices.Clone(records)
	slices.SortFunc(out, func(a, b diagstyle.Record) int {
		return cmp.Or(cmp.Compare(a.Index, b.Index), cmp.Compare(a.Criteria, b.Criteria))
	})
	return out
}
