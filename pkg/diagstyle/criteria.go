package diagstyle

import "slices"

// Criteria identifiers reported by metrix++.
const (
	CyclomaticComplexity = "std.code.complexity.cyclomatic"
	LinesOfCode          = "std.code.lines.code"
	FileCommentLines     = "std.code.filelines.comments"
)

var standardCriteria = []string{
	CyclomaticComplexity,
	"std.code.complexity.maxindent",
	"std.code.filelines.code",
	"std.code.filelines.preprocessor",
	FileCommentLines,
	"std.code.filelines.total",
	"std.code.length.total",
	LinesOfCode,
	"std.code.lines.preprocessor",
	"std.code.lines.comments",
	"std.code.lines.total",
	"std.code.longlines",
	"std.code.longlines.limit=120",
	"std.code.magic.numbers",
	"std.code.magic.numbers.simplier",
	"std.code.member.fields",
	"std.code.member.globals",
	"std.code.member.classes",
	"std.code.member.structs",
	"std.code.member.interfaces",
	"std.code.member.types",
	"std.code.member.methods",
	"std.code.member.namespaces",
	"std.code.maintindex.simple",
	"std.code.ratio.comments",
	"std.code.todo.comments",
	"std.code.todo.strings",
	"std.suppress",
	"std.general.procerrors",
	"std.general.size",
}

// StandardCriteria returns the metrix++ criteria known out of the box.
func StandardCriteria() []string {
	return slices.Clone(standardCriteria)
}

// StandardLabels maps every standard criteria to itself.
func StandardLabels() map[string]string {
	labels := make(map[string]string, len(standardCriteria))
	for _, c := range standardCriteria {
		labels[c] = c
	}
	return labels
}

// HighlightedRecords returns hand-picked styles with readable labels for the
// most commonly charted metrics.
func HighlightedRecords() []Record {
	return []Record{
		NewRecord(CyclomaticComplexity, "cyclomatic complexity", "orange", "red", 6),
		NewRecord(LinesOfCode, "lines of code per file", "lightblue", "blue", 8),
		NewRecord(FileCommentLines, "lines of comment per file", "lightgreen", "green", 7),
	}
}

// Standard returns a bulk-mode registry over StandardLabels.
func Standard() *Registry {
	return FromLabels(StandardLabels())
}

// Highlighted returns an explicit-mode registry over HighlightedRecords.
func Highlighted() *Registry {
	return FromRecords(HighlightedRecords()...)
}

// Combined returns the standard registry with HighlightedRecords applied on
// top.
func Combined() *Registry {
	return NewBuilder(DefaultStyle()).
		AddLabels(StandardLabels()).
		Add(HighlightedRecords()...).
		Build()
}
