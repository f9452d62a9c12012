// Package diagstyle maps metrix++ criteria identifiers to the presentation
// attributes a diagram renderer needs: label, fill color, border color and
// a display index.
//
// A Registry is built once and then only read. Two initialization modes are
// supported and may be mixed on one Builder:
//
//   - bulk: AddLabels inserts every (criteria, label) pair with a shared
//     default Style (orange fill, red border, index 6 unless overridden).
//   - explicit: Add inserts records exactly as given.
//
// Insertion is last-write-wins. Nothing is validated and nothing returns an
// error; a lookup miss is reported through the second return value of
// Lookup.
//
//	reg := diagstyle.NewBuilder(diagstyle.DefaultStyle()).
//		AddLabels(diagstyle.StandardLabels()).
//		Add(diagstyle.HighlightedRecords()...).
//		Build()
//	if rec, ok := reg.Lookup("std.code.lines.code"); ok {
//		fmt.Println(rec.CriteriaLabel)
//	}
package diagstyle
