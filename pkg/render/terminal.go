package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/diagstyle/pkg/diagstyle"
)

const swatch = "  "

// Terminal renders records as a styled table via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
// A width of zero or less disables fitting; rows are never truncated.
func NewTerminal(theme Theme, width int) *Terminal {
	return &Terminal{theme: theme, width: max(width, 0)}
}

var headers = []string{"criteria", "label", "fill", "border", "index"}

// Render formats records as an aligned table, sorted by index.
func (t *Terminal) Render(records []diagstyle.Record) string {
	if len(records) == 0 {
		return t.theme.Muted.Render("no styles registered") + "\n"
	}
	records = SortRecords(records)

	title := cases.Title(language.English)
	cols := make([][]string, len(headers))
	for i, h := range headers {
		cols[i] = []string{title.String(h)}
	}
	for _, r := range records {
		cols[0] = append(cols[0], r.Criteria)
		cols[1] = append(cols[1], r.CriteriaLabel)
		cols[2] = append(cols[2], r.BackgroundColor)
		cols[3] = append(cols[3], r.BorderColor)
		cols[4] = append(cols[4], strconv.Itoa(r.Index))
	}

	widths := make([]int, len(cols))
	for i, col := range cols {
		for _, cell := range col {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	t.fitColumns(widths)

	var sb strings.Builder
	for row := range cols[0] {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = t.cell(row, i, col[row], widths[i])
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		sb.WriteString("\n")
	}
	sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("%d styles", len(records))))
	sb.WriteString("\n")
	return sb.String()
}

// Minimum widths kept when fitting the table to the terminal.
const (
	minCriteriaWidth = 16
	minLabelWidth    = 8
)

// fitColumns shrinks the criteria column, then the label column, when the
// table is wider than the terminal. Labels are the last thing to give way.
func (t *Terminal) fitColumns(widths []int) {
	if t.width == 0 {
		return
	}
	total := 2 * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	if t.theme.Swatches {
		total += 2 * (runewidth.StringWidth(swatch) + 1)
	}
	over := total - t.width
	if over <= 0 {
		return
	}
	if spare := widths[0] - minCriteriaWidth; spare > 0 {
		cut := min(spare, over)
		widths[0] -= cut
		over -= cut
	}
	if over > 0 {
		widths[1] = max(widths[1]-over, minLabelWidth)
	}
}

func (t *Terminal) cell(row, col int, text string, width int) string {
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, "…")
	}
	padded := runewidth.FillRight(text, width)
	if row == 0 {
		if t.theme.Swatches && (col == 2 || col == 3) {
			padded = runewidth.FillRight("", runewidth.StringWidth(swatch)+1) + padded
		}
		return t.theme.Header.Render(padded)
	}
	switch col {
	case 0:
		return t.theme.Criteria.Render(padded)
	case 1:
		return t.theme.Label.Render(padded)
	case 2, 3:
		return t.swatch(text) + t.theme.Muted.Render(padded)
	default:
		return t.theme.Index.Render(padded)
	}
}

func (t *Terminal) swatch(token string) string {
	if !t.theme.Swatches {
		return ""
	}
	c, ok := TerminalColor(token)
	if !ok {
		return swatch + " "
	}
	return lipgloss.NewStyle().Background(c).Render(swatch) + " "
}
