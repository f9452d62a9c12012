// Package browse is an interactive terminal table over a registry snapshot.
package browse

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/diagstyle/pkg/diagstyle"
	"github.com/dkoosis/diagstyle/pkg/render"
)

// SortKey selects the row order.
type SortKey int

const (
	SortByIndex SortKey = iota
	SortByCriteria
	SortByLabel
)

func (k SortKey) String() string {
	switch k {
	case SortByCriteria:
		return "criteria"
	case SortByLabel:
		return "label"
	default:
		return "index"
	}
}

func (k SortKey) next() SortKey {
	return (k + 1) % 3
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).MarginTop(1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	helpText    = "↑/↓ move • s sort • q quit"
)

// Model is the bubbletea model for the browser.
type Model struct {
	table   table.Model
	records []diagstyle.Record
	sortBy  SortKey
	width   int
}

// New builds a browser over records.
func New(records []diagstyle.Record) Model {
	t := table.New(
		table.WithColumns(columns(0)),
		table.WithFocused(true),
		table.WithHeight(min(len(records)+1, 20)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("231")).Background(lipgloss.Color("39"))
	t.SetStyles(styles)

	m := Model{table: t, records: slices.Clone(records)}
	m.applySort()
	return m
}

// Run starts the browser and blocks until the user quits or ctx is done.
func Run(ctx context.Context, records []diagstyle.Record) error {
	program := tea.NewProgram(New(records), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "s":
			m.sortBy = m.sortBy.next()
			m.applySort()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetColumns(columns(msg.Width))
		// title row + status + help
		m.table.SetHeight(max(msg.Height-5, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	if rec, ok := m.Selected(); ok {
		sb.WriteString(statusStyle.Render(fmt.Sprintf("%s  %s  fill %s  border %s  index %d",
			labelStyle.Render(rec.CriteriaLabel), rec.Criteria,
			swatch(rec.BackgroundColor), swatch(rec.BorderColor), rec.Index)))
		sb.WriteString("\n")
	}
	sb.WriteString(statusStyle.Render(fmt.Sprintf("%d styles • sorted by %s • %s", len(m.records), m.sortBy, helpText)))
	sb.WriteString("\n")
	return sb.String()
}

// Selected returns the record under the cursor.
func (m Model) Selected() (diagstyle.Record, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.records) {
		return diagstyle.Record{}, false
	}
	return m.records[i], true
}

// SortBy returns the current row order.
func (m Model) SortBy() SortKey {
	return m.sortBy
}

func (m *Model) applySort() {
	switch m.sortBy {
	case SortByCriteria:
		slices.SortFunc(m.records, func(a, b diagstyle.Record) int {
			return cmp.Compare(a.Criteria, b.Criteria)
		})
	case SortByLabel:
		slices.SortFunc(m.records, func(a, b diagstyle.Record) int {
			return cmp.Or(cmp.Compare(a.CriteriaLabel, b.CriteriaLabel), cmp.Compare(a.Criteria, b.Criteria))
		})
	default:
		m.records = render.SortRecords(m.records)
	}

	rows := make([]table.Row, 0, len(m.records))
	for _, r := range m.records {
		rows = append(rows, table.Row{r.Criteria, r.CriteriaLabel, r.BackgroundColor, r.BorderColor, strconv.Itoa(r.Index)})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// columns sizes the table for a terminal width; 0 uses fixed defaults.
func columns(width int) []table.Column {
	criteria, label := 34, 28
	if width > 0 {
		// fill, border, index and cell padding take roughly 40 cells
		rest := max(width-40, 24)
		criteria = rest * 55 / 100
		label = rest - criteria
	}
	return []table.Column{
		{Title: "Criteria", Width: criteria},
		{Title: "Label", Width: label},
		{Title: "Fill", Width: 12},
		{Title: "Border", Width: 12},
		{Title: "Index", Width: 5},
	}
}

func swatch(token string) string {
	c, ok := render.TerminalColor(token)
	if !ok {
		return token
	}
	return lipgloss.NewStyle().Background(c).Render("  ") + " " + token
}
