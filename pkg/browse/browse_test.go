package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/diagstyle/pkg/diagstyle"
)

func press(t *testing.T, m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_StartsSortedByIndex(t *testing.T) {
	m := New(diagstyle.Highlighted().Records())

	rec, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, diagstyle.CyclomaticComplexity, rec.Criteria)
	assert.Equal(t, SortByIndex, m.SortBy())
}

func TestModel_MovesCursor_When_DownPressed(t *testing.T) {
	m := New(diagstyle.Highlighted().Records())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})

	rec, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, diagstyle.FileCommentLines, rec.Criteria)
}

func TestModel_CyclesSort_When_SPressed(t *testing.T) {
	m := New(diagstyle.Highlighted().Records())

	m, _ = press(t, m, runeKey('s'))
	assert.Equal(t, SortByCriteria, m.SortBy())
	rec, _ := m.Selected()
	assert.Equal(t, diagstyle.CyclomaticComplexity, rec.Criteria)

	m, _ = press(t, m, runeKey('s'))
	assert.Equal(t, SortByLabel, m.SortBy())
	rec, _ = m.Selected()
	assert.Equal(t, "cyclomatic complexity", rec.CriteriaLabel)

	m, _ = press(t, m, runeKey('s'))
	assert.Equal(t, SortByIndex, m.SortBy())
}

func TestModel_Quits_When_QPressed(t *testing.T) {
	m := New(diagstyle.Standard().Records())

	_, cmd := press(t, m, runeKey('q'))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_ResizesTable_When_WindowChanges(t *testing.T) {
	m := New(diagstyle.Standard().Records())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = next.(Model)

	assert.Equal(t, 120, m.width)
	assert.Contains(t, m.View(), "30 styles")
}

func TestModel_SelectedMisses_When_Empty(t *testing.T) {
	m := New(nil)

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "0 styles")
}

func TestSortKey_String(t *testing.T) {
	assert.Equal(t, "index", SortByIndex.String())
	assert.Equal(t, "criteria", SortByCriteria.String())
	assert.Equal(t, "label", SortByLabel.String())
}
