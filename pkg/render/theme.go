package render

import "github.com/charmbracelet/lipgloss"

// Theme defines styles for terminal rendering.
type Theme struct {
	Name     string
	Header   lipgloss.Style
	Criteria lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Index    lipgloss.Style
	// Swatches renders a colored block next to each color token.
	Swatches bool
}

// DefaultTheme returns a color theme with swatches.
func DefaultTheme() Theme {
	return Theme{
		Name:     "default",
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // blue
		Criteria: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),           // light gray
		Label:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Index:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Swatches: true,
	}
}

// MonoTheme returns a monochrome theme (no colors, no swatches).
func MonoTheme() Theme {
	return Theme{
		Name:     "mono",
		Header:   lipgloss.NewStyle().Bold(true),
		Criteria: lipgloss.NewStyle(),
		Label:    lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle(),
		Index:    lipgloss.NewStyle(),
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
