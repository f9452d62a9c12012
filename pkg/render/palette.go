package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cssColors maps CSS named colors to hex for terminal swatches.
var cssColors = map[string]string{
	"black":       "#000000",
	"white":       "#ffffff",
	"gray":        "#808080",
	"grey":        "#808080",
	"lightgray":   "#d3d3d3",
	"lightgrey":   "#d3d3d3",
	"darkgray":    "#a9a9a9",
	"darkgrey":    "#a9a9a9",
	"silver":      "#c0c0c0",
	"red":         "#ff0000",
	"darkred":     "#8b0000",
	"crimson":     "#dc143c",
	"salmon":      "#fa8072",
	"pink":        "#ffc0cb",
	"orange":      "#ffa500",
	"darkorange":  "#ff8c00",
	"gold":        "#ffd700",
	"yellow":      "#ffff00",
	"lightyellow": "#ffffe0",
	"green":       "#008000",
	"lightgreen":  "#90ee90",
	"darkgreen":   "#006400",
	"lime":        "#00ff00",
	"olive":       "#808000",
	"teal":        "#008080",
	"cyan":        "#00ffff",
	"aqua":        "#00ffff",
	"blue":        "#0000ff",
	"lightblue":   "#add8e6",
	"darkblue":    "#00008b",
	"navy":        "#000080",
	"skyblue":     "#87ceeb",
	"purple":      "#800080",
	"violet":      "#ee82ee",
	"magenta":     "#ff00ff",
	"fuchsia":     "#ff00ff",
	"brown":       "#a52a2a",
	"tan":         "#d2b48c",
}

// TerminalColor converts a CSS color token to a lipgloss color.
// Hex tokens pass through; ok is false for anything else that is not a
// known CSS name.
func TerminalColor(token string) (lipgloss.Color, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if hex, ok := cssColors[t]; ok {
		return lipgloss.Color(hex), true
	}
	if isHexColor(t) {
		return lipgloss.Color(t), true
	}
	return "", false
}

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
