package commands

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/armendk/panphon/segment"
)

// Styles for feature value rendering.
var (
	styleSymbol = lipgloss.NewStyle().Bold(true)
	stylePlus   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff9f"))
	styleMinus  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
	styleZero   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

// renderValue renders a ternary value with its color.
func renderValue(v segment.Value) string {
	s := v.String()
	switch v {
	case segment.Plus:
		return stylePlus.Render(s)
	case segment.Minus:
		return styleMinus.Render(s)
	case segment.Unspecified:
		return styleZero.Render(s)
	default:
		return s
	}
}
