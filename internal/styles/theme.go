// Package styles holds the lipgloss styling primitives shared by the
// segment renderer and the demo TUI: the color theme, per-position border
// geometry, size metrics, and the style merge utility.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("212") // Pink
	mutedColor   = lipgloss.Color("245") // Gray
	textColor    = lipgloss.Color("252") // Near-white
	pressedBg    = lipgloss.Color("57")  // Deep purple
)

// Theme bundles the styles a group needs to render its segments. Border
// styles carry only border properties; text styles carry only content
// properties.
type Theme struct {
	Text     lipgloss.Style // idle segment content
	Pressed  lipgloss.Style // selected segment content
	Disabled lipgloss.Style // disabled segment content
	Glyph    lipgloss.Style // decorative glyph slots

	Border      lipgloss.Style // idle border color
	FocusBorder lipgloss.Style // border of the keyboard-focused segment

	GroupLabel lipgloss.Style // accessible label rendered by the demo
}

// DefaultTheme returns the stock dark theme.
func DefaultTheme() Theme {
	return Theme{
		Text:        lipgloss.NewStyle().Foreground(textColor),
		Pressed:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(pressedBg).Bold(true),
		Disabled:    lipgloss.NewStyle().Foreground(mutedColor),
		Glyph:       lipgloss.NewStyle().Foreground(accentColor),
		Border:      lipgloss.NewStyle().Foreground(mutedColor),
		FocusBorder: lipgloss.NewStyle().Foreground(primaryColor),
		GroupLabel:  lipgloss.NewStyle().Foreground(mutedColor).MarginBottom(0),
	}
}
