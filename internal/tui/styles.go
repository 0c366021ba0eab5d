package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	mutedColor   = lipgloss.Color("245") // Gray
	warnColor    = lipgloss.Color("226") // Yellow

	// Title style
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	// Group caption above each control
	captionStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(1)

	// Status line under the controls
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(1).
			MarginTop(1)

	// Diagnostic feed
	diagStyle = lipgloss.NewStyle().
			Foreground(warnColor).
			PaddingLeft(1)

	// Help footer
	helpStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			MarginTop(1)
)
