package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the scene: a caption and control per group, the focused
// group's description, and the recent diagnostic feed.
func (m Model) View() string {
	var content strings.Builder

	title := titleStyle.Render(fmt.Sprintf("segmented · %s", m.sceneName))
	content.WriteString(title)
	content.WriteString("\n")
	y := lipgloss.Height(title) + 1

	for i, g := range m.groups {
		caption := captionStyle.Render(g.Describe())
		content.WriteString(caption)
		content.WriteString("\n")
		y += lipgloss.Height(caption)

		g.SetOrigin(0, y)
		control := g.View()
		content.WriteString(control)
		content.WriteString("\n")
		y += lipgloss.Height(control)

		if i < len(m.groups)-1 {
			content.WriteString("\n")
			y++
		}
	}

	if g := m.activeGroup(); g != nil {
		content.WriteString(statusStyle.Render(fmt.Sprintf("focused: %s", g.Describe())))
		content.WriteString("\n")
	}

	if feed := m.diagnosticFeed(); feed != "" {
		content.WriteString(feed)
		content.WriteString("\n")
	}

	content.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return content.String()
}

// diagnosticFeed renders the tail of the capture sink.
func (m Model) diagnosticFeed() string {
	if m.diags == nil {
		return ""
	}
	msgs := m.diags.Messages()
	if len(msgs) == 0 {
		return ""
	}
	if len(msgs) > maxDiagnostics {
		msgs = msgs[len(msgs)-maxDiagnostics:]
	}

	lines := make([]string, len(msgs))
	for i, msg := range msgs {
		lines[i] = diagStyle.Render("⚠ " + msg)
	}
	return strings.Join(lines, "\n")
}
