package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// contentPadding is the horizontal space the layout reserves around the
// groups.
const contentPadding = 2

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for _, g := range m.groups {
			g.SetWidth(msg.Width - contentPadding)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.NextGroup):
			m.shiftGroup(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGroup):
			m.shiftGroup(-1)
			return m, nil
		default:
			if g := m.activeGroup(); g != nil {
				return m, g.Update(msg)
			}
			return m, nil
		}

	case tea.MouseMsg:
		// Every group knows its own origin; the miss cases are no-ops.
		var cmds []tea.Cmd
		for _, g := range m.groups {
			if cmd := g.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}
