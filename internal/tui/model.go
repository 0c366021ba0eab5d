// Package tui implements the interactive demo: a small bubbletea program
// that renders every group of a scene, routes keyboard and mouse input to
// the focused one, and surfaces the diagnostic feed.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/segmented/internal/diagnostics"
	"github.com/alexisbeaulieu97/segmented/internal/group"
	"github.com/alexisbeaulieu97/segmented/internal/logger"
)

// maxDiagnostics is how many recent diagnostic messages the footer shows.
const maxDiagnostics = 3

// Model is the demo application model.
type Model struct {
	sceneName string
	groups    []*group.Group
	active    int

	diags *diagnostics.Capture
	log   *logger.Logger

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel creates the demo model over pre-built groups. The capture sink
// must be the one the groups report into.
func NewModel(sceneName string, groups []*group.Group, diags *diagnostics.Capture, log *logger.Logger) Model {
	m := Model{
		sceneName: sceneName,
		groups:    groups,
		diags:     diags,
		log:       log,
		keys:      defaultKeyMap(),
		help:      help.New(),
		width:     80,
		height:    24,
	}
	if len(m.groups) > 0 {
		m.groups[0].Focus()
	}
	return m
}

// Init starts the program. There is nothing to kick off.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) activeGroup() *group.Group {
	if m.active < 0 || m.active >= len(m.groups) {
		return nil
	}
	return m.groups[m.active]
}

func (m *Model) shiftGroup(dir int) {
	n := len(m.groups)
	if n == 0 {
		return
	}
	m.groups[m.active].Blur()
	m.active = ((m.active+dir)%n + n) % n
	m.groups[m.active].Focus()
}
