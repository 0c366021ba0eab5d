package config

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/segmented/internal/diagnostics"
	"github.com/alexisbeaulieu97/segmented/internal/model"
	"github.com/alexisbeaulieu97/segmented/internal/styles"
)

func TestBuildGroups(t *testing.T) {
	t.Parallel()

	scene, err := ParseSceneBytes([]byte(sampleScene))
	require.NoError(t, err)

	capture := &diagnostics.Capture{}
	groups := BuildGroups(scene, capture, styles.DefaultTheme())
	require.Len(t, groups, 2)

	require.Equal(t, model.RoleRadioGroup, groups[0].AccessibleRole())
	require.Equal(t, "View mode", groups[0].AccessibleLabel())
	require.Equal(t, model.RoleToolbar, groups[1].AccessibleRole())

	// The radiogroup renders cleanly.
	require.NotEmpty(t, groups[0].View())
	require.Empty(t, capture.Messages())

	// The toolbar carries the unknown spacer entry; the engine reports
	// it once and renders the rest.
	require.NotEmpty(t, groups[1].View())
	require.Equal(t, []string{"1 invalid child(ren) ignored"}, capture.Messages())
}

func TestBuildGroupsWiresExclusiveSelection(t *testing.T) {
	t.Parallel()

	content := `
version: "1.0"
name: x
groups:
  - label: Mode
    role: radiogroup
    segments:
      - label: Day
        selected: true
      - label: Week
`
	scene, err := ParseSceneBytes([]byte(content))
	require.NoError(t, err)

	groups := BuildGroups(scene, diagnostics.Nop(), styles.DefaultTheme())
	require.Len(t, groups, 1)
	g := groups[0]
	g.Focus()

	// Move to Week and activate: Day must deselect.
	g.Update(tea.KeyMsg{Type: tea.KeyRight})
	g.Update(tea.KeyMsg{Type: tea.KeyEnter})

	res := g.Resolution()
	require.Len(t, res.Segments, 2)
	require.False(t, res.Segments[0].Descriptor.Selected)
	require.True(t, res.Segments[1].Descriptor.Selected)
}
