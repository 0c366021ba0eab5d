package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/segmented/internal/config"
	"github.com/alexisbeaulieu97/segmented/internal/diagnostics"
	"github.com/alexisbeaulieu97/segmented/internal/model"
	"github.com/alexisbeaulieu97/segmented/internal/styles"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	os.Exit(m.Run())
}

// writeScene writes a scene document to a temp file and returns its path.
func writeScene(t *testing.T, doc string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestSceneFileToRenderedGroups(t *testing.T) {
	t.Parallel()

	path := writeScene(t, `
version: "1.0"
name: playback
groups:
  - label: Speed
    role: radiogroup
    size: small
    width: fill
    segments:
      - label: 0.5x
      - label: 1x
        selected: true
      - label: 2x
  - label: Transport
    role: toolbar
    segments:
      - glyph: "⏮"
        name: Previous
      - type: spacer
      - glyph: "⏭"
        name: Next
`)

	scene, err := config.ParseScene(path)
	require.NoError(t, err)
	require.NoError(t, config.ValidateScene(scene))

	capture := &diagnostics.Capture{}
	groups := config.BuildGroups(scene, capture, styles.DefaultTheme())
	require.Len(t, groups, 2)

	speed, transport := groups[0], groups[1]
	assert.Equal(t, "Speed", speed.AccessibleLabel())
	assert.Equal(t, model.RoleRadioGroup, speed.AccessibleRole())
	assert.Equal(t, model.RoleToolbar, transport.AccessibleRole())

	speed.SetWidth(42)
	view := speed.View()
	assert.Equal(t, 42, lipgloss.Width(view))
	assert.Contains(t, view, "0.5x")
	assert.Contains(t, view, "2x")
	assert.Empty(t, capture.Messages())

	// The spacer entry is not a segment, so the transport group reports
	// it exactly once on render.
	transport.View()
	require.Len(t, capture.Messages(), 1)
	assert.Equal(t, "1 invalid child(ren) ignored", capture.Messages()[0])

	capture.Reset()
	transport.View()
	require.Len(t, capture.Messages(), 1, "diagnostic repeats per render pass, not per child")
}

func TestRadioGroupSelectionEndToEnd(t *testing.T) {
	t.Parallel()

	path := writeScene(t, `
version: "1.0"
name: view-mode
groups:
  - label: View
    role: radiogroup
    width: fill
    segments:
      - label: Day
        selected: true
      - label: Week
      - label: Month
        disabled: true
      - label: Year
`)

	scene, err := config.ParseScene(path)
	require.NoError(t, err)
	require.NoError(t, config.ValidateScene(scene))

	groups := config.BuildGroups(scene, &diagnostics.Capture{}, styles.DefaultTheme())
	require.Len(t, groups, 1)
	g := groups[0]
	g.SetWidth(60)
	g.Focus()

	selectedLabels := func() []string {
		var out []string
		for _, seg := range g.Resolution().Segments {
			if seg.Descriptor.Selected {
				out = append(out, seg.Descriptor.Label)
			}
		}
		return out
	}

	require.Equal(t, []string{"Day"}, selectedLabels())

	// Move to Week and activate it. Exactly one segment stays selected.
	g.Update(tea.KeyMsg{Type: tea.KeyRight})
	g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"Week"}, selectedLabels())

	// Month is disabled: focus skips it and lands on Year.
	g.Update(tea.KeyMsg{Type: tea.KeyRight})
	g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"Year"}, selectedLabels())
}

func TestExampleScenesAreValid(t *testing.T) {
	t.Parallel()

	matches, err := filepath.Glob(filepath.Join("..", "examples", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "examples directory should ship at least one scene")

	for _, path := range matches {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			t.Parallel()

			scene, err := config.ParseScene(path)
			require.NoError(t, err)
			require.NoError(t, config.ValidateScene(scene))

			groups := config.BuildGroups(scene, diagnostics.Nop(), styles.DefaultTheme())
			require.NotEmpty(t, groups)
			for _, g := range groups {
				g.SetWidth(72)
				view := g.View()
				assert.NotEmpty(t, view)
				assert.False(t, strings.Contains(view, "\x00"))
			}
		})
	}
}

func TestMalformedSceneSurfacesParseError(t *testing.T) {
	t.Parallel()

	path := writeScene(t, "groups: [\n  broken")

	_, err := config.ParseScene(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
