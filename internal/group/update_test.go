package group

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/segmented/internal/model"
	"github.com/alexisbeaulieu97/segmented/internal/segment"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestUpdateActivatesFocusedSegment(t *testing.T) {
	t.Parallel()

	fired := 0
	g := New("G")
	g.Add(segment.New("A").OnActivate(func() { fired++ }), segment.New("B"))
	g.Focus()

	g.Update(keyMsg(tea.KeyEnter))
	require.Equal(t, 1, fired)

	g.Update(keyMsg(tea.KeySpace))
	require.Equal(t, 2, fired)
}

func TestUpdateIgnoresKeysWhenBlurred(t *testing.T) {
	t.Parallel()

	fired := 0
	g := New("G").Add(segment.New("A").OnActivate(func() { fired++ }))

	g.Update(keyMsg(tea.KeyEnter))
	require.Zero(t, fired)
}

func TestDisabledSegmentNeverActivates(t *testing.T) {
	t.Parallel()

	firedA, firedB := 0, 0
	a := segment.New("A").Disabled(true).OnActivate(func() { firedA++ })
	b := segment.New("B").OnActivate(func() { firedB++ })

	g := New("G").Add(a, b)
	g.Focus()

	// Enter on the disabled segment, then a programmatic attempt.
	g.Update(keyMsg(tea.KeyEnter))
	a.Activate()
	require.Zero(t, firedA)

	// The sibling stays independently operable.
	g.Update(keyMsg(tea.KeyRight))
	g.Update(keyMsg(tea.KeyEnter))
	require.Zero(t, firedA)
	require.Equal(t, 1, firedB)
}

func TestMoveFocusSkipsDisabled(t *testing.T) {
	t.Parallel()

	fired := ""
	g := New("G").Add(
		segment.New("A").OnActivate(func() { fired = "A" }),
		segment.New("B").Disabled(true).OnActivate(func() { fired = "B" }),
		segment.New("C").OnActivate(func() { fired = "C" }),
	)
	g.Focus()

	g.Update(keyMsg(tea.KeyRight))
	g.Update(keyMsg(tea.KeyEnter))
	require.Equal(t, "C", fired)

	g.Update(keyMsg(tea.KeyLeft))
	g.Update(keyMsg(tea.KeyEnter))
	require.Equal(t, "A", fired)
}

func TestClickActivatesHitSegment(t *testing.T) {
	t.Parallel()

	fired := ""
	g := New("G").Add(
		segment.New("A").OnActivate(func() { fired = "A" }),
		segment.New("B").OnActivate(func() { fired = "B" }),
	)

	// Render to populate the hit spans.
	out := g.View()
	require.NotEmpty(t, out)

	g.Click(1, 1)
	require.Equal(t, "A", fired)

	require.Len(t, g.spans, 2)
	g.Click(g.spans[1].start, 1)
	require.Equal(t, "B", fired)
}

func TestClickOutsideDoesNothing(t *testing.T) {
	t.Parallel()

	fired := 0
	g := New("G").Add(segment.New("A").OnActivate(func() { fired++ }))
	g.View()

	g.Click(-1, 1)
	g.Click(500, 1)
	g.Click(1, 5)
	require.Zero(t, fired)
}

func TestClickRespectsDisabled(t *testing.T) {
	t.Parallel()

	fired := 0
	g := New("G").Add(segment.New("A").Disabled(true).OnActivate(func() { fired++ }))
	g.View()

	g.Click(1, 1)
	require.Zero(t, fired)
}

func TestMouseMsgUsesOrigin(t *testing.T) {
	t.Parallel()

	fired := 0
	g := New("G").Add(segment.New("A").OnActivate(func() { fired++ }))
	g.SetOrigin(10, 4)
	g.View()

	g.Update(tea.MouseMsg{X: 11, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, 1, fired)

	// A click before the origin misses.
	g.Update(tea.MouseMsg{X: 2, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, 1, fired)
}

func TestWindowSizeMsgSetsWidth(t *testing.T) {
	t.Parallel()

	g := New("G").WidthPolicy(model.WidthFill).Add(segment.New("A"))
	g.Update(tea.WindowSizeMsg{Width: 32, Height: 10})
	require.Equal(t, 32, g.availWidth)
}
