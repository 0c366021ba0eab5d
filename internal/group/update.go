package group

import (
	tea "github.com/charmbracelet/bubbletea"
)

// segmentHeight is the rendered height of a one-row segment with its
// borders.
const segmentHeight = 3

// Init satisfies the bubbletea component surface. Groups have nothing to
// start.
func (g *Group) Init() tea.Cmd {
	return nil
}

// Update handles interaction. Left/right (or h/l) move focus between
// enabled segments, enter and space activate the focused one, and a left
// mouse click activates the segment under the cursor. Disabled segments
// are skipped by focus movement and never fire their callback whatever
// the trigger.
func (g *Group) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.SetWidth(msg.Width)

	case tea.KeyMsg:
		if !g.focused {
			return nil
		}
		switch msg.String() {
		case "left", "h":
			g.moveFocus(-1)
		case "right", "l":
			g.moveFocus(1)
		case "enter", " ":
			g.activateFocused()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		g.Click(msg.X-g.originX, msg.Y-g.originY)
	}

	return nil
}

// Click activates the segment whose rendered cell contains the given
// coordinates, relative to the group's origin.
func (g *Group) Click(x, y int) {
	if y < 0 || y >= segmentHeight {
		return
	}
	i := g.hitTest(x)
	if i < 0 {
		return
	}
	res := Resolve(Config{Size: g.size, Width: g.width}, g.children)
	if i >= len(res.Segments) {
		return
	}
	g.focus = i
	res.Segments[i].Descriptor.Invoke()
}

// hitTest maps a column to the index of the segment rendered there in
// the last View, or -1.
func (g *Group) hitTest(x int) int {
	for i, sp := range g.spans {
		if x >= sp.start && x < sp.end {
			return i
		}
	}
	return -1
}

// moveFocus shifts keyboard focus by dir, skipping disabled segments.
func (g *Group) moveFocus(dir int) {
	res := Resolve(Config{Size: g.size, Width: g.width}, g.children)
	n := len(res.Segments)
	if n == 0 {
		return
	}
	for next := g.focus + dir; next >= 0 && next < n; next += dir {
		if !res.Segments[next].Descriptor.Disabled {
			g.focus = next
			return
		}
	}
}

// activateFocused fires the focused segment's callback, subject to the
// disabled contract.
func (g *Group) activateFocused() {
	res := Resolve(Config{Size: g.size, Width: g.width}, g.children)
	if g.focus < 0 || g.focus >= len(res.Segments) {
		return
	}
	res.Segments[g.focus].Descriptor.Invoke()
}
