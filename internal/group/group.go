// Package group implements the segmented-control container. A group owns
// an ordered child list and, on every render, filters it, derives each
// segment's position, cascades sizes, and applies the adjacency and
// width-policy modifiers before delegating to the segment renderer.
// Structural problems never abort a render; they degrade to a batched
// diagnostic and a best-effort render of the valid subset.
package group

import (
	"fmt"

	"github.com/alexisbeaulieu97/segmented/internal/diagnostics"
	"github.com/alexisbeaulieu97/segmented/internal/model"
	"github.com/alexisbeaulieu97/segmented/internal/styles"
)

// Group is a segmented control container. Build one with New and the
// fluent setters, then use it as a bubbletea component: Update for
// interaction, View for rendering.
type Group struct {
	label    string
	role     model.Role
	size     model.Size
	width    model.WidthPolicy
	children []any

	sink  diagnostics.Sink
	theme styles.Theme

	// Host interaction state. None of it feeds back into Resolve.
	focused    bool
	focus      int
	availWidth int
	originX    int
	originY    int
	spans      []span
}

// span is the column range one rendered segment occupied in the last
// View, used for mouse hit testing.
type span struct {
	start, end int
}

// New creates an empty group with the given accessible label.
func New(label string) *Group {
	return &Group{
		label: label,
		role:  model.RoleGroup,
		width: model.WidthHug,
		sink:  diagnostics.Nop(),
		theme: styles.DefaultTheme(),
	}
}

// Role sets the semantic role communicated to assistive technology. It
// never changes rendering behavior.
func (g *Group) Role(r model.Role) *Group {
	g.role = r
	return g
}

// Size sets the default size category segments inherit unless they carry
// their own override.
func (g *Group) Size(s model.Size) *Group {
	g.size = s
	return g
}

// WidthPolicy selects between hugging content and filling the available
// width with equal flexible shares.
func (g *Group) WidthPolicy(w model.WidthPolicy) *Group {
	g.width = w
	return g
}

// Sink sets the diagnostic sink. The default discards.
func (g *Group) Sink(s diagnostics.Sink) *Group {
	if s == nil {
		s = diagnostics.Nop()
	}
	g.sink = s
	return g
}

// Theme sets the rendering theme.
func (g *Group) Theme(t styles.Theme) *Group {
	g.theme = t
	return g
}

// Add appends children in order. Anything satisfying the segment
// descriptor contract is rendered; nil and false entries are conditional
// omissions; everything else is counted and reported once per render.
func (g *Group) Add(children ...any) *Group {
	g.children = append(g.children, children...)
	return g
}

// SetWidth tells the group how much horizontal space the host gives it.
// Only the fill policy consumes it.
func (g *Group) SetWidth(w int) {
	g.availWidth = w
}

// SetOrigin records where the host placed the group, anchoring mouse hit
// testing.
func (g *Group) SetOrigin(x, y int) {
	g.originX = x
	g.originY = y
}

// Focus gives the group keyboard focus.
func (g *Group) Focus() {
	g.focused = true
}

// Blur removes keyboard focus.
func (g *Group) Blur() {
	g.focused = false
}

// Focused reports whether the group has keyboard focus.
func (g *Group) Focused() bool {
	return g.focused
}

// AccessibleLabel returns the group's label.
func (g *Group) AccessibleLabel() string {
	return g.label
}

// AccessibleRole returns the group's semantic role.
func (g *Group) AccessibleRole() model.Role {
	return g.role
}

// Describe returns the role and label line exposed to assistive tooling
// and to the demo's status area.
func (g *Group) Describe() string {
	return fmt.Sprintf("%s %q", g.role, g.label)
}

// Resolution runs the pure resolution pass without emitting diagnostics,
// exposing the derived attributes to hosts and tests.
func (g *Group) Resolution() Resolution {
	return Resolve(Config{Size: g.size, Width: g.width}, g.children)
}

// resolve runs the pure pass and emits this render's diagnostics: at most
// one batched structural message, plus accessibility-contract warnings.
func (g *Group) resolve() Resolution {
	res := Resolve(Config{Size: g.size, Width: g.width}, g.children)

	if res.Invalid > 0 {
		g.sink.Report(fmt.Sprintf("%d invalid child(ren) ignored", res.Invalid))
	}
	if g.label == "" {
		g.sink.Report("group is missing an accessible label")
	}
	for i := range res.Segments {
		d := res.Segments[i].Descriptor
		if d.IconOnly() && d.AccessibleName == "" {
			g.sink.Report(fmt.Sprintf("icon-only segment at index %d has no accessible name", i))
		}
	}

	return res
}
