package segment

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/segmented/internal/model"
	"github.com/alexisbeaulieu97/segmented/internal/styles"
)

// RenderContext carries the attributes the owning group resolved for one
// segment: effective size, derived position, adjacency and width-policy
// modifiers, and interaction state.
type RenderContext struct {
	Size     model.Size
	Position model.Position
	Adjacent bool // drop the leading border edge so joins collapse to one line
	Width    int  // total target width under the fill policy, 0 = intrinsic
	Focused  bool
	Theme    styles.Theme
}

// Render draws one segment as a bordered cell. It performs no position or
// size computation of its own; everything arrives resolved in rc.
func Render(d Descriptor, rc RenderContext) string {
	content := renderContent(d, rc.Theme)

	style := contentStyle(d, rc.Theme)
	if d.IconOnly() && rc.Width == 0 {
		// Square aspect: a one-row cell is three lines tall with its
		// borders, so the box is three cells wide whatever the size
		// category says.
		style = style.Padding(0, 0).Width(max(1, lipgloss.Width(content))).Align(lipgloss.Center)
	} else {
		style = style.Padding(0, styles.PaddingFor(rc.Size))
	}

	// Caller overrides are merged last and win cosmetic conflicts.
	style = styles.Merge(style, d.Overrides...)

	border := rc.Theme.Border
	if rc.Focused {
		border = rc.Theme.FocusBorder
	}
	style = style.
		Border(styles.Geometry(rc.Position)).
		BorderForeground(border.GetForeground())
	if rc.Adjacent {
		style = style.BorderLeft(false)
	}

	if rc.Width > 0 {
		borderCols := 2
		if rc.Adjacent {
			borderCols = 1
		}
		inner := rc.Width - borderCols
		if inner < 1 {
			inner = 1
		}
		style = style.Width(inner).Align(lipgloss.Center)
	}

	return style.Render(content)
}

func renderContent(d Descriptor, th styles.Theme) string {
	decorate := func(glyph string) string {
		if d.Selected || d.Disabled {
			// Keep the pressed/disabled styling uniform across the cell.
			return glyph
		}
		return th.Glyph.Render(glyph)
	}

	parts := make([]string, 0, 3)
	if d.Leading != "" {
		parts = append(parts, decorate(d.Leading))
	}
	if d.Label != "" {
		parts = append(parts, d.Label)
	}
	if d.Trailing != "" {
		parts = append(parts, decorate(d.Trailing))
	}
	return strings.Join(parts, " ")
}

func contentStyle(d Descriptor, th styles.Theme) lipgloss.Style {
	switch {
	case d.Disabled && d.Selected:
		// A locked current value: pressed emphasis with muted ink.
		return styles.Merge(th.Pressed, styles.Override{Faint: styles.Bool(true)})
	case d.Disabled:
		return th.Disabled
	case d.Selected:
		return th.Pressed
	default:
		return th.Text
	}
}
