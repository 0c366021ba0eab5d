package group

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/segmented/internal/model"
	"github.com/alexisbeaulieu97/segmented/internal/segment"
)

// View renders the container: one bordered cell per valid child, joined
// so adjacent borders collapse into a single line. Positions, sizes, and
// width shares are recomputed from scratch on every call.
func (g *Group) View() string {
	res := g.resolve()
	n := len(res.Segments)
	g.spans = g.spans[:0]
	if n == 0 {
		return ""
	}

	var shares []int
	if g.width == model.WidthFill && g.availWidth > 0 {
		shares = distribute(g.availWidth, n)
	}

	parts := make([]string, n)
	col := 0
	for i, r := range res.Segments {
		rc := segment.RenderContext{
			Size:     r.Size,
			Position: r.Position,
			Adjacent: r.Adjacent,
			Focused:  g.focused && i == g.focus,
			Theme:    g.theme,
		}
		if r.Flex && shares != nil {
			rc.Width = shares[i]
		}
		parts[i] = segment.Render(r.Descriptor, rc)

		w := lipgloss.Width(parts[i])
		g.spans = append(g.spans, span{start: col, end: col + w})
		col += w
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// distribute splits total width into n equal flexible shares, handing
// remainder cells out left to right.
func distribute(total, n int) []int {
	shares := make([]int, n)
	base := total / n
	rem := total % n
	for i := range shares {
		shares[i] = base
		if i < rem {
			shares[i]++
		}
	}
	return shares
}
