package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/segmented/internal/model"
)

// Geometry returns the border for a segment at the given position. The
// rule is fixed and not caller-overridable: the leading edge of the first
// segment and the trailing edge of the last are rounded, interior joins
// stay square, and a sole segment is rounded on both ends.
func Geometry(pos model.Position) lipgloss.Border {
	square := lipgloss.NormalBorder()
	round := lipgloss.RoundedBorder()

	b := square
	switch pos {
	case model.PositionFirst:
		b.TopLeft = round.TopLeft
		b.BottomLeft = round.BottomLeft
	case model.PositionLast:
		b.TopRight = round.TopRight
		b.BottomRight = round.BottomRight
	case model.PositionOnly:
		b = round
	case model.PositionMiddle:
		// all square
	}
	return b
}

// PaddingFor maps a size category to the horizontal padding of a
// segment's content cell.
func PaddingFor(size model.Size) int {
	switch size {
	case model.SizeSmall:
		return 1
	case model.SizeLarge:
		return 3
	default:
		return 2
	}
}
