package config

import (
	"github.com/alexisbeaulieu97/segmented/internal/diagnostics"
	"github.com/alexisbeaulieu97/segmented/internal/group"
	"github.com/alexisbeaulieu97/segmented/internal/model"
	"github.com/alexisbeaulieu97/segmented/internal/segment"
	"github.com/alexisbeaulieu97/segmented/internal/styles"
)

// BuildGroups converts a validated scene into renderable groups. Child
// entries of unknown type are passed through untyped so the engine's
// structural diagnostic accounts for them instead of the config layer
// silently dropping them.
func BuildGroups(scene *Scene, sink diagnostics.Sink, theme styles.Theme) []*group.Group {
	groups := make([]*group.Group, 0, len(scene.Groups))
	for _, gs := range scene.Groups {
		// Enum fields were validated with the scene.
		role, _ := model.ParseRole(gs.Role)
		size, _ := model.ParseSize(gs.Size)
		width, _ := model.ParseWidthPolicy(gs.Width)

		g := group.New(gs.Label).
			Role(role).
			Size(size).
			WidthPolicy(width).
			Sink(sink).
			Theme(theme)

		segs := make([]*segment.Segment, 0, len(gs.Segments))
		for _, child := range gs.Segments {
			if child.Segment == nil {
				g.Add(child.Raw)
				continue
			}
			s := buildSegment(child.Segment)
			segs = append(segs, s)
			g.Add(s)
		}

		if role == model.RoleRadioGroup {
			group.Exclusive(nil, segs...)
		}

		groups = append(groups, g)
	}
	return groups
}

func buildSegment(spec *SegmentSpec) *segment.Segment {
	s := segment.New(spec.Label).
		Leading(spec.Glyph).
		Trailing(spec.Trailing).
		AccessibleName(spec.Name).
		Selected(spec.Selected).
		Disabled(spec.Disabled)
	if spec.Size != "" {
		s.Size(model.Size(spec.Size))
	}
	return s
}
