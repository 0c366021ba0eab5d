package group

import (
	"github.com/alexisbeaulieu97/segmented/internal/segment"
)

// Exclusive wires single-select behavior over a set of segments:
// activating one marks it selected and clears the others, then invokes
// the segment's own callback and the optional onChange hook. The engine
// never enforces exclusivity on its own; rendering multiple selected
// segments stays legal input. Disabled segments keep whatever selection
// they carry, so a locked current value survives.
func Exclusive(onChange func(index int), segments ...*segment.Segment) []*segment.Segment {
	for i, seg := range segments {
		i, seg := i, seg
		prev := seg.Descriptor().Activate
		seg.OnActivate(func() {
			for j, other := range segments {
				if other.Descriptor().Disabled {
					continue
				}
				other.Selected(j == i)
			}
			if prev != nil {
				prev()
			}
			if onChange != nil {
				onChange(i)
			}
		})
	}
	return segments
}
