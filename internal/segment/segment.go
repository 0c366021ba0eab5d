// Package segment implements the leaf control of a segmented group: one
// focusable, activatable unit. A segment knows nothing about its siblings;
// its position, effective size, and adjacency styling are resolved by the
// owning group and handed in fully computed.
package segment

import (
	"github.com/alexisbeaulieu97/segmented/internal/model"
	"github.com/alexisbeaulieu97/segmented/internal/styles"
)

// Descriptor is the declarative description of one segment before
// rendering. The descriptor contract is what a group checks when
// filtering its children: any value whose type implements Item is a
// valid child, whatever concrete type it is.
type Descriptor struct {
	Label          string
	Leading        string     // leading decorative glyph, opaque to the engine
	Trailing       string     // trailing decorative glyph, opaque to the engine
	AccessibleName string     // required when the segment is icon-only
	Size           model.Size // "" inherits the group size
	Selected       bool
	Disabled       bool
	Activate       func()
	Overrides      []styles.Override // caller styling, merged last
}

// Item is the tagged-variant contract a group child must satisfy to be
// recognized as a segment.
type Item interface {
	Descriptor() Descriptor
}

// IconOnly reports whether the segment carries only decorative glyph
// content and no label.
func (d Descriptor) IconOnly() bool {
	return d.Label == "" && (d.Leading != "" || d.Trailing != "")
}

// Invoke fires the activation callback. Disabled segments never fire,
// regardless of how activation was triggered; this is the single choke
// point every trigger path goes through.
func (d Descriptor) Invoke() {
	if d.Disabled || d.Activate == nil {
		return
	}
	d.Activate()
}

// Segment is the fluent builder over a Descriptor.
type Segment struct {
	d Descriptor
}

// New creates a labeled segment.
func New(label string) *Segment {
	return &Segment{d: Descriptor{Label: label}}
}

// Icon creates an icon-only segment. The accessible name is required by
// the accessibility contract; the owning group reports a diagnostic when
// it is missing.
func Icon(glyph, accessibleName string) *Segment {
	return &Segment{d: Descriptor{Leading: glyph, AccessibleName: accessibleName}}
}

// Size sets a per-segment size that wins over the group's size.
func (s *Segment) Size(size model.Size) *Segment {
	s.d.Size = size
	return s
}

// Selected sets the pressed state.
func (s *Segment) Selected(v bool) *Segment {
	s.d.Selected = v
	return s
}

// Disabled sets the disabled state.
func (s *Segment) Disabled(v bool) *Segment {
	s.d.Disabled = v
	return s
}

// Leading sets the leading glyph slot.
func (s *Segment) Leading(glyph string) *Segment {
	s.d.Leading = glyph
	return s
}

// Trailing sets the trailing glyph slot.
func (s *Segment) Trailing(glyph string) *Segment {
	s.d.Trailing = glyph
	return s
}

// AccessibleName sets the name exposed to assistive technology.
func (s *Segment) AccessibleName(name string) *Segment {
	s.d.AccessibleName = name
	return s
}

// OnActivate sets the activation callback.
func (s *Segment) OnActivate(fn func()) *Segment {
	s.d.Activate = fn
	return s
}

// Override appends a caller style override, merged after every
// engine-computed style.
func (s *Segment) Override(o styles.Override) *Segment {
	s.d.Overrides = append(s.d.Overrides, o)
	return s
}

// Descriptor returns the built descriptor, satisfying Item.
func (s *Segment) Descriptor() Descriptor {
	return s.d
}

// Activate triggers the segment programmatically. The disabled contract
// still applies.
func (s *Segment) Activate() {
	s.d.Invoke()
}
