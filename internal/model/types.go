package model

import "fmt"

// Size is the visual size category of a segment or group.
type Size string

const (
	// SizeSmall renders compact segments with minimal padding.
	SizeSmall Size = "small"
	// SizeMedium is the engine fallback when neither the segment nor the
	// group specifies a size.
	SizeMedium Size = "medium"
	// SizeLarge renders spacious segments.
	SizeLarge Size = "large"
)

// DefaultSize is applied when both the segment and its group leave the
// size unset.
const DefaultSize = SizeMedium

// Valid reports whether s is a known size category.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// ParseSize converts a string into a Size. The empty string is returned
// as-is so callers can distinguish "unset" from "invalid".
func ParseSize(raw string) (Size, error) {
	s := Size(raw)
	if raw == "" || s.Valid() {
		return s, nil
	}
	return "", fmt.Errorf("unknown size %q", raw)
}

// Position classifies where a segment sits within its filtered sibling
// sequence. It is derived on every render pass and never stored on the
// segment itself.
type Position string

const (
	PositionFirst  Position = "first"
	PositionMiddle Position = "middle"
	PositionLast   Position = "last"
	PositionOnly   Position = "only"
)

// PositionFor computes the position of the segment at index i in a
// filtered sibling list of length n. It depends on nothing but i and n.
func PositionFor(i, n int) Position {
	switch {
	case n == 1:
		return PositionOnly
	case i == 0:
		return PositionFirst
	case i == n-1:
		return PositionLast
	default:
		return PositionMiddle
	}
}

// WidthPolicy controls how a group distributes horizontal space.
type WidthPolicy string

const (
	// WidthHug sizes the group to its content; each segment keeps its
	// intrinsic width.
	WidthHug WidthPolicy = "hug"
	// WidthFill stretches the group to the full available width and gives
	// every segment an equal flexible share.
	WidthFill WidthPolicy = "fill"
)

// Valid reports whether w is a known width policy.
func (w WidthPolicy) Valid() bool {
	return w == WidthHug || w == WidthFill
}

// ParseWidthPolicy converts a string into a WidthPolicy. The empty string
// maps to WidthHug, the default.
func ParseWidthPolicy(raw string) (WidthPolicy, error) {
	if raw == "" {
		return WidthHug, nil
	}
	w := WidthPolicy(raw)
	if w.Valid() {
		return w, nil
	}
	return "", fmt.Errorf("unknown width policy %q", raw)
}

// Role is the semantic contract a group communicates to assistive
// technology. It never changes engine behavior.
type Role string

const (
	RoleGroup      Role = "group"
	RoleRadioGroup Role = "radiogroup"
	RoleToolbar    Role = "toolbar"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleGroup, RoleRadioGroup, RoleToolbar:
		return true
	}
	return false
}

// ParseRole converts a string into a Role. The empty string maps to
// RoleGroup, the default.
func ParseRole(raw string) (Role, error) {
	if raw == "" {
		return RoleGroup, nil
	}
	r := Role(raw)
	if r.Valid() {
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}
