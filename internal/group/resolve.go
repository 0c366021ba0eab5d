package group

import (
	"reflect"

	"github.com/alexisbeaulieu97/segmented/internal/model"
	"github.com/alexisbeaulieu97/segmented/internal/segment"
)

// Config is the container-level configuration feeding one resolution
// pass.
type Config struct {
	Size  model.Size // "" = unset; segments fall back to the engine default
	Width model.WidthPolicy
}

// Resolved is one segment with every derived attribute computed: the
// effective size after the cascade, the position within the filtered
// sibling list, and the adjacency and width-policy modifiers.
type Resolved struct {
	Descriptor segment.Descriptor
	Size       model.Size
	Position   model.Position
	Adjacent   bool
	Flex       bool
}

// Resolution is the outcome of one pass: the renderable segments in
// caller order plus the count of entries that were not segments.
type Resolution struct {
	Segments []Resolved
	Invalid  int
}

// Resolve runs the per-render pass over the supplied children: filter the
// list down to segment descriptors, infer positions, cascade sizes, and
// mark adjacency and flex shares. It is pure: nothing is cached between
// calls and the inputs are never mutated, so reordering children between
// renders deterministically reassigns every position.
func Resolve(cfg Config, children []any) Resolution {
	valid := make([]segment.Descriptor, 0, len(children))
	invalid := 0
	for _, child := range children {
		if omitted(child) {
			continue
		}
		item, ok := child.(segment.Item)
		if !ok {
			invalid++
			continue
		}
		valid = append(valid, item.Descriptor())
	}

	n := len(valid)
	resolved := make([]Resolved, n)
	for i, d := range valid {
		size := d.Size
		if size == "" {
			size = cfg.Size
		}
		if size == "" {
			size = model.DefaultSize
		}
		resolved[i] = Resolved{
			Descriptor: d,
			Size:       size,
			Position:   model.PositionFor(i, n),
			Adjacent:   i > 0,
			Flex:       cfg.Width == model.WidthFill,
		}
	}

	return Resolution{Segments: resolved, Invalid: invalid}
}

// omitted reports whether a child is a conditional omission: nil, a nil
// pointer or similar nil-able value, or the literal false. These are
// skipped silently and never counted as invalid.
func omitted(child any) bool {
	if child == nil {
		return true
	}
	if b, ok := child.(bool); ok {
		return !b
	}
	rv := reflect.ValueOf(child)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
