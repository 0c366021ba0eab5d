// Package config loads declarative scene files: an ordered list of
// segmented groups and their children, used by the CLI to render and to
// drive the interactive demo.
package config

import (
	"gopkg.in/yaml.v3"
)

// Scene represents a full scene document.
type Scene struct {
	Version     string      `yaml:"version" validate:"required,semver"`
	Name        string      `yaml:"name" validate:"required,min=1,max=100"`
	Description string      `yaml:"description,omitempty"`
	Groups      []GroupSpec `yaml:"groups" validate:"required,min=1,dive"`
}

// GroupSpec describes one segmented group.
type GroupSpec struct {
	Label    string  `yaml:"label" validate:"required,min=1,max=100"`
	Role     string  `yaml:"role,omitempty" validate:"omitempty,group_role"`
	Size     string  `yaml:"size,omitempty" validate:"omitempty,size_category"`
	Width    string  `yaml:"width,omitempty" validate:"omitempty,width_policy"`
	Segments []Child `yaml:"segments"`
}

// Child is one entry in a group's child list. Entries are discriminated
// by their `type` key; the default is a segment. Entries of unknown type
// are preserved verbatim rather than rejected, so the rendering engine
// can account for them with its own diagnostic.
type Child struct {
	Type    string
	Segment *SegmentSpec
	Raw     map[string]any
}

// SegmentSpec describes a segment child.
type SegmentSpec struct {
	Label    string `yaml:"label,omitempty"`
	Glyph    string `yaml:"glyph,omitempty"`
	Trailing string `yaml:"trailing,omitempty"`
	Name     string `yaml:"name,omitempty"`
	Size     string `yaml:"size,omitempty" validate:"omitempty,size_category"`
	Selected bool   `yaml:"selected,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// UnmarshalYAML decodes the tagged child variants without key conflicts.
func (c *Child) UnmarshalYAML(value *yaml.Node) error {
	type head struct {
		Type string `yaml:"type"`
	}

	var h head
	if err := value.Decode(&h); err != nil {
		return err
	}
	if h.Type == "" {
		h.Type = "segment"
	}
	c.Type = h.Type
	c.Segment = nil
	c.Raw = nil

	if h.Type == "segment" {
		var spec SegmentSpec
		if err := value.Decode(&spec); err != nil {
			return err
		}
		c.Segment = &spec
		return nil
	}

	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	c.Raw = raw
	return nil
}
