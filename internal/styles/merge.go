package styles

import "github.com/charmbracelet/lipgloss"

// Override is a partial style. Only the set fields replace the matching
// properties of the style they are applied to; everything else is left
// untouched. Boolean attributes use pointers so "unset" and "explicitly
// off" stay distinguishable.
type Override struct {
	Foreground string // terminal color, "" = keep
	Background string
	Bold       *bool
	Faint      *bool
	Italic     *bool
	Underline  *bool
	Padding    *int // horizontal padding in cells
}

// Bool is a convenience for building attribute overrides inline.
func Bool(v bool) *bool { return &v }

// Int is a convenience for building padding overrides inline.
func Int(v int) *int { return &v }

// Apply returns a copy of s with the override's set properties replaced.
func (o Override) Apply(s lipgloss.Style) lipgloss.Style {
	if o.Foreground != "" {
		s = s.Foreground(lipgloss.Color(o.Foreground))
	}
	if o.Background != "" {
		s = s.Background(lipgloss.Color(o.Background))
	}
	if o.Bold != nil {
		s = s.Bold(*o.Bold)
	}
	if o.Faint != nil {
		s = s.Faint(*o.Faint)
	}
	if o.Italic != nil {
		s = s.Italic(*o.Italic)
	}
	if o.Underline != nil {
		s = s.Underline(*o.Underline)
	}
	if o.Padding != nil {
		s = s.Padding(0, *o.Padding)
	}
	return s
}

// Merge applies overrides to base in order. Later overrides win on any
// property both set; properties no override sets keep the base value.
func Merge(base lipgloss.Style, overrides ...Override) lipgloss.Style {
	out := base
	for _, o := range overrides {
		out = o.Apply(out)
	}
	return out
}
