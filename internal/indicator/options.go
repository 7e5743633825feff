package indicator

import "github.com/druarnfield/whirl/internal/theme"

const (
	DefaultEmptyColor = "transparent"
	DefaultThickness  = "2px"
	DefaultSpeed      = "0.45s"
	DefaultVariant    = "solid"
	DefaultSize       = "md"
	DefaultTag        = "div"
)

// Component is a caller-supplied render target used in place of a plain tag.
type Component interface {
	Name() string
}

// Element selects the primitive a Node is drawn with: a tag name, or a
// custom Component when one is set.
type Element struct {
	Tag       string
	Component Component
}

// Tag returns an Element for a plain tag.
func Tag(name string) Element {
	return Element{Tag: name}
}

// Custom returns an Element for a custom component.
func Custom(c Component) Element {
	return Element{Component: c}
}

// IsZero reports whether neither a tag nor a component is set.
func (e Element) IsZero() bool {
	return e.Tag == "" && e.Component == nil
}

// String names the element.
func (e Element) String() string {
	if e.Component != nil {
		return e.Component.Name()
	}
	return e.Tag
}

// Options are the per-render inputs of an indicator.
type Options struct {
	// EmptyColor colors the inactive part of the ring.
	EmptyColor string

	// Color colors the active arc. Empty inherits the ambient text color.
	Color string

	// Thickness is the border width, e.g. "2px".
	Thickness string

	// Speed is the period of one full rotation, e.g. "0.45s".
	Speed string

	// Label is the accessible fallback text. Empty renders no text node.
	Label string

	ColorScheme string
	Variant     string
	Size        string
	StyleConfig *theme.ComponentConfig

	Element Element

	// Attrs are passed through to the rendered element untouched.
	Attrs map[string]string
}

// DefaultOptions returns Options with every default applied.
func DefaultOptions() Options {
	return Options{
		EmptyColor: DefaultEmptyColor,
		Thickness:  DefaultThickness,
		Speed:      DefaultSpeed,
		Variant:    DefaultVariant,
		Size:       DefaultSize,
		Element:    Tag(DefaultTag),
	}
}

// withDefaults fills each unset defaultable field. Color, Label and
// ColorScheme have no default.
func (o Options) withDefaults() Options {
	if o.EmptyColor == "" {
		o.EmptyColor = DefaultEmptyColor
	}
	if o.Thickness == "" {
		o.Thickness = DefaultThickness
	}
	if o.Speed == "" {
		o.Speed = DefaultSpeed
	}
	if o.Variant == "" {
		o.Variant = DefaultVariant
	}
	if o.Size == "" {
		o.Size = DefaultSize
	}
	if o.Element.IsZero() {
		o.Element = Tag(DefaultTag)
	}
	return o
}

// Intent returns the theming intent carried by o.
func (o Options) Intent() theme.Intent {
	return theme.Intent{
		ColorScheme: o.ColorScheme,
		Variant:     o.Variant,
		Size:        o.Size,
		StyleConfig: o.StyleConfig,
	}
}
