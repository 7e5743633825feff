// Package theme resolves theming intent (color scheme, variant, size and an
// optional style-config override) into concrete style properties by looking
// components up in a read-only registry.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/druarnfield/whirl/internal/style"
)

// ColorSchemePlaceholder is substituted with the active color scheme in
// style values, e.g. "{colorScheme}.500" becomes "blue.500".
const ColorSchemePlaceholder = "{colorScheme}"

var (
	// ErrRegistryUnavailable is returned when no registry is configured.
	ErrRegistryUnavailable = errors.New("theme registry unavailable")

	// ErrUnknownComponent is returned when a component has no registry entry
	// and no style-config override was supplied.
	ErrUnknownComponent = errors.New("unknown theme component")
)

// DefaultProps are the theming values used when an intent leaves a field empty.
type DefaultProps struct {
	Size        string `toml:"size" yaml:"size"`
	Variant     string `toml:"variant" yaml:"variant"`
	ColorScheme string `toml:"color_scheme" yaml:"color_scheme"`
}

// ComponentConfig is the theme entry for a single component.
type ComponentConfig struct {
	BaseStyle    style.StyleMap            `toml:"base_style" yaml:"base_style"`
	Sizes        map[string]style.StyleMap `toml:"sizes" yaml:"sizes"`
	Variants     map[string]style.StyleMap `toml:"variants" yaml:"variants"`
	DefaultProps DefaultProps              `toml:"default_props" yaml:"default_props"`
}

// Intent selects which style values a registry returns for a component.
type Intent struct {
	ColorScheme string
	Variant     string
	Size        string

	// StyleConfig, when non-nil, replaces the registry entry for the component.
	StyleConfig *ComponentConfig
}

// Registry resolves a component and theming intent into style properties.
type Registry interface {
	Resolve(component string, intent Intent) (style.StyleMap, error)
}

// Palette resolves color tokens such as "gray.200" to concrete colors.
type Palette interface {
	Color(token string) (string, bool)
}

// Resolve calls reg.Resolve, reporting ErrRegistryUnavailable for a nil registry.
func Resolve(reg Registry, component string, intent Intent) (style.StyleMap, error) {
	if reg == nil {
		return nil, ErrRegistryUnavailable
	}
	return reg.Resolve(component, intent)
}

// ResolveConfig applies intent to a single component entry: base style, then
// the size, then the variant. Unknown variant or size keys contribute nothing.
func ResolveConfig(cfg ComponentConfig, intent Intent) style.StyleMap {
	variant := firstNonEmpty(intent.Variant, cfg.DefaultProps.Variant)
	size := firstNonEmpty(intent.Size, cfg.DefaultProps.Size)
	scheme := firstNonEmpty(intent.ColorScheme, cfg.DefaultProps.ColorScheme)

	out := style.StyleMap{}
	apply := func(m style.StyleMap) {
		for k, v := range m {
			if strings.Contains(v, ColorSchemePlaceholder) {
				if scheme == "" {
					continue
				}
				v = strings.ReplaceAll(v, ColorSchemePlaceholder, scheme)
			}
			out[k] = v
		}
	}

	apply(cfg.BaseStyle)
	apply(cfg.Sizes[size])
	apply(cfg.Variants[variant])
	return out
}

// MapRegistry is an in-memory Registry and Palette. It is not modified after
// construction and is safe for concurrent use.
type MapRegistry struct {
	components map[string]ComponentConfig
	colors     map[string]string
}

// NewMapRegistry creates a registry from component entries and palette colors.
func NewMapRegistry(components map[string]ComponentConfig, colors map[string]string) *MapRegistry {
	r := &MapRegistry{
		components: make(map[string]ComponentConfig, len(components)),
		colors:     make(map[string]string, len(colors)),
	}
	for name, cfg := range components {
		r.components[name] = cfg
	}
	for token, c := range colors {
		r.colors[token] = c
	}
	return r
}

// Resolve returns the style for component under intent.
func (r *MapRegistry) Resolve(component string, intent Intent) (style.StyleMap, error) {
	if r == nil {
		return nil, ErrRegistryUnavailable
	}
	if intent.StyleConfig != nil {
		return ResolveConfig(*intent.StyleConfig, intent), nil
	}
	cfg, ok := r.components[component]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, component)
	}
	return ResolveConfig(cfg, intent), nil
}

// Component returns the entry registered under name.
func (r *MapRegistry) Component(name string) (ComponentConfig, bool) {
	if r == nil {
		return ComponentConfig{}, false
	}
	cfg, ok := r.components[name]
	return cfg, ok
}

// Color resolves a palette token. A bare hue ("blue") resolves to its 500 shade.
func (r *MapRegistry) Color(token string) (string, bool) {
	if r == nil {
		return "", false
	}
	if c, ok := r.colors[token]; ok {
		return c, true
	}
	if !strings.Contains(token, ".") {
		c, ok := r.colors[token+".500"]
		return c, ok
	}
	return "", false
}

// With returns a new registry with other's components and colors layered
// over r's.
func (r *MapRegistry) With(other *MapRegistry) *MapRegistry {
	merged := NewMapRegistry(r.components, r.colors)
	if other == nil {
		return merged
	}
	for name, cfg := range other.components {
		merged.components[name] = cfg
	}
	for token, c := range other.colors {
		merged.colors[token] = c
	}
	return merged
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
