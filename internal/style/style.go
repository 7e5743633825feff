// Package style holds the flat style mappings produced by theme resolution
// and the ordered merge that layers them into a final resolved style.
package style

import "sort"

// StyleMap maps a style property name (e.g. "borderWidth") to its value.
type StyleMap map[string]string

// Clone returns a copy of m. A nil map clones to an empty one.
func (m StyleMap) Clone() StyleMap {
	out := make(StyleMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Keys returns the property names in sorted order.
func (m StyleMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Layer identifies where a set of style properties came from.
type Layer int

const (
	LayerDefaults Layer = iota // built-in structural defaults
	LayerTheme                 // theme registry output
	LayerInstance              // per-render overrides
)

// String returns the human-readable name for a Layer.
func (l Layer) String() string {
	switch l {
	case LayerDefaults:
		return "defaults"
	case LayerTheme:
		return "theme"
	case LayerInstance:
		return "instance"
	default:
		return "unknown"
	}
}

// Precedence lists the layers from lowest to highest precedence.
var Precedence = []Layer{LayerDefaults, LayerTheme, LayerInstance}

// Layers assigns a StyleMap to each source layer.
type Layers map[Layer]StyleMap

// Merge flattens layers into a single StyleMap following Precedence: when
// two layers set the same property, the higher layer wins.
func Merge(layers Layers) StyleMap {
	out := StyleMap{}
	for _, l := range Precedence {
		for k, v := range layers[l] {
			out[k] = v
		}
	}
	return out
}
