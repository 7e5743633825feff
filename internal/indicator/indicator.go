// Package indicator builds the render tree of an animated loading indicator:
// a single element carrying the resolved style and spin animation, with an
// optional visually-hidden label for assistive technology.
package indicator

import (
	"fmt"
	"log/slog"

	"github.com/druarnfield/whirl/internal/style"
	"github.com/druarnfield/whirl/internal/theme"
)

// NodeLabel tags the root element of every indicator render tree.
const NodeLabel = "indicator"

// baseStyle is the structural defaults layer: a solid full circle whose
// borders follow the current text color.
func baseStyle() style.StyleMap {
	return style.StyleMap{
		"display":          "inline-block",
		"borderStyle":      "solid",
		"borderRadius":     "99999px",
		"borderColor":      "currentColor",
		"borderTopColor":   "currentColor",
		"borderRightColor": "currentColor",
	}
}

// instanceStyle is the per-render overrides layer. Bottom and left borders
// take the empty color, producing the partial-ring look.
func instanceStyle(opts Options, anim style.Animation) style.StyleMap {
	m := style.StyleMap{
		"borderWidth":       opts.Thickness,
		"borderTopWidth":    opts.Thickness,
		"borderRightWidth":  opts.Thickness,
		"borderBottomWidth": opts.Thickness,
		"borderLeftWidth":   opts.Thickness,
		"borderBottomColor": opts.EmptyColor,
		"borderLeftColor":   opts.EmptyColor,
	}
	if opts.Color != "" {
		m["color"] = opts.Color
	}
	for k, v := range anim.Properties() {
		m[k] = v
	}
	return m
}

// Render resolves opts against reg and returns the indicator render tree.
// Registry errors are configuration errors and are returned wrapped.
func Render(reg theme.Registry, opts Options) (*Node, error) {
	opts = opts.withDefaults()

	themed, err := theme.Resolve(reg, theme.SpinnerComponent, opts.Intent())
	if err != nil {
		return nil, fmt.Errorf("resolving %s theme: %w", theme.SpinnerComponent, err)
	}

	anim := style.NewSpin(opts.Speed)
	merged := style.Merge(style.Layers{
		style.LayerDefaults: baseStyle(),
		style.LayerTheme:    themed,
		style.LayerInstance: instanceStyle(opts, anim),
	})

	node := &Node{
		Kind:      KindElement,
		Element:   opts.Element,
		Label:     NodeLabel,
		Style:     merged,
		Animation: &anim,
		Attrs:     copyAttrs(opts.Attrs),
	}
	if opts.Label != "" {
		node.Children = []Node{VisuallyHidden(opts.Label)}
	}
	return node, nil
}

// Renderer renders indicators against a fixed registry and logs each render.
type Renderer struct {
	registry theme.Registry
	logger   *slog.Logger
}

// NewRenderer creates a Renderer.
func NewRenderer(reg theme.Registry, logger *slog.Logger) *Renderer {
	return &Renderer{registry: reg, logger: logger}
}

// Render renders opts. See the package-level Render.
func (r *Renderer) Render(opts Options) (*Node, error) {
	opts = opts.withDefaults()
	node, err := Render(r.registry, opts)
	if err != nil {
		r.logger.Error("render failed", "error", err)
		return nil, err
	}
	r.logger.Debug("rendered indicator",
		"element", node.Element.String(),
		"size", opts.Size,
		"variant", opts.Variant,
		"color_scheme", opts.ColorScheme,
		"labelled", len(node.Children) > 0,
	)
	return node, nil
}

func copyAttrs(attrs map[string]string) map[string]string {
	if attrs == nil {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
