package theme

import "github.com/druarnfield/whirl/internal/style"

// SpinnerComponent is the registry key of the loading indicator.
const SpinnerComponent = "Spinner"

// SpinnerConfig is the built-in theme entry for the loading indicator.
func SpinnerConfig() ComponentConfig {
	return ComponentConfig{
		BaseStyle: style.StyleMap{},
		Variants: map[string]style.StyleMap{
			"solid": {"color": ColorSchemePlaceholder + ".500"},
		},
		Sizes: map[string]style.StyleMap{
			"xs": {"width": "0.75rem", "height": "0.75rem"},
			"sm": {"width": "1rem", "height": "1rem"},
			"md": {"width": "1.5rem", "height": "1.5rem"},
			"lg": {"width": "2rem", "height": "2rem"},
			"xl": {"width": "3rem", "height": "3rem"},
		},
		DefaultProps: DefaultProps{
			Size:    "md",
			Variant: "solid",
		},
	}
}

var shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

var hues = map[string][]string{
	"gray":   {"#F7FAFC", "#EDF2F7", "#E2E8F0", "#CBD5E0", "#A0AEC0", "#718096", "#4A5568", "#2D3748", "#1A202C", "#171923"},
	"blue":   {"#EBF8FF", "#BEE3F8", "#90CDF4", "#63B3ED", "#4299E1", "#3182CE", "#2B6CB0", "#2C5282", "#2A4365", "#1A365D"},
	"red":    {"#FFF5F5", "#FED7D7", "#FEB2B2", "#FC8181", "#F56565", "#E53E3E", "#C53030", "#9B2C2C", "#822727", "#63171B"},
	"green":  {"#F0FFF4", "#C6F6D5", "#9AE6B4", "#68D391", "#48BB78", "#38A169", "#2F855A", "#276749", "#22543D", "#1C4532"},
	"purple": {"#FAF5FF", "#E9D8FD", "#D6BCFA", "#B794F4", "#9F7AEA", "#805AD5", "#6B46C1", "#553C9A", "#44337A", "#322659"},
	"teal":   {"#E6FFFA", "#B2F5EA", "#81E6D9", "#4FD1C5", "#38B2AC", "#319795", "#2C7A7B", "#285E61", "#234E52", "#1D4044"},
	"orange": {"#FFFAF0", "#FEEBC8", "#FBD38D", "#F6AD55", "#ED8936", "#DD6B20", "#C05621", "#9C4221", "#7B341E", "#652B19"},
}

// DefaultColors returns the built-in palette keyed by "hue.shade" tokens.
func DefaultColors() map[string]string {
	colors := map[string]string{
		"white": "#FFFFFF",
		"black": "#000000",
	}
	for hue, values := range hues {
		for i, hex := range values {
			colors[hue+"."+shades[i]] = hex
		}
	}
	return colors
}

// Default returns the built-in registry.
func Default() *MapRegistry {
	return NewMapRegistry(
		map[string]ComponentConfig{SpinnerComponent: SpinnerConfig()},
		DefaultColors(),
	)
}
