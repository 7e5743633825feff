package components

import "github.com/charmbracelet/lipgloss"

// Styles holds the shared Lip Gloss styles used around the indicator.
type Styles struct {
	Title       lipgloss.Style
	Caption     lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Panel       lipgloss.Style
	Footer      lipgloss.Style
	AccentColor lipgloss.AdaptiveColor
}

// DefaultStyles returns Styles populated with the whirl palette.
// Uses AdaptiveColor to work in both light and dark terminals.
func DefaultStyles() Styles {
	accent := lipgloss.AdaptiveColor{Light: "#7B2FBE", Dark: "#B476F0"}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	errColor := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Caption: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(errColor),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(muted),

		AccentColor: accent,
	}
}
