package components

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/druarnfield/whirl/internal/indicator"
	"github.com/druarnfield/whirl/internal/theme"
	"github.com/muesli/termenv"
)

// Frame sets, one revolution each, clockwise.
var (
	ArcFrames   = []string{"◜", "◝", "◞", "◟"}
	HalfFrames  = []string{"◐", "◓", "◑", "◒"}
	BlockFrames = []string{"▖", "▘", "▝", "▗"}
)

const (
	fallbackPeriod = 450 * time.Millisecond
	minFrameDelay  = time.Millisecond
	remPixels      = 16
)

// FramesFor picks a frame set by border thickness: arcs up to 2px, half
// discs up to 4px, blocks beyond. Unparseable thickness uses arcs.
func FramesFor(thickness string) []string {
	px, ok := pixels(thickness)
	switch {
	case !ok || px <= 2:
		return ArcFrames
	case px <= 4:
		return HalfFrames
	default:
		return BlockFrames
	}
}

func pixels(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	scale := 1.0
	switch {
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	case strings.HasSuffix(v, "rem"):
		v = strings.TrimSuffix(v, "rem")
		scale = remPixels
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f * scale, true
}

// Period parses an animation duration such as "0.45s" or "450ms".
func Period(speed string) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(speed))
	if err != nil || d <= 0 {
		return fallbackPeriod
	}
	return d
}

// ResolveColor maps a style color value to a terminal color. Hex and ANSI
// values pass through; tokens are looked up in the palette; inherited,
// transparent and unknown values yield no color.
func ResolveColor(value string, palette theme.Palette) lipgloss.TerminalColor {
	switch value {
	case "", "currentColor", "inherit", "transparent":
		return lipgloss.NoColor{}
	}
	if strings.HasPrefix(value, "#") {
		return lipgloss.Color(value)
	}
	if _, err := strconv.Atoi(value); err == nil {
		return lipgloss.Color(value)
	}
	if palette != nil {
		if c, ok := palette.Color(value); ok {
			return lipgloss.Color(c)
		}
	}
	return lipgloss.NoColor{}
}

// ParseProfile maps a profile name to a termenv profile. Empty or "auto"
// detects from the environment (NO_COLOR, CLICOLOR_FORCE).
func ParseProfile(name string) termenv.Profile {
	switch strings.ToLower(name) {
	case "ascii", "none":
		return termenv.Ascii
	case "ansi":
		return termenv.ANSI
	case "ansi256":
		return termenv.ANSI256
	case "truecolor":
		return termenv.TrueColor
	default:
		return termenv.EnvColorProfile()
	}
}

// NewRenderer returns a Lip Gloss renderer for w with a fixed color profile.
func NewRenderer(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return r
}

type indicatorConfig struct {
	renderer   *lipgloss.Renderer
	accessible bool
}

// Option configures an Indicator.
type Option func(*indicatorConfig)

// WithRenderer draws the indicator through r instead of the default renderer.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(c *indicatorConfig) { c.renderer = r }
}

// WithAccessible makes View print the accessible label instead of glyphs.
func WithAccessible(on bool) Option {
	return func(c *indicatorConfig) { c.accessible = on }
}

// NewSpinner returns a spinner.Model drawing node: active arc in the top
// border color, empty area in the bottom border color, one revolution per
// animation period. Frames never advance faster than once per millisecond.
func NewSpinner(node *indicator.Node, palette theme.Palette, r *lipgloss.Renderer) spinner.Model {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	active := node.Style["borderTopColor"]
	if active == "" || active == "currentColor" {
		active = node.Style["color"]
	}

	st := r.NewStyle().
		Foreground(ResolveColor(active, palette)).
		Background(ResolveColor(node.Style["borderBottomColor"], palette))

	frames := FramesFor(node.Style["borderWidth"])
	period := fallbackPeriod
	if node.Animation != nil {
		period = Period(node.Animation.Duration)
	}

	return spinner.New(
		spinner.WithSpinner(spinner.Spinner{
			Frames: frames,
			FPS:    max(period/time.Duration(len(frames)), minFrameDelay),
		}),
		spinner.WithStyle(st),
	)
}

// Indicator draws an indicator render tree in the terminal.
type Indicator struct {
	spinner    spinner.Model
	label      string
	accessible bool
}

// NewIndicator creates an Indicator for node.
func NewIndicator(node *indicator.Node, palette theme.Palette, opts ...Option) Indicator {
	var cfg indicatorConfig
	for _, o := range opts {
		o(&cfg)
	}
	return Indicator{
		spinner:    NewSpinner(node, palette, cfg.renderer),
		label:      node.AccessibleText(),
		accessible: cfg.accessible,
	}
}

// Init starts the animation. Accessible mode does not animate.
func (m Indicator) Init() tea.Cmd {
	if m.accessible {
		return nil
	}
	return m.spinner.Tick
}

// Update advances the animation.
func (m Indicator) Update(msg tea.Msg) (Indicator, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok || m.accessible {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the current frame. In accessible mode it renders the label
// as plain text, and nothing for an unlabelled indicator.
func (m Indicator) View() string {
	if m.accessible {
		return m.label
	}
	return m.spinner.View()
}

// Label returns the accessible label, which the glyph view never shows.
func (m Indicator) Label() string {
	return m.label
}
