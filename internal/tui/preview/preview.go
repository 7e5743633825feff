// Package preview is the Bubble Tea program behind `whirl preview`: a single
// live indicator with a caption, re-rendered when its theme file changes.
package preview

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/druarnfield/whirl/internal/indicator"
	"github.com/druarnfield/whirl/internal/theme"
	"github.com/druarnfield/whirl/internal/tui/components"
)

const (
	panelChrome   = 2 // left and right border
	maxPanelWidth = 60
)

// Model shows one indicator until the user quits.
type Model struct {
	styles    components.Styles
	opts      indicator.Options
	indOpts   []components.Option
	registry  *theme.MapRegistry
	indicator components.Indicator
	logger    *slog.Logger
	events    <-chan tea.Msg

	err      error
	width    int
	quitting bool
}

// New renders opts against reg and returns a ready Model. events, when
// non-nil, delivers ReloadMsg and ReloadErrMsg values from a theme watcher.
func New(reg *theme.MapRegistry, opts indicator.Options, logger *slog.Logger, events <-chan tea.Msg, indOpts ...components.Option) (Model, error) {
	m := Model{
		styles:   components.DefaultStyles(),
		opts:     opts,
		indOpts:  indOpts,
		registry: reg,
		logger:   logger,
		events:   events,
	}
	ind, err := m.build(reg)
	if err != nil {
		return Model{}, err
	}
	m.indicator = ind
	return m, nil
}

func (m Model) build(reg *theme.MapRegistry) (components.Indicator, error) {
	node, err := indicator.NewRenderer(reg, m.logger).Render(m.opts)
	if err != nil {
		return components.Indicator{}, err
	}
	return components.NewIndicator(node, reg, m.indOpts...), nil
}

// Init starts the indicator and the theme watcher listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.indicator.Init(), waitForEvent(m.events))
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case ReloadMsg:
		ind, err := m.build(msg.Registry)
		if err != nil {
			m.err = err
			m.logger.Error("theme reload rejected", "error", err)
			return m, waitForEvent(m.events)
		}
		m.registry = msg.Registry
		m.indicator = ind
		m.err = nil
		m.logger.Info("theme reloaded")
		return m, tea.Batch(m.indicator.Init(), waitForEvent(m.events))

	case ReloadErrMsg:
		m.err = msg.Err
		return m, waitForEvent(m.events)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.indicator, cmd = m.indicator.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the preview screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("whirl preview"))
	b.WriteString("\n\n")

	panel := m.styles.Panel
	if m.width > panelChrome {
		// Width excludes the border, so the panel spans at most the terminal.
		panel = panel.Width(min(m.width-panelChrome, maxPanelWidth))
	}
	b.WriteString(panel.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.indicator.View(),
			"",
			m.styles.Muted.Render(m.caption()),
		),
	))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("  %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("  q: quit"))

	return b.String()
}

func (m Model) caption() string {
	parts := []string{
		"size " + orDefault(m.opts.Size, indicator.DefaultSize),
		"variant " + orDefault(m.opts.Variant, indicator.DefaultVariant),
		"speed " + orDefault(m.opts.Speed, indicator.DefaultSpeed),
		"thickness " + orDefault(m.opts.Thickness, indicator.DefaultThickness),
	}
	if m.opts.ColorScheme != "" {
		parts = append(parts, "scheme "+m.opts.ColorScheme)
	}
	return strings.Join(parts, " · ")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func waitForEvent(ch <-chan tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}
