package preview

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/druarnfield/whirl/internal/indicator"
	"github.com/druarnfield/whirl/internal/logging"
	"github.com/druarnfield/whirl/internal/theme"
	"github.com/druarnfield/whirl/internal/tui/components"
	"github.com/muesli/termenv"
)

// --- helpers ---

func nopLogger() *slog.Logger {
	return slog.New(logging.NopHandler{})
}

func newModel(t *testing.T, opts indicator.Options, events <-chan tea.Msg, indOpts ...components.Option) Model {
	t.Helper()
	indOpts = append([]components.Option{components.WithRenderer(components.NewRenderer(io.Discard, termenv.Ascii))}, indOpts...)
	m, err := New(theme.Default(), opts, nopLogger(), events, indOpts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

// --- Model tests ---

func TestNew_RegistryError(t *testing.T) {
	_, err := New(theme.NewMapRegistry(nil, nil), indicator.Options{}, nopLogger(), nil)
	if !errors.Is(err, theme.ErrUnknownComponent) {
		t.Errorf("err = %v, want ErrUnknownComponent", err)
	}
}

func TestModel_View(t *testing.T) {
	m := newModel(t, indicator.Options{ColorScheme: "blue", Label: "Loading"}, nil)
	out := m.View()

	for _, want := range []string{"whirl preview", components.ArcFrames[0], "size md", "scheme blue", "q: quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Loading") {
		t.Errorf("label should stay visually hidden:\n%s", out)
	}
}

func TestModel_AccessibleView(t *testing.T) {
	m := newModel(t, indicator.Options{Label: "Loading"}, nil, components.WithAccessible(true))
	if out := m.View(); !strings.Contains(out, "Loading") {
		t.Errorf("accessible view should contain label:\n%s", out)
	}
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		m := newModel(t, indicator.Options{}, nil)
		var msg tea.KeyMsg
		switch key {
		case "q":
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		updated, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("%s: expected quit cmd", key)
		}
		if updated.(Model).View() != "" {
			t.Errorf("%s: view should be empty after quit", key)
		}
	}
}

func TestModel_Reload(t *testing.T) {
	m := newModel(t, indicator.Options{}, nil)

	reg, err := theme.Parse([]byte("[colors]\n\"brand.500\" = \"#7B2FBE\"\n"), ".toml")
	if err != nil {
		t.Fatal(err)
	}
	next := theme.Default().With(theme.NewMapRegistry(reg.Components, reg.Colors))

	updated, cmd := m.Update(ReloadMsg{Registry: next})
	got := updated.(Model)
	if got.err != nil {
		t.Errorf("unexpected error %v", got.err)
	}
	if got.registry != next {
		t.Error("registry not swapped")
	}
	if cmd == nil {
		t.Error("expected restart cmd")
	}
}

func TestModel_ReloadRejected(t *testing.T) {
	m := newModel(t, indicator.Options{}, nil)
	before := m.registry

	updated, _ := m.Update(ReloadMsg{Registry: theme.NewMapRegistry(nil, nil)})
	got := updated.(Model)
	if got.err == nil {
		t.Error("expected error for registry without Spinner")
	}
	if got.registry != before {
		t.Error("registry should be kept on failed reload")
	}
	if !strings.Contains(got.View(), "unknown theme component") {
		t.Errorf("view should show error:\n%s", got.View())
	}
}

func TestModel_ReloadErrMsg(t *testing.T) {
	m := newModel(t, indicator.Options{}, nil)
	updated, _ := m.Update(ReloadErrMsg{Err: errors.New("parsing toml: boom")})
	if !strings.Contains(updated.View(), "boom") {
		t.Errorf("view should show reload error:\n%s", updated.View())
	}
}

func TestWaitForEvent(t *testing.T) {
	if waitForEvent(nil) != nil {
		t.Error("nil channel should give nil cmd")
	}

	ch := make(chan tea.Msg, 1)
	ch <- ReloadErrMsg{Err: errors.New("x")}
	if _, ok := waitForEvent(ch)().(ReloadErrMsg); !ok {
		t.Error("expected ReloadErrMsg")
	}
	close(ch)
	if msg := waitForEvent(ch)(); msg != nil {
		t.Errorf("closed channel msg = %v, want nil", msg)
	}
}

// --- Watch tests ---

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	if err := os.WriteFile(path, []byte("[colors]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := Watch(ctx, path, nopLogger())
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	content := "[colors]\n\"brand.500\" = \"#7B2FBE\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	// Truncation can surface as its own write event; wait for the full content.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case msg := <-events:
			reload, ok := msg.(ReloadMsg)
			if !ok {
				continue
			}
			if _, ok := reload.Registry.Color("brand.500"); ok {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatch_StopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")

	ctx, cancel := context.WithCancel(context.Background())
	events, err := Watch(ctx, path, nopLogger())
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	cancel()

	select {
	case _, ok := <-events:
		if ok {
			// A stray event may race the cancel; the channel must still close.
			<-events
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestModel_PanelFitsWindow(t *testing.T) {
	tests := []struct {
		width   int
		maxLine int
	}{
		{30, 30},
		{200, maxPanelWidth + panelChrome},
	}
	for _, tt := range tests {
		m := newModel(t, indicator.Options{ColorScheme: "blue"}, nil)
		updated, _ := m.Update(tea.WindowSizeMsg{Width: tt.width, Height: 20})

		for _, line := range strings.Split(updated.View(), "\n") {
			if w := lipgloss.Width(line); w > tt.maxLine {
				t.Errorf("width %d: line %q is %d cells, want <= %d", tt.width, line, w, tt.maxLine)
			}
		}
	}
}

func TestModel_PanelWidthTracksWindow(t *testing.T) {
	m := newModel(t, indicator.Options{}, nil)
	narrow, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	wide, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})

	widest := func(view string) int {
		n := 0
		for _, line := range strings.Split(view, "\n") {
			n = max(n, lipgloss.Width(line))
		}
		return n
	}
	if widest(narrow.View()) != 40 {
		t.Errorf("narrow panel = %d cells, want 40", widest(narrow.View()))
	}
	if widest(wide.View()) != maxPanelWidth+panelChrome {
		t.Errorf("wide panel = %d cells, want %d", widest(wide.View()), maxPanelWidth+panelChrome)
	}
}
