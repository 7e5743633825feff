package preview

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/druarnfield/whirl/internal/theme"
	"github.com/fsnotify/fsnotify"
)

// ReloadMsg carries a freshly loaded theme registry.
type ReloadMsg struct {
	Registry *theme.MapRegistry
}

// ReloadErrMsg reports a theme file that failed to load.
type ReloadErrMsg struct {
	Err error
}

// Watch reloads the theme at path whenever it changes and delivers the result
// on the returned channel until ctx is done. The parent directory is watched
// so editors that replace the file on save are still seen.
func Watch(ctx context.Context, path string, logger *slog.Logger) (<-chan tea.Msg, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan tea.Msg, 1)
	go func() {
		defer close(out)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				logger.Debug("theme file changed", "path", abs, "op", ev.Op.String())

				var msg tea.Msg
				if reg, err := theme.LoadFile(abs); err != nil {
					msg = ReloadErrMsg{Err: err}
				} else {
					msg = ReloadMsg{Registry: reg}
				}
				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("theme watcher error", "error", err)
			}
		}
	}()

	return out, nil
}
