package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/SalimYassine/Minishell/internal/core/domain"
	"github.com/SalimYassine/Minishell/internal/core/ports"
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
)

// DefaultDebounceWindow groups the events of one save into a single reload.
const DefaultDebounceWindow = 50 * time.Millisecond

var _ ports.ConfigWatcher = (*Watcher)(nil)

// Watcher implements ports.ConfigWatcher using fsnotify.
type Watcher struct {
	loader   *Loader
	debounce time.Duration
}

// NewWatcher creates a Watcher reloading files through loader.
func NewWatcher(loader *Loader) *Watcher {
	return &Watcher{loader: loader, debounce: DefaultDebounceWindow}
}

// Watch starts watching path and returns once the watch is in place. Without a
// home directory there is nothing to watch and no error.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func(*domain.Settings, error)) error {
	if path == "" {
		path = w.loader.DefaultPath()
		if path == "" {
			return nil
		}
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigWatchFailed, path), "reason", err.Error())
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigWatchFailed, path), "reason", err.Error())
	}

	// Editors save by renaming a new file over the old one, which drops a watch
	// on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return zerr.With(zerr.Wrap(domain.ErrConfigWatchFailed, path), "reason", reason(err))
	}

	go w.processEvents(ctx, fsw, path, onChange)
	return nil
}

func (w *Watcher) processEvents(
	ctx context.Context,
	fsw *fsnotify.Watcher,
	path string,
	onChange func(*domain.Settings, error),
) {
	defer func() { _ = fsw.Close() }()

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if event.Name != path || (!event.Has(fsnotify.Write) && !event.Has(fsnotify.Create)) {
				continue
			}
			reload = time.After(w.debounce)

		case <-reload:
			reload = nil
			onChange(w.loader.Load(path))

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			onChange(nil, zerr.With(zerr.Wrap(domain.ErrConfigWatchFailed, path), "reason", err.Error()))
		}
	}
}
