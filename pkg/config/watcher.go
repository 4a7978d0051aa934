package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceInterval is the quiet period required after a file
// event before a reload fires.
const DefaultDebounceInterval = 500 * time.Millisecond

// Watcher watches a configuration file and invokes a callback when it
// changes. Editors and config management tools tend to replace files
// with rename-over or write in several chunks, so the watcher observes
// the containing directory, filters to the one file, and debounces
// bursts into a single reload.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	log      *slog.Logger
	debounce *debouncer

	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher for the config file at path. A nil
// logger falls back to the process default.
func NewWatcher(path string, log *slog.Logger) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("config watcher needs a file path")
	}
	if log == nil {
		log = slog.Default().With("component", "config.watcher")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	return &Watcher{
		path:     filepath.Clean(path),
		watcher:  fw,
		log:      log,
		debounce: newDebouncer(DefaultDebounceInterval),
	}, nil
}

// Watch blocks, invoking onChange after each debounced change to the
// config file, until ctx is cancelled. onChange errors are logged and
// watching continues; the previous configuration simply stays in
// effect.
func (w *Watcher) Watch(ctx context.Context, onChange func() error) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		w.debounce.stop()
		w.watcher.Close()
	}()

	// Watch the directory: a rename-over replaces the watched inode
	// and would silently orphan a file-level watch.
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %q: %w", filepath.Dir(w.path), err)
	}

	w.log.Info("watching config file", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("config watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("config file event", "op", event.Op.String())
			w.debounce.trigger(func() {
				w.log.Info("config file changed, reloading", "path", w.path)
				if err := onChange(); err != nil {
					w.log.Error("config reload failed, keeping previous configuration", "error", err)
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Warn("config watcher error", "error", err)
		}
	}
}

// relevant filters directory events down to content changes of the one
// watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// debouncer collapses a burst of events into one callback after a
// quiet interval.
type debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

// trigger schedules fn after the quiet interval, replacing any pending
// callback.
func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// stop cancels any pending callback.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
