package config

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestNewWatcherRequiresPath(t *testing.T) {
	if _, err := NewWatcher("", nil); err == nil {
		t.Error("NewWatcher(\"\") should return an error")
	}
}

func TestWatcherRelevant(t *testing.T) {
	w := &Watcher{path: filepath.Clean("/etc/logsweep/config.yaml")}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{
			name:  "write to watched file",
			event: fsnotify.Event{Name: "/etc/logsweep/config.yaml", Op: fsnotify.Write},
			want:  true,
		},
		{
			name:  "create of watched file",
			event: fsnotify.Event{Name: "/etc/logsweep/config.yaml", Op: fsnotify.Create},
			want:  true,
		},
		{
			name:  "chmod of watched file",
			event: fsnotify.Event{Name: "/etc/logsweep/config.yaml", Op: fsnotify.Chmod},
			want:  false,
		},
		{
			name:  "write to sibling file",
			event: fsnotify.Event{Name: "/etc/logsweep/other.yaml", Op: fsnotify.Write},
			want:  false,
		},
		{
			name:  "unclean path to watched file",
			event: fsnotify.Event{Name: "/etc/logsweep/./config.yaml", Op: fsnotify.Write},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.relevant(tt.event); got != tt.want {
				t.Errorf("relevant(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestDebouncerCollapsesBurst(t *testing.T) {
	d := newDebouncer(50 * time.Millisecond)
	defer d.stop()

	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.trigger(func() { calls.Add(1) })
	}

	time.Sleep(200 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("burst of 5 triggers fired %d callbacks, want 1", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := newDebouncer(50 * time.Millisecond)

	var calls atomic.Int32
	d.trigger(func() { calls.Add(1) })
	d.stop()

	time.Sleep(150 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Errorf("stopped debouncer fired %d callbacks, want 0", got)
	}
}

func TestWatcherFiresOnFileChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logsweep.yaml")
	if err := os.WriteFile(path, []byte("source:\n  root: .\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func() error {
			select {
			case changed <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	// Give the watcher a moment to register before mutating the file.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("source:\n  root: /tmp\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not observed within 5s")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() returned error after cancel: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch() did not return after context cancel")
	}
}
