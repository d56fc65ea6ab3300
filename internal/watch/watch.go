// Package watch turns changes to the board database on disk into refresh
// events, so a board sees writes made by other processes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/thenoetrevino/paso-board/internal/events"
)

// DefaultDebounce collapses bursts of writes (a transaction touches both the
// database and its WAL) into one event
const DefaultDebounce = 100 * time.Millisecond

// publishRetries bounds retries when the broker queue is full
const publishRetries = 3

// Database watches the directory holding path and publishes a data-changed
// event for view after writes to the database or its -wal and -shm files.
// It blocks until ctx ends.
func Database(ctx context.Context, path, view string, pub events.EventPublisher, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir, base := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	slog.Debug("watching database", "path", path, "view", view)

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !strings.HasPrefix(filepath.Base(event.Name), base) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := event.Name
			debounceTimer = time.AfterFunc(debounce, func() {
				slog.Debug("database changed", "file", name)
				_ = events.PublishWithRetry(pub, events.Event{Type: events.EventDataChanged, View: view}, publishRetries)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher error", "error", err)
		}
	}
}
