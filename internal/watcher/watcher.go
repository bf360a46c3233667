// Package watcher monitors a directory and hands new files to a handler.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler processes one newly created file.
type Handler func(ctx context.Context, path string) error

// Watcher watches a single directory for Create events. Files are processed
// one at a time, in arrival order; there is never more than one outstanding
// handler call.
type Watcher struct {
	dir     string
	handler Handler
	match   func(path string) bool
	fsw     *fsnotify.Watcher

	// settleDelay gives the writer time to finish before the file is read.
	settleDelay time.Duration
}

// New creates a Watcher for dir. Only files for which match returns true are
// handed to the handler.
func New(dir string, match func(string) bool, handler Handler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &Watcher{
		dir:         dir,
		handler:     handler,
		match:       match,
		fsw:         fsw,
		settleDelay: 500 * time.Millisecond,
	}, nil
}

// Start blocks, dispatching events until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	slog.Info("watching for new files", "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !w.match(event.Name) {
				slog.Debug("ignoring file", "path", event.Name)
				continue
			}

			slog.Info("new file detected", "path", event.Name)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(w.settleDelay):
			}

			if err := w.handler(ctx, event.Name); err != nil {
				slog.Error("processing failed", "path", event.Name, "error", err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			slog.Error("watcher error", "error", err)
		}
	}
}

// Stop closes the underlying fsnotify watcher.
func (w *Watcher) Stop() error {
	return w.fsw.Close()
}
