package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/pkg/library"
)

// Change is a filesystem event on a supported asset inside a category folder
type Change struct {
	Category domain.Category
	Name     string
	Op       fsnotify.Op
}

// Watcher reports asset changes in the category folders of a library.
// Bursts of events are collapsed into one flush after the debounce window.
type Watcher struct {
	library  *library.Library
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	pending []Change
	timer   *time.Timer
	closed  bool
	flushes sync.WaitGroup
}

func New(lib *library.Library, debounce time.Duration, logger *slog.Logger) *Watcher {
	return &Watcher{
		library:  lib,
		debounce: debounce,
		logger:   logger.With("component", "watcher"),
	}
}

// Run watches until ctx is cancelled, calling onFlush with the changes
// collected in each debounce window.
func (w *Watcher) Run(ctx context.Context, onFlush func([]Change)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	watched := 0
	for _, c := range domain.AllCategories() {
		dir := w.library.CategoryPath(c)
		if err := fw.Add(dir); err != nil {
			w.logger.Warn("not watching category folder", "category", c, "path", dir, "error", err)
			continue
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("no category folders to watch under %s", w.library.RootPath)
	}

	w.logger.Info("watching asset folders", "root", w.library.RootPath, "folders", watched)

	w.mu.Lock()
	w.closed = false
	w.mu.Unlock()
	defer w.stopTimer()

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			change, ok := w.toChange(event)
			if !ok {
				continue
			}
			w.enqueue(change, onFlush)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}

// toChange maps a raw event to a Change, dropping anything that is not a
// supported asset directly inside a category folder
func (w *Watcher) toChange(event fsnotify.Event) (Change, bool) {
	if !(event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)) {
		return Change{}, false
	}

	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~") {
		return Change{}, false
	}
	if !domain.IsSupportedExtension(name) {
		return Change{}, false
	}

	category, err := domain.ParseCategory(filepath.Base(filepath.Dir(event.Name)))
	if err != nil {
		return Change{}, false
	}

	return Change{Category: category, Name: name, Op: event.Op}, true
}

func (w *Watcher) enqueue(change Change, onFlush func([]Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.pending = append(w.pending, change)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		if w.closed || len(w.pending) == 0 {
			w.mu.Unlock()
			return
		}
		batch := w.pending
		w.pending = nil
		w.flushes.Add(1)
		w.mu.Unlock()

		defer w.flushes.Done()
		onFlush(batch)
	})
}

// stopTimer drops pending changes and waits for a flush already in
// progress, so onFlush never runs after Run returns
func (w *Watcher) stopTimer() {
	w.mu.Lock()
	w.closed = true
	w.pending = nil
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.flushes.Wait()
}

// OpString renders the event kind the way the CLI prints it
func OpString(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "added"
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return "removed"
	default:
		return "modified"
	}
}
