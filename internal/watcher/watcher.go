// Package watcher provides debounced recursive directory watching for
// watch mode. It reports "the tree settled after relevant changes", not
// individual events: editors save in bursts and a rescan per event
// would thrash.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tidydocs/mdprune-cli/internal/logger"
)

// DefaultDebounce is how long the tree must stay quiet before a settle
// callback fires.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a directory tree for changes to relevant files.
type Watcher struct {
	root     string
	relevant func(path string) bool
	onSettle func()
	debounce time.Duration
}

// New creates a watcher over root. relevant filters paths worth
// reacting to; onSettle runs after the tree has been quiet for the
// debounce interval following at least one relevant change.
func New(root string, relevant func(path string) bool, onSettle func()) *Watcher {
	return &Watcher{
		root:     root,
		relevant: relevant,
		onSettle: onSettle,
		debounce: DefaultDebounce,
	}
}

// WithDebounce sets the debounce duration.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Watch blocks until the context is cancelled or the watch fails.
// New subdirectories are added to the watch as they appear.
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := addTree(fsw, w.root); err != nil {
		return err
	}

	logger.Info("watching %s", w.root)

	var mu sync.Mutex
	var timer *time.Timer
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			// New directories join the watch immediately so files
			// created inside them are not missed.
			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Lstat(event.Name); statErr == nil && info.IsDir() {
					if addErr := addTree(fsw, event.Name); addErr != nil {
						logger.Warn("watching new directory %s: %v", event.Name, addErr)
					}
				}
			}

			if !w.relevant(event.Name) {
				continue
			}

			logger.Debug("change: %s (%s)", event.Name, event.Op)

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.onSettle)
			mu.Unlock()

		case watchErr, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", watchErr)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// addTree registers dir and every subdirectory with the watcher,
// skipping symlinked directories and unreadable branches.
func addTree(fsw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			logger.Warn("skipping watch on %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if addErr := fsw.Add(path); addErr != nil {
			logger.Warn("skipping watch on %s: %v", path, addErr)
			return filepath.SkipDir
		}
		return nil
	})
}
