// Package watcher reruns a callback when a source directory changes.
package watcher

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DirWatcher watches a directory for changes to eligible files and
// triggers a debounced callback. Bulk copies into the corpus directory
// produce bursts of events; debouncing folds them into one rebuild.
type DirWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	debounce time.Duration
	timer    *time.Timer
	ext      string
	callback func()
}

// NewDirWatcher creates a watcher with the given debounce interval
func NewDirWatcher(debounce time.Duration) (*DirWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &DirWatcher{
		watcher:  fsw,
		debounce: debounce,
	}, nil
}

// Watch starts watching the directory. Only events on files with the
// given extension trigger the callback.
func (dw *DirWatcher) Watch(dir, ext string, callback func()) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}
	if err := dw.watcher.Add(absDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absDir, err)
	}

	dw.mu.Lock()
	dw.ext = ext
	dw.callback = callback
	dw.mu.Unlock()
	return nil
}

// Start begins dispatching events. Errors from the underlying watcher are
// reported through errFn.
func (dw *DirWatcher) Start(errFn func(error)) {
	go func() {
		for {
			select {
			case event, ok := <-dw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				dw.handleChange(event.Name)

			case err, ok := <-dw.watcher.Errors:
				if !ok {
					return
				}
				errFn(err)
			}
		}
	}()
}

// handleChange schedules the callback, resetting any pending timer
func (dw *DirWatcher) handleChange(path string) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.ext != "" && !strings.HasSuffix(path, dw.ext) {
		return
	}
	if dw.timer != nil {
		dw.timer.Stop()
	}
	dw.timer = time.AfterFunc(dw.debounce, dw.callback)
}

// Close stops the watcher
func (dw *DirWatcher) Close() error {
	return dw.watcher.Close()
}
