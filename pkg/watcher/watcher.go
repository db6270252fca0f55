package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DirWatcher watches directories for added, removed or renamed files and
// triggers a debounced callback per directory
type DirWatcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	filter    func(string) bool
	debounce  time.Duration
	timers    map[string]*time.Timer
}

// NewDirWatcher creates a new directory watcher. Only events for paths
// accepted by filter are reported; a nil filter accepts everything.
func NewDirWatcher(debounce time.Duration, filter func(string) bool) (*DirWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &DirWatcher{
		watcher:   watcher,
		callbacks: make(map[string]func(string)),
		filter:    filter,
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch starts watching dir. callback receives the directory path once the
// burst of changes has settled.
func (dw *DirWatcher) Watch(dir string, callback func(string)) error {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}

	if err := dw.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	dw.callbacks[absPath] = callback
	return nil
}

// Start begins watching for changes
func (dw *DirWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-dw.watcher.Events:
				if !ok {
					return
				}

				// Content edits do not change the listing
				if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if dw.filter != nil && !dw.filter(event.Name) {
					continue
				}
				dw.handleChange(filepath.Dir(event.Name))

			case err, ok := <-dw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

// handleChange handles a directory change event with debouncing
func (dw *DirWatcher) handleChange(dir string) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	callback, exists := dw.callbacks[dir]
	if !exists {
		return
	}

	// Cancel existing timer if any
	if timer, exists := dw.timers[dir]; exists {
		timer.Stop()
	}

	dw.timers[dir] = time.AfterFunc(dw.debounce, func() {
		callback(dir)
	})
}

// Close stops the watcher
func (dw *DirWatcher) Close() error {
	dw.RemoveAll()
	return dw.watcher.Close()
}

// RemoveAll stops watching every directory
func (dw *DirWatcher) RemoveAll() error {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	for _, timer := range dw.timers {
		timer.Stop()
	}

	var firstErr error
	for dir := range dw.callbacks {
		if err := dw.watcher.Remove(dir); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	dw.callbacks = make(map[string]func(string))
	dw.timers = make(map[string]*time.Timer)
	return firstErr
}
