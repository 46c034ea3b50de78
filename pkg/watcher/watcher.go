// Package watcher reloads the structure set when the source mesh files
// change on disk, so segmentation pipelines can re-export structures
// while the workstation is running.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// MeshWatcher watches a set of mesh files and reports changes through a
// single callback. Change bursts (editors writing in several steps) are
// coalesced with a debounce interval; the reload itself is applied by
// the caller on its own thread.
type MeshWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	watched  map[string]bool
	onChange func(path string)
	debounce time.Duration
	timers   map[string]*time.Timer
}

// NewMeshWatcher creates a watcher. onChange is invoked (from a watcher
// goroutine) once per settled change of a watched file.
func NewMeshWatcher(debounce time.Duration, onChange func(path string)) (*MeshWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &MeshWatcher{
		watcher:  watcher,
		watched:  make(map[string]bool),
		onChange: onChange,
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Watch adds mesh files to the watch set
func (mw *MeshWatcher) Watch(files []string) error {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if err := mw.watcher.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		mw.watched[absPath] = true
	}
	return nil
}

// Start begins delivering change events until Close is called
func (mw *MeshWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-mw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					mw.handleChange(event.Name)
				}

			case err, ok := <-mw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

func (mw *MeshWatcher) handleChange(path string) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	if !mw.watched[path] {
		return
	}
	if timer, exists := mw.timers[path]; exists {
		timer.Stop()
	}
	mw.timers[path] = time.AfterFunc(mw.debounce, func() {
		mw.onChange(path)
	})
}

// Close stops the watcher
func (mw *MeshWatcher) Close() error {
	return mw.watcher.Close()
}
