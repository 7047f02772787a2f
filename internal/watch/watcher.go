// Package watch reports changes to the directory currently on screen.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/LFroesch/cdnav/internal/logger"
)

// Watcher follows a single directory at a time. Bursts of events collapse
// into one pending notification.
type Watcher struct {
	fsWatcher *fsnotify.Watcher

	mutex   sync.Mutex
	current string

	// one-slot channel; a pending change absorbs later ones
	changes chan string
	done    chan struct{}
	once    sync.Once
}

// New creates a watcher and starts its event loop.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		changes:   make(chan string, 1),
		done:      make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Watch retargets the watcher to dir. Watching the same dir again is a no-op.
func (w *Watcher) Watch(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.current == dir {
		return nil
	}
	if w.current != "" {
		// the old directory may already be gone
		_ = w.fsWatcher.Remove(w.current)
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		w.current = ""
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.current = dir
	logger.Debug("Watching directory %s", dir)
	return nil
}

// Current returns the watched directory, or "" if none.
func (w *Watcher) Current() string {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.current
}

// Changes delivers the watched directory each time its listing may differ.
// The channel is closed by Close.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops the event loop and releases the fsnotify handle.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.changes)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			dir := w.Current()
			if dir == "" || filepath.Dir(event.Name) != dir {
				continue
			}
			select {
			case w.changes <- dir:
			default:
				// already pending
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// relevant keeps events that can change the set of names in a listing.
func relevant(event fsnotify.Event) bool {
	return event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Remove) ||
		event.Op.Has(fsnotify.Rename)
}
