package tui

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/meridian-labs/rolo-cli/internal/logger"
)

// StoreWatcher watches the contact store file and reports changes.
// The store writes atomically via rename, so the watcher listens on the
// parent directory and filters events for the store file itself.
type StoreWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	changes chan struct{}
	done    chan struct{}
}

// NewStoreWatcher starts watching the store file at path.
func NewStoreWatcher(path string) (*StoreWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close() //nolint:errcheck
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &StoreWatcher{
		watcher: fsw,
		path:    filepath.Clean(path),
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes returns a channel that receives a signal whenever the store
// file is written, created, or renamed into place.
func (w *StoreWatcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *StoreWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *StoreWatcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				close(w.changes)
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Coalesce bursts: drop the signal if one is already pending.
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				close(w.changes)
				return
			}
			logger.Warn("store watcher: %v", err)
		}
	}
}
