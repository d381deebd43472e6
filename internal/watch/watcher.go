// Package watch notifies the browser when the transcript storage root
// changes, so new sessions appear without waiting for the next timer tick.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kyupid/claude-sessions/internal/tuilog"
)

// debounceDuration coalesces the burst of write events an appending
// transcript produces into a single refresh trigger.
const debounceDuration = 500 * time.Millisecond

// Watcher monitors a storage root recursively and emits one event per
// debounced batch of transcript changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	events  chan struct{}
	done    chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher over root and starts its event loop. The root tree
// is watched recursively; directories created later are picked up as they
// appear.
func New(root string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	w.addRecursive(root)
	go w.loop()
	return w, nil
}

// Events returns the change channel. Receives are coalesced: one value per
// debounced batch, and at most one pending at a time.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

// addRecursive walks a directory tree and adds all directories to the
// watcher. Inaccessible directories are skipped.
func (w *Watcher) addRecursive(root string) {
	filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			tuilog.Log.Warn("failed to watch directory", "dir", path, "error", err)
		}
		return nil
	})
	tuilog.Log.Debug("watching directory tree", "root", root)
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// A new project directory needs its own watch.
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.addRecursive(event.Name)
					continue
				}
			}

			if !strings.HasSuffix(event.Name, ".jsonl") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			tuilog.Log.Error("watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// schedule (re)arms the debounce timer; when it fires, one event is posted
// unless a previous one is still unconsumed.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDuration, func() {
		select {
		case w.events <- struct{}{}:
		case <-w.done:
		default: // an unconsumed event already covers this batch
		}
	})
}
