package store

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reports external changes to the notes file so the model can reload.
// Events are debounced: an editor writing the file in several syscalls, or
// our own write-through, produces a single notification. The channel closes
// when the watcher shuts down.
func Watch(path string) (<-chan struct{}, func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	// Watch the directory, not the file: editors replace files via rename,
	// which drops a watch on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, nil, err
	}

	events := make(chan struct{}, 1)
	base := filepath.Base(path)

	var mu sync.Mutex
	var closed bool
	var debounce *time.Timer
	const debounceDelay = 200 * time.Millisecond

	go func() {
		defer func() {
			mu.Lock()
			closed = true
			if debounce != nil {
				debounce.Stop()
			}
			mu.Unlock()
			close(events)
		}()

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}

				mu.Lock()
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, func() {
					mu.Lock()
					defer mu.Unlock()
					if closed {
						return
					}
					select {
					case events <- struct{}{}:
					default:
					}
				})
				mu.Unlock()

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return events, func() { watcher.Close() }, nil
}
