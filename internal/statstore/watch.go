package statstore

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of filesystem events a single SQLite
// commit produces into one notification.
const watchDebounce = 250 * time.Millisecond

// WatchDBFile notifies onChange whenever another process writes the SQLite
// store file. This is the advisory storage-change signal the reporting view
// uses to re-poll; it carries no payload and a missed event only delays the
// next refresh. The returned stop function is safe to call once.
func WatchDBFile(dbPath string, onChange func()) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create store watcher: %w", err)
	}

	// Watch the directory; SQLite replaces journal/WAL files beside the DB,
	// and watching the file directly misses those renames.
	dir := filepath.Dir(dbPath)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	base := filepath.Base(dbPath)
	done := make(chan struct{})

	go func() {
		var debounce *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				name := filepath.Base(event.Name)
				if name != base && name != base+"-wal" && name != base+"-journal" {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(watchDebounce, onChange)
			case <-watcher.Errors:
				// Watcher errors are advisory; the caller still polls on demand.
			case <-done:
				if debounce != nil {
					debounce.Stop()
				}
				return
			}
		}
	}()

	return func() {
		close(done)
		_ = watcher.Close()
	}, nil
}
