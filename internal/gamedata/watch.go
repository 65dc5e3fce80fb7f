package gamedata

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchTuning watches a tuning override file and sends a freshly validated
// Tuning (base plus the file) on the returned channel every time the file is
// written or re-created. Invalid files are logged and skipped. The channel is
// closed when ctx is done.
//
// The directory is watched rather than the file so editors that replace the
// file on save are still picked up.
func WatchTuning(ctx context.Context, path string, base Tuning) (<-chan Tuning, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create tuning watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	target := filepath.Clean(path)
	updates := make(chan Tuning, 1)

	go func() {
		defer close(updates)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&fsnotify.Write == 0 && event.Op&fsnotify.Create == 0 {
					continue
				}
				t, err := LoadTuningFile(path, base)
				if err != nil {
					log.Printf("tuning reload skipped: %v", err)
					continue
				}
				// Keep only the newest update pending.
				select {
				case <-updates:
				default:
				}
				updates <- t
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("tuning watcher error: %v", err)
			}
		}
	}()

	return updates, nil
}
