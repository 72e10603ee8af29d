// Package watch re-runs a callback whenever a source file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange once at start and again after every burst of
// writes to file, once the file has been quiet for debounce. It blocks
// until ctx is done. The directory is watched instead of the file so
// editors that replace the file on save keep being followed.
func Watch(ctx context.Context, file string, debounce time.Duration, log *slog.Logger, onChange func()) error {
	file, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", file, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(file)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}
	log.Info("watching", "file", file)

	onChange()

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("stopped watching", "file", file)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != file {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug("source changed", "file", file, "op", event.Op.String())
			timer.Reset(debounce)

		case <-timer.C:
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", "error", err)
		}
	}
}
