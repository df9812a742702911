package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

// optionsWatcher reports changes to a single options file.
// The parent directory is watched rather than the file itself because many
// editors save by renaming a temporary file over the existing one.
type optionsWatcher struct {
	path    string
	watcher *fsnotify.Watcher
}

func newOptionsWatcher(path string) (*optionsWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &optionsWatcher{path: abs, watcher: watcher}, nil
}

func (w *optionsWatcher) Close() error {
	return w.watcher.Close()
}

// Run calls onChange after each burst of writes to the watched file, until
// ctx is done. onChange always runs on the caller's goroutine.
func (w *optionsWatcher) Run(ctx context.Context, onChange func()) error {
	var debounceTimer *time.Timer
	fire := make(chan struct{}, 1)

	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			// Debounce: reset timer on each event
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("file watcher error")
		}
	}
}
