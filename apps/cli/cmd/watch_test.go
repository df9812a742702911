package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOptionsWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".pwconfig.yaml")
	require.NoError(t, os.WriteFile(path, []byte("isCi: false\n"), 0644))

	w, err := newOptionsWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { changed <- struct{}{} })
	}()

	// Unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "playwright.config.json"), []byte("{}"), 0644))

	// A burst of writes collapses into one change
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("isCi: true\n"), 0644))
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change notification")
	}

	select {
	case <-changed:
		t.Fatal("expected writes to be debounced into one notification")
	case <-time.After(2 * WatchDebounceDelay):
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestOptionsWatcherMissingDirectory(t *testing.T) {
	_, err := newOptionsWatcher(filepath.Join(t.TempDir(), "missing", ".pwconfig.yaml"))
	require.Error(t, err)
}
