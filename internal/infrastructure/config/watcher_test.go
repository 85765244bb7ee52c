package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const changeTimeout = 5 * time.Second

func waitChange(t *testing.T, w *Watcher) {
	t.Helper()
	select {
	case <-w.Changes():
	case <-time.After(changeTimeout):
		t.Fatal("no change reported")
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	require.NoError(t, Write(DefaultDocument(), path))

	w, err := NewWatcher(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, w.Path())

	// Write replaces the file through a rename.
	require.NoError(t, Write(&Document{}, path))
	waitChange(t, w)
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.yaml")
	require.NoError(t, Write(DefaultDocument(), path))

	w, err := NewWatcher(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600))

	select {
	case <-w.Changes():
		t.Fatal("sibling write reported as a change")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_CloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")

	w, err := NewWatcher(context.Background(), path)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(context.Background(), filepath.Join(t.TempDir(), "missing", "bindings.yaml"))
	require.Error(t, err)
}
