package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitChange(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case dir := <-w.Changes():
		return dir
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change")
		return ""
	}
}

func TestWatcherReportsCreate(t *testing.T) {
	dir := t.TempDir()
	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Watch(dir))
	assert.Equal(t, dir, w.Current())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), nil, 0644))
	assert.Equal(t, dir, waitChange(t, w))
}

func TestWatcherRetargets(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Watch(second))
	assert.Equal(t, second, w.Current())

	require.NoError(t, os.Mkdir(filepath.Join(second, "sub"), 0755))
	assert.Equal(t, second, waitChange(t, w))
}

func TestWatcherCoalesces(t *testing.T) {
	dir := t.TempDir()
	w, err := New()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(dir))

	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	waitChange(t, w)
	assert.LessOrEqual(t, len(w.changes), 1)
}

func TestWatchRejectsMissingAndFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	assert.Error(t, w.Watch(filepath.Join(dir, "missing")))
	assert.Error(t, w.Watch(file))
	assert.Equal(t, "", w.Current())
}

func TestCloseClosesChanges(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	select {
	case _, ok := <-w.Changes():
		assert.False(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("changes channel not closed")
	}
}

func TestRelevant(t *testing.T) {
	assert.True(t, relevant(fsnotify.Event{Op: fsnotify.Create}))
	assert.True(t, relevant(fsnotify.Event{Op: fsnotify.Remove}))
	assert.True(t, relevant(fsnotify.Event{Op: fsnotify.Rename}))
	assert.False(t, relevant(fsnotify.Event{Op: fsnotify.Write}))
	assert.False(t, relevant(fsnotify.Event{Op: fsnotify.Chmod}))
}
