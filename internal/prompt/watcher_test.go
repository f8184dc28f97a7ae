package prompt

import (
	"context"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcher_ReloadsOnFileChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	r := NewRegistry(dir)
	require.NoError(t, r.Reload())

	w, err := NewWatcher(r)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	assert.True(t, w.IsWatching())

	writeProfile(t, dir, "wave.yaml", `
templates:
  - "{water}"
pools:
  water:
    - rolling surf
`)

	require.Eventually(t, func() bool {
		_, err := r.Get("wave")
		return err == nil
	}, 5*time.Second, 50*time.Millisecond, "registry never picked up the new profile")

	stats := w.Stats()
	assert.GreaterOrEqual(t, stats.Events, 1)
	assert.GreaterOrEqual(t, stats.Reloads, 1)

	w.Stop()
	assert.False(t, w.IsWatching())

	// A second Stop is a no-op.
	w.Stop()
}

func TestWatcher_StartTwice(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRegistry(t.TempDir())
	w, err := NewWatcher(r)
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Start(context.Background()))
	assert.True(t, w.IsWatching())
	w.Stop()
}

func newBareWatcher(r *Registry) *Watcher {
	return &Watcher{
		registry:    r,
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond,
	}
}

func TestWatcher_HandleEventFilters(t *testing.T) {
	w := newBareWatcher(NewRegistry(t.TempDir()))

	tests := []struct {
		name       string
		event      fsnotify.Event
		wantEvents int
	}{
		{"profile write counts", fsnotify.Event{Name: "a.json", Op: fsnotify.Write}, 1},
		{"profile create counts", fsnotify.Event{Name: "b.yaml", Op: fsnotify.Create}, 2},
		{"profile remove counts", fsnotify.Event{Name: "a.json", Op: fsnotify.Remove}, 3},
		{"non-profile ignored", fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}, 3},
		{"hidden file ignored", fsnotify.Event{Name: ".swap.json", Op: fsnotify.Write}, 3},
		{"chmod ignored", fsnotify.Event{Name: "a.json", Op: fsnotify.Chmod}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w.handleEvent(tt.event)
			assert.Equal(t, tt.wantEvents, w.Stats().Events)
		})
	}
}

func TestWatcher_ProcessDebounced(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "harbor.json", harborJSON)

	r := NewRegistry(dir)
	w := newBareWatcher(r)

	// An event still inside the debounce window does not trigger a reload.
	w.debounceMap["harbor.json"] = time.Now()
	w.processDebounced()
	assert.Equal(t, 0, w.Stats().Reloads)

	// Once settled, the batch reloads exactly once.
	w.debounceMap["harbor.json"] = time.Now().Add(-time.Second)
	w.processDebounced()
	assert.Equal(t, 1, w.Stats().Reloads)
	assert.Empty(t, w.debounceMap)

	_, err := r.Get("harbor")
	assert.NoError(t, err)
}
