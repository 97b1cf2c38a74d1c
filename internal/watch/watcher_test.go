package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func start(t *testing.T, w *Watcher) (stop func() error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	// Give fsnotify time to register the directories.
	time.Sleep(100 * time.Millisecond)
	return func() error {
		cancel()
		return <-done
	}
}

func TestDebouncedRebuild(t *testing.T) {
	dir := t.TempDir()
	var runs atomic.Int32
	w := New([]string{dir}, func(context.Context) error {
		runs.Add(1)
		return nil
	}, WithDebounce(150*time.Millisecond))
	stop := start(t, w)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "apex-nc.json"), []byte(`{}`), 0o644))
		time.Sleep(10 * time.Millisecond)
	}
	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 20*time.Millisecond)

	// Quiet period: no further runs.
	time.Sleep(300 * time.Millisecond)
	assert.EqualValues(t, 1, runs.Load())

	require.NoError(t, stop())
	assert.GreaterOrEqual(t, w.Stats().Events, 1)
}

func TestIgnoresNonPackFiles(t *testing.T) {
	dir := t.TempDir()
	var runs atomic.Int32
	w := New([]string{dir}, func(context.Context) error {
		runs.Add(1)
		return nil
	}, WithDebounce(50*time.Millisecond))
	stop := start(t, w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, runs.Load())
	require.NoError(t, stop())
}

func TestFailuresKeepWatching(t *testing.T) {
	dir := t.TempDir()
	w := New([]string{dir}, func(context.Context) error {
		return errors.New("bad pack")
	}, WithDebounce(50*time.Millisecond))
	stop := start(t, w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{`), 0o644))
	require.Eventually(t, func() bool { return w.Stats().Failures == 1 }, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`{`), 0o644))
	require.Eventually(t, func() bool { return w.Stats().Failures == 2 }, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, stop())
	assert.Equal(t, "bad pack", w.Stats().LastError)
}

func TestNoDirectories(t *testing.T) {
	w := New([]string{filepath.Join(t.TempDir(), "missing")}, func(context.Context) error { return nil })
	err := w.Run(context.Background())
	require.Error(t, err)
}
