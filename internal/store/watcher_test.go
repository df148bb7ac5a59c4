package store

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("Skipping: fsnotify Windows goroutines cause goleak failures")
	}
}

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("assets: []\n"), 0644))

	const debounce = 100 * time.Millisecond
	w, err := NewWatcher(path, debounce)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	// Several rapid writes collapse into one notification.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("assets: []\n"), 0644))
	}

	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification")
	}

	select {
	case <-w.Changes():
		t.Fatal("rapid writes produced more than one notification")
	case <-time.After(5 * debounce):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("assets: []\n"), 0644))

	w, err := NewWatcher(path, 10*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644))

	select {
	case <-w.Changes():
		t.Fatal("unexpected notification for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("assets: []\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	w, err := NewWatcher(path, 10*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))
	require.NoError(t, w.Start(ctx), "second Start is a no-op")

	cancel()
	w.Stop()
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(filepath.Join(t.TempDir(), "seed.yaml"), time.Millisecond)
	require.NoError(t, err)
	w.Stop()
}
