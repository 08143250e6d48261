package watch

import (
	"context"
	"io"
	"log/slog"
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

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\n"), 0o644))

	var calls atomic.Int32
	w, err := New(path, func(context.Context) error {
		calls.Add(1)
		return nil
	}, WithDebounce(20*time.Millisecond), quiet())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer func() { assert.NoError(t, w.Stop()) }()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\ntitle: x\n"), 0o644))
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\n"), 0o644))

	var calls atomic.Int32
	w, err := New(path, func(context.Context) error {
		calls.Add(1)
		return nil
	}, WithDebounce(10*time.Millisecond), quiet())
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, calls.Load())

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestWatcherMissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing", "docnav.yaml"), func(context.Context) error { return nil }, quiet())
	require.NoError(t, err)
	assert.Error(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
}
