package fs_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/rfcdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLock(t *testing.T) {
	t.Parallel()

	t.Run("lock file lives beside the directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		lock := fs.NewLock(filepath.Join(base, "rfc"))

		assert.Equal(t, filepath.Join(base, ".rfc.lock"), lock.Path())
	})

	t.Run("acquires and releases", func(t *testing.T) {
		t.Parallel()

		lock := fs.NewLock(filepath.Join(t.TempDir(), "rfc"))

		require.NoError(t, lock.Lock(context.Background()))
		require.NoError(t, lock.Unlock())
		require.NoError(t, lock.Unlock(), "second unlock is a no-op")
	})

	t.Run("second holder waits until context ends", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "rfc")
		first := fs.NewLock(dir)
		require.NoError(t, first.Lock(context.Background()))
		defer first.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()

		second := fs.NewLock(dir)
		err := second.Lock(ctx)

		require.Error(t, err)
	})
}
