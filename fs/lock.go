package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/rfcdoc"
	"github.com/gofrs/flock"
)

// Ensure Lock implements rfcdoc.Locker at compile time.
var _ rfcdoc.Locker = (*Lock)(nil)

// lockRetryDelay is how often Lock polls a lock held by another process.
const lockRetryDelay = 100 * time.Millisecond

// Lock is a cross-process lock guarding a storage directory. The lock file
// lives beside the directory, at <parent>/.<name>.lock, so it survives the
// directory being replaced.
type Lock struct {
	path   string
	flock  *flock.Flock
	locked bool
}

// NewLock creates a lock for dir.
func NewLock(dir string) *Lock {
	dir = filepath.Clean(dir)
	path := filepath.Join(filepath.Dir(dir), "."+filepath.Base(dir)+".lock")
	return &Lock{
		path:  path,
		flock: flock.New(path),
	}
}

// Lock blocks until the lock is acquired or ctx is done.
func (l *Lock) Lock(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	acquired, err := l.flock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		return fmt.Errorf("failed to acquire lock %s", l.path)
	}

	l.locked = true
	return nil
}

// Unlock releases the lock. Calling Unlock on an unlocked Lock is a no-op.
func (l *Lock) Unlock() error {
	if !l.locked {
		return nil
	}
	l.locked = false
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}
