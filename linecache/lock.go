package linecache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// lockLocation takes the exclusive lock for path, polling every retry until
// ctx is done or timeout elapses. The returned func releases it.
func lockLocation(ctx context.Context, path string, timeout, retry time.Duration) (func() error, error) {
	fl := flock.New(path + lockSuffix)

	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	locked, err := fl.TryLockContext(lockCtx, retry)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s after %v", ErrLockTimeout, path, timeout)
		}
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s after %v", ErrLockTimeout, path, timeout)
	}
	return fl.Unlock, nil
}
