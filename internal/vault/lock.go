package vault

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the vault lock.
var ErrLocked = errors.New("vault is locked by another msbee process")

// LockFile is created at the vault root while notes are being rewritten.
const LockFile = ".msbee.lock"

const (
	lockTimeout = 5 * time.Second
	lockRetry   = 100 * time.Millisecond
)

// Lock takes the exclusive vault lock, waiting up to five seconds or until
// ctx is done. The returned function releases it.
func Lock(ctx context.Context, root string) (func() error, error) {
	fl := flock.New(filepath.Join(root, LockFile))

	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, lockRetry)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("acquiring vault lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	return fl.Unlock, nil
}
