package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	lockRetryDelay = 5 * time.Millisecond
	lockWaitLimit  = 2 * time.Second
)

// lock acquires the exclusive repository lock .vex/lock and returns a
// release function. Every mutating sequence (add/commit/checkout/branch/
// reset) holds this lock for its full duration; object-store writes are
// idempotent, but index and reference mutations are not, so they must be
// serialized across processes. Release must run on every exit path.
func (r *Repo) lock() (release func(), err error) {
	lockPath := filepath.Join(r.VexDir, "lock")
	deadline := time.Now().Add(lockWaitLimit)

	for {
		f, err := os.OpenFile(lockPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			fmt.Fprintf(f, "%d\n", os.Getpid())
			return func() {
				_ = f.Close()
				_ = os.Remove(lockPath)
			}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("acquire repository lock: %w", err)
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("acquire repository lock: timeout waiting for %s", lockPath)
		}
		time.Sleep(lockRetryDelay)
	}
}
