package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkerring/vex/pkg/object"
)

// ResetMode selects how much repository state Reset rewrites.
type ResetMode int

const (
	ResetSoft ResetMode = iota // move HEAD only
	ResetHard                  // move HEAD, restore working tree, replace index
)

// Reset repositions HEAD at target. Soft mode leaves the working directory
// and index untouched. Hard mode additionally overwrites every file listed
// in the commit onto the working directory (destructive, no rollback on
// partial failure) and replaces the index with the commit's file list.
// A target that does not name a stored commit fails with ErrNotFound.
func (r *Repo) Reset(target object.Hash, mode ResetMode) error {
	release, err := r.lock()
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	defer release()

	c, err := r.ReadCommit(target)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	if err := r.SetHead(target); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	if mode == ResetSoft {
		return nil
	}

	if err := r.restoreWorkingTree(c); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	if err := r.WriteIndex(&Index{Entries: c.Files}); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

// restoreWorkingTree overwrites the working copy of every file listed in
// the commit with its stored blob content.
func (r *Repo) restoreWorkingTree(c *object.Commit) error {
	for _, fe := range effectiveFiles(c.Files) {
		data, err := r.Store.Get(fe.Hash)
		if err != nil {
			return fmt.Errorf("blob for %q: %w", fe.Path, err)
		}

		dest := r.workPath(fe.Path)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("mkdir for %q: %w", fe.Path, err)
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("write %q: %w", fe.Path, err)
		}
	}
	return nil
}
