package repo

import (
	"fmt"
)

// Checkout moves HEAD to the resolved target and restores its file set
// onto the working directory and index. The target may be a branch name
// (resolving to its frozen snapshot hash) or a literal commit hash.
func (r *Repo) Checkout(target string) error {
	release, err := r.lock()
	if err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	defer release()

	h, err := r.ResolveTarget(target)
	if err != nil {
		return fmt.Errorf("checkout: %w", err)
	}

	c, err := r.ReadCommit(h)
	if err != nil {
		return fmt.Errorf("checkout %q: %w", target, err)
	}

	if err := r.SetHead(h); err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	if err := r.restoreWorkingTree(c); err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	if err := r.WriteIndex(&Index{Entries: c.Files}); err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	return nil
}
