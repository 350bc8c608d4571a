package repo

import (
	"fmt"

	"github.com/mkerring/vex/pkg/object"
)

// FileDiff carries the before/after text of one file across a commit. Old
// is empty for files absent from the parent (the "new file" case).
type FileDiff struct {
	Path string
	Old  string
	New  string
}

// CommitDiffs pairs each file of the commit at h with its content in the
// parent commit. Root commits diff against an empty parent, so every file
// comes back all-new.
func (r *Repo) CommitDiffs(h object.Hash) (*object.Commit, []FileDiff, error) {
	c, err := r.ReadCommit(h)
	if err != nil {
		return nil, nil, err
	}

	parentFiles := make(map[string]object.Hash)
	if parent, ok := c.ParentHash(); ok {
		pc, err := r.ReadCommit(parent)
		if err != nil {
			return nil, nil, fmt.Errorf("parent of %s: %w", h, err)
		}
		for _, fe := range effectiveFiles(pc.Files) {
			parentFiles[fe.Path] = fe.Hash
		}
	}

	var diffs []FileDiff
	for _, fe := range effectiveFiles(c.Files) {
		data, err := r.Store.Get(fe.Hash)
		if err != nil {
			return nil, nil, fmt.Errorf("blob for %q: %w", fe.Path, err)
		}

		var oldText string
		if oldHash, ok := parentFiles[fe.Path]; ok {
			oldData, err := r.Store.Get(oldHash)
			if err != nil {
				return nil, nil, fmt.Errorf("parent blob for %q: %w", fe.Path, err)
			}
			oldText = string(oldData)
		}

		diffs = append(diffs, FileDiff{Path: fe.Path, Old: oldText, New: string(data)})
	}

	return c, diffs, nil
}
