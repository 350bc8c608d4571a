package repo

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mkerring/vex/pkg/object"
)

// Status reconciles the three views of file state: the last commit, the
// staging index, and the working directory.
type Status struct {
	ToCommit  []object.FileEntry // staged entries not captured by the last commit
	NotStaged []string           // tracked files whose working copy differs from the committed blob
}

// Clean reports whether nothing is pending in either direction.
func (s *Status) Clean() bool {
	return len(s.ToCommit) == 0 && len(s.NotStaged) == 0
}

// ComputeStatus compares (a) the staging index against the last commit's
// file set — entries whose hash is absent from the commit are pending
// commit — and (b) the last commit's files against live working-directory
// content, byte for byte, with no normalization. A repository with no
// commits yet compares against an empty file set.
func (r *Repo) ComputeStatus() (*Status, error) {
	idx, err := r.ReadIndex()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	head, err := r.Head()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	var committed []object.FileEntry
	if head != "" {
		c, err := r.ReadCommit(head)
		if err != nil {
			return nil, fmt.Errorf("status: %w", err)
		}
		committed = c.Files
	}

	committedHashes := make(map[object.Hash]bool, len(committed))
	for _, fe := range committed {
		committedHashes[fe.Hash] = true
	}

	st := &Status{}

	for _, fe := range idx.Entries {
		if !committedHashes[fe.Hash] {
			st.ToCommit = append(st.ToCommit, fe)
		}
	}

	// With duplicate paths in a commit's file list, the last entry is the
	// effective version; compare the working copy against that one.
	for _, fe := range effectiveFiles(committed) {
		blob, err := r.Store.Get(fe.Hash)
		if err != nil {
			return nil, fmt.Errorf("status: blob for %q: %w", fe.Path, err)
		}
		onDisk, err := os.ReadFile(r.workPath(fe.Path))
		if err != nil {
			return nil, fmt.Errorf("status: read %q: %w", fe.Path, err)
		}

		if !bytes.Equal(onDisk, blob) {
			st.NotStaged = append(st.NotStaged, fe.Path)
		}
	}

	return st, nil
}

// effectiveFiles collapses a commit's ordered file list to one entry per
// path, keeping the last occurrence and the order of first appearance.
func effectiveFiles(files []object.FileEntry) []object.FileEntry {
	latest := make(map[string]object.Hash, len(files))
	var order []string
	for _, fe := range files {
		if _, seen := latest[fe.Path]; !seen {
			order = append(order, fe.Path)
		}
		latest[fe.Path] = fe.Hash
	}

	out := make([]object.FileEntry, 0, len(order))
	for _, p := range order {
		out = append(out, object.FileEntry{Path: p, Hash: latest[p]})
	}
	return out
}
