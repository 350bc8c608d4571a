package repo

import (
	"errors"
	"fmt"
	"time"

	"github.com/mkerring/vex/pkg/object"
)

// Commit builds a commit record from the staging index and current HEAD,
// persists it, advances HEAD, and clears the index. An empty index is
// valid and produces a commit with an empty file list.
func (r *Repo) Commit(message string) (object.Hash, error) {
	release, err := r.lock()
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	defer release()

	idx, err := r.ReadIndex()
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	c := &object.Commit{
		TimeStamp: time.Now().UTC(),
		Message:   message,
		Files:     idx.Entries,
	}
	if head != "" {
		parent := head
		c.Parent = &parent
	}

	data, err := object.MarshalCommit(c)
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	h, err := r.Store.Put(data)
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	if err := r.SetHead(h); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	if err := r.ClearIndex(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	return h, nil
}

// ReadCommit retrieves and parses the commit stored under h.
func (r *Repo) ReadCommit(h object.Hash) (*object.Commit, error) {
	data, err := r.Store.Get(h)
	if err != nil {
		return nil, err
	}
	return object.UnmarshalCommit(data)
}

// LogEntry pairs a commit with its hash during a history walk.
type LogEntry struct {
	Hash   object.Hash
	Commit *object.Commit
}

// Log walks the commit history from start, following parent links, and
// returns the commits newest to oldest. A missing intermediate object ends
// the walk silently: it is treated as end-of-history, not an error.
func (r *Repo) Log(start object.Hash) ([]LogEntry, error) {
	var entries []LogEntry
	current := start

	for current != "" {
		c, err := r.ReadCommit(current)
		if err != nil {
			if errors.Is(err, object.ErrNotFound) {
				break
			}
			return nil, fmt.Errorf("log: %w", err)
		}
		entries = append(entries, LogEntry{Hash: current, Commit: c})

		parent, ok := c.ParentHash()
		if !ok {
			break
		}
		current = parent
	}

	return entries, nil
}
