package repo

import (
	"errors"
	"fmt"

	"github.com/mkerring/vex/pkg/object"
)

// mergeBaseStepLimit bounds the ancestor walk against cyclic or absurdly
// deep graphs.
const mergeBaseStepLimit = 1_000_000

// MergeBase finds the nearest commit reachable from both a and b via
// parent links.
//
// Algorithm: a two-set breadth-first walk. The two frontiers expand in
// alternation, one commit per step; each visited hash is recorded in its
// side's set, and the first hash found in the opposite side's set is the
// answer. When several common ancestors sit at the same distance, the tie
// goes to the side that discovers the shared hash first (a's side moves
// first). A missing commit object ends that frontier quietly.
//
// An empty result with no error means the two histories share no commit.
func (r *Repo) MergeBase(a, b object.Hash) (object.Hash, error) {
	if a == "" || b == "" {
		return "", nil
	}
	if a == b {
		return a, nil
	}

	sides := [2]*mergeSide{
		{queue: []object.Hash{a}, seen: map[object.Hash]bool{}},
		{queue: []object.Hash{b}, seen: map[object.Hash]bool{}},
	}

	steps := 0
	for len(sides[0].queue) > 0 || len(sides[1].queue) > 0 {
		for i, side := range sides {
			if len(side.queue) == 0 {
				continue
			}
			if steps++; steps > mergeBaseStepLimit {
				return "", fmt.Errorf("merge base: traversal exceeded %d steps", mergeBaseStepLimit)
			}

			current := side.queue[0]
			side.queue = side.queue[1:]
			if side.seen[current] {
				continue
			}
			if sides[1-i].seen[current] {
				return current, nil
			}
			side.seen[current] = true

			c, err := r.ReadCommit(current)
			if err != nil {
				if errors.Is(err, object.ErrNotFound) {
					continue
				}
				return "", fmt.Errorf("merge base: %w", err)
			}
			if parent, ok := c.ParentHash(); ok && !side.seen[parent] {
				side.queue = append(side.queue, parent)
			}
		}
	}

	return "", nil
}

type mergeSide struct {
	queue []object.Hash
	seen  map[object.Hash]bool
}
