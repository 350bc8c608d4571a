package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mkerring/vex/pkg/object"
)

func (r *Repo) headPath() string {
	return filepath.Join(r.VexDir, "HEAD")
}

func (r *Repo) refPath(name string) string {
	return filepath.Join(r.VexDir, "refs", name)
}

// Head reads .vex/HEAD. An empty or missing file means no commits yet and
// yields an empty hash with no error.
func (r *Repo) Head() (object.Hash, error) {
	data, err := os.ReadFile(r.headPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("head: %w", err)
	}
	return object.Hash(strings.TrimSpace(string(data))), nil
}

// SetHead writes a commit hash to .vex/HEAD atomically.
func (r *Repo) SetHead(h object.Hash) error {
	if err := atomicWriteFile(r.VexDir, r.headPath(), []byte(string(h)+"\n")); err != nil {
		return fmt.Errorf("set head: %w", err)
	}
	return nil
}

// CreateBranch snapshots the current HEAD value into refs/<name>. The
// branch is a frozen copy at creation time, not a live alias tracking
// later HEAD movement. It fails when HEAD is empty or the branch exists.
func (r *Repo) CreateBranch(name string) error {
	release, err := r.lock()
	if err != nil {
		return fmt.Errorf("create branch: %w", err)
	}
	defer release()

	head, err := r.Head()
	if err != nil {
		return fmt.Errorf("create branch: %w", err)
	}
	if head == "" {
		return fmt.Errorf("create branch %q: no commits yet", name)
	}

	refPath := r.refPath(name)
	if _, err := os.Stat(refPath); err == nil {
		return fmt.Errorf("create branch %q: %w", name, ErrExists)
	}

	if err := os.MkdirAll(filepath.Dir(refPath), 0o755); err != nil {
		return fmt.Errorf("create branch %q: mkdir: %w", name, err)
	}
	if err := atomicWriteFile(filepath.Dir(refPath), refPath, []byte(string(head)+"\n")); err != nil {
		return fmt.Errorf("create branch %q: %w", name, err)
	}
	return nil
}

// ListBranches reads .vex/refs/ and returns the branch names sorted
// alphabetically.
func (r *Repo) ListBranches() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.VexDir, "refs"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list branches: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ResolveTarget resolves a checkout/merge target. A stored branch name
// resolves to its snapshot hash; anything else is treated literally as a
// commit hash with no existence check at this layer.
func (r *Repo) ResolveTarget(name string) (object.Hash, error) {
	data, err := os.ReadFile(r.refPath(name))
	if err == nil {
		return object.Hash(strings.TrimSpace(string(data))), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("resolve target %q: %w", name, err)
	}
	return object.Hash(name), nil
}

// atomicWriteFile writes data to dest via a temp file in tmpDir and rename.
func atomicWriteFile(tmpDir, dest string, data []byte) error {
	tmp, err := os.CreateTemp(tmpDir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("tmpfile: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
