// Package repo implements the repository core: staging index, references,
// commit graph, and working-tree reconciliation over a content-addressed
// object store.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkerring/vex/pkg/object"
)

// VexDirName is the repository marker directory.
const VexDirName = ".vex"

// ErrExists reports a resource (branch, repository) that already exists.
var ErrExists = errors.New("already exists")

// Repo is an opened repository. It owns the root path and all repository
// I/O; there is no package-level state, so multiple repositories can
// coexist in one process.
type Repo struct {
	RootDir string        // working directory root
	VexDir  string        // .vex/ directory
	Store   *object.Store // content-addressed object store
	Config  *Config
}

// Open searches upward from path for a .vex/ directory and opens the
// repository found there.
func Open(path string) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("open: abs path: %w", err)
	}

	cur := abs
	for {
		vexDir := filepath.Join(cur, VexDirName)
		info, err := os.Stat(vexDir)
		if err == nil && info.IsDir() {
			return openAt(cur, vexDir)
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, fmt.Errorf("open: not a vex repository (or any parent up to /)")
		}
		cur = parent
	}
}

func openAt(rootDir, vexDir string) (*Repo, error) {
	cfg, err := readConfig(vexDir)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	backend, err := openBackend(vexDir, cfg)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	return &Repo{
		RootDir: rootDir,
		VexDir:  vexDir,
		Store:   object.NewStore(backend),
		Config:  cfg,
	}, nil
}

func openBackend(vexDir string, cfg *Config) (object.Backend, error) {
	switch cfg.Core.Storage {
	case "", StorageFS:
		return object.NewFSBackend(vexDir), nil
	case StorageBolt:
		return object.NewBoltBackend(filepath.Join(vexDir, "objects.db"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Core.Storage)
	}
}

// Close releases the object store backend.
func (r *Repo) Close() error {
	return r.Store.Close()
}

// workPath returns the absolute working-tree path for a repo-relative path.
func (r *Repo) workPath(rel string) string {
	return filepath.Join(r.RootDir, filepath.FromSlash(rel))
}

// repoRelPath converts a path (absolute, or relative to CWD) into a
// slash-separated path relative to the repository root. Paths that cannot
// be resolved against the root are treated as already repo-relative.
func (r *Repo) repoRelPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		rel, err := filepath.Rel(r.RootDir, p)
		if err != nil {
			return "", fmt.Errorf("cannot make %q relative to %q: %w", p, r.RootDir, err)
		}
		return filepath.ToSlash(rel), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return filepath.ToSlash(filepath.Clean(p)), nil
	}

	abs := filepath.Join(cwd, p)
	rel, err := filepath.Rel(r.RootDir, abs)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(p)), nil
	}
	if len(rel) >= 2 && rel[:2] == ".." {
		return filepath.ToSlash(filepath.Clean(p)), nil
	}
	return filepath.ToSlash(rel), nil
}
