package repo

import (
	"fmt"
	"os"
	"path/filepath"
)

// InitOutcome reports what Init found at the target path.
type InitOutcome int

const (
	InitCreated InitOutcome = iota // a new repository was created
	InitExists                     // a repository already existed and was opened
)

// Init creates a new repository at path, or opens the existing one. The
// existence check is explicit: a pre-existing .vex/ directory yields
// InitExists rather than an error, and failure to create yields an error
// rather than being interpreted as "already initialized".
func Init(path string) (*Repo, InitOutcome, error) {
	vexDir := filepath.Join(path, VexDirName)

	if info, err := os.Stat(vexDir); err == nil && info.IsDir() {
		r, err := openAt(path, vexDir)
		if err != nil {
			return nil, InitExists, err
		}
		return r, InitExists, nil
	}

	dirs := []string{
		filepath.Join(vexDir, "objects"),
		filepath.Join(vexDir, "refs"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, InitCreated, fmt.Errorf("init: mkdir %s: %w", d, err)
		}
	}

	// HEAD starts empty: no commits yet.
	if err := os.WriteFile(filepath.Join(vexDir, "HEAD"), nil, 0o644); err != nil {
		return nil, InitCreated, fmt.Errorf("init: write HEAD: %w", err)
	}

	if err := writeConfig(vexDir, defaultConfig()); err != nil {
		return nil, InitCreated, fmt.Errorf("init: %w", err)
	}

	r, err := openAt(path, vexDir)
	if err != nil {
		return nil, InitCreated, err
	}
	return r, InitCreated, nil
}
