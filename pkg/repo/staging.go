package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/xxh3"

	"github.com/mkerring/vex/pkg/object"
)

// Index is the staging area: an ordered list of pending entries. Append is
// unconditional, so staging the same path twice keeps both entries in
// order and both appear in the next commit's file list.
type Index struct {
	Entries []object.FileEntry
}

// Append adds an entry to the end of the index. It never deduplicates or
// replaces an existing entry for the same path.
func (idx *Index) Append(path string, h object.Hash) {
	idx.Entries = append(idx.Entries, object.FileEntry{Path: path, Hash: h})
}

// indexFile is the on-disk form of the index. The checksum is the XXH3-64
// of the serialized entries and detects torn or hand-edited index files.
type indexFile struct {
	Entries  []object.FileEntry `json:"entries"`
	Checksum string             `json:"checksum"`
}

func (r *Repo) indexPath() string {
	return filepath.Join(r.VexDir, "index")
}

func indexChecksum(entries []object.FileEntry) (string, error) {
	if entries == nil {
		entries = []object.FileEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("index checksum: %w", err)
	}
	return fmt.Sprintf("%016x", xxh3.Hash(data)), nil
}

// ReadIndex loads the staging index from .vex/index. A missing file yields
// an empty index. A file that fails to parse, or whose checksum does not
// match its entries, is malformed.
func (r *Repo) ReadIndex() (*Index, error) {
	data, err := os.ReadFile(r.indexPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Index{}, nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}

	var file indexFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("read index: %w: %v", object.ErrMalformed, err)
	}

	sum, err := indexChecksum(file.Entries)
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	if sum != file.Checksum {
		return nil, fmt.Errorf("read index: checksum mismatch: %w", object.ErrMalformed)
	}

	return &Index{Entries: file.Entries}, nil
}

// WriteIndex atomically writes the staging index to .vex/index.
func (r *Repo) WriteIndex(idx *Index) error {
	sum, err := indexChecksum(idx.Entries)
	if err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	file := indexFile{Entries: idx.Entries, Checksum: sum}
	if file.Entries == nil {
		file.Entries = []object.FileEntry{}
	}
	data, err := json.MarshalIndent(&file, "", "  ")
	if err != nil {
		return fmt.Errorf("write index: marshal: %w", err)
	}

	if err := atomicWriteFile(r.VexDir, r.indexPath(), data); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// ClearIndex empties the staging index.
func (r *Repo) ClearIndex() error {
	return r.WriteIndex(&Index{})
}

// Add stages the given file paths. Each path is resolved relative to the
// repo root, its content is written to the object store as a blob, and one
// entry is appended to the index per path given.
func (r *Repo) Add(paths []string) error {
	release, err := r.lock()
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	defer release()

	idx, err := r.ReadIndex()
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}

	for _, p := range paths {
		relPath, err := r.repoRelPath(p)
		if err != nil {
			return fmt.Errorf("add: resolve path %q: %w", p, err)
		}

		content, err := os.ReadFile(r.workPath(relPath))
		if err != nil {
			return fmt.Errorf("add: read %q: %w", relPath, err)
		}

		h, err := r.Store.Put(content)
		if err != nil {
			return fmt.Errorf("add: store %q: %w", relPath, err)
		}

		idx.Append(relPath, h)
	}

	if err := r.WriteIndex(idx); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	return nil
}
