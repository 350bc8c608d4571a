package object

import (
	"fmt"
	"os"
	"path/filepath"
)

// FSBackend stores each object as a file objects/<hash> under its root.
// Writes are atomic: data is written to a temp file and renamed into place.
type FSBackend struct {
	root string
}

// NewFSBackend creates a filesystem backend rooted at the given directory.
// The objects/ subdirectory is created lazily on first write.
func NewFSBackend(root string) *FSBackend {
	return &FSBackend{root: root}
}

func (b *FSBackend) objectPath(h Hash) string {
	return filepath.Join(b.root, "objects", string(h))
}

// Has reports whether an object file exists for the given hash.
func (b *FSBackend) Has(h Hash) bool {
	_, err := os.Stat(b.objectPath(h))
	return err == nil
}

// Put writes data to objects/<hash> via temp file + rename.
func (b *FSBackend) Put(h Hash, data []byte) error {
	dir := filepath.Join(b.root, "objects")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
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

	if err := os.Rename(tmpName, b.objectPath(h)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// Get reads the object file for the given hash. A missing file is reported
// as absent, not as an error.
func (b *FSBackend) Get(h Hash) ([]byte, bool, error) {
	data, err := os.ReadFile(b.objectPath(h))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Close is a no-op for the filesystem backend.
func (b *FSBackend) Close() error { return nil }
