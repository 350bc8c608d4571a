package object

import "sync"

// MemBackend keeps objects in process memory. It backs tests and lets a
// repository core be embedded without touching the filesystem.
type MemBackend struct {
	mu      sync.RWMutex
	objects map[Hash][]byte
}

// NewMemBackend creates an empty in-memory backend.
func NewMemBackend() *MemBackend {
	return &MemBackend{objects: make(map[Hash][]byte)}
}

// Put stores a copy of data under the hash key.
func (b *MemBackend) Put(h Hash, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[h] = append([]byte{}, data...)
	return nil
}

// Get retrieves a copy of the data for the hash key.
func (b *MemBackend) Get(h Hash) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.objects[h]
	if !ok {
		return nil, false, nil
	}
	return append([]byte{}, data...), true, nil
}

// Has reports whether the hash key is present.
func (b *MemBackend) Has(h Hash) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.objects[h]
	return ok
}

// Close is a no-op for the in-memory backend.
func (b *MemBackend) Close() error { return nil }
