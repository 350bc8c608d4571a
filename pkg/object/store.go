package object

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a hash with no corresponding stored object.
var ErrNotFound = errors.New("object not found")

// ErrMalformed reports stored data that fails to parse.
var ErrMalformed = errors.New("malformed object data")

// Backend is the raw keyed byte storage underneath a Store. Implementations
// must tolerate repeated Put calls for the same hash (content addressing
// makes duplicate writes benign).
type Backend interface {
	Put(h Hash, data []byte) error
	Get(h Hash) ([]byte, bool, error)
	Has(h Hash) bool
	Close() error
}

// Store is a content-addressed, write-once object store. Objects are keyed
// by the hash of their bytes; no update or delete is exposed.
type Store struct {
	backend Backend
}

// NewStore creates a Store over the given backend.
func NewStore(b Backend) *Store {
	return &Store{backend: b}
}

// Put stores data under its content hash and returns the hash. Re-putting
// identical content is a no-op that returns the same hash.
func (s *Store) Put(data []byte) (Hash, error) {
	h := HashBytes(data)
	if s.backend.Has(h) {
		return h, nil
	}
	if err := s.backend.Put(h, data); err != nil {
		return "", fmt.Errorf("object put %s: %w", h, err)
	}
	return h, nil
}

// Get retrieves the bytes stored under h.
func (s *Store) Get(h Hash) ([]byte, error) {
	data, ok, err := s.backend.Get(h)
	if err != nil {
		return nil, fmt.Errorf("object get %s: %w", h, err)
	}
	if !ok {
		return nil, fmt.Errorf("object get %s: %w", h, ErrNotFound)
	}
	return data, nil
}

// Has reports whether the store contains an object with the given hash.
func (s *Store) Has(h Hash) bool {
	return s.backend.Has(h)
}

// Close releases backend resources.
func (s *Store) Close() error {
	return s.backend.Close()
}
