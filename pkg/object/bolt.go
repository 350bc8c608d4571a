package object

import (
	"errors"
	"fmt"
	"sync"

	bolt "go.etcd.io/bbolt"
)

const boltObjectsBucket = "objects"

// BoltBackend stores objects inside a single BoltDB file. It trades the
// flat-file layout for one database file, which keeps repositories with many
// small objects tidy on filesystems with large block sizes.
type BoltBackend struct {
	db   *bolt.DB
	once sync.Once
}

// NewBoltBackend opens (or creates) a BoltDB object database at path.
func NewBoltBackend(path string) (*BoltBackend, error) {
	if path == "" {
		return nil, errors.New("bolt backend: path is required")
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("bolt backend: open %s: %w", path, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltObjectsBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt backend: init bucket: %w", err)
	}

	return &BoltBackend{db: db}, nil
}

// Put writes data under the hash key.
func (b *BoltBackend) Put(h Hash, data []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(boltObjectsBucket))
		if bucket == nil {
			return errors.New("objects bucket missing")
		}
		return bucket.Put([]byte(h), data)
	})
}

// Get retrieves data for the hash key.
func (b *BoltBackend) Get(h Hash) ([]byte, bool, error) {
	var result []byte
	var found bool
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(boltObjectsBucket))
		if bucket == nil {
			return nil
		}
		data := bucket.Get([]byte(h))
		if data == nil {
			return nil
		}
		result = append([]byte{}, data...)
		found = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, found, nil
}

// Has reports whether the hash key is present.
func (b *BoltBackend) Has(h Hash) bool {
	_, ok, err := b.Get(h)
	return err == nil && ok
}

// Close shuts down the Bolt DB.
func (b *BoltBackend) Close() error {
	var err error
	b.once.Do(func() {
		err = b.db.Close()
	})
	return err
}
