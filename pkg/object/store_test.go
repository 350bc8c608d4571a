package object

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

// backendsUnderTest builds one of each backend in a temp location.
func backendsUnderTest(t *testing.T) map[string]Backend {
	t.Helper()
	dir := t.TempDir()

	boltBackend, err := NewBoltBackend(filepath.Join(dir, "objects.db"))
	if err != nil {
		t.Fatalf("NewBoltBackend: %v", err)
	}
	t.Cleanup(func() { boltBackend.Close() })

	return map[string]Backend{
		"fs":   NewFSBackend(dir),
		"mem":  NewMemBackend(),
		"bolt": boltBackend,
	}
}

func TestStore_PutIsIdempotent(t *testing.T) {
	for name, backend := range backendsUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			s := NewStore(backend)

			h1, err := s.Put([]byte("hello"))
			if err != nil {
				t.Fatalf("Put: %v", err)
			}
			h2, err := s.Put([]byte("hello"))
			if err != nil {
				t.Fatalf("second Put: %v", err)
			}
			if h1 != h2 {
				t.Errorf("hashes differ: %s vs %s", h1, h2)
			}
			if len(h1) != 64 {
				t.Errorf("hash width = %d, want 64", len(h1))
			}

			data, err := s.Get(h1)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if string(data) != "hello" {
				t.Errorf("Get = %q, want %q", data, "hello")
			}
		})
	}
}

func TestStore_GetMissingIsNotFound(t *testing.T) {
	for name, backend := range backendsUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			s := NewStore(backend)
			_, err := s.Get(HashBytes([]byte("never stored")))
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Get missing = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStore_StoredObjectIsStable(t *testing.T) {
	s := NewStore(NewMemBackend())

	h, err := s.Put([]byte("immutable"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	first, err := s.Get(h)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	// Mutating the returned slice must not affect later reads.
	first[0] = 'X'

	second, err := s.Get(h)
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if string(second) != "immutable" {
		t.Errorf("stored object changed: %q", second)
	}
}

func TestHashBytes_Deterministic(t *testing.T) {
	a := HashBytes([]byte("content"))
	b := HashBytes([]byte("content"))
	if a != b {
		t.Errorf("HashBytes not stable: %s vs %s", a, b)
	}
	if a == HashBytes([]byte("other")) {
		t.Error("distinct inputs produced identical hashes")
	}
}

func TestCommit_RoundTrip(t *testing.T) {
	parent := HashBytes([]byte("parent"))
	c := &Commit{
		TimeStamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Message:   "first",
		Files: []FileEntry{
			{Path: "a.txt", Hash: HashBytes([]byte("v1"))},
		},
		Parent: &parent,
	}

	data, err := MarshalCommit(c)
	if err != nil {
		t.Fatalf("MarshalCommit: %v", err)
	}

	got, err := UnmarshalCommit(data)
	if err != nil {
		t.Fatalf("UnmarshalCommit: %v", err)
	}
	if got.Message != c.Message {
		t.Errorf("Message = %q, want %q", got.Message, c.Message)
	}
	if !got.TimeStamp.Equal(c.TimeStamp) {
		t.Errorf("TimeStamp = %v, want %v", got.TimeStamp, c.TimeStamp)
	}
	if len(got.Files) != 1 || got.Files[0] != c.Files[0] {
		t.Errorf("Files = %+v, want %+v", got.Files, c.Files)
	}
	ph, ok := got.ParentHash()
	if !ok || ph != parent {
		t.Errorf("ParentHash = (%s, %v), want (%s, true)", ph, ok, parent)
	}
}

func TestCommit_NullParent(t *testing.T) {
	data, err := MarshalCommit(&Commit{TimeStamp: time.Now(), Message: "root"})
	if err != nil {
		t.Fatalf("MarshalCommit: %v", err)
	}

	got, err := UnmarshalCommit(data)
	if err != nil {
		t.Fatalf("UnmarshalCommit: %v", err)
	}
	if _, ok := got.ParentHash(); ok {
		t.Error("root commit reported a parent")
	}
	if got.Files == nil {
		t.Error("Files should unmarshal to an empty slice, not nil")
	}
}

func TestCommit_MalformedData(t *testing.T) {
	_, err := UnmarshalCommit([]byte("{not json"))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("UnmarshalCommit = %v, want ErrMalformed", err)
	}
}
