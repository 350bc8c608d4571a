package repo

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/mkerring/vex/pkg/object"
)

func TestReadIndex_MissingFileIsEmpty(t *testing.T) {
	r := initTestRepo(t)

	idx, err := r.ReadIndex()
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}
	if len(idx.Entries) != 0 {
		t.Errorf("fresh index has %d entries", len(idx.Entries))
	}
}

func TestAdd_AppendsWithoutDeduplicating(t *testing.T) {
	r := initTestRepo(t)

	writeWorkFile(t, r, "a.txt", "v1")
	if err := r.Add([]string{"a.txt"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	writeWorkFile(t, r, "a.txt", "v2")
	if err := r.Add([]string{"a.txt"}); err != nil {
		t.Fatalf("second Add: %v", err)
	}

	idx, err := r.ReadIndex()
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}
	if len(idx.Entries) != 2 {
		t.Fatalf("index has %d entries, want 2", len(idx.Entries))
	}
	if idx.Entries[0].Path != "a.txt" || idx.Entries[1].Path != "a.txt" {
		t.Errorf("paths = %q, %q", idx.Entries[0].Path, idx.Entries[1].Path)
	}
	if idx.Entries[0].Hash == idx.Entries[1].Hash {
		t.Error("both entries share a hash; expected two distinct versions")
	}
	if idx.Entries[0].Hash != object.HashBytes([]byte("v1")) {
		t.Error("first entry does not hash v1: append order was not preserved")
	}
}

func TestAdd_StoresBlob(t *testing.T) {
	r := initTestRepo(t)

	writeWorkFile(t, r, "a.txt", "hello")
	if err := r.Add([]string{"a.txt"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	data, err := r.Store.Get(object.HashBytes([]byte("hello")))
	if err != nil {
		t.Fatalf("blob not stored: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("blob = %q", data)
	}
}

func TestIndex_PersistsAcrossOpens(t *testing.T) {
	r := initTestRepo(t)

	writeWorkFile(t, r, "a.txt", "v1")
	if err := r.Add([]string{"a.txt"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	reopened, err := Open(r.RootDir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer reopened.Close()

	idx, err := reopened.ReadIndex()
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}
	if len(idx.Entries) != 1 || idx.Entries[0].Path != "a.txt" {
		t.Errorf("entries = %+v", idx.Entries)
	}
}

func TestReadIndex_CorruptJSONIsMalformed(t *testing.T) {
	r := initTestRepo(t)

	if err := os.WriteFile(r.indexPath(), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := r.ReadIndex(); !errors.Is(err, object.ErrMalformed) {
		t.Errorf("ReadIndex = %v, want ErrMalformed", err)
	}
}

func TestReadIndex_ChecksumMismatchIsMalformed(t *testing.T) {
	r := initTestRepo(t)

	writeWorkFile(t, r, "a.txt", "v1")
	if err := r.Add([]string{"a.txt"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Tamper with an entry without refreshing the checksum.
	data, err := os.ReadFile(r.indexPath())
	if err != nil {
		t.Fatalf("read index file: %v", err)
	}
	tampered := strings.Replace(string(data), "a.txt", "b.txt", 1)
	if tampered == string(data) {
		t.Fatal("tampering had no effect")
	}
	if err := os.WriteFile(r.indexPath(), []byte(tampered), 0o644); err != nil {
		t.Fatalf("write tampered index: %v", err)
	}

	if _, err := r.ReadIndex(); !errors.Is(err, object.ErrMalformed) {
		t.Errorf("ReadIndex = %v, want ErrMalformed", err)
	}
}
