package object

import (
	"encoding/json"
	"fmt"
	"time"
)

// FileEntry names one file version by path and blob hash. Commits and the
// staging index share this shape.
type FileEntry struct {
	Path string `json:"path"`
	Hash Hash   `json:"hash"`
}

// Commit is an immutable record of a point-in-time file set. Its identity
// is the hash of its serialized form.
type Commit struct {
	TimeStamp time.Time   `json:"timeStamp"`
	Message   string      `json:"message"`
	Files     []FileEntry `json:"files"`
	Parent    *Hash       `json:"parent"`
}

// ParentHash returns the parent hash and whether one is set.
func (c *Commit) ParentHash() (Hash, bool) {
	if c.Parent == nil || *c.Parent == "" {
		return "", false
	}
	return *c.Parent, true
}

// MarshalCommit serializes a commit record to its canonical JSON form:
//
//	{"timeStamp": "<RFC3339>", "message": "...", "files": [{"path","hash"}], "parent": <hash|null>}
func MarshalCommit(c *Commit) ([]byte, error) {
	record := *c
	if record.Files == nil {
		record.Files = []FileEntry{}
	}
	data, err := json.Marshal(&record)
	if err != nil {
		return nil, fmt.Errorf("marshal commit: %w", err)
	}
	return data, nil
}

// UnmarshalCommit parses a serialized commit record. Parse failures are
// reported as ErrMalformed.
func UnmarshalCommit(data []byte) (*Commit, error) {
	var c Commit
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal commit: %w: %v", ErrMalformed, err)
	}
	return &c, nil
}
