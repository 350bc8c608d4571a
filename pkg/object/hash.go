package object

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash is a 64-character hex-encoded SHA-256 digest. The same function
// addresses blob content and serialized commit records, so the two share
// one flat namespace in the store.
type Hash string

// HashBytes computes the SHA-256 hash of data and returns it as a
// lowercase hex-encoded Hash.
func HashBytes(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}
