package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Key builds a namespaced cache key: "<namespace>:<hash(raw)>".
// Hashing keeps keys filesystem- and Redis-safe regardless of what the
// raw component contains (URLs, slugs with slashes, query strings).
func Key(namespace, raw string) string {
	return namespace + ":" + Hash([]byte(raw))
}
