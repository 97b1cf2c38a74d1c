package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex fingerprint of content.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(content []byte) string {
	sum := blake2b.Sum256(content)
	return hex.EncodeToString(sum[:10])
}

// ETag returns a strong HTTP entity tag for content.
func ETag(content []byte) string {
	return `"` + Fingerprint(content) + `"`
}
