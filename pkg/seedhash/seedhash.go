// Package seedhash turns an arbitrary host-supplied seed string into a
// deterministic 32-byte digest, and into the int64 a math/rand.Source
// actually wants. Hashing the seed string is a host concern, not part of
// the optimization core — pkg/ils never imports this package; the
// example CLIs and the N-Queens and schedule domain tests do.
package seedhash

import (
	"crypto/sha256"
	"encoding/binary"
)

// Bytes hashes seed into a deterministic 32-byte value with SHA-256.
func Bytes(seed string) [32]byte {
	return sha256.Sum256([]byte(seed))
}

// Int64 derives a deterministic int64 seed suitable for rand.NewSource from
// an arbitrary seed string, by hashing it and taking the first 8 bytes.
func Int64(seed string) int64 {
	sum := Bytes(seed)
	return int64(binary.LittleEndian.Uint64(sum[:8]))
}
