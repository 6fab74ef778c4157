// Package util contains internal helpers shared by storage and executor:
// hashing, shard-count heuristics, and cache-line padding.
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

// Fnv64a hashes raw key bytes using 64-bit FNV-1a. It is not
// cryptographically strong, but it is stable — the same bytes always hash to
// the same value — and well distributed, which is all the striped store's
// routing contract asks of it.
func Fnv64a(b []byte) uint64 {
	h := uint64(fnvOffset64)
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)
