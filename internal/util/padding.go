// Package util contains internal helpers shared by storage and executor:
// hashing, shard-count heuristics, and cache-line padding.
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

import "unsafe"

// CacheLineSize is a reasonable default for most modern CPUs.
// std has runtime/internal/sys.CacheLineSize but it's unexported.
// 64 works well in practice.
const CacheLineSize = 64

// CacheLinePad is a dummy field used to separate hot fields into distinct
// cache lines and reduce false sharing. Place between groups of hot fields.
type CacheLinePad struct{ _ [CacheLineSize]byte }

// PaddedInt64 is a non-atomic int64 sized to one cache line. A shard is
// not internally synchronized, so its counters are plain fields mutated
// only while whatever caller-provided lock is held; padding still
// keeps neighboring shards' hot counters from sharing a cache line under a
// striped cache's per-shard locking.
type PaddedInt64 struct {
	V int64
	_ [CacheLineSize - 8]byte
}

// PaddedUint64 is the uint64 counterpart of PaddedInt64.
type PaddedUint64 struct {
	V uint64
	_ [CacheLineSize - 8]byte
}

// ---- Compile-time size checks (must be exactly one cache line) ----

var (
	_ [CacheLineSize - int(unsafe.Sizeof(PaddedInt64{}))]byte
	_ [CacheLineSize - int(unsafe.Sizeof(PaddedUint64{}))]byte
)
