// Package storage implements a bounded LRU store: a single byte-budgeted
// shard and a lock-striped fan-out of shards that makes the store safe for
// concurrent use.
//
// Design
//
//   - Accounting: each shard tracks current_bytes = sum(len(key)+len(value))
//     over its resident entries and never lets it exceed max_bytes. An
//     insert or value-grow that would overflow the budget evicts from the
//     least-recently-used end of an intrusive doubly linked list until the
//     new entry fits; a pair larger than max_bytes by itself is rejected
//     outright and never evicts anything.
//
//   - Recency: the list is ordered MRU (head) to LRU (tail). Get and any
//     successful Put/Set move the touched entry to the head. Delete and
//     eviction never reorder the remaining entries.
//
//   - Concurrency: Shard performs no locking of its own — callers that
//     share a Shard across goroutines must supply their own synchronization.
//     Striped wraps stripe_count independent shards, each guarded by its
//     own mutex, and routes a key to shard index hash(key) mod stripe_count.
//     Operations on keys that land in different shards proceed without
//     contending on the same lock.
//
// Basic usage
//
//	s := storage.NewShard(1024) // 1 KiB byte budget
//	s.Put([]byte("a"), []byte("1"))
//	v, ok := s.Get([]byte("a"))
//
// Concurrent usage
//
//	st, err := storage.NewStriped(storage.StripedConfig{
//	    MaxBytes:    64 << 20, // 64 MiB total
//	    StripeCount: 16,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	st.Put([]byte("k1"), []byte("v1"))
//
// See api.go for the full Storage contract and errors.go for the
// construction-time error taxonomy.
package storage
