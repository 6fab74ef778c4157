package storage

// Storage is the capability contract shared by Shard (a single LRU
// partition) and Striped (a lock-striped fan-out of shards). It takes raw
// byte-string keys and values; nothing in the contract assumes a wire
// format or a specific hash.
//
// Thread-safety is promised only by implementations that document it.
// Shard itself is not internally synchronized (see its doc comment);
// Striped is.
//
// Typical complexity for every method is O(1) expected: one map lookup
// plus a constant number of intrusive list pointer updates. Put may do
// additional work proportional to the number of entries it evicts, which
// is bounded by the number of resident keys.
type Storage interface {
	// Put inserts key->value, replacing any existing value for key and
	// promoting the entry to most-recently-used. Returns false without any
	// state change if len(key)+len(value) exceeds the store's byte budget.
	Put(key, value []byte) bool

	// PutIfAbsent behaves like Put but fails — returning false with no
	// state change — if key is already present. It never touches the
	// recency of an existing entry.
	PutIfAbsent(key, value []byte) bool

	// Set behaves like Put but fails — returning false with no state
	// change — if key is not already present.
	Set(key, value []byte) bool

	// Delete removes key if present, freeing its bytes from the budget.
	// Returns true iff an entry was removed. Never reorders other entries.
	Delete(key []byte) bool

	// Get returns a copy of the value stored under key and promotes the
	// entry to most-recently-used. The boolean reports presence; a miss
	// leaves recency order untouched.
	Get(key []byte) (value []byte, ok bool)
}
