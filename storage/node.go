package storage

// entry is an intrusive doubly linked list element owned by a Shard's
// recency list. key is immutable for the entry's lifetime; value is
// replaced in place by Put/Set. Both are private copies — the Shard never
// aliases a caller's backing array, so later mutation of a caller's slice
// cannot corrupt stored state.
type entry struct {
	key   string
	value []byte

	prev, next *entry // prev/next toward MRU/LRU; head has prev==nil, tail has next==nil
}

// size is the byte cost this entry contributes to a shard's current_bytes,
// i.e. len(key)+len(value).
func (e *entry) size() int { return len(e.key) + len(e.value) }
