package storage

import "github.com/namitmax/afina-go/internal/util"

// Shard is a single, byte-budgeted LRU partition. It is the algorithmic
// heart of the store: a map index for O(1) lookup plus an intrusive
// MRU/LRU doubly linked list for O(1) recency updates and tail eviction.
//
// Shard is NOT internally synchronized. None of its methods block and none
// take a lock; a caller that shares one Shard across goroutines must
// provide its own mutual exclusion (Striped does exactly this — see
// striped.go). Used from a single goroutine, or behind an external lock, a
// Shard satisfies the Storage contract directly.
type Shard struct {
	maxBytes int
	curBytes int

	index      map[string]*entry
	head, tail *entry // head = MRU, tail = LRU

	_      util.CacheLinePad
	hits   util.PaddedInt64
	misses util.PaddedInt64
	evicts util.PaddedUint64
}

// NewShard constructs a Shard with the given byte budget. A negative
// maxBytes means Put and PutIfAbsent reject every key/value pair; a zero
// maxBytes admits only an empty key with an empty value. Construction itself
// never fails; size validation belongs to Striped's constructor, which is
// the layer that owns "is this a sane configuration" policy.
func NewShard(maxBytes int) *Shard {
	return &Shard{
		maxBytes: maxBytes,
		index:    make(map[string]*entry),
	}
}

var _ Storage = (*Shard)(nil)

// Put implements Storage. See api.go for the full contract.
func (s *Shard) Put(key, value []byte) bool {
	if len(key)+len(value) > s.maxBytes {
		return false
	}
	if e, ok := s.index[string(key)]; ok {
		s.replace(e, value)
		return true
	}
	s.insert(string(key), value)
	return true
}

// PutIfAbsent implements Storage.
func (s *Shard) PutIfAbsent(key, value []byte) bool {
	if len(key)+len(value) > s.maxBytes {
		return false
	}
	if _, ok := s.index[string(key)]; ok {
		return false
	}
	s.insert(string(key), value)
	return true
}

// Set implements Storage.
func (s *Shard) Set(key, value []byte) bool {
	if len(key)+len(value) > s.maxBytes {
		return false
	}
	e, ok := s.index[string(key)]
	if !ok {
		return false
	}
	s.replace(e, value)
	return true
}

// Delete implements Storage.
func (s *Shard) Delete(key []byte) bool {
	e, ok := s.index[string(key)]
	if !ok {
		return false
	}
	s.unlink(e)
	delete(s.index, e.key)
	s.curBytes -= e.size()
	return true
}

// Get implements Storage.
func (s *Shard) Get(key []byte) ([]byte, bool) {
	e, ok := s.index[string(key)]
	if !ok {
		s.misses.V++
		return nil, false
	}
	s.moveToFront(e)
	s.hits.V++
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true
}

// Stats is a point-in-time snapshot of a shard's internal counters. It is
// plain in-process bookkeeping, not an export/scrape surface.
type Stats struct {
	Entries      int
	CurrentBytes int
	MaxBytes     int
	Hits         int64
	Misses       int64
	Evictions    uint64
}

// Stats returns a snapshot of this shard's counters.
func (s *Shard) Stats() Stats {
	return Stats{
		Entries:      len(s.index),
		CurrentBytes: s.curBytes,
		MaxBytes:     s.maxBytes,
		Hits:         s.hits.V,
		Misses:       s.misses.V,
		Evictions:    s.evicts.V,
	}
}

// -------------------- internals --------------------

// insert creates a brand-new MRU entry for key, evicting from the tail as
// needed to make room, then accounts for its bytes. The caller has already
// verified len(key)+len(value) <= s.maxBytes.
func (s *Shard) insert(key string, value []byte) {
	v := append([]byte(nil), value...)
	e := &entry{key: key, value: v}
	need := len(key) + len(v)
	s.evictUntilFits(need, nil)
	s.pushFront(e)
	s.index[key] = e
	s.curBytes += need
}

// replace moves an existing entry to MRU and reconciles the byte delta of
// a value swap. The entry being replaced is exempt from its own eviction:
// evictUntilFits never removes protect.
//
// Correctness: the caller has already verified len(e.key)+len(value) <=
// s.maxBytes (the same check guarding Put/Set's oversize rejection). That
// is exactly the bound current_bytes would reach if every other entry were
// evicted and only e remained, so the eviction loop below is guaranteed to
// terminate with the budget satisfied without ever touching e itself.
func (s *Shard) replace(e *entry, value []byte) {
	s.moveToFront(e)
	oldSize := len(e.value)
	newSize := len(value)
	delta := newSize - oldSize
	if delta > 0 {
		s.evictUntilFits(delta, e)
	}
	e.value = append([]byte(nil), value...)
	s.curBytes += delta
}

// evictUntilFits removes entries from the tail — skipping protect, which is
// never evicted — until s.curBytes+need <= s.maxBytes or only protect (or
// nothing) is left.
func (s *Shard) evictUntilFits(need int, protect *entry) {
	for s.curBytes+need > s.maxBytes {
		victim := s.tail
		if victim == nil || victim == protect {
			return
		}
		s.unlink(victim)
		delete(s.index, victim.key)
		s.curBytes -= victim.size()
		s.evicts.V++
	}
}

// pushFront inserts e at MRU (head) in O(1). e must not already be linked.
func (s *Shard) pushFront(e *entry) {
	e.prev = nil
	e.next = s.head
	if s.head != nil {
		s.head.prev = e
	}
	s.head = e
	if s.tail == nil {
		s.tail = e
	}
}

// moveToFront promotes e to MRU in O(1).
func (s *Shard) moveToFront(e *entry) {
	if e == s.head {
		return
	}
	s.unlink(e)
	s.pushFront(e)
}

// unlink detaches e from the list without touching the index. O(1).
func (s *Shard) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else if s.head == e {
		s.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else if s.tail == e {
		s.tail = e.prev
	}
	e.prev, e.next = nil, nil
}
