package storage

import (
	"sync"

	"github.com/namitmax/afina-go/internal/util"
)

// DefaultMinShardBytes is the default floor placed on a striped store's
// per-shard byte budget (MaxBytes/StripeCount). This takes the stricter,
// behavior-backed value: 1 MiB. It is a default, not a constant:
// StripedConfig.MinShardBytes overrides it.
const DefaultMinShardBytes = 1 << 20

// Striped is a lock-striped fan-out of Shards: a fixed number of
// independent LRU partitions, each guarded by its own mutex, routed to by
// a stable hash of the key. Unlike a bare Shard,
// Striped is safe for concurrent use by multiple goroutines; two keys that
// hash to different stripes never contend on the same lock.
type Striped struct {
	stripes []stripe
}

type stripe struct {
	mu sync.Mutex
	s  *Shard
	_  util.CacheLinePad
}

// StripedConfig configures a Striped store.
type StripedConfig struct {
	// MaxBytes is the total byte budget across all stripes. Each stripe
	// receives MaxBytes/StripeCount.
	MaxBytes int

	// StripeCount is the number of independent shards. Must be > 0.
	StripeCount int

	// MinShardBytes overrides DefaultMinShardBytes as the sanity floor
	// placed on the per-shard budget. Zero means "use the default".
	MinShardBytes int
}

// NewStriped constructs a Striped store. It fails with ErrNoStripes when
// StripeCount is zero, and with ErrShardTooSmall when the per-shard budget
// (MaxBytes/StripeCount) falls below the configured — or default — floor.
func NewStriped(cfg StripedConfig) (*Striped, error) {
	if cfg.StripeCount == 0 {
		return nil, ErrNoStripes
	}
	floor := cfg.MinShardBytes
	if floor <= 0 {
		floor = DefaultMinShardBytes
	}
	perShard := cfg.MaxBytes / cfg.StripeCount
	if perShard < floor {
		return nil, ErrShardTooSmall
	}

	st := &Striped{stripes: make([]stripe, cfg.StripeCount)}
	for i := range st.stripes {
		st.stripes[i].s = NewShard(perShard)
	}
	return st, nil
}

var _ Storage = (*Striped)(nil)

// shardFor computes hash(key) mod stripe_count and returns the stripe
// responsible for key. The hash function is an implementation detail (the
// contract only requires it be stable and consistent within a build), so
// callers must never depend on which stripe a key lands in.
func (c *Striped) shardFor(key []byte) *stripe {
	h := util.Fnv64a(key)
	idx := util.ShardIndex(h, len(c.stripes))
	return &c.stripes[idx]
}

// Put implements Storage.
func (c *Striped) Put(key, value []byte) bool {
	st := c.shardFor(key)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.Put(key, value)
}

// PutIfAbsent implements Storage.
func (c *Striped) PutIfAbsent(key, value []byte) bool {
	st := c.shardFor(key)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.PutIfAbsent(key, value)
}

// Set implements Storage.
func (c *Striped) Set(key, value []byte) bool {
	st := c.shardFor(key)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.Set(key, value)
}

// Delete implements Storage.
func (c *Striped) Delete(key []byte) bool {
	st := c.shardFor(key)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.Delete(key)
}

// Get implements Storage.
func (c *Striped) Get(key []byte) ([]byte, bool) {
	st := c.shardFor(key)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.Get(key)
}

// StripeCount returns the number of stripes this store was constructed
// with, mostly useful for tests and diagnostics.
func (c *Striped) StripeCount() int { return len(c.stripes) }

// Stats aggregates Shard.Stats across every stripe. Each stripe is locked
// only for the instant its own snapshot is read.
func (c *Striped) Stats() Stats {
	var total Stats
	for i := range c.stripes {
		st := &c.stripes[i]
		st.mu.Lock()
		s := st.s.Stats()
		st.mu.Unlock()

		total.Entries += s.Entries
		total.CurrentBytes += s.CurrentBytes
		total.MaxBytes += s.MaxBytes
		total.Hits += s.Hits
		total.Misses += s.Misses
		total.Evictions += s.Evictions
	}
	return total
}
