package storage

import "testing"

func bs(s string) []byte { return []byte(s) }

// Oversize rejection. A pair that can never fit is rejected outright
// and never evicts anything, even from an otherwise-empty shard.
func TestShard_OversizeRejection(t *testing.T) {
	s := NewShard(4)
	if s.Put(bs("longkey"), bs("v")) {
		t.Fatal("oversize Put must return false")
	}
	if st := s.Stats(); st.Entries != 0 || st.CurrentBytes != 0 {
		t.Fatalf("store must remain empty, got %+v", st)
	}
}

// Basic eviction. Inserting "ccc" forces "a" out as the current LRU
// tail. 2+2 + 3+3 = 10 is what the current_bytes = Σ(len(key)+len(value))
// invariant yields for the final {"bb","ccc"} set.
func TestShard_BasicEviction(t *testing.T) {
	s := NewShard(10)
	if !s.Put(bs("a"), bs("1")) {
		t.Fatal("Put a must succeed")
	}
	if !s.Put(bs("bb"), bs("22")) {
		t.Fatal("Put bb must succeed")
	}
	if !s.Put(bs("ccc"), bs("333")) {
		t.Fatal("Put ccc must succeed")
	}

	if _, ok := s.Get(bs("a")); ok {
		t.Fatal("a must have been evicted")
	}
	if v, ok := s.Get(bs("bb")); !ok || string(v) != "22" {
		t.Fatalf("bb must survive with value 22, got %q ok=%v", v, ok)
	}
	if v, ok := s.Get(bs("ccc")); !ok || string(v) != "333" {
		t.Fatalf("ccc must survive with value 333, got %q ok=%v", v, ok)
	}

	st := s.Stats()
	if st.Entries != 2 {
		t.Fatalf("want 2 live entries, got %d", st.Entries)
	}
	if want := 4 + 6; st.CurrentBytes != want {
		t.Fatalf("current_bytes invariant: want %d, got %d", want, st.CurrentBytes)
	}
}

// Get promotes an entry to MRU, shielding it from the next eviction.
func TestShard_GetTouchesRecency(t *testing.T) {
	s := NewShard(6)
	s.Put(bs("a"), bs("1"))
	s.Put(bs("b"), bs("2"))
	s.Put(bs("c"), bs("3"))

	if v, ok := s.Get(bs("a")); !ok || string(v) != "1" {
		t.Fatalf("Get a want hit '1', got %q ok=%v", v, ok)
	}

	if !s.Put(bs("d"), bs("4")) {
		t.Fatal("Put d must succeed")
	}

	if _, ok := s.Get(bs("b")); ok {
		t.Fatal("b must have been evicted (it was LRU after promoting a)")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := s.Get(bs(k)); !ok {
			t.Fatalf("%s must still be present", k)
		}
	}
}

func TestShard_BasicAddSetGetDelete(t *testing.T) {
	s := NewShard(1024)

	if !s.PutIfAbsent(bs("a"), bs("1")) {
		t.Fatal("PutIfAbsent a=1 must succeed")
	}
	if s.PutIfAbsent(bs("a"), bs("2")) {
		t.Fatal("PutIfAbsent on existing key must fail")
	}
	if v, ok := s.Get(bs("a")); !ok || string(v) != "1" {
		t.Fatalf("duplicate PutIfAbsent must not overwrite, got %q ok=%v", v, ok)
	}

	if s.Set(bs("missing"), bs("x")) {
		t.Fatal("Set on absent key must fail")
	}
	if !s.Set(bs("a"), bs("11")) {
		t.Fatal("Set on existing key must succeed")
	}
	if v, ok := s.Get(bs("a")); !ok || string(v) != "11" {
		t.Fatalf("Set must update value, got %q ok=%v", v, ok)
	}

	if !s.Delete(bs("a")) {
		t.Fatal("Delete must return true for a present key")
	}
	if s.Delete(bs("a")) {
		t.Fatal("Delete of an already-removed key must return false")
	}
	if _, ok := s.Get(bs("a")); ok {
		t.Fatal("a must be absent after Delete")
	}
}

// Get on a missing key must not mutate recency or state.
func TestShard_GetMissIsNoop(t *testing.T) {
	s := NewShard(64)
	s.Put(bs("a"), bs("1"))
	before := s.Stats()

	if _, ok := s.Get(bs("zzz")); ok {
		t.Fatal("Get on missing key must report a miss")
	}
	after := s.Stats()
	if before.Entries != after.Entries || before.CurrentBytes != after.CurrentBytes {
		t.Fatalf("Get miss must not change state: before=%+v after=%+v", before, after)
	}
}

// Replacement accounting: growing a value never evicts the entry being
// grown, even when it is the only other consumer of the budget.
func TestShard_ReplaceNeverEvictsSelf(t *testing.T) {
	s := NewShard(6)
	s.Put(bs("a"), bs("1")) // 2 bytes
	s.Put(bs("b"), bs("2")) // 2 bytes, curBytes=4

	// Grow "a" past the remaining budget: "a"+"2345" = 1+4 = 5,
	// plus "b"'s 2 bytes would be 7 > 6, so "b" must be evicted, and "a"
	// (being grown) must never be the one evicted instead.
	if !s.Set(bs("a"), bs("2345")) {
		t.Fatal("Set growing a must succeed")
	}
	if v, ok := s.Get(bs("a")); !ok || string(v) != "2345" {
		t.Fatalf("a must hold its new value, got %q ok=%v", v, ok)
	}
	if _, ok := s.Get(bs("b")); ok {
		t.Fatal("b must have been evicted to make room for a's growth")
	}
}

// When even evicting every other entry cannot make room, the grow fails
// and the shard is left completely untouched.
func TestShard_ReplaceFailsWhenImpossible(t *testing.T) {
	s := NewShard(4)
	s.Put(bs("a"), bs("1")) // 2 bytes; alone, "a" could grow up to 3 bytes of value

	if s.Set(bs("a"), bs("toolong")) {
		t.Fatal("Set must fail when even an empty shard could not fit the new value")
	}
	if v, ok := s.Get(bs("a")); !ok || string(v) != "1" {
		t.Fatalf("failed Set must leave the shard untouched, got %q ok=%v", v, ok)
	}
}

// Round-trip laws.
func TestShard_RoundTripLaws(t *testing.T) {
	s := NewShard(64)

	s.Put(bs("k"), bs("v"))
	if v, ok := s.Get(bs("k")); !ok || string(v) != "v" {
		t.Fatal("Put(k,v); Get(k) must return v")
	}

	s.Delete(bs("k"))
	if _, ok := s.Get(bs("k")); ok {
		t.Fatal("Delete(k); Get(k) must miss")
	}

	s.PutIfAbsent(bs("k"), bs("v1"))
	s.PutIfAbsent(bs("k"), bs("v2"))
	if v, ok := s.Get(bs("k")); !ok || string(v) != "v1" {
		t.Fatal("second PutIfAbsent must not overwrite the first value")
	}

	if s.Set(bs("absent"), bs("x")) {
		t.Fatal("Set on an absent key must return false")
	}
}
