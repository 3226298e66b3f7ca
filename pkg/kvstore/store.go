package kvstore

import (
	"time"

	"github.com/google/btree"

	"github.com/yndnr/kvstore-go/pkg/clock"
)

// DefaultDegree is the default B-tree degree for the ordered index.
const DefaultDegree = 32

// Store is an in-memory key-value store with per-entry TTL expiry,
// point lookups, and lexicographically ordered range scans.
//
// It maintains two indexes over one entry set: a B-tree ordered by key
// bytes for range scans, and a hash index mapping each key to the
// tree's item for O(1) amortized point access. Both indexes reference
// the same items; every mutation updates them together.
//
// Expiry is lazy: an expired entry stays physically present (and
// countable via Len) until Remove or RemoveOneExpiredEntry takes it
// out. Reads only consult the injected clock, they never reclaim.
//
// Store is not safe for concurrent use. Callers embedding it in a
// concurrent environment must serialize access externally.
//
// @req RQ-0202
// @design DS-0202
type Store struct {
	tree  *btree.BTreeG[*item]
	index map[string]*item
	clock clock.Clock

	hits       uint64
	misses     uint64
	overwrites uint64
	reclaimed  uint64
}

// Option configures the Store.
type Option func(*config)

type config struct {
	degree int
}

// WithDegree sets the B-tree degree of the ordered index.
// Values below 2 fall back to DefaultDegree.
func WithDegree(degree int) Option {
	return func(c *config) {
		c.degree = degree
	}
}

// New creates a Store from a bulk list of entries.
//
// Entries are applied in input order with Set semantics, so a later
// entry with a duplicate key fully overwrites the earlier one. The
// clock is retained for the lifetime of the store; pass clock.System()
// outside of tests.
func New(entries []Entry, clk clock.Clock, opts ...Option) *Store {
	cfg := config{degree: DefaultDegree}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.degree < 2 {
		cfg.degree = DefaultDegree
	}

	s := &Store{
		tree: btree.NewG(cfg.degree, func(a, b *item) bool {
			return a.key < b.key
		}),
		index: make(map[string]*item, len(entries)),
		clock: clk,
	}

	for _, e := range entries {
		s.Set(e.Key, e.Value, e.TTL)
	}

	return s
}

// Set inserts or overwrites the entry for key.
//
// A zero ttl means the entry never expires; otherwise it becomes
// invisible to reads once ttl has elapsed on the store's clock.
// Overwriting replaces both value and expiry, never merges.
func (s *Store) Set(key, value string, ttl time.Duration) {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.clock.Now().Add(ttl)
	}

	if it, ok := s.index[key]; ok {
		// Key unchanged, so the tree position stays valid and the
		// locator in the hash index keeps pointing at the same item.
		it.value = value
		it.expiresAt = expiresAt
		s.overwrites++
		return
	}

	it := &item{key: key, value: value, expiresAt: expiresAt}
	s.tree.ReplaceOrInsert(it)
	s.index[key] = it
}

// Get returns the value for key if it exists and has not expired.
//
// The lookup goes through the hash index, then checks expiry against
// the clock. Get never mutates the entry set: a logically expired
// entry stays in place and remains reclaimable.
func (s *Store) Get(key string) (string, bool) {
	it, ok := s.index[key]
	if !ok || !it.live(s.clock.Now()) {
		s.misses++
		return "", false
	}
	s.hits++
	return it.value, true
}

// Remove deletes the entry for key from both indexes and reports
// whether the key was present. Expiry is not consulted: removing an
// already-expired entry still returns true.
func (s *Store) Remove(key string) bool {
	it, ok := s.index[key]
	if !ok {
		return false
	}

	delete(s.index, key)
	s.tree.Delete(it)
	return true
}

// GetManySorted returns up to count non-expired entries whose keys are
// >= start, in ascending key order.
//
// The scan seeks to the lower bound of start and walks forward,
// skipping logically expired entries. Skipped entries still cost a
// step, so the scan may visit more than count items when expired
// entries are interleaved; they are not reclaimed along the way.
func (s *Store) GetManySorted(start string, count int) []Pair {
	if count <= 0 {
		return nil
	}

	now := s.clock.Now()
	result := make([]Pair, 0, count)

	s.tree.AscendGreaterOrEqual(&item{key: start}, func(it *item) bool {
		if !it.live(now) {
			return true
		}
		result = append(result, Pair{Key: it.key, Value: it.value})
		return len(result) < count
	})

	return result
}

// RemoveOneExpiredEntry removes one logically expired entry and
// returns its former key and value.
//
// The scan is a linear walk in key order and stops at the first
// expired entry; callers must not depend on which expired entry is
// picked when several are expired at once. Returns false when nothing
// is expired. Repeated calls drain all currently expired entries, one
// per call.
func (s *Store) RemoveOneExpiredEntry() (Pair, bool) {
	now := s.clock.Now()

	var found *item
	s.tree.Ascend(func(it *item) bool {
		if it.live(now) {
			return true
		}
		found = it
		return false
	})

	if found == nil {
		return Pair{}, false
	}

	delete(s.index, found.key)
	s.tree.Delete(found)
	s.reclaimed++
	return Pair{Key: found.key, Value: found.value}, true
}

// Len returns the number of physically present entries, including
// logically expired ones that have not been reclaimed yet.
func (s *Store) Len() int {
	return len(s.index)
}

// Stats returns a snapshot of the engine counters.
func (s *Store) Stats() Stats {
	return Stats{
		Keys:       len(s.index),
		Hits:       s.hits,
		Misses:     s.misses,
		Overwrites: s.overwrites,
		Reclaimed:  s.reclaimed,
	}
}
