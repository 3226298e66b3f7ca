// Package kvstore provides an embeddable ordered key-value store with
// per-entry TTL expiry.
package kvstore

import "time"

// Entry is one (key, value, ttl) triple for bulk construction.
//
// A zero TTL means the entry never expires.
type Entry struct {
	Key   string
	Value string
	TTL   time.Duration
}

// Pair is a key-value pair returned by range scans and expiry reclamation.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// item is the stored unit shared by both indexes.
//
// The ordered index and the lookup index hold the same *item, so the
// pointer doubles as a stable locator: overwrites mutate the item in
// place and never invalidate either index.
type item struct {
	key   string
	value string

	// expiresAt is the absolute expiry instant.
	// The zero value means the entry never expires.
	expiresAt time.Time
}

// live reports whether the item is visible to reads at the given instant.
func (it *item) live(now time.Time) bool {
	return it.expiresAt.IsZero() || it.expiresAt.After(now)
}

// Stats holds engine counters.
//
// Counters are observational only; they never influence visibility or
// lifecycle of entries. Keys counts physically present entries,
// including logically expired ones that have not been reclaimed yet.
type Stats struct {
	Keys       int    `json:"keys"`
	Hits       uint64 `json:"hits"`
	Misses     uint64 `json:"misses"`
	Overwrites uint64 `json:"overwrites"`
	Reclaimed  uint64 `json:"reclaimed"`
}
