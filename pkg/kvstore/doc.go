// Package kvstore provides an embeddable ordered key-value store with
// per-entry TTL expiry.
//
// The store pairs two indexes over one entry set:
//
//   - Ordered index: a B-tree keyed by byte-wise key comparison,
//     backing lower-bound seeks and ascending range scans
//   - Lookup index: a hash map from key to the tree's item, turning
//     point reads and removals into O(1) amortized operations
//
// Expiry is evaluated lazily at read time against an injected clock;
// there are no background timers and the store never shrinks on its
// own. Expired entries are reclaimed either explicitly via Remove or
// opportunistically via RemoveOneExpiredEntry, which callers may drain
// in a loop at whatever pace suits them.
//
// Usage:
//
//	store := kvstore.New(nil, clock.System())
//	store.Set("session:42", payload, 30*time.Minute)
//	v, ok := store.Get("session:42")
//	pairs := store.GetManySorted("session:", 100)
//
// Thread Safety:
//
// Store is deliberately single-threaded. Embedders running concurrent
// callers must serialize access, for example with one mutex around all
// calls or by routing operations through a single goroutine.
//
// @req RQ-0202
// @design DS-0202
// @adr AD-0201
package kvstore
