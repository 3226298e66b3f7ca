package benchmark

import (
	"fmt"
	"math/rand"
	"runtime"
	"testing"
	"time"

	"github.com/yndnr/kvstore-go/pkg/clock"
	"github.com/yndnr/kvstore-go/pkg/kvstore"
)

// EntryCounts defines the store sizes for benchmarking.
var EntryCounts = []int{5000, 10000, 50000, 100000, 500000}

// SmallEntryCounts for quick benchmarks.
var SmallEntryCounts = []int{1000, 10000, 100000}

// benchKey returns the i-th benchmark key. Keys are zero-padded so
// insertion order matches key order.
func benchKey(i int) string {
	return fmt.Sprintf("key-%08d", i)
}

// prefillStore fills a store with count never-expiring entries and
// returns the keys in insertion order.
func prefillStore(store *kvstore.Store, count int) []string {
	keys := make([]string, count)
	for i := 0; i < count; i++ {
		keys[i] = benchKey(i)
		store.Set(keys[i], fmt.Sprintf("value-%d", i), 0)
	}
	return keys
}

// shuffledEntries returns count entries in random key order, for
// exercising tree inserts without the sequential fast path.
func shuffledEntries(count int) []kvstore.Entry {
	rng := rand.New(rand.NewSource(42))
	entries := make([]kvstore.Entry, count)
	for i, j := range rng.Perm(count) {
		entries[i] = kvstore.Entry{Key: benchKey(j), Value: fmt.Sprintf("value-%d", j)}
	}
	return entries
}

// newExpiredStore builds a store where every other entry is expired,
// driven by a mock clock.
func newExpiredStore(count int) (*kvstore.Store, *clock.Mock) {
	clk := clock.NewMock(time.Unix(1_700_000_000, 0))
	store := kvstore.New(nil, clk)
	for i := 0; i < count; i++ {
		ttl := time.Duration(0)
		if i%2 == 0 {
			ttl = time.Second
		}
		store.Set(benchKey(i), fmt.Sprintf("value-%d", i), ttl)
	}
	clk.Advance(time.Minute)
	return store, clk
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithEntryCounts runs a benchmark function at various store sizes.
func runWithEntryCounts(b *testing.B, counts []int, benchFn func(b *testing.B, count int)) {
	for _, count := range counts {
		b.Run(fmt.Sprintf("entries_%d", count), func(b *testing.B) {
			benchFn(b, count)
		})
	}
}
