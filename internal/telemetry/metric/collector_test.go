package metric

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yndnr/kvstore-go/pkg/clock"
	"github.com/yndnr/kvstore-go/pkg/kvstore"
)

func TestCollector_Registers(t *testing.T) {
	store := kvstore.New(nil, clock.System())

	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(NewCollector(store)); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if got := testutil.CollectAndCount(NewCollector(store)); got != 5 {
		t.Fatalf("CollectAndCount = %d, want 5", got)
	}
}

func TestCollector_ReportsStats(t *testing.T) {
	clk := clock.NewMock(time.Unix(0, 0))
	store := kvstore.New(nil, clk)

	store.Set("a", "1", time.Second)
	store.Set("b", "2", 0)
	store.Get("b")      // hit
	store.Get("absent") // miss
	clk.Advance(2 * time.Second)
	store.RemoveOneExpiredEntry()

	expected := `
# HELP kvstore_hits_total Number of point lookups that returned a live value.
# TYPE kvstore_hits_total counter
kvstore_hits_total 1
# HELP kvstore_keys Number of physically present entries, including logically expired ones.
# TYPE kvstore_keys gauge
kvstore_keys 1
# HELP kvstore_misses_total Number of point lookups that missed or hit an expired entry.
# TYPE kvstore_misses_total counter
kvstore_misses_total 1
# HELP kvstore_reclaimed_total Number of expired entries removed by reclamation.
# TYPE kvstore_reclaimed_total counter
kvstore_reclaimed_total 1
`
	err := testutil.CollectAndCompare(NewCollector(store), strings.NewReader(expected),
		"kvstore_keys", "kvstore_hits_total", "kvstore_misses_total", "kvstore_reclaimed_total")
	if err != nil {
		t.Fatalf("CollectAndCompare: %v", err)
	}
}
