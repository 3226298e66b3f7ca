// Package metric provides Prometheus metrics for kvstore.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/kvstore-go/pkg/kvstore"
)

// StatsSource supplies engine counters to the collector.
// *kvstore.Store satisfies it.
type StatsSource interface {
	Stats() kvstore.Stats
}

// Collector exposes kvstore engine counters as Prometheus metrics.
//
// The engine is single-threaded and so is this collector: embedders
// must serialize Collect calls with store access the same way they
// serialize any other store operation.
type Collector struct {
	source StatsSource

	keys       *prometheus.Desc
	hits       *prometheus.Desc
	misses     *prometheus.Desc
	overwrites *prometheus.Desc
	reclaimed  *prometheus.Desc
}

// NewCollector creates a collector reading from the given source.
func NewCollector(source StatsSource) *Collector {
	return &Collector{
		source: source,
		keys: prometheus.NewDesc(
			"kvstore_keys",
			"Number of physically present entries, including logically expired ones.",
			nil, nil),
		hits: prometheus.NewDesc(
			"kvstore_hits_total",
			"Number of point lookups that returned a live value.",
			nil, nil),
		misses: prometheus.NewDesc(
			"kvstore_misses_total",
			"Number of point lookups that missed or hit an expired entry.",
			nil, nil),
		overwrites: prometheus.NewDesc(
			"kvstore_overwrites_total",
			"Number of Set calls that replaced an existing entry.",
			nil, nil),
		reclaimed: prometheus.NewDesc(
			"kvstore_reclaimed_total",
			"Number of expired entries removed by reclamation.",
			nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.keys
	ch <- c.hits
	ch <- c.misses
	ch <- c.overwrites
	ch <- c.reclaimed
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()

	ch <- prometheus.MustNewConstMetric(c.keys, prometheus.GaugeValue, float64(stats.Keys))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses))
	ch <- prometheus.MustNewConstMetric(c.overwrites, prometheus.CounterValue, float64(stats.Overwrites))
	ch <- prometheus.MustNewConstMetric(c.reclaimed, prometheus.CounterValue, float64(stats.Reclaimed))
}
