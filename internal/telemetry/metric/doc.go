// Package metric provides Prometheus metrics for kvstore.
//
// The engine itself carries no metrics dependency; this package is the
// adapter an embedder registers into its own Prometheus registry:
//
//	reg.MustRegister(metric.NewCollector(store))
//
// All values come from kvstore.Stats, which is a plain snapshot, so
// collection cost is O(1).
package metric
