// Package metrics exposes Prometheus counters for the hot paths of the
// library: pattern cache effectiveness and bundle growth. Registration uses
// the default registry via promauto; consumers that scrape expose it
// themselves.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PatternCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stixcore_pattern_cache_hits_total",
			Help: "Total number of pattern parses served from the LRU cache",
		},
	)

	PatternCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stixcore_pattern_cache_misses_total",
			Help: "Total number of pattern parses that missed the LRU cache",
		},
	)

	BundleObjectsInserted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stixcore_bundle_objects_inserted_total",
			Help: "Total number of objects inserted into bundles",
		},
		[]string{"type"},
	)

	BundleInsertFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stixcore_bundle_insert_failures_total",
			Help: "Total number of rejected bundle insertions",
		},
	)
)
