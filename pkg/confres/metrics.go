// SPDX-License-Identifier: Apache-2.0

package confres

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for the resolution engine and its age-aware cache.
var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confres_cache_hits_total",
		Help: "Total number of cache lookups served from a fresh entry",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confres_cache_misses_total",
		Help: "Total number of cache lookups that required a fallback resolve",
	})

	cacheStores = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confres_cache_stores_total",
		Help: "Total number of values written into the cache after a resolve",
	})

	// resolutionErrors is labeled by error code (CodeExpansionLoop and
	// friends), a small fixed set, not by key.
	resolutionErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "confres_resolution_errors_total",
		Help: "Total number of errors raised while resolving a configuration key",
	}, []string{"reason"})
)
