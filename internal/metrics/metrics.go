// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
	ResultSuccess  = "success"
	ResultConflict = "conflict"
	ResultHit      = "hit"
	ResultMiss     = "miss"
)

var (
	// ProfileResolutions counts public slug lookups by result.
	ProfileResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "omnilinks_profile_resolutions_total",
		Help: "Public profile resolutions by result",
	}, []string{"result"})

	// LinkClicks counts click-throughs by result.
	LinkClicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "omnilinks_link_clicks_total",
		Help: "Link click-throughs by result",
	}, []string{"result"})

	LinkReorders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "omnilinks_link_reorders_total",
		Help: "Link reorder requests by result",
	}, []string{"result"})

	// LinkReorderSize tracks how many ranks each reorder rewrites.
	LinkReorderSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "omnilinks_link_reorder_size",
		Help:    "Number of links re-ranked per reorder",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	})

	DirectoryCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "omnilinks_directory_cache_total",
		Help: "Directory cache lookups by result",
	}, []string{"result"})
)
