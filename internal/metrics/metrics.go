// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Feed Pipeline Metrics
	FeedGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_generation_duration_seconds",
			Help:    "End-to-end personalized feed generation latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	FeedItemsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_items_scored_total",
			Help: "Total number of content items run through the scoring engine",
		},
	)

	FeedItemsFiltered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_items_filtered_total",
			Help: "Total number of candidates dropped by pre-scoring filters",
		},
	)

	FeedSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_size_items",
			Help:    "Number of items in generated feeds",
			Buckets: []float64{1, 5, 10, 20, 30, 40, 50},
		},
	)

	// Score Cache Metrics
	ScoreCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "score_cache_hits_total",
			Help: "Total number of score cache lookups served from cache",
		},
	)

	ScoreCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "score_cache_misses_total",
			Help: "Total number of score cache lookups that required recomputation",
		},
	)

	ScoreCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "score_cache_evictions_total",
			Help: "Total number of expired score cache entries removed by the janitor",
		},
	)

	ScoreCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "score_cache_entries",
			Help: "Current number of score cache entries held",
		},
	)

	// Experimentation Metrics
	VariantAssignments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "experiment_assignments_total",
			Help: "Total number of variant assignments served",
		},
		[]string{"test", "variant"},
	)

	ExperimentMetricUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "experiment_metric_updates_total",
			Help: "Total number of per-variant metric recordings",
		},
		[]string{"test"},
	)

	// Analytics Metrics
	AnalyticsEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_events_total",
			Help: "Total number of analytics events recorded",
		},
		[]string{"type"},
	)

	AnalyticsSweeps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_sweeps_total",
			Help: "Total number of retention sweeps executed against the event store",
		},
	)

	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "endpoint"},
	)
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
