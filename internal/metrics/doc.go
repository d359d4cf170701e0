// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors register against the default registry via promauto at package
init and are exposed through the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Feed Pipeline:
  - feed_generation_duration_seconds: End-to-end feed latency (histogram)
  - feed_items_scored_total: Items run through the scoring engine (counter)
  - feed_items_filtered_total: Candidates dropped before scoring (counter)
  - feed_size_items: Final feed sizes (histogram)

Score Cache:
  - score_cache_hits_total / score_cache_misses_total: Lookup outcomes (counters)
  - score_cache_evictions_total: Janitor evictions (counter)
  - score_cache_entries: Current cache size (gauge)

Experimentation:
  - experiment_assignments_total: Variant assignments by test and variant (counter)
  - experiment_metric_updates_total: Metric recordings by test (counter)

Analytics:
  - analytics_events_total: Recorded events by type (counter)
  - analytics_sweeps_total: Retention sweeps (counter)

HTTP:
  - http_requests_total: Requests by method, endpoint, status (counter)
  - http_request_duration_seconds: Request latency (histogram)
*/
package metrics
