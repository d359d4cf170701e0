// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

/*
Package api provides the HTTP surface over the feed, experiment, and
analytics engines, routed with chi.

# Endpoints

	GET  /metrics                                          Prometheus scrape
	GET  /api/v1/health                                    liveness
	POST /api/v1/feed                                      generate a personalized feed
	POST /api/v1/feed/score                                score one item with factor breakdown
	GET  /api/v1/experiments                               list registered tests
	POST /api/v1/experiments                               register a test
	GET  /api/v1/experiments/{id}/variant?user_id=         deterministic variant assignment
	GET  /api/v1/experiments/{id}/results                  per-variant results and winner
	POST /api/v1/experiments/{id}/variants/{variant}/metrics  fold in observed metrics
	POST /api/v1/analytics/events                          record an event
	GET  /api/v1/analytics/report?user_id=&since=          engagement report

All responses use the APIResponse envelope with a success flag, payload,
error, and request metadata. Request bodies are validated with
go-playground/validator before any engine is touched.

Feed requests may carry a test_id; the handler assigns the user to a
variant and, when the variant patches the ranking config, scores through
a service built from the patched config. Variant services are cached, so
the patch cost is paid once per variant.

The DataProvider interface decouples handlers from the source of user
profiles, social graphs, histories, and candidate content. MemoryProvider
is the in-memory implementation used in tests and seed deployments.
*/
package api
