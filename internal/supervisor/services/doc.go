// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

/*
Package services provides suture.Service wrappers for Pawfeed components.

This package adapts application components to the suture v4 supervision
model, translating their lifecycle patterns (ListenAndServe, periodic
tickers) into suture's context-aware Serve pattern.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown

Cache Janitor (CacheJanitorService):
  - Evicts expired score cache entries on an interval

Analytics Sweeper (AnalyticsSweeperService):
  - Deletes analytics events past the retention window

The wrappers depend on narrow interfaces (HTTPServer, ExpiredEvictor,
RetentionSweeper) rather than concrete types, so they can be tested with
fakes and avoid import cycles with the packages they supervise.
*/
package services
