// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

/*
Package supervisor provides process supervision for Pawfeed using suture v4.

This package implements a hierarchical supervisor tree that manages the
lifecycle of all long-running services in the application. It provides
Erlang/OTP-style supervision with automatic restart, failure isolation,
and graceful shutdown.

# Overview

The supervisor tree organizes services into two layers:

	RootSupervisor ("pawfeed")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   ├── CacheJanitorService
	│   └── AnalyticsSweeperService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

This hierarchy ensures that a crash in a maintenance loop does not affect
API availability, and each layer restarts independently with its own
failure counting.

# Usage Example

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    log.Fatal(err)
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.AddMaintenanceService(services.NewCacheJanitorService(cache, time.Minute, logger))

	if err := tree.Serve(ctx); err != nil {
	    log.Printf("supervisor stopped: %v", err)
	}

# Failure Handling

The supervisor uses a failure counter with exponential decay. Each
failure increments the counter; the counter decays over FailureDecay
seconds; once it exceeds FailureThreshold, restarts are delayed by
FailureBackoff. Defaults match suture's production defaults.

# Service Interface

All services implement suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Return nil to stop cleanly (no restart), return an error to be
restarted, and return promptly when the context is canceled.

# Debugging Shutdown Issues

If services do not stop within the timeout, UnstoppedServiceReport
lists the stragglers. Common causes are goroutines ignoring context
cancellation and blocked network I/O without deadlines.
*/
package supervisor
