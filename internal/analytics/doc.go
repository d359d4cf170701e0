// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

/*
Package analytics records feed interaction events and derives engagement
metrics from the append-only event log.

Two Store implementations back the Engine: MemoryStore for tests and
ephemeral deployments, and BadgerStore for embedded persistence with
chronological keys, so retention sweeps scan only the stale head of the
keyspace.

Derived metrics:

  - EngagementRate: active engagements per impression, 0 when the user has
    no impressions
  - FeedDiversity: normalized Shannon entropy of the content types shown,
    0 for a single-type feed and 1 for a perfectly even spread
  - Report: the combined per-user summary over a time window

A retention sweep (Engine.Sweep) runs periodically under the supervision
tree and deletes events older than the configured window.
*/
package analytics
