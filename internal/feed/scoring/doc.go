// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

// Package scoring implements the leaf scoring engines behind the feed
// ranking pipeline.
//
// Each engine is a pure, side-effect-free value type producing an integer
// score in [0, 100]:
//
//   - PetCompatibility: affinity between two pet profiles
//   - Geographic: distance-bucketed location relevance
//   - Social: social-graph proximity between viewer and author
//   - Freshness: exponential time decay of content age
//   - EngagementPrediction: likelihood the viewer engages with the item
//
// # Thread Safety
//
// Engines hold no mutable state; all inputs arrive resolved from the
// caller, and a single scoring call never performs I/O or blocks. They are
// safe for concurrent invocation from any number of goroutines.
//
// # Graceful Degradation
//
// Missing or empty inputs fall back to a neutral midpoint score of 50
// rather than erroring; divisions that could produce NaN or Inf are
// guarded. Scoring always completes for well-typed input.
package scoring
