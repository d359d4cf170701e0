// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

/*
Package feed implements the personalized feed pipeline: candidate
filtering, multi-factor scoring, ranking, and diversity capping.

# Architecture

The pipeline is layered bottom-up:

  - scoring: five pure leaf engines (compatibility, geographic, social,
    freshness, engagement), each returning [0, 100]
  - ScoringEngine: folds leaf factors plus safety and diversity into a
    weighted composite score, honoring the personalization toggles
  - BatchScorer: chunked parallel scoring with a TTL ScoreCache in front
  - PersonalizationService: the full filter, score, rank, cap pipeline

All inputs arrive resolved in a GenerationContext; the package performs no
I/O of its own. Scores are ephemeral and never persisted.

# Determinism

Ranking is stable: items with equal composite scores keep their arrival
order. A fixed GenerationContext.Now pins freshness, seasonality, and
cache decisions for reproducible output.
*/
package feed
