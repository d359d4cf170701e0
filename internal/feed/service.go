// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package feed

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/openann19/pawfeed/internal/metrics"
)

const (
	// maxFeedSize caps the number of items a generated feed returns.
	maxFeedSize = 50

	// diversityMinFeed is the feed size below which the diversity cap is
	// skipped; tiny result sets would otherwise be gutted.
	diversityMinFeed = 5
)

// RankedItem pairs a content item with its computed score.
type RankedItem struct {
	Content FeedContent `json:"content"`
	Score   Score       `json:"score"`
}

// PersonalizationService runs the full feed pipeline: filter, score, rank,
// and diversity-cap. Safe for concurrent use.
type PersonalizationService struct {
	engine *ScoringEngine
	batch  *BatchScorer
	logger zerolog.Logger
}

// NewPersonalizationService creates a personalization service over the
// given engine and batch scorer.
func NewPersonalizationService(engine *ScoringEngine, batch *BatchScorer, logger zerolog.Logger) *PersonalizationService {
	return &PersonalizationService{
		engine: engine,
		batch:  batch,
		logger: logger.With().Str("component", "personalization").Logger(),
	}
}

// Engine returns the underlying scoring engine.
func (s *PersonalizationService) Engine() *ScoringEngine {
	return s.engine
}

// GeneratePersonalizedFeed produces a ranked, diversity-capped feed from
// the candidate set. The result holds at most 50 items, highest composite
// score first.
func (s *PersonalizationService) GeneratePersonalizedFeed(
	ctx context.Context,
	candidates []FeedContent,
	gen *GenerationContext,
) ([]RankedItem, error) {
	started := time.Now()

	filtered := s.engine.FilterContent(candidates, gen.Filter)
	if dropped := len(candidates) - len(filtered); dropped > 0 {
		metrics.FeedItemsFiltered.Add(float64(dropped))
	}
	if len(filtered) == 0 {
		s.logger.Debug().
			Str("user_id", gen.User.ID).
			Int("candidates", len(candidates)).
			Msg("No candidates survived filtering")
		return []RankedItem{}, nil
	}

	scores, err := s.batch.ScoreAll(ctx, filtered, gen)
	if err != nil {
		return nil, fmt.Errorf("score candidates: %w", err)
	}

	ranked := make([]RankedItem, len(filtered))
	for i := range filtered {
		ranked[i] = RankedItem{Content: filtered[i], Score: scores[i]}
	}
	s.rank(ranked)

	feed := s.applyDiversityCap(ranked)

	metrics.FeedGenerationDuration.Observe(time.Since(started).Seconds())
	metrics.FeedSize.Observe(float64(len(feed)))
	s.logger.Debug().
		Str("user_id", gen.User.ID).
		Int("candidates", len(candidates)).
		Int("filtered", len(filtered)).
		Int("returned", len(feed)).
		Dur("elapsed", time.Since(started)).
		Msg("Generated personalized feed")

	return feed, nil
}

// rank sorts items in place, highest score first, stable on ties.
func (s *PersonalizationService) rank(items []RankedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score.Value > items[j].Score.Value
	})
}

// applyDiversityCap walks the ranked list, admitting an item when its type
// is new to the feed or keeping it would not push that type's share over
// the configured ratio. The walk stops once the feed is full. Lists of at
// most five items skip the cap entirely.
func (s *PersonalizationService) applyDiversityCap(ranked []RankedItem) []RankedItem {
	if len(ranked) <= diversityMinFeed {
		if len(ranked) > maxFeedSize {
			return ranked[:maxFeedSize]
		}
		return ranked
	}

	ratio := s.engine.Config().DiversityRatio
	counts := make(map[ContentType]int)
	accepted := make([]RankedItem, 0, maxFeedSize)

	for _, item := range ranked {
		if len(accepted) >= maxFeedSize {
			break
		}
		t := item.Content.Type
		if counts[t] > 0 {
			share := float64(counts[t]+1) / float64(len(accepted)+1)
			if share > ratio {
				continue
			}
		}
		accepted = append(accepted, item)
		counts[t]++
	}

	return accepted
}
