// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package feed

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/openann19/pawfeed/internal/feed/scoring"
)

const (
	// defaultSafetyThreshold applies when FilterOptions leaves the
	// threshold unset.
	defaultSafetyThreshold = 70

	// defaultModerationScore is assumed for content the moderation
	// pipeline has not scored yet.
	defaultModerationScore = 85

	// neutralFactor substitutes for any factor whose toggle is disabled.
	neutralFactor = 50

	// diversityWindow is how many recent history items feed the diversity
	// bonus.
	diversityWindow = 20
)

// ScoringEngine computes composite relevance scores for feed candidates.
// It owns the five leaf scoring engines and the algorithm configuration.
//
// The engine is stateless apart from its immutable configuration and is
// safe for concurrent use.
type ScoringEngine struct {
	cfg    AlgorithmConfig
	logger zerolog.Logger

	compat scoring.PetCompatibility
	geo    scoring.Geographic
	social scoring.Social
	fresh  scoring.Freshness
	engage scoring.EngagementPrediction
}

// NewScoringEngine creates a scoring engine with the given configuration.
func NewScoringEngine(cfg AlgorithmConfig, logger zerolog.Logger) (*ScoringEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid algorithm config: %w", err)
	}

	log := logger.With().Str("component", "scoring_engine").Logger()
	if cfg.WeightSumDeviates() {
		log.Warn().
			Float64("weight_sum", cfg.Weights.Sum()).
			Msg("Factor weights deviate from 100; composite scores will be skewed")
	}

	return &ScoringEngine{
		cfg:    cfg,
		logger: log,
		compat: scoring.NewPetCompatibility(),
		geo:    scoring.NewGeographic(),
		social: scoring.NewSocial(),
		fresh:  scoring.NewFreshness(),
		engage: scoring.NewEngagementPrediction(),
	}, nil
}

// Config returns the engine's algorithm configuration.
func (e *ScoringEngine) Config() AlgorithmConfig {
	return e.cfg
}

// ScoreContent computes the composite score for one content item.
// Disabled factor toggles substitute a neutral 50 so the weight scheme
// stays intact.
func (e *ScoringEngine) ScoreContent(content *FeedContent, gen *GenerationContext) Score {
	now := gen.ReferenceTime()

	factors := ScoreFactors{
		Compatibility: neutralFactor,
		Geographic:    neutralFactor,
		Social:        neutralFactor,
		Freshness:     e.fresh.Score(content.CreatedAt, now, &e.cfg),
		Engagement:    e.engage.Predict(content, &gen.History, gen.TrendingTopics, now),
		Safety:        safetyScore(content),
		Diversity:     diversityBonus(content.Type, gen.User.FeedHistory),
	}

	if e.cfg.PetMatching {
		factors.Compatibility = e.compat.Score(&gen.User.Pet, &content.Pet)
	}
	if e.cfg.Geographic {
		factors.Geographic = e.geo.Score(gen.User.Location, content.Location, gen.User.LocationPrefs)
	}
	if e.cfg.SocialBoost {
		factors.Social = e.social.Score(gen.User.ID, content.AuthorID, &gen.Graph)
	}

	return Score{
		ContentID:    content.ID,
		Value:        e.composite(factors),
		Factors:      factors,
		CalculatedAt: now,
	}
}

// composite folds the factor breakdown into the weighted composite score.
func (e *ScoringEngine) composite(f ScoreFactors) int {
	w := e.cfg.Weights
	sum := w.Compatibility*float64(f.Compatibility) +
		w.Geographic*float64(f.Geographic) +
		w.Social*float64(f.Social) +
		w.Freshness*float64(f.Freshness) +
		w.Engagement*float64(f.Engagement) +
		w.Safety*float64(f.Safety) +
		w.Diversity*float64(f.Diversity)

	v := int(math.Round(sum / 100))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// FilterContent drops candidates that must never be scored: structurally
// invalid items, unsafe moderation scores, blocked types and authors, and,
// when LocationOnly is set, content without a location. The input slice is
// not modified.
func (e *ScoringEngine) FilterContent(items []FeedContent, opts FilterOptions) []FeedContent {
	threshold := defaultSafetyThreshold
	if opts.SafetyThreshold != nil {
		threshold = *opts.SafetyThreshold
	}

	blockedTypes := make(map[ContentType]struct{}, len(opts.BlockedTypes))
	for _, t := range opts.BlockedTypes {
		blockedTypes[t] = struct{}{}
	}
	blockedAuthors := make(map[string]struct{}, len(opts.BlockedAuthors))
	for _, a := range opts.BlockedAuthors {
		blockedAuthors[a] = struct{}{}
	}

	out := make([]FeedContent, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			e.logger.Debug().Str("author_id", item.AuthorID).Msg("Dropping content without id")
			continue
		}
		if moderationScore(&item) < threshold {
			continue
		}
		if _, ok := blockedTypes[item.Type]; ok {
			continue
		}
		if _, ok := blockedAuthors[item.AuthorID]; ok {
			continue
		}
		if opts.LocationOnly && item.Location == nil {
			continue
		}
		out = append(out, item)
	}
	return out
}

// RankContent sorts scores in place, highest composite first. The sort is
// stable so equal scores keep their arrival order.
func (e *ScoringEngine) RankContent(scores []Score) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Value > scores[j].Value
	})
}

// safetyScore returns the moderation score, assuming the default for
// unmoderated content.
func safetyScore(content *FeedContent) int {
	return moderationScore(content)
}

func moderationScore(content *FeedContent) int {
	if content.ModerationScore == nil {
		return defaultModerationScore
	}
	return *content.ModerationScore
}

// diversityBonus rewards content types underrepresented in the viewer's
// recent history: a type absent from the last twenty items scores the full
// 50, one filling the whole window scores 0.
func diversityBonus(t ContentType, history []FeedContent) int {
	if len(history) == 0 {
		return 50
	}

	window := history
	if len(window) > diversityWindow {
		window = window[len(window)-diversityWindow:]
	}

	count := 0
	for i := range window {
		if window[i].Type == t {
			count++
		}
	}

	freq := float64(count) / float64(diversityWindow)
	return int(math.Round((1 - freq) * 50))
}
