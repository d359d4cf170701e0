// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package scoring

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/openann19/pawfeed/internal/models"
)

// Deviation multipliers for the additive engagement factors. Each factor
// contributes its deviation from the 0.5 neutral point times its
// multiplier.
const (
	typePreferenceMultiplier = 40
	topicRelevanceMultiplier = 25
	authorAffinityMultiplier = 30
	activeHourMultiplier     = 10

	// maxTrendingBonus and maxMomentumBonus cap the two additive bonuses
	// applied after the seasonal multiplier.
	maxTrendingBonus = 10
	maxMomentumBonus = 10

	// activeHourWindow is the +-hours around the reference hour considered
	// "active".
	activeHourWindow = 2
)

// EngagementPrediction predicts a user's likelihood to engage with a
// content item. It is a pure value type, safe for concurrent use.
//
// Prediction starts from a neutral base of 50, adds the type-preference,
// topic-relevance, author-affinity, and active-hour deviations, multiplies
// the running total by the season x content-type multiplier, then adds the
// trending and behavioral-momentum bonuses. The result is clamped to
// [0, 100].
type EngagementPrediction struct{}

// NewEngagementPrediction creates an engagement prediction engine.
func NewEngagementPrediction() EngagementPrediction {
	return EngagementPrediction{}
}

// Predict returns the predicted engagement score in [0, 100].
func (EngagementPrediction) Predict(
	content *models.FeedContent,
	history *models.EngagementHistory,
	trending map[string]float64,
	now time.Time,
) int {
	score := 50.0

	score += (typePreference(content.Type, history) - 0.5) * typePreferenceMultiplier
	score += (topicRelevance(content.Topics, history.Interests) - 0.5) * topicRelevanceMultiplier
	score += (authorAffinity(content.AuthorID, history) - 0.5) * authorAffinityMultiplier
	score += (activeHourProximity(history.ActiveHours, now.Hour()) - 0.5) * activeHourMultiplier

	score *= seasonalMultiplier(seasonOf(now), content.Type)

	score += trendingBonus(content.Topics, trending)
	score += momentumBonus(content, history)

	return clampInt(int(math.Round(score)), 0, 100)
}

// PredictWithModel returns a model-backed engagement prediction.
// No model is wired yet; it falls back to the rule-based prediction.
func (e EngagementPrediction) PredictWithModel(
	_ context.Context,
	content *models.FeedContent,
	history *models.EngagementHistory,
	trending map[string]float64,
	now time.Time,
) int {
	return e.Predict(content, history, trending, now)
}

// typePreference returns the learned preference weight for the content
// type, neutral 0.5 when unknown.
func typePreference(t models.ContentType, history *models.EngagementHistory) float64 {
	if p, ok := history.ContentTypePreferences[t]; ok {
		return clampFloat(p, 0, 1)
	}
	return 0.5
}

// topicRelevance measures overlap between content topics and user
// interests: an exact match counts 1.0, a substring partial match 0.5,
// normalized by the number of content topics. No topics means neutral 0.5.
func topicRelevance(topics, interests []string) float64 {
	if len(topics) == 0 || len(interests) == 0 {
		return 0.5
	}

	var total float64
	for _, topic := range topics {
		topic = strings.ToLower(strings.TrimSpace(topic))
		best := 0.0
		for _, interest := range interests {
			interest = strings.ToLower(strings.TrimSpace(interest))
			switch {
			case topic == interest:
				best = 1.0
			case best < 0.5 && (strings.Contains(topic, interest) || strings.Contains(interest, topic)):
				best = 0.5
			}
			if best == 1.0 {
				break
			}
		}
		total += best
	}

	return clampFloat(total/float64(len(topics)), 0, 1)
}

// authorAffinity returns the learned engagement weight for the author,
// neutral 0.5 when unknown.
func authorAffinity(authorID string, history *models.EngagementHistory) float64 {
	if a, ok := history.AuthorEngagement[authorID]; ok {
		return clampFloat(a, 0, 1)
	}
	return 0.5
}

// activeHourProximity returns 1 when the reference hour falls within the
// +-2h window of any active hour, 0 otherwise, and neutral 0.5 when no
// active hours are known.
func activeHourProximity(activeHours []int, hour int) float64 {
	if len(activeHours) == 0 {
		return 0.5
	}

	for _, h := range activeHours {
		diff := hour - h
		if diff < 0 {
			diff = -diff
		}
		// Hours wrap at midnight.
		if diff > 12 {
			diff = 24 - diff
		}
		if diff <= activeHourWindow {
			return 1
		}
	}
	return 0
}

// seasonalMultiplier looks up the season x content-type multiplier,
// defaulting to 1.0 for unlisted combinations.
func seasonalMultiplier(season string, t models.ContentType) float64 {
	if byType, ok := seasonalMultipliers[season]; ok {
		if m, ok := byType[string(t)]; ok {
			return m
		}
	}
	return 1.0
}

// seasonOf maps a time to its northern-hemisphere season.
func seasonOf(t time.Time) string {
	switch t.Month() {
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	case time.September, time.October, time.November:
		return "autumn"
	default:
		return "winter"
	}
}

// trendingBonus sums trend scores weighted by per-topic base weights,
// capped at maxTrendingBonus.
func trendingBonus(topics []string, trending map[string]float64) float64 {
	if len(trending) == 0 {
		return 0
	}

	var bonus float64
	for _, topic := range topics {
		topic = strings.ToLower(strings.TrimSpace(topic))
		trend, ok := trending[topic]
		if !ok || trend <= 0 {
			continue
		}
		weight, ok := topicBaseWeights[topic]
		if !ok {
			weight = 0.5
		}
		bonus += trend * weight
	}

	if bonus > maxTrendingBonus {
		return maxTrendingBonus
	}
	return bonus
}

// momentumBonus multiplies the user's recent activity ratio by the
// content's own popularity ratio, scaled to maxMomentumBonus.
func momentumBonus(content *models.FeedContent, history *models.EngagementHistory) float64 {
	if len(history.RecentEvents) == 0 {
		return 0
	}

	active := 0
	for _, ev := range history.RecentEvents {
		if ev.Type.IsActive() {
			active++
		}
	}
	activityRatio := float64(active) / float64(len(history.RecentEvents))

	popularity := 0.0
	if content.Views > 0 {
		popularity = clampFloat(float64(content.EngagementCount())/float64(content.Views), 0, 1)
	}

	return activityRatio * popularity * maxMomentumBonus
}

// clampFloat bounds v to [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
