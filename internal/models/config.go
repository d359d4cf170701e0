// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package models

import (
	"fmt"
	"math"
)

// FactorWeights defines the relative contribution of each scoring factor.
// The composite formula divides the weighted sum by 100, so weights are
// expected to sum to roughly 100. The engine validates non-negativity but
// deliberately does not enforce the sum; weight validity is a caller
// contract.
type FactorWeights struct {
	// Compatibility is the weight for pet compatibility.
	Compatibility float64 `json:"compatibility" koanf:"compatibility"`

	// Geographic is the weight for geographic relevance.
	Geographic float64 `json:"geographic" koanf:"geographic"`

	// Social is the weight for social-graph proximity.
	Social float64 `json:"social" koanf:"social"`

	// Freshness is the weight for content recency.
	Freshness float64 `json:"freshness" koanf:"freshness"`

	// Engagement is the weight for predicted engagement.
	Engagement float64 `json:"engagement" koanf:"engagement"`

	// Safety is the weight for the moderation score.
	Safety float64 `json:"safety" koanf:"safety"`

	// Diversity is the weight for the diversity bonus.
	Diversity float64 `json:"diversity" koanf:"diversity"`
}

// Sum returns the total of all weights.
func (w FactorWeights) Sum() float64 {
	return w.Compatibility + w.Geographic + w.Social +
		w.Freshness + w.Engagement + w.Safety + w.Diversity
}

// ToMap returns the weights as a string-keyed map.
func (w FactorWeights) ToMap() map[string]float64 {
	return map[string]float64{
		"compatibility": w.Compatibility,
		"geographic":    w.Geographic,
		"social":        w.Social,
		"freshness":     w.Freshness,
		"engagement":    w.Engagement,
		"safety":        w.Safety,
		"diversity":     w.Diversity,
	}
}

// AlgorithmConfig is the single configuration surface of the ranking
// algorithm: the seven factor weights, the two time-decay parameters, and
// the four personalization toggles.
type AlgorithmConfig struct {
	// Weights defines the relative contribution of each factor.
	Weights FactorWeights `json:"weights" koanf:"weights"`

	// HalfLifeHours is the freshness half-life: hours after which
	// exponential decay halves a content item's freshness score.
	// Default: 24.
	HalfLifeHours float64 `json:"half_life_hours" koanf:"half_life_hours"`

	// MaxAgeDays forces content older than this to the freshness floor.
	// Default: 7.
	MaxAgeDays int `json:"max_age_days" koanf:"max_age_days"`

	// PetMatching enables pet compatibility scoring. When disabled the
	// compatibility factor is a neutral 50.
	PetMatching bool `json:"pet_matching" koanf:"pet_matching"`

	// Geographic enables geographic relevance scoring. When disabled the
	// geographic factor is a neutral 50.
	Geographic bool `json:"geographic" koanf:"geographic"`

	// SocialBoost enables social-graph proximity scoring. When disabled
	// the social factor is a neutral 50.
	SocialBoost bool `json:"social_boost" koanf:"social_boost"`

	// DiversityRatio caps any single content type's share of the final
	// feed, in (0, 1].
	// Default: 0.4.
	DiversityRatio float64 `json:"diversity_ratio" koanf:"diversity_ratio"`
}

// DefaultAlgorithmConfig returns an AlgorithmConfig with production defaults.
// The default weights sum to 100.
func DefaultAlgorithmConfig() AlgorithmConfig {
	return AlgorithmConfig{
		Weights: FactorWeights{
			Compatibility: 20,
			Geographic:    15,
			Social:        20,
			Freshness:     15,
			Engagement:    15,
			Safety:        10,
			Diversity:     5,
		},
		HalfLifeHours:  24,
		MaxAgeDays:     7,
		PetMatching:    true,
		Geographic:     true,
		SocialBoost:    true,
		DiversityRatio: 0.4,
	}
}

// Validate checks the configuration for errors. Weights must be
// non-negative; the sum is not enforced (see FactorWeights).
func (c *AlgorithmConfig) Validate() error {
	for name, w := range c.Weights.ToMap() {
		if w < 0 {
			return fmt.Errorf("weights.%s must be non-negative, got %f", name, w)
		}
	}
	if c.HalfLifeHours <= 0 {
		return fmt.Errorf("half_life_hours must be positive, got %f", c.HalfLifeHours)
	}
	if c.MaxAgeDays <= 0 {
		return fmt.Errorf("max_age_days must be positive, got %d", c.MaxAgeDays)
	}
	if c.DiversityRatio <= 0 || c.DiversityRatio > 1 {
		return fmt.Errorf("diversity_ratio must be in (0, 1], got %f", c.DiversityRatio)
	}
	return nil
}

// WeightSumDeviates reports whether the weight sum strays from 100 by more
// than one point. Callers use this to log a warning without rejecting the
// configuration.
func (c *AlgorithmConfig) WeightSumDeviates() bool {
	return math.Abs(c.Weights.Sum()-100) > 1
}

// ConfigPatch is a partial AlgorithmConfig override, as embedded in an
// experiment variant. Nil fields leave the base configuration untouched.
type ConfigPatch struct {
	Weights        *FactorWeights `json:"weights,omitempty" koanf:"weights"`
	HalfLifeHours  *float64       `json:"half_life_hours,omitempty" koanf:"half_life_hours"`
	MaxAgeDays     *int           `json:"max_age_days,omitempty" koanf:"max_age_days"`
	PetMatching    *bool          `json:"pet_matching,omitempty" koanf:"pet_matching"`
	Geographic     *bool          `json:"geographic,omitempty" koanf:"geographic"`
	SocialBoost    *bool          `json:"social_boost,omitempty" koanf:"social_boost"`
	DiversityRatio *float64       `json:"diversity_ratio,omitempty" koanf:"diversity_ratio"`
}

// Apply returns a copy of base with the patch's non-nil fields applied.
func (p *ConfigPatch) Apply(base AlgorithmConfig) AlgorithmConfig {
	if p == nil {
		return base
	}
	out := base
	if p.Weights != nil {
		out.Weights = *p.Weights
	}
	if p.HalfLifeHours != nil {
		out.HalfLifeHours = *p.HalfLifeHours
	}
	if p.MaxAgeDays != nil {
		out.MaxAgeDays = *p.MaxAgeDays
	}
	if p.PetMatching != nil {
		out.PetMatching = *p.PetMatching
	}
	if p.Geographic != nil {
		out.Geographic = *p.Geographic
	}
	if p.SocialBoost != nil {
		out.SocialBoost = *p.SocialBoost
	}
	if p.DiversityRatio != nil {
		out.DiversityRatio = *p.DiversityRatio
	}
	return out
}
