// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package scoring

import (
	"math"
	"time"

	"github.com/openann19/pawfeed/internal/models"
)

// freshnessFloor is the minimum freshness score. Content older than the
// configured maximum age is forced to exactly this value.
const freshnessFloor = 10

// Freshness scores content recency via exponential time decay. It is a
// pure value type, safe for concurrent use.
//
// The base curve is 100 * 0.5^(ageHours / halfLifeHours), boosted by 20%
// under one hour and 10% under twenty-four hours, clamped to [10, 100].
type Freshness struct{}

// NewFreshness creates a content freshness engine.
func NewFreshness() Freshness {
	return Freshness{}
}

// Score returns the freshness of content created at createdAt, evaluated
// at now under the given decay configuration.
func (Freshness) Score(createdAt, now time.Time, cfg *models.AlgorithmConfig) int {
	ageHours := now.Sub(createdAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}

	if ageHours > float64(cfg.MaxAgeDays)*24 {
		return freshnessFloor
	}

	halfLife := cfg.HalfLifeHours
	if halfLife <= 0 {
		halfLife = 24
	}

	score := 100 * math.Pow(0.5, ageHours/halfLife)
	switch {
	case ageHours < 1:
		score *= 1.2
	case ageHours < 24:
		score *= 1.1
	}

	return clampInt(int(math.Round(score)), freshnessFloor, 100)
}
