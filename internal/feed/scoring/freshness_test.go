// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package scoring

import (
	"testing"
	"time"

	"github.com/openann19/pawfeed/internal/models"
)

func TestFreshness_Score(t *testing.T) {
	t.Parallel()

	engine := NewFreshness()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("brand new content maxes out", func(t *testing.T) {
		t.Parallel()
		cfg := models.DefaultAlgorithmConfig()
		if got := engine.Score(now, now, &cfg); got != 100 {
			t.Errorf("Score = %d, want 100", got)
		}
	})

	t.Run("future timestamps are treated as age zero", func(t *testing.T) {
		t.Parallel()
		cfg := models.DefaultAlgorithmConfig()
		if got := engine.Score(now.Add(2*time.Hour), now, &cfg); got != 100 {
			t.Errorf("Score = %d, want 100", got)
		}
	})

	t.Run("expired content pins to the floor", func(t *testing.T) {
		t.Parallel()
		cfg := models.DefaultAlgorithmConfig()
		age := time.Duration(cfg.MaxAgeDays)*24*time.Hour + time.Hour
		if got := engine.Score(now.Add(-age), now, &cfg); got != 10 {
			t.Errorf("Score = %d, want exactly 10", got)
		}
	})

	t.Run("decay is monotonically non-increasing", func(t *testing.T) {
		t.Parallel()
		cfg := models.DefaultAlgorithmConfig()
		cfg.HalfLifeHours = 1 // steep decay keeps scores off the 100 clamp

		ages := []time.Duration{
			30 * time.Minute,
			90 * time.Minute,
			3 * time.Hour,
			6 * time.Hour,
			12 * time.Hour,
			26 * time.Hour,
			48 * time.Hour,
		}

		prev := 101
		for _, age := range ages {
			got := engine.Score(now.Add(-age), now, &cfg)
			if got > prev {
				t.Errorf("Score(age=%s) = %d, exceeds previous %d", age, got, prev)
			}
			if got < 10 || got > 100 {
				t.Errorf("Score(age=%s) = %d, out of [10, 100]", age, got)
			}
			prev = got
		}
	})

	t.Run("recency boosts apply under the thresholds", func(t *testing.T) {
		t.Parallel()
		cfg := models.DefaultAlgorithmConfig()
		cfg.HalfLifeHours = 1

		tests := []struct {
			name string
			age  time.Duration
			want int
		}{
			// 100 * 0.5^0.5 * 1.2 = 84.85
			{"under one hour gets 20 percent", 30 * time.Minute, 85},
			// 100 * 0.5^1.5 * 1.1 = 38.89
			{"under a day gets 10 percent", 90 * time.Minute, 39},
			// 100 * 0.5^25, no boost, clamps to floor
			{"past a day decays unboosted", 25 * time.Hour, 10},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				if got := engine.Score(now.Add(-tt.age), now, &cfg); got != tt.want {
					t.Errorf("Score = %d, want %d", got, tt.want)
				}
			})
		}
	})

	t.Run("non-positive half-life falls back to 24h", func(t *testing.T) {
		t.Parallel()
		cfg := models.DefaultAlgorithmConfig()
		cfg.HalfLifeHours = 0

		// 100 * 0.5^(12/24) * 1.1 = 77.78
		if got := engine.Score(now.Add(-12*time.Hour), now, &cfg); got != 78 {
			t.Errorf("Score = %d, want 78", got)
		}
	})
}
