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

// winterNoon has a 1.0 seasonal multiplier for photo content, keeping the
// neutral baseline at exactly 50.
var winterNoon = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func photoContent() *models.FeedContent {
	return &models.FeedContent{
		ID:       "content-1",
		Type:     models.ContentPhoto,
		AuthorID: "author-1",
	}
}

func TestEngagementPrediction_Predict(t *testing.T) {
	t.Parallel()

	engine := NewEngagementPrediction()

	t.Run("unknown user is neutral", func(t *testing.T) {
		t.Parallel()
		got := engine.Predict(photoContent(), &models.EngagementHistory{}, nil, winterNoon)
		if got != 50 {
			t.Errorf("Predict = %d, want 50", got)
		}
	})

	t.Run("type preference shifts by up to twenty", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			pref float64
			want int
		}{
			{"loved type", 1.0, 70},
			{"neutral type", 0.5, 50},
			{"avoided type", 0.0, 30},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				history := &models.EngagementHistory{
					ContentTypePreferences: map[models.ContentType]float64{models.ContentPhoto: tt.pref},
				}
				if got := engine.Predict(photoContent(), history, nil, winterNoon); got != tt.want {
					t.Errorf("Predict = %d, want %d", got, tt.want)
				}
			})
		}
	})

	t.Run("author affinity shifts by up to fifteen", func(t *testing.T) {
		t.Parallel()
		history := &models.EngagementHistory{
			AuthorEngagement: map[string]float64{"author-1": 1.0},
		}
		if got := engine.Predict(photoContent(), history, nil, winterNoon); got != 65 {
			t.Errorf("Predict = %d, want 65", got)
		}
	})

	t.Run("matching interests raise the score", func(t *testing.T) {
		t.Parallel()
		content := photoContent()
		content.Topics = []string{"training", "agility"}

		history := &models.EngagementHistory{Interests: []string{"training", "agility"}}
		matched := engine.Predict(content, history, nil, winterNoon)

		mismatched := engine.Predict(content,
			&models.EngagementHistory{Interests: []string{"aquariums"}}, nil, winterNoon)

		if matched <= mismatched {
			t.Errorf("matched %d <= mismatched %d", matched, mismatched)
		}
	})

	t.Run("active hour window wraps midnight", func(t *testing.T) {
		t.Parallel()
		at23 := time.Date(2026, 1, 15, 23, 0, 0, 0, time.UTC)
		history := &models.EngagementHistory{ActiveHours: []int{1}}

		// |23 - 1| wraps to 2, inside the window: +5 over neutral.
		if got := engine.Predict(photoContent(), history, nil, at23); got != 55 {
			t.Errorf("Predict = %d, want 55", got)
		}

		history = &models.EngagementHistory{ActiveHours: []int{6}}
		if got := engine.Predict(photoContent(), history, nil, at23); got != 45 {
			t.Errorf("Predict = %d, want 45", got)
		}
	})

	t.Run("seasonal multiplier scales the base", func(t *testing.T) {
		t.Parallel()
		content := photoContent()
		content.Type = models.ContentPlaydate

		summer := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
		// 50 * 1.3 = 65 for summer playdates.
		if got := engine.Predict(content, &models.EngagementHistory{}, nil, summer); got != 65 {
			t.Errorf("Predict = %d, want 65", got)
		}

		// 50 * 0.8 = 40 for winter playdates.
		if got := engine.Predict(content, &models.EngagementHistory{}, nil, winterNoon); got != 40 {
			t.Errorf("Predict = %d, want 40", got)
		}
	})

	t.Run("trending bonus caps at ten", func(t *testing.T) {
		t.Parallel()
		content := photoContent()
		content.Topics = []string{"adoption"}

		trending := map[string]float64{"adoption": 100}
		if got := engine.Predict(content, &models.EngagementHistory{Interests: nil}, trending, winterNoon); got != 60 {
			t.Errorf("Predict = %d, want 60", got)
		}
	})

	t.Run("momentum rewards active users on popular content", func(t *testing.T) {
		t.Parallel()
		content := photoContent()
		content.Views = 100
		content.Likes = 100 // popularity ratio clamps to 1

		history := &models.EngagementHistory{
			RecentEvents: []models.EngagementEvent{
				{Type: models.EventLike},
				{Type: models.EventShare},
				{Type: models.EventComment},
			},
		}
		// Full activity ratio x full popularity = the whole +10 bonus.
		if got := engine.Predict(content, history, nil, winterNoon); got != 60 {
			t.Errorf("Predict = %d, want 60", got)
		}
	})

	t.Run("passive views earn no momentum", func(t *testing.T) {
		t.Parallel()
		content := photoContent()
		content.Views = 100
		content.Likes = 100

		history := &models.EngagementHistory{
			RecentEvents: []models.EngagementEvent{{Type: models.EventView}},
		}
		if got := engine.Predict(content, history, nil, winterNoon); got != 50 {
			t.Errorf("Predict = %d, want 50", got)
		}
	})

	t.Run("zero views never divide", func(t *testing.T) {
		t.Parallel()
		content := photoContent()
		content.Likes = 5

		history := &models.EngagementHistory{
			RecentEvents: []models.EngagementEvent{{Type: models.EventLike}},
		}
		if got := engine.Predict(content, history, nil, winterNoon); got != 50 {
			t.Errorf("Predict = %d, want 50", got)
		}
	})

	t.Run("stacked positives clamp to 100", func(t *testing.T) {
		t.Parallel()
		content := photoContent()
		content.Topics = []string{"adoption"}
		content.Views = 10
		content.Likes = 10

		history := &models.EngagementHistory{
			ContentTypePreferences: map[models.ContentType]float64{models.ContentPhoto: 1},
			Interests:              []string{"adoption"},
			AuthorEngagement:       map[string]float64{"author-1": 1},
			ActiveHours:            []int{12},
			RecentEvents:           []models.EngagementEvent{{Type: models.EventLike}},
		}
		trending := map[string]float64{"adoption": 100}

		summer := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
		if got := engine.Predict(content, history, trending, summer); got != 100 {
			t.Errorf("Predict = %d, want 100", got)
		}
	})

	t.Run("always in range", func(t *testing.T) {
		t.Parallel()
		histories := []*models.EngagementHistory{
			{},
			{ContentTypePreferences: map[models.ContentType]float64{models.ContentPhoto: 0}},
			{AuthorEngagement: map[string]float64{"author-1": 0}, ActiveHours: []int{3}},
		}
		for _, ct := range models.ContentTypes {
			content := photoContent()
			content.Type = ct
			for _, h := range histories {
				got := engine.Predict(content, h, nil, winterNoon)
				if got < 0 || got > 100 {
					t.Errorf("Predict(%s) = %d, out of [0, 100]", ct, got)
				}
			}
		}
	})
}

func TestSeasonOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "winter"},
		{time.March, "spring"},
		{time.May, "spring"},
		{time.June, "summer"},
		{time.August, "summer"},
		{time.September, "autumn"},
		{time.November, "autumn"},
		{time.December, "winter"},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			t.Parallel()
			at := time.Date(2026, tt.month, 10, 0, 0, 0, 0, time.UTC)
			if got := seasonOf(at); got != tt.want {
				t.Errorf("seasonOf(%s) = %q, want %q", tt.month, got, tt.want)
			}
		})
	}
}
