// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package feed

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

var testNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, cfg AlgorithmConfig) *ScoringEngine {
	t.Helper()
	engine, err := NewScoringEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewScoringEngine: %v", err)
	}
	return engine
}

func testGen() *GenerationContext {
	return &GenerationContext{
		User: UserProfile{
			ID: "user-1",
			Pet: PetProfile{
				Breed:       "Golden Retriever",
				AgeYears:    3,
				Size:        SizeLarge,
				EnergyLevel: EnergyHigh,
			},
		},
		Now: testNow,
	}
}

func testContent(id string) FeedContent {
	return FeedContent{
		ID:        id,
		Type:      ContentPhoto,
		AuthorID:  "author-" + id,
		CreatedAt: testNow.Add(-2 * time.Hour),
	}
}

func TestNewScoringEngine_RejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultAlgorithmConfig()
	cfg.MaxAgeDays = -1
	if _, err := NewScoringEngine(cfg, zerolog.Nop()); err == nil {
		t.Fatal("NewScoringEngine accepted an invalid config")
	}
}

func TestScoringEngine_ScoreContent(t *testing.T) {
	t.Parallel()

	t.Run("disabled toggles neutralize their factors", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultAlgorithmConfig()
		cfg.PetMatching = false
		cfg.Geographic = false
		cfg.SocialBoost = false
		engine := newTestEngine(t, cfg)

		content := testContent("c1")
		score := engine.ScoreContent(&content, testGen())

		if score.Factors.Compatibility != 50 {
			t.Errorf("Compatibility = %d, want neutral 50", score.Factors.Compatibility)
		}
		if score.Factors.Geographic != 50 {
			t.Errorf("Geographic = %d, want neutral 50", score.Factors.Geographic)
		}
		if score.Factors.Social != 50 {
			t.Errorf("Social = %d, want neutral 50", score.Factors.Social)
		}
	})

	t.Run("enabled toggles engage the leaf engines", func(t *testing.T) {
		t.Parallel()
		engine := newTestEngine(t, DefaultAlgorithmConfig())

		gen := testGen()
		gen.Graph = SocialGraph{Following: map[string]struct{}{"author-c1": {}}}

		content := testContent("c1")
		content.Pet = gen.User.Pet

		score := engine.ScoreContent(&content, gen)
		if score.Factors.Social != 100 {
			t.Errorf("Social = %d, want 100 for a followed author", score.Factors.Social)
		}
		if score.Factors.Compatibility < 80 {
			t.Errorf("Compatibility = %d, want high for an identical pet", score.Factors.Compatibility)
		}
	})

	t.Run("composite follows the weights exactly", func(t *testing.T) {
		t.Parallel()
		// All weight on safety: the composite equals the safety factor.
		cfg := DefaultAlgorithmConfig()
		cfg.Weights = FactorWeights{Safety: 100}
		engine := newTestEngine(t, cfg)

		content := testContent("c1")
		score := engine.ScoreContent(&content, testGen())
		if score.Value != 85 {
			t.Errorf("Value = %d, want the default moderation score 85", score.Value)
		}

		moderation := 91
		content.ModerationScore = &moderation
		score = engine.ScoreContent(&content, testGen())
		if score.Value != 91 {
			t.Errorf("Value = %d, want 91", score.Value)
		}
	})

	t.Run("stamps content id and reference time", func(t *testing.T) {
		t.Parallel()
		engine := newTestEngine(t, DefaultAlgorithmConfig())
		content := testContent("c42")
		score := engine.ScoreContent(&content, testGen())

		if score.ContentID != "c42" {
			t.Errorf("ContentID = %q, want c42", score.ContentID)
		}
		if !score.CalculatedAt.Equal(testNow) {
			t.Errorf("CalculatedAt = %v, want %v", score.CalculatedAt, testNow)
		}
	})

	t.Run("value always in range", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultAlgorithmConfig()
		cfg.Weights.Engagement = 300 // deliberately skewed
		engine := newTestEngine(t, cfg)

		content := testContent("c1")
		score := engine.ScoreContent(&content, testGen())
		if score.Value < 0 || score.Value > 100 {
			t.Errorf("Value = %d, out of [0, 100]", score.Value)
		}
	})
}

func TestScoringEngine_FilterContent(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, DefaultAlgorithmConfig())

	moderated := func(id string, score int) FeedContent {
		c := testContent(id)
		c.ModerationScore = &score
		return c
	}

	t.Run("drops content without an id", func(t *testing.T) {
		t.Parallel()
		items := []FeedContent{testContent(""), testContent("c1")}
		got := engine.FilterContent(items, FilterOptions{})
		if len(got) != 1 || got[0].ID != "c1" {
			t.Fatalf("FilterContent = %v, want only c1", got)
		}
	})

	t.Run("safety threshold boundary is inclusive", func(t *testing.T) {
		t.Parallel()
		items := []FeedContent{
			moderated("unsafe", 69),
			moderated("boundary", 70),
			moderated("safe", 95),
			testContent("unmoderated"), // default 85 passes
		}
		got := engine.FilterContent(items, FilterOptions{})
		if len(got) != 3 {
			t.Fatalf("FilterContent kept %d items, want 3", len(got))
		}
		for _, item := range got {
			if item.ID == "unsafe" {
				t.Error("item below the safety threshold survived")
			}
		}
	})

	t.Run("custom threshold applies", func(t *testing.T) {
		t.Parallel()
		threshold := 90
		items := []FeedContent{moderated("c1", 80), moderated("c2", 95)}
		got := engine.FilterContent(items, FilterOptions{SafetyThreshold: &threshold})
		if len(got) != 1 || got[0].ID != "c2" {
			t.Fatalf("FilterContent = %v, want only c2", got)
		}
	})

	t.Run("explicit zero threshold disables safety filtering", func(t *testing.T) {
		t.Parallel()
		threshold := 0
		items := []FeedContent{moderated("c1", 5), moderated("c2", 95)}
		got := engine.FilterContent(items, FilterOptions{SafetyThreshold: &threshold})
		if len(got) != 2 {
			t.Fatalf("FilterContent kept %d items, want both with filtering disabled", len(got))
		}
	})

	t.Run("blocked types and authors drop", func(t *testing.T) {
		t.Parallel()
		video := testContent("c1")
		video.Type = ContentVideo
		items := []FeedContent{video, testContent("c2"), testContent("c3")}

		got := engine.FilterContent(items, FilterOptions{
			BlockedTypes:   []ContentType{ContentVideo},
			BlockedAuthors: []string{"author-c3"},
		})
		if len(got) != 1 || got[0].ID != "c2" {
			t.Fatalf("FilterContent = %v, want only c2", got)
		}
	})

	t.Run("location only drops unlocated content", func(t *testing.T) {
		t.Parallel()
		located := testContent("c1")
		located.Location = &GeoPoint{Lat: 52.52, Lng: 13.405}
		items := []FeedContent{located, testContent("c2")}

		got := engine.FilterContent(items, FilterOptions{LocationOnly: true})
		if len(got) != 1 || got[0].ID != "c1" {
			t.Fatalf("FilterContent = %v, want only c1", got)
		}
	})

	t.Run("input slice is untouched", func(t *testing.T) {
		t.Parallel()
		items := []FeedContent{testContent(""), testContent("c1")}
		engine.FilterContent(items, FilterOptions{})
		if len(items) != 2 {
			t.Errorf("input length changed to %d", len(items))
		}
	})
}

func TestScoringEngine_RankContent(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, DefaultAlgorithmConfig())

	scores := []Score{
		{ContentID: "low", Value: 10},
		{ContentID: "tie-first", Value: 60},
		{ContentID: "high", Value: 90},
		{ContentID: "tie-second", Value: 60},
	}
	engine.RankContent(scores)

	want := []string{"high", "tie-first", "tie-second", "low"}
	for i, id := range want {
		if scores[i].ContentID != id {
			t.Errorf("rank[%d] = %q, want %q", i, scores[i].ContentID, id)
		}
	}
}

func TestDiversityBonus(t *testing.T) {
	t.Parallel()

	historyOf := func(types ...ContentType) []FeedContent {
		out := make([]FeedContent, len(types))
		for i, ct := range types {
			out[i] = FeedContent{ID: "h", Type: ct}
		}
		return out
	}

	tests := []struct {
		name    string
		history []FeedContent
		want    int
	}{
		{"empty history", nil, 50},
		{"type absent from history", historyOf(ContentVideo, ContentStory), 50},
		{"half the window", historyOf(
			ContentPhoto, ContentPhoto, ContentPhoto, ContentPhoto, ContentPhoto,
			ContentPhoto, ContentPhoto, ContentPhoto, ContentPhoto, ContentPhoto,
		), 25},
		{"saturated window", func() []FeedContent {
			out := make([]FeedContent, 20)
			for i := range out {
				out[i] = FeedContent{ID: "h", Type: ContentPhoto}
			}
			return out
		}(), 0},
		{"only last twenty count", func() []FeedContent {
			// 30 photos followed by 20 videos: the window sees only videos.
			out := make([]FeedContent, 0, 50)
			for i := 0; i < 30; i++ {
				out = append(out, FeedContent{ID: "h", Type: ContentPhoto})
			}
			for i := 0; i < 20; i++ {
				out = append(out, FeedContent{ID: "h", Type: ContentVideo})
			}
			return out
		}(), 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := diversityBonus(ContentPhoto, tt.history); got != tt.want {
				t.Errorf("diversityBonus = %d, want %d", got, tt.want)
			}
		})
	}
}
