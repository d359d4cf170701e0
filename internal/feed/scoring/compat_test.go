// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package scoring

import (
	"context"
	"testing"

	"github.com/openann19/pawfeed/internal/models"
)

func basePet() *models.PetProfile {
	return &models.PetProfile{
		Breed:               "Golden Retriever",
		AgeYears:            3,
		Size:                models.SizeLarge,
		EnergyLevel:         models.EnergyHigh,
		PersonalityTraits:   []string{"playful", "social"},
		PreferredActivities: []string{"fetch", "hiking"},
	}
}

// --- Test: breedScore ---

func TestBreedScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"listed pair", "Golden Retriever", "Labrador Retriever", 95},
		{"listed pair reversed", "Labrador Retriever", "Golden Retriever", 95},
		{"same breed listed", "Golden Retriever", "Golden Retriever", 90},
		{"unlisted same species", "Beagle", "Pug", 70},
		{"unlisted cross species", "Beagle", "Siamese", 50},
		{"both unknown breeds", "Axolotl", "Iguana", 70}, // both bucket to "other"
		{"case insensitive", "gOLDEN RETRIEVER", "labrador retriever", 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := breedScore(tt.a, tt.b); got != tt.want {
				t.Errorf("breedScore(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// --- Test: ageScore ---

func TestAgeScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"same age", 3, 3, 100},
		{"one year gap", 2, 3, 90},
		{"two year gap", 5, 3, 80},
		{"three year gap", 0, 3, 70},
		{"five year gap", 1, 6, 60},
		{"seven year gap", 1, 8, 50},
		{"ten year gap hits above floor", 0, 10, 35},
		{"huge gap clamps to floor", 0, 20, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ageScore(tt.a, tt.b); got != tt.want {
				t.Errorf("ageScore(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// --- Test: size and energy ---

func TestSizesCompatible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b models.PetSize
		want bool
	}{
		{"same size", models.SizeMedium, models.SizeMedium, true},
		{"adjacent sizes", models.SizeMedium, models.SizeLarge, true},
		{"small vs large", models.SizeSmall, models.SizeLarge, false},
		{"small vs extra large", models.SizeSmall, models.SizeExtraLarge, false},
		{"large vs extra large", models.SizeLarge, models.SizeExtraLarge, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sizesCompatible(tt.a, tt.b); got != tt.want {
				t.Errorf("sizesCompatible(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEnergyScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b models.EnergyLevel
		want int
	}{
		{"same level", models.EnergyHigh, models.EnergyHigh, 100},
		{"one step", models.EnergyMedium, models.EnergyHigh, 85},
		{"two steps", models.EnergyLow, models.EnergyHigh, 60},
		{"three steps", models.EnergyLow, models.EnergyVeryHigh, 30},
		{"unknown level is neutral", models.EnergyLevel("frantic"), models.EnergyHigh, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := energyScore(tt.a, tt.b); got != tt.want {
				t.Errorf("energyScore(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// --- Test: personality, activities, health ---

func TestPersonalityScore(t *testing.T) {
	t.Parallel()

	t.Run("empty set is neutral", func(t *testing.T) {
		t.Parallel()
		if got := personalityScore(nil, []string{"playful"}); got != 50 {
			t.Errorf("personalityScore(nil, ...) = %f, want 50", got)
		}
	})

	t.Run("averages the cross product", func(t *testing.T) {
		t.Parallel()
		// playful x playful = 95, playful x calm = 60 -> 77.5
		got := personalityScore([]string{"playful"}, []string{"playful", "calm"})
		if got != 77.5 {
			t.Errorf("personalityScore = %f, want 77.5", got)
		}
	})

	t.Run("symmetric lookup", func(t *testing.T) {
		t.Parallel()
		// Table lists {playful, energetic}; reversed query must match.
		if got := personalityScore([]string{"energetic"}, []string{"playful"}); got != 90 {
			t.Errorf("personalityScore = %f, want 90", got)
		}
	})

	t.Run("unlisted pair defaults to 50", func(t *testing.T) {
		t.Parallel()
		if got := personalityScore([]string{"stoic"}, []string{"whimsical"}); got != 50 {
			t.Errorf("personalityScore = %f, want 50", got)
		}
	})
}

func TestActivityScore(t *testing.T) {
	t.Parallel()

	t.Run("empty set is neutral", func(t *testing.T) {
		t.Parallel()
		if got := activityScore([]string{"fetch"}, nil); got != 50 {
			t.Errorf("activityScore = %f, want 50", got)
		}
	})

	t.Run("exact match", func(t *testing.T) {
		t.Parallel()
		if got := activityScore([]string{"fetch"}, []string{"fetch"}); got != 100 {
			t.Errorf("activityScore = %f, want 100", got)
		}
	})

	t.Run("compatible match weighs 0.7", func(t *testing.T) {
		t.Parallel()
		// fetch is compatible with frisbee -> 0.7/1 * 100 = 70.
		if got := activityScore([]string{"fetch"}, []string{"frisbee"}); got != 70 {
			t.Errorf("activityScore = %f, want 70", got)
		}
	})

	t.Run("normalized by larger set", func(t *testing.T) {
		t.Parallel()
		// One exact match out of max(1, 2) activities -> 50.
		if got := activityScore([]string{"fetch"}, []string{"fetch", "swimming"}); got != 50 {
			t.Errorf("activityScore = %f, want 50", got)
		}
	})

	t.Run("no overlap", func(t *testing.T) {
		t.Parallel()
		if got := activityScore([]string{"napping"}, []string{"agility"}); got != 0 {
			t.Errorf("activityScore = %f, want 0", got)
		}
	})
}

func TestHealthSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []string
		want bool
	}{
		{"no conditions", nil, nil, true},
		{"benign conditions", []string{"hip dysplasia"}, []string{"allergies"}, true},
		{"conflicting pair", []string{"contagious illness"}, []string{"immunocompromised"}, false},
		{"conflicting pair reversed", []string{"immunocompromised"}, []string{"contagious illness"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := healthSafe(tt.a, tt.b); got != tt.want {
				t.Errorf("healthSafe(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// --- Test: composite score ---

func TestPetCompatibility_Score(t *testing.T) {
	t.Parallel()

	engine := NewPetCompatibility()

	t.Run("identical pets score high", func(t *testing.T) {
		t.Parallel()
		got := engine.Score(basePet(), basePet())
		if got < 80 || got > 100 {
			t.Errorf("Score(identical) = %d, want in [80, 100]", got)
		}
	})

	t.Run("score is symmetric", func(t *testing.T) {
		t.Parallel()
		a := basePet()
		b := &models.PetProfile{
			Breed:       "Chihuahua",
			AgeYears:    10,
			Size:        models.SizeSmall,
			EnergyLevel: models.EnergyLow,
		}
		if engine.Score(a, b) != engine.Score(b, a) {
			t.Errorf("Score not symmetric: %d vs %d", engine.Score(a, b), engine.Score(b, a))
		}
	})

	t.Run("always in range", func(t *testing.T) {
		t.Parallel()
		pets := []*models.PetProfile{
			basePet(),
			{},
			{Breed: "Siberian Husky", AgeYears: 1, Size: models.SizeExtraLarge, EnergyLevel: models.EnergyVeryHigh},
			{Breed: "Persian", AgeYears: 18, Size: models.SizeSmall, EnergyLevel: models.EnergyLow,
				HealthConditions: []string{"contagious illness"}},
			{Breed: "Beagle", AgeYears: 4, Size: models.SizeMedium, EnergyLevel: models.EnergyMedium,
				PersonalityTraits: []string{"aggressive"}, HealthConditions: []string{"immunocompromised"}},
		}
		for _, a := range pets {
			for _, b := range pets {
				got := engine.Score(a, b)
				if got < 0 || got > 100 {
					t.Errorf("Score(%q, %q) = %d, out of [0, 100]", a.Breed, b.Breed, got)
				}
			}
		}
	})

	t.Run("incompatible pets score lower", func(t *testing.T) {
		t.Parallel()
		a := basePet()
		b := &models.PetProfile{
			Breed:             "Siamese",
			AgeYears:          15,
			Size:              models.SizeSmall,
			EnergyLevel:       models.EnergyLow,
			PersonalityTraits: []string{"shy"},
			HealthConditions:  []string{"contagious illness"},
		}
		a.HealthConditions = []string{"immunocompromised"}

		high := engine.Score(basePet(), basePet())
		low := engine.Score(a, b)
		if low >= high {
			t.Errorf("incompatible score %d >= compatible score %d", low, high)
		}
	})
}

func TestPetCompatibility_PredictWithModel(t *testing.T) {
	t.Parallel()

	engine := NewPetCompatibility()
	a, b := basePet(), basePet()

	// Falls back to the rule-based score until a model is wired.
	if got, want := engine.PredictWithModel(context.Background(), a, b), engine.Score(a, b); got != want {
		t.Errorf("PredictWithModel = %d, want %d", got, want)
	}
}
