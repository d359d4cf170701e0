// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package scoring

import (
	"context"
	"math"
	"strings"

	"github.com/openann19/pawfeed/internal/models"
)

// Factor weights for pet compatibility. They sum to 1.0.
const (
	breedWeight       = 0.30
	ageWeight         = 0.15
	sizeWeight        = 0.15
	energyWeight      = 0.15
	personalityWeight = 0.10
	activityWeight    = 0.10
	healthWeight      = 0.05
)

// PetCompatibility scores affinity between two pet profiles.
// It is a pure value type, safe for concurrent use.
//
// The score is a weighted sum of seven sub-factors (breed 30%, age 15%,
// size 15%, energy 15%, personality 10%, activities 10%, health 5%), each
// in [0, 100]. Boolean sub-factors (size adjacency, health safety) map
// true to 100 and false to 0 before weighting.
type PetCompatibility struct{}

// NewPetCompatibility creates a pet compatibility engine.
func NewPetCompatibility() PetCompatibility {
	return PetCompatibility{}
}

// Score returns the compatibility between two pets in [0, 100].
func (PetCompatibility) Score(a, b *models.PetProfile) int {
	score := breedWeight*float64(breedScore(a.Breed, b.Breed)) +
		ageWeight*float64(ageScore(a.AgeYears, b.AgeYears)) +
		sizeWeight*float64(boolScore(sizesCompatible(a.Size, b.Size))) +
		energyWeight*float64(energyScore(a.EnergyLevel, b.EnergyLevel)) +
		personalityWeight*personalityScore(a.PersonalityTraits, b.PersonalityTraits) +
		activityWeight*activityScore(a.PreferredActivities, b.PreferredActivities) +
		healthWeight*float64(boolScore(healthSafe(a.HealthConditions, b.HealthConditions)))

	return clampInt(int(math.Round(score)), 0, 100)
}

// PredictWithModel returns a model-backed compatibility prediction.
// No model is wired yet; it falls back to the rule-based score.
func (p PetCompatibility) PredictWithModel(_ context.Context, a, b *models.PetProfile) int {
	return p.Score(a, b)
}

// breedScore looks up the pairwise breed table in both orderings, falling
// back to the species bucket comparison when the pair is unlisted.
func breedScore(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if s, ok := breedCompatibility[breedPair{a, b}]; ok {
		return s
	}
	if s, ok := breedCompatibility[breedPair{b, a}]; ok {
		return s
	}

	if speciesOf(a) == speciesOf(b) {
		return 70
	}
	return 50
}

// speciesOf returns the species bucket for a breed: dog, cat, or other.
func speciesOf(breed string) string {
	if s, ok := breedSpecies[breed]; ok {
		return s
	}
	return "other"
}

// ageScore maps the absolute age gap to a compatibility score.
func ageScore(a, b int) int {
	gap := a - b
	if gap < 0 {
		gap = -gap
	}

	switch {
	case gap == 0:
		return 100
	case gap == 1:
		return 90
	case gap == 2:
		return 80
	case gap == 3:
		return 70
	case gap <= 5:
		return 60
	}

	s := 60 - 5*(gap-5)
	if s < 30 {
		return 30
	}
	return s
}

// sizesCompatible consults the binary size adjacency table.
func sizesCompatible(a, b models.PetSize) bool {
	for _, s := range sizeCompatible[string(a)] {
		if s == string(b) {
			return true
		}
	}
	return false
}

// energyScore maps the ordinal distance between energy levels to a score.
// Unrecognized levels score a neutral 50.
func energyScore(a, b models.EnergyLevel) int {
	oa, ob := a.Ordinal(), b.Ordinal()
	if oa < 0 || ob < 0 {
		return 50
	}

	diff := oa - ob
	if diff < 0 {
		diff = -diff
	}

	switch diff {
	case 0:
		return 100
	case 1:
		return 85
	case 2:
		return 60
	case 3:
		return 30
	default:
		return 50
	}
}

// personalityScore averages the pairwise trait table over the full
// cross-product of both trait sets. Empty sets score a neutral 50.
func personalityScore(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 50
	}

	var total float64
	var pairs int
	for _, ta := range a {
		for _, tb := range b {
			total += float64(traitScore(ta, tb))
			pairs++
		}
	}
	return total / float64(pairs)
}

// traitScore looks up a trait pair in both orderings, defaulting to 50.
func traitScore(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if s, ok := traitCompatibility[traitPair{a, b}]; ok {
		return s
	}
	if s, ok := traitCompatibility[traitPair{b, a}]; ok {
		return s
	}
	return 50
}

// activityScore counts exact matches plus 0.7-weighted compatible matches,
// normalized by the larger activity set, capped at 100. Empty sets score a
// neutral 50.
func activityScore(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 50
	}

	setB := make(map[string]struct{}, len(b))
	for _, act := range b {
		setB[strings.ToLower(strings.TrimSpace(act))] = struct{}{}
	}

	var matches float64
	for _, act := range a {
		act = strings.ToLower(strings.TrimSpace(act))
		if _, ok := setB[act]; ok {
			matches++
			continue
		}
		for _, compat := range activityCompatible[act] {
			if _, ok := setB[compat]; ok {
				matches += 0.7
				break
			}
		}
	}

	larger := len(a)
	if len(b) > larger {
		larger = len(b)
	}

	score := matches / float64(larger) * 100
	if score > 100 {
		return 100
	}
	return score
}

// healthSafe reports whether no curated conflicting-condition pair spans
// both pets' condition sets.
func healthSafe(a, b []string) bool {
	for _, ca := range a {
		ca = strings.ToLower(strings.TrimSpace(ca))
		for _, cb := range b {
			cb = strings.ToLower(strings.TrimSpace(cb))
			if _, ok := healthConflicts[healthConflict{ca, cb}]; ok {
				return false
			}
			if _, ok := healthConflicts[healthConflict{cb, ca}]; ok {
				return false
			}
		}
	}
	return true
}

// boolScore maps a boolean sub-factor onto the 0-100 scale.
func boolScore(ok bool) int {
	if ok {
		return 100
	}
	return 0
}

// clampInt bounds v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
