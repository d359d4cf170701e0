// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package scoring

import (
	"math"

	"github.com/openann19/pawfeed/internal/models"
)

// earthRadiusKM is the mean Earth radius used for haversine distance.
const earthRadiusKM = 6371

// Geographic scores content relevance by distance between the viewer and
// the content origin. It is a pure value type, safe for concurrent use.
type Geographic struct{}

// NewGeographic creates a geographic relevance engine.
func NewGeographic() Geographic {
	return Geographic{}
}

// Score buckets the great-circle distance between the user and the content
// origin against the user's radius preferences: local 100, regional 75,
// national 50, beyond 25. Content without a location scores a neutral 50.
// With PreferLocal set, anything outside the local radius is reduced by 30%.
func (Geographic) Score(user *models.GeoPoint, content *models.GeoPoint, prefs models.LocationPreferences) int {
	if content == nil || user == nil {
		return 50
	}

	dist := HaversineKM(*user, *content)

	var score float64
	switch {
	case dist <= prefs.LocalRadiusKM:
		score = 100
	case dist <= prefs.RegionalRadiusKM:
		score = 75
	case dist <= prefs.NationalRadiusKM:
		score = 50
	default:
		score = 25
	}

	if prefs.PreferLocal && dist > prefs.LocalRadiusKM {
		score *= 0.7
	}

	return clampInt(int(math.Round(score)), 0, 100)
}

// HaversineKM returns the great-circle distance between two points in
// kilometers.
func HaversineKM(a, b models.GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKM * math.Asin(math.Sqrt(h))
}
