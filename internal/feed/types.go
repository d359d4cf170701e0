// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package feed

import (
	"github.com/openann19/pawfeed/internal/models"
)

// The domain types live in internal/models so the leaf scoring engines can
// share them without importing this package. The aliases below keep feed.X
// as the canonical spelling for engine callers.

type (
	// PetSize classifies a pet by physical size.
	PetSize = models.PetSize

	// EnergyLevel classifies a pet's activity level on an ordinal scale.
	EnergyLevel = models.EnergyLevel

	// ContentType enumerates the kinds of content that can appear in a feed.
	ContentType = models.ContentType

	// PetProfile describes a pet for compatibility scoring.
	PetProfile = models.PetProfile

	// GeoPoint is a WGS84 coordinate.
	GeoPoint = models.GeoPoint

	// LocationPreferences describes how far a user wants content sourced from.
	LocationPreferences = models.LocationPreferences

	// UserProfile describes the viewer a feed is generated for.
	UserProfile = models.UserProfile

	// SocialGraph is the viewer-centric adjacency used for connection scoring.
	SocialGraph = models.SocialGraph

	// FeedContent is a candidate content item supplied by the content source.
	FeedContent = models.FeedContent

	// EngagementEventType classifies a recorded engagement event.
	EngagementEventType = models.EngagementEventType

	// EngagementEvent is a single recorded interaction.
	EngagementEvent = models.EngagementEvent

	// EngagementHistory summarizes a user's past engagement behavior.
	EngagementHistory = models.EngagementHistory

	// ScoreFactors is the per-factor breakdown behind a composite score.
	ScoreFactors = models.ScoreFactors

	// Score is the derived, ephemeral scoring result for one content item.
	Score = models.Score

	// FilterOptions controls candidate filtering before scoring.
	FilterOptions = models.FilterOptions

	// GenerationContext carries the caller-resolved inputs for one feed
	// generation.
	GenerationContext = models.GenerationContext
)

// Pet size values.
const (
	SizeSmall      = models.SizeSmall
	SizeMedium     = models.SizeMedium
	SizeLarge      = models.SizeLarge
	SizeExtraLarge = models.SizeExtraLarge
)

// Energy level values, ordered from lowest to highest.
const (
	EnergyLow      = models.EnergyLow
	EnergyMedium   = models.EnergyMedium
	EnergyHigh     = models.EnergyHigh
	EnergyVeryHigh = models.EnergyVeryHigh
)

// Content type values.
const (
	ContentPhoto       = models.ContentPhoto
	ContentVideo       = models.ContentVideo
	ContentStory       = models.ContentStory
	ContentArticle     = models.ContentArticle
	ContentEvent       = models.ContentEvent
	ContentPlaydate    = models.ContentPlaydate
	ContentAdoption    = models.ContentAdoption
	ContentHealthTip   = models.ContentHealthTip
	ContentTrainingTip = models.ContentTrainingTip
)

// Engagement event type values.
const (
	EventView    = models.EventView
	EventLike    = models.EventLike
	EventComment = models.EventComment
	EventShare   = models.EventShare
	EventSave    = models.EventSave
)

// ContentTypes lists every known content type.
var ContentTypes = models.ContentTypes
