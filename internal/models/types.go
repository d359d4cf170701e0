// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

// Package models holds the domain types shared across the feed engine and
// its leaf scoring packages. It sits at the bottom of the import graph and
// depends on nothing but the standard library.
package models

import (
	"time"
)

// PetSize classifies a pet by physical size.
type PetSize string

// Pet size values.
const (
	SizeSmall      PetSize = "small"
	SizeMedium     PetSize = "medium"
	SizeLarge      PetSize = "large"
	SizeExtraLarge PetSize = "extra_large"
)

// EnergyLevel classifies a pet's activity level on an ordinal scale.
type EnergyLevel string

// Energy level values, ordered from lowest to highest.
const (
	EnergyLow      EnergyLevel = "low"
	EnergyMedium   EnergyLevel = "medium"
	EnergyHigh     EnergyLevel = "high"
	EnergyVeryHigh EnergyLevel = "very_high"
)

// Ordinal returns the position of the energy level on the low..very_high
// scale, or -1 for an unrecognized value.
func (e EnergyLevel) Ordinal() int {
	switch e {
	case EnergyLow:
		return 0
	case EnergyMedium:
		return 1
	case EnergyHigh:
		return 2
	case EnergyVeryHigh:
		return 3
	default:
		return -1
	}
}

// ContentType enumerates the kinds of content that can appear in a feed.
type ContentType string

// Content type values.
const (
	ContentPhoto       ContentType = "photo"
	ContentVideo       ContentType = "video"
	ContentStory       ContentType = "story"
	ContentArticle     ContentType = "article"
	ContentEvent       ContentType = "event"
	ContentPlaydate    ContentType = "playdate"
	ContentAdoption    ContentType = "adoption"
	ContentHealthTip   ContentType = "health_tip"
	ContentTrainingTip ContentType = "training_tip"
)

// ContentTypes lists every known content type.
var ContentTypes = []ContentType{
	ContentPhoto,
	ContentVideo,
	ContentStory,
	ContentArticle,
	ContentEvent,
	ContentPlaydate,
	ContentAdoption,
	ContentHealthTip,
	ContentTrainingTip,
}

// PetProfile describes a pet for compatibility scoring.
// Profiles are treated as immutable for the duration of a scoring call.
type PetProfile struct {
	// Breed is the pet's breed name (e.g. "Golden Retriever").
	Breed string `json:"breed"`

	// AgeYears is the pet's age in whole years.
	AgeYears int `json:"age_years"`

	// Size is the pet's size class.
	Size PetSize `json:"size"`

	// EnergyLevel is the pet's activity level.
	EnergyLevel EnergyLevel `json:"energy_level"`

	// PersonalityTraits is a set of trait names (e.g. "playful", "calm").
	PersonalityTraits []string `json:"personality_traits,omitempty"`

	// PreferredActivities is a set of activity names (e.g. "fetch", "hiking").
	PreferredActivities []string `json:"preferred_activities,omitempty"`

	// HealthConditions is a set of condition names relevant to meetup safety.
	HealthConditions []string `json:"health_conditions,omitempty"`
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	// Lat is the latitude in degrees.
	Lat float64 `json:"lat"`

	// Lng is the longitude in degrees.
	Lng float64 `json:"lng"`
}

// LocationPreferences describes how far a user wants content sourced from.
type LocationPreferences struct {
	// LocalRadiusKM is the radius considered "local".
	LocalRadiusKM float64 `json:"local_radius_km"`

	// RegionalRadiusKM is the radius considered "regional".
	RegionalRadiusKM float64 `json:"regional_radius_km"`

	// NationalRadiusKM is the radius considered "national".
	NationalRadiusKM float64 `json:"national_radius_km"`

	// PreferLocal penalizes content outside the local radius when set.
	PreferLocal bool `json:"prefer_local"`
}

// UserProfile describes the viewer a feed is generated for.
type UserProfile struct {
	// ID is the user identifier.
	ID string `json:"id"`

	// Pet is the user's pet profile.
	Pet PetProfile `json:"pet"`

	// Location is the user's location, if known.
	Location *GeoPoint `json:"location,omitempty"`

	// LocationPrefs controls geographic relevance bucketing.
	LocationPrefs LocationPreferences `json:"location_prefs"`

	// FeedHistory is previously shown content, most recent last.
	FeedHistory []FeedContent `json:"feed_history,omitempty"`

	// Interests is a set of topic names the user follows.
	Interests []string `json:"interests,omitempty"`

	// ActiveHours is the set of hours-of-day (0-23) the user is typically active.
	ActiveHours []int `json:"active_hours,omitempty"`
}

// SocialGraph is the viewer-centric adjacency used for connection scoring.
type SocialGraph struct {
	// Following is the set of user ids the viewer follows.
	Following map[string]struct{} `json:"following,omitempty"`

	// Followers is the set of user ids following the viewer.
	Followers map[string]struct{} `json:"followers,omitempty"`

	// Connections maps each followee to that followee's own followees.
	Connections map[string][]string `json:"connections,omitempty"`

	// Communities maps a user id (viewer or author) to the communities
	// that user belongs to.
	Communities map[string][]string `json:"communities,omitempty"`
}

// FeedContent is a candidate content item supplied by the content source.
type FeedContent struct {
	// ID is the content identifier. Items without an id are structurally
	// invalid and are rejected during filtering.
	ID string `json:"id"`

	// Type is the content kind.
	Type ContentType `json:"type"`

	// AuthorID identifies the content author.
	AuthorID string `json:"author_id"`

	// Pet is the pet profile embedded in the content.
	Pet PetProfile `json:"pet"`

	// Location is where the content originates, if known.
	Location *GeoPoint `json:"location,omitempty"`

	// Topics is a set of topic names attached to the content.
	Topics []string `json:"topics,omitempty"`

	// CreatedAt is when the content was published.
	CreatedAt time.Time `json:"created_at"`

	// ModerationScore is the precomputed moderation score (0-100) from the
	// external moderation pipeline. Nil when the pipeline has not scored
	// the item yet; scoring then assumes a default of 85.
	ModerationScore *int `json:"moderation_score,omitempty"`

	// Engagement counters.
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
	Views    int `json:"views"`
}

// EngagementCount returns the number of active engagements (everything
// except passive views) the content has received.
func (c *FeedContent) EngagementCount() int {
	return c.Likes + c.Comments + c.Shares
}

// EngagementEventType classifies a recorded engagement event.
type EngagementEventType string

// Engagement event type values.
const (
	EventView    EngagementEventType = "view"
	EventLike    EngagementEventType = "like"
	EventComment EngagementEventType = "comment"
	EventShare   EngagementEventType = "share"
	EventSave    EngagementEventType = "save"
)

// IsActive reports whether the event type is an active engagement rather
// than a passive view.
func (t EngagementEventType) IsActive() bool {
	return t != EventView && t != ""
}

// EngagementEvent is a single recorded interaction.
type EngagementEvent struct {
	// Type is the interaction kind.
	Type EngagementEventType `json:"type"`

	// Timestamp is when the interaction occurred.
	Timestamp time.Time `json:"timestamp"`

	// ViewDuration is how long the content was viewed, when applicable.
	ViewDuration time.Duration `json:"view_duration,omitempty"`
}

// EngagementHistory summarizes a user's past engagement behavior.
type EngagementHistory struct {
	// ContentTypePreferences maps a content type to a learned preference
	// weight in [0, 1]. Missing types are treated as neutral (0.5).
	ContentTypePreferences map[ContentType]float64 `json:"content_type_preferences,omitempty"`

	// Interests is a set of topic names derived from engagement.
	Interests []string `json:"interests,omitempty"`

	// AuthorEngagement maps an author id to an engagement weight in [0, 1].
	// Missing authors are treated as neutral (0.5).
	AuthorEngagement map[string]float64 `json:"author_engagement,omitempty"`

	// ActiveHours is the set of hours-of-day (0-23) the user engages most.
	ActiveHours []int `json:"active_hours,omitempty"`

	// RecentEvents is a bounded window of the user's most recent events.
	RecentEvents []EngagementEvent `json:"recent_events,omitempty"`
}

// ScoreFactors is the per-factor breakdown behind a composite score.
// Every factor is clamped to [0, 100].
type ScoreFactors struct {
	Compatibility int `json:"compatibility"`
	Geographic    int `json:"geographic"`
	Social        int `json:"social"`
	Freshness     int `json:"freshness"`
	Engagement    int `json:"engagement"`
	Safety        int `json:"safety"`
	Diversity     int `json:"diversity"`
}

// Score is the derived, ephemeral scoring result for one content item.
// Scores are never persisted by this engine.
type Score struct {
	// ContentID identifies the scored item.
	ContentID string `json:"content_id"`

	// Value is the composite score in [0, 100].
	Value int `json:"value"`

	// Factors is the per-factor breakdown.
	Factors ScoreFactors `json:"factors"`

	// CalculatedAt is when the score was computed.
	CalculatedAt time.Time `json:"calculated_at"`
}

// FilterOptions controls candidate filtering before scoring.
type FilterOptions struct {
	// SafetyThreshold drops content whose moderation score is below it.
	// Nil means the default threshold of 70; an explicit 0 disables safety
	// filtering. The boundary is inclusive: a moderation score equal to
	// the threshold is retained.
	SafetyThreshold *int `json:"safety_threshold,omitempty"`

	// BlockedTypes lists content types to drop.
	BlockedTypes []ContentType `json:"blocked_types,omitempty"`

	// BlockedAuthors lists author ids to drop.
	BlockedAuthors []string `json:"blocked_authors,omitempty"`

	// LocationOnly drops content without a location when set.
	LocationOnly bool `json:"location_only,omitempty"`
}

// GenerationContext carries the caller-resolved inputs for one feed
// generation. Nothing in it is mutated by scoring.
type GenerationContext struct {
	// User is the viewer profile.
	User UserProfile `json:"user"`

	// Graph is the viewer's social graph.
	Graph SocialGraph `json:"graph"`

	// History is the viewer's engagement history.
	History EngagementHistory `json:"history"`

	// TrendingTopics maps a topic to its current trend score, if the
	// caller has a trending feed available.
	TrendingTopics map[string]float64 `json:"trending_topics,omitempty"`

	// Filter controls candidate filtering.
	Filter FilterOptions `json:"filter"`

	// Now fixes the reference time for freshness, seasonality, and
	// active-hour checks. Zero means time.Now().
	Now time.Time `json:"-"`
}

// ReferenceTime returns the context's reference time, defaulting to the
// current wall clock.
func (g *GenerationContext) ReferenceTime() time.Time {
	if g.Now.IsZero() {
		return time.Now()
	}
	return g.Now
}
