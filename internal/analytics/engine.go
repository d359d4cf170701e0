// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openann19/pawfeed/internal/feed"
	"github.com/openann19/pawfeed/internal/metrics"
)

// Engine records feed interaction events and derives per-user metrics from
// the event log. Safe for concurrent use.
type Engine struct {
	store  Store
	logger zerolog.Logger
}

// NewEngine creates an analytics engine over the given store.
func NewEngine(store Store, logger zerolog.Logger) *Engine {
	return &Engine{
		store:  store,
		logger: logger.With().Str("component", "analytics_engine").Logger(),
	}
}

// Record appends one event, assigning an id and timestamp when missing.
func (e *Engine) Record(ctx context.Context, ev Event) error {
	if ev.UserID == "" {
		return fmt.Errorf("event user id is required")
	}
	if ev.Type == "" {
		return fmt.Errorf("event type is required")
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	if err := e.store.Append(ctx, ev); err != nil {
		return fmt.Errorf("record event: %w", err)
	}
	metrics.AnalyticsEvents.WithLabelValues(ev.Type).Inc()
	return nil
}

// RecordImpression records that content was shown to a user.
func (e *Engine) RecordImpression(ctx context.Context, userID, contentID string, contentType feed.ContentType) error {
	return e.Record(ctx, Event{
		UserID:      userID,
		ContentID:   contentID,
		ContentType: contentType,
		Type:        EventImpression,
	})
}

// RecordEngagement records an interaction with content.
func (e *Engine) RecordEngagement(ctx context.Context, userID, contentID string, contentType feed.ContentType, kind feed.EngagementEventType) error {
	return e.Record(ctx, Event{
		UserID:      userID,
		ContentID:   contentID,
		ContentType: contentType,
		Type:        string(kind),
	})
}

// EngagementRate returns the user's active engagements per impression
// since the given time. No impressions means a rate of 0.
func (e *Engine) EngagementRate(ctx context.Context, userID string, since time.Time) (float64, error) {
	events, err := e.store.Query(ctx, Filter{UserID: userID, Since: since})
	if err != nil {
		return 0, fmt.Errorf("query events: %w", err)
	}

	impressions, engagements := tally(events)
	if impressions == 0 {
		return 0, nil
	}
	return float64(engagements) / float64(impressions), nil
}

// FeedDiversity returns the normalized Shannon entropy of the content
// types shown to the user since the given time: 0 for a single-type feed,
// 1 for a perfectly even spread.
func (e *Engine) FeedDiversity(ctx context.Context, userID string, since time.Time) (float64, error) {
	events, err := e.store.Query(ctx, Filter{
		UserID: userID,
		Since:  since,
		Types:  []string{EventImpression},
	})
	if err != nil {
		return 0, fmt.Errorf("query impressions: %w", err)
	}

	counts := make(map[feed.ContentType]int)
	total := 0
	for i := range events {
		if events[i].ContentType == "" {
			continue
		}
		counts[events[i].ContentType]++
		total++
	}
	if len(counts) <= 1 || total == 0 {
		return 0, nil
	}

	entropy := 0.0
	for _, n := range counts {
		p := float64(n) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy / math.Log2(float64(len(counts))), nil
}

// Report summarizes a user's feed interactions since the given time.
type Report struct {
	// UserID is the reported user.
	UserID string `json:"user_id"`

	// Since is the report window start.
	Since time.Time `json:"since"`

	// TotalEvents counts all recorded events in the window.
	TotalEvents int `json:"total_events"`

	// Impressions counts content shown.
	Impressions int `json:"impressions"`

	// Engagements counts active interactions.
	Engagements int `json:"engagements"`

	// EngagementRate is engagements per impression.
	EngagementRate float64 `json:"engagement_rate"`

	// FeedDiversity is the normalized Shannon entropy of shown content
	// types.
	FeedDiversity float64 `json:"feed_diversity"`

	// EventsByType counts events per event type.
	EventsByType map[string]int `json:"events_by_type"`
}

// Report builds the full engagement report for a user.
func (e *Engine) Report(ctx context.Context, userID string, since time.Time) (*Report, error) {
	events, err := e.store.Query(ctx, Filter{UserID: userID, Since: since})
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	report := &Report{
		UserID:       userID,
		Since:        since,
		TotalEvents:  len(events),
		EventsByType: make(map[string]int),
	}
	for i := range events {
		report.EventsByType[events[i].Type]++
	}
	report.Impressions, report.Engagements = tally(events)
	if report.Impressions > 0 {
		report.EngagementRate = float64(report.Engagements) / float64(report.Impressions)
	}

	diversity, err := e.FeedDiversity(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	report.FeedDiversity = diversity

	return report, nil
}

// Sweep deletes events older than the retention window.
func (e *Engine) Sweep(ctx context.Context, retention time.Duration) (int, error) {
	removed, err := e.store.Sweep(ctx, time.Now().UTC().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("retention sweep: %w", err)
	}

	metrics.AnalyticsSweeps.Inc()
	if removed > 0 {
		e.logger.Info().Int("removed", removed).Msg("Retention sweep removed stale events")
	}
	return removed, nil
}

// tally splits events into impressions and active engagements. Passive
// views count as neither.
func tally(events []Event) (impressions, engagements int) {
	for i := range events {
		switch {
		case events[i].Type == EventImpression:
			impressions++
		case feed.EngagementEventType(events[i].Type).IsActive():
			engagements++
		}
	}
	return impressions, engagements
}
