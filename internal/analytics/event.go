// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package analytics

import (
	"context"
	"time"

	"github.com/openann19/pawfeed/internal/feed"
)

// EventImpression is the event type recorded when content is shown to a
// user. Every other event type counts as an engagement.
const EventImpression = "impression"

// Event is one append-only analytics record. Events are immutable once
// recorded.
type Event struct {
	// ID is the event identifier, assigned at record time.
	ID string `json:"id"`

	// UserID is the acting user.
	UserID string `json:"user_id"`

	// ContentID is the content acted on, when applicable.
	ContentID string `json:"content_id,omitempty"`

	// ContentType is the kind of content acted on, when applicable.
	ContentType feed.ContentType `json:"content_type,omitempty"`

	// Type is the event kind: "impression" or an engagement kind such as
	// "view", "like", "comment", "share", "save".
	Type string `json:"type"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Tags carries free-form dimensions (variant id, feed position, ...).
	Tags map[string]string `json:"tags,omitempty"`
}

// Filter narrows a store query. Zero fields match everything.
type Filter struct {
	// UserID restricts to one user's events.
	UserID string

	// ContentID restricts to events on one content item.
	ContentID string

	// Types restricts to the listed event types.
	Types []string

	// Since excludes events before this time.
	Since time.Time

	// Until excludes events at or after this time.
	Until time.Time
}

// matches reports whether an event passes the filter.
func (f *Filter) matches(ev *Event) bool {
	if f.UserID != "" && ev.UserID != f.UserID {
		return false
	}
	if f.ContentID != "" && ev.ContentID != f.ContentID {
		return false
	}
	if !f.Since.IsZero() && ev.Timestamp.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && !ev.Timestamp.Before(f.Until) {
		return false
	}
	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if ev.Type == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Store is the append-only event log behind the analytics engine.
type Store interface {
	// Append records one event.
	Append(ctx context.Context, ev Event) error

	// Query returns events matching the filter, oldest first.
	Query(ctx context.Context, f Filter) ([]Event, error)

	// Sweep deletes events older than the cutoff and returns how many
	// were removed.
	Sweep(ctx context.Context, olderThan time.Time) (int, error)

	// Close releases store resources.
	Close() error
}
