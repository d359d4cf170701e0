// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package api

import (
	"net/http"
	"testing"

	"github.com/openann19/pawfeed/internal/analytics"
	"github.com/openann19/pawfeed/internal/feed"
)

func TestRecordEvent(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/analytics/events", EventRequest{
		UserID:      "user-1",
		ContentID:   "content-1",
		ContentType: feed.ContentPhoto,
		Type:        "like",
		Tags:        map[string]string{"variant": "treatment"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	events, err := env.store.Query(t.Context(), analytics.Filter{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("stored %d events, want 1", len(events))
	}
	if events[0].Type != "like" || events[0].Tags["variant"] != "treatment" {
		t.Errorf("stored event = %+v", events[0])
	}
	if events[0].ID == "" || events[0].Timestamp.IsZero() {
		t.Error("event id and timestamp should be assigned at record time")
	}
}

func TestRecordEvent_Validation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/analytics/events", EventRequest{Type: "like"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	rec = env.do(t, http.MethodPost, "/api/v1/analytics/events", EventRequest{UserID: "user-1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetReport(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	seed := []EventRequest{
		{UserID: "user-1", ContentID: "c1", ContentType: feed.ContentPhoto, Type: "impression"},
		{UserID: "user-1", ContentID: "c2", ContentType: feed.ContentVideo, Type: "impression"},
		{UserID: "user-1", ContentID: "c1", ContentType: feed.ContentPhoto, Type: "like"},
	}
	for _, ev := range seed {
		if rec := env.do(t, http.MethodPost, "/api/v1/analytics/events", ev); rec.Code != http.StatusCreated {
			t.Fatalf("seed event status = %d", rec.Code)
		}
	}

	rec := env.do(t, http.MethodGet, "/api/v1/analytics/report?user_id=user-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var report analytics.Report
	decodeResponse(t, rec, &report)

	if report.TotalEvents != 3 {
		t.Errorf("total events = %d, want 3", report.TotalEvents)
	}
	if report.Impressions != 2 {
		t.Errorf("impressions = %d, want 2", report.Impressions)
	}
	if report.Engagements != 1 {
		t.Errorf("engagements = %d, want 1", report.Engagements)
	}
	if report.EngagementRate != 0.5 {
		t.Errorf("engagement rate = %v, want 0.5", report.EngagementRate)
	}
}

func TestGetReport_MissingUserID(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/analytics/report", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetReport_BadSince(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/analytics/report?user_id=u&since=yesterday", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
