// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/openann19/pawfeed/internal/analytics"
	"github.com/openann19/pawfeed/internal/feed"
	"github.com/openann19/pawfeed/internal/validation"
)

// defaultReportWindow bounds analytics reports when "since" is omitted.
const defaultReportWindow = 7 * 24 * time.Hour

// EventRequest is the body for POST /api/v1/analytics/events.
type EventRequest struct {
	UserID      string            `json:"user_id" validate:"required"`
	ContentID   string            `json:"content_id,omitempty"`
	ContentType feed.ContentType  `json:"content_type,omitempty"`
	Type        string            `json:"type" validate:"required"`
	Tags        map[string]string `json:"tags,omitempty"`
}

// RecordEvent handles POST /api/v1/analytics/events.
func (h *Handler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	ev := analytics.Event{
		UserID:      req.UserID,
		ContentID:   req.ContentID,
		ContentType: req.ContentType,
		Type:        req.Type,
		Tags:        req.Tags,
	}
	if err := h.analytics.Record(r.Context(), ev); err != nil {
		h.logger.Error().Err(err).Str("user_id", req.UserID).Msg("event record failed")
		rw.InternalError("failed to record event")
		return
	}

	rw.Created(map[string]string{"user_id": req.UserID, "type": req.Type})
}

// GetReport handles GET /api/v1/analytics/report?user_id=...&since=RFC3339.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		rw.BadRequest("user_id query parameter is required")
		return
	}

	since := time.Now().Add(-defaultReportWindow)
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			rw.BadRequest("since must be an RFC3339 timestamp")
			return
		}
		since = parsed
	}

	report, err := h.analytics.Report(r.Context(), userID, since)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", userID).Msg("report generation failed")
		rw.InternalError("failed to build report")
		return
	}

	rw.Success(report)
}
