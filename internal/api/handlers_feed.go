// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/openann19/pawfeed/internal/feed"
	"github.com/openann19/pawfeed/internal/validation"
)

// FeedRequest is the body for POST /api/v1/feed.
type FeedRequest struct {
	// UserID is the viewer requesting a feed.
	UserID string `json:"user_id" validate:"required"`

	// Limit caps the number of returned items. Zero means the engine's
	// own maximum (50).
	Limit int `json:"limit" validate:"min=0,max=50"`

	// TestID routes the request through an A/B test. The assigned
	// variant's config patch, if any, is applied to the ranking.
	TestID string `json:"test_id,omitempty"`

	// Filter overrides the default candidate filtering.
	Filter *feed.FilterOptions `json:"filter,omitempty"`

	// RecordImpressions logs an impression event per returned item.
	RecordImpressions bool `json:"record_impressions,omitempty"`
}

// FeedResponse is the payload for POST /api/v1/feed.
type FeedResponse struct {
	UserID    string            `json:"user_id"`
	TestID    string            `json:"test_id,omitempty"`
	VariantID string            `json:"variant_id,omitempty"`
	Items     []feed.RankedItem `json:"items"`
}

// GenerateFeed handles POST /api/v1/feed.
func (h *Handler) GenerateFeed(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req FeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	gen, err := h.generationContext(r, req.UserID, req.Filter)
	if err != nil {
		respondProviderError(w, r, err)
		return
	}

	candidates, err := h.provider.GetCandidates(r.Context(), req.UserID)
	if err != nil {
		respondProviderError(w, r, err)
		return
	}

	svc, variant, err := h.serviceFor(req.TestID, req.UserID)
	if err != nil {
		h.logger.Error().Err(err).Str("test_id", req.TestID).Msg("variant service construction failed")
		rw.InternalError("experiment configuration is invalid")
		return
	}

	items, err := svc.GeneratePersonalizedFeed(r.Context(), candidates, gen)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", req.UserID).Msg("feed generation failed")
		rw.InternalError("feed generation failed")
		return
	}

	if req.Limit > 0 && len(items) > req.Limit {
		items = items[:req.Limit]
	}

	resp := FeedResponse{
		UserID: req.UserID,
		Items:  items,
	}
	if variant != nil {
		resp.TestID = req.TestID
		resp.VariantID = variant.ID
	}

	if req.RecordImpressions && h.analytics != nil {
		for i := range items {
			item := &items[i].Content
			if err := h.analytics.RecordImpression(r.Context(), req.UserID, item.ID, item.Type); err != nil {
				h.logger.Warn().Err(err).Str("content_id", item.ID).Msg("impression record failed")
			}
		}
	}

	rw.Success(resp)
}

// ScoreRequest is the body for POST /api/v1/feed/score.
type ScoreRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ContentID string `json:"content_id" validate:"required"`

	// TestID scores through the user's assigned variant config.
	TestID string `json:"test_id,omitempty"`
}

// ScoreResponse is the payload for POST /api/v1/feed/score, exposing the
// per-factor breakdown for debugging and tuning.
type ScoreResponse struct {
	UserID    string     `json:"user_id"`
	VariantID string     `json:"variant_id,omitempty"`
	Score     feed.Score `json:"score"`
}

// ScoreContent handles POST /api/v1/feed/score.
func (h *Handler) ScoreContent(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	content, err := h.provider.GetContent(r.Context(), req.ContentID)
	if err != nil {
		respondProviderError(w, r, err)
		return
	}

	gen, err := h.generationContext(r, req.UserID, nil)
	if err != nil {
		respondProviderError(w, r, err)
		return
	}

	svc, variant, err := h.serviceFor(req.TestID, req.UserID)
	if err != nil {
		h.logger.Error().Err(err).Str("test_id", req.TestID).Msg("variant service construction failed")
		rw.InternalError("experiment configuration is invalid")
		return
	}

	resp := ScoreResponse{
		UserID: req.UserID,
		Score:  svc.Engine().ScoreContent(content, gen),
	}
	if variant != nil {
		resp.VariantID = variant.ID
	}

	rw.Success(resp)
}
