// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/openann19/pawfeed/internal/experiment"
	"github.com/openann19/pawfeed/internal/validation"
)

// RegisterTestRequest is the body for POST /api/v1/experiments.
type RegisterTestRequest struct {
	ID          string                `json:"id" validate:"required"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Active      bool                  `json:"active"`
	Variants    []*experiment.Variant `json:"variants" validate:"required,min=1"`
}

// RegisterTest handles POST /api/v1/experiments.
func (h *Handler) RegisterTest(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RegisterTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	test := &experiment.Test{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Variants:    req.Variants,
		StartedAt:   time.Now().UTC(),
		Active:      req.Active,
	}
	if err := h.experiments.Register(test); err != nil {
		rw.Conflict(err.Error())
		return
	}

	rw.Created(map[string]string{"test_id": test.ID})
}

// ListTests handles GET /api/v1/experiments.
func (h *Handler) ListTests(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"tests": h.experiments.Tests(),
	})
}

// AssignmentResponse is the payload for the variant lookup endpoint.
type AssignmentResponse struct {
	TestID  string              `json:"test_id"`
	UserID  string              `json:"user_id"`
	Variant *experiment.Variant `json:"variant"`
}

// GetVariant handles GET /api/v1/experiments/{id}/variant?user_id=...
// A null variant means the test is unknown or inactive.
func (h *Handler) GetVariant(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	testID := chi.URLParam(r, "id")
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		rw.BadRequest("user_id query parameter is required")
		return
	}

	rw.Success(AssignmentResponse{
		TestID:  testID,
		UserID:  userID,
		Variant: h.experiments.Assign(testID, userID),
	})
}

// RecordVariantMetrics handles
// POST /api/v1/experiments/{id}/variants/{variant}/metrics.
func (h *Handler) RecordVariantMetrics(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	testID := chi.URLParam(r, "id")
	variantID := chi.URLParam(r, "variant")

	var obs experiment.VariantMetrics
	if err := json.NewDecoder(r.Body).Decode(&obs); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}

	if err := h.experiments.RecordMetrics(testID, variantID, obs); err != nil {
		rw.NotFound(err.Error())
		return
	}

	rw.Success(map[string]string{"test_id": testID, "variant_id": variantID})
}

// GetResults handles GET /api/v1/experiments/{id}/results.
func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	results, err := h.experiments.Results(chi.URLParam(r, "id"))
	if err != nil {
		rw.NotFound(err.Error())
		return
	}

	rw.Success(results)
}
