// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package api

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/openann19/pawfeed/internal/analytics"
	"github.com/openann19/pawfeed/internal/experiment"
	"github.com/openann19/pawfeed/internal/feed"
)

// Handler holds the engines behind the HTTP endpoints.
type Handler struct {
	provider    DataProvider
	experiments *experiment.Engine
	analytics   *analytics.Engine
	base        *feed.PersonalizationService
	cache       *feed.ScoreCache
	batchOpts   []feed.BatchOption
	logger      zerolog.Logger
	startedAt   time.Time

	// variantServices caches personalization services built from variant
	// config patches, keyed by testID/variantID.
	mu              sync.RWMutex
	variantServices map[string]*feed.PersonalizationService
}

// HandlerDeps bundles the dependencies for NewHandler.
type HandlerDeps struct {
	Provider    DataProvider
	Experiments *experiment.Engine
	Analytics   *analytics.Engine
	Base        *feed.PersonalizationService
	Cache       *feed.ScoreCache
	BatchOpts   []feed.BatchOption
	Logger      zerolog.Logger
}

// NewHandler creates the API handler.
func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		provider:        deps.Provider,
		experiments:     deps.Experiments,
		analytics:       deps.Analytics,
		base:            deps.Base,
		cache:           deps.Cache,
		batchOpts:       deps.BatchOpts,
		logger:          deps.Logger.With().Str("component", "api").Logger(),
		startedAt:       time.Now(),
		variantServices: make(map[string]*feed.PersonalizationService),
	}
}

// Health reports process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
	})
}

// serviceFor resolves the personalization service for a request. With no
// test id, or when the user falls outside every variant, the base
// service is used. A variant with a config patch gets a dedicated
// service built from the patched config, cached for reuse.
func (h *Handler) serviceFor(testID, userID string) (*feed.PersonalizationService, *experiment.Variant, error) {
	if testID == "" || h.experiments == nil {
		return h.base, nil, nil
	}

	variant := h.experiments.Assign(testID, userID)
	if variant == nil || variant.Config == nil {
		return h.base, variant, nil
	}

	key := testID + "/" + variant.ID

	h.mu.RLock()
	svc, ok := h.variantServices[key]
	h.mu.RUnlock()
	if ok {
		return svc, variant, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if svc, ok = h.variantServices[key]; ok {
		return svc, variant, nil
	}

	cfg := variant.Config.Apply(h.base.Engine().Config())
	engine, err := feed.NewScoringEngine(cfg, h.logger)
	if err != nil {
		return nil, nil, err
	}

	batch := feed.NewBatchScorer(engine, h.cache, h.batchOpts...)
	svc = feed.NewPersonalizationService(engine, batch, h.logger)
	h.variantServices[key] = svc

	h.logger.Info().
		Str("test_id", testID).
		Str("variant_id", variant.ID).
		Msg("built variant scoring service")

	return svc, variant, nil
}

// generationContext assembles the per-user scoring inputs.
func (h *Handler) generationContext(r *http.Request, userID string, filter *feed.FilterOptions) (*feed.GenerationContext, error) {
	ctx := r.Context()

	user, err := h.provider.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	graph, err := h.provider.GetSocialGraph(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := h.provider.GetEngagementHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	trending, err := h.provider.GetTrendingTopics(ctx)
	if err != nil {
		return nil, err
	}

	gen := &feed.GenerationContext{
		User:           *user,
		Graph:          *graph,
		History:        *history,
		TrendingTopics: trending,
	}
	if filter != nil {
		gen.Filter = *filter
	}
	return gen, nil
}

// respondProviderError maps provider failures to HTTP errors.
func respondProviderError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		NewResponseWriter(w, r).NotFound(notFound.Error())
		return
	}
	NewResponseWriter(w, r).InternalError("failed to load user data")
}
