// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

// Package main is the entry point for the Pawfeed server.
//
// Pawfeed ranks a pet social network's feed with a weighted multi-factor
// scoring engine, runs deterministic A/B tests over ranking
// configurations, and records engagement analytics.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered defaults, YAML file, PAWFEED_* env (koanf)
//  2. Logging: zerolog, JSON by default
//  3. Feed engine: scoring engine, score cache, batch scorer
//  4. Experiments: register A/B tests declared in configuration
//  5. Analytics: in-memory or badger-backed event store
//  6. Supervisor tree: HTTP server, cache janitor, retention sweeper
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting connections, waits for in-flight requests within the
// configured timeout, and closes the analytics store.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/openann19/pawfeed/internal/analytics"
	"github.com/openann19/pawfeed/internal/api"
	"github.com/openann19/pawfeed/internal/config"
	"github.com/openann19/pawfeed/internal/experiment"
	"github.com/openann19/pawfeed/internal/feed"
	"github.com/openann19/pawfeed/internal/logging"
	"github.com/openann19/pawfeed/internal/supervisor"
	"github.com/openann19/pawfeed/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config errors surface through the default logger.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)).
		Str("analytics_store", cfg.Analytics.Store).
		Int("experiments", len(cfg.Experiments)).
		Msg("Starting Pawfeed")

	logger := logging.Logger()

	// Feed scoring stack.
	engine, err := feed.NewScoringEngine(cfg.Feed, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build scoring engine")
	}

	cache := feed.NewScoreCache(cfg.Cache.TTL)

	batchOpts := []feed.BatchOption{feed.WithChunkSize(cfg.Batch.ChunkSize)}
	if cfg.Batch.RatePerSecond > 0 {
		batchOpts = append(batchOpts, feed.WithRateLimit(cfg.Batch.RatePerSecond, cfg.Batch.RateBurst))
	}

	batch := feed.NewBatchScorer(engine, cache, batchOpts...)
	baseService := feed.NewPersonalizationService(engine, batch, logger)

	// Experiments declared in configuration go live at startup.
	experiments := experiment.NewEngine(logger)
	for i := range cfg.Experiments {
		if err := registerExperiment(experiments, &cfg.Experiments[i]); err != nil {
			logging.Fatal().Err(err).Str("test_id", cfg.Experiments[i].ID).Msg("Failed to register experiment")
		}
	}

	// Analytics event store.
	store, err := newAnalyticsStore(cfg, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open analytics store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing analytics store")
		}
	}()

	analyticsEngine := analytics.NewEngine(store, logger)

	// HTTP surface. The memory provider starts empty; profiles and
	// candidates arrive through the data seeding path of the deployment.
	provider := api.NewMemoryProvider()
	handler := api.NewHandler(api.HandlerDeps{
		Provider:    provider,
		Experiments: experiments,
		Analytics:   analyticsEngine,
		Base:        baseService,
		Cache:       cache,
		BatchOpts:   batchOpts,
		Logger:      logger,
	})

	router := api.NewRouter(handler, &api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.Server.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "Authorization"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Server.RateLimit,
		RateLimitWindow:    cfg.Server.RateLimitWindow,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Supervision tree: maintenance loops and the API server restart
	// independently.
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddMaintenanceService(services.NewCacheJanitorService(cache, cfg.Cache.JanitorInterval, logger))
	tree.AddMaintenanceService(services.NewAnalyticsSweeperService(
		analyticsEngine, cfg.Analytics.Retention, cfg.Analytics.SweepInterval, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Supervisor tree starting")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop in time")
		}
	}

	logging.Info().Msg("Pawfeed stopped")
}

// registerExperiment converts a config declaration into a live test.
func registerExperiment(engine *experiment.Engine, decl *config.ExperimentConfig) error {
	variants := make([]*experiment.Variant, len(decl.Variants))
	for i, v := range decl.Variants {
		variants[i] = &experiment.Variant{
			ID:     v.ID,
			Name:   v.Name,
			Weight: v.Weight,
			Config: v.Overrides,
		}
	}

	return engine.Register(&experiment.Test{
		ID:          decl.ID,
		Name:        decl.Name,
		Description: decl.Description,
		Variants:    variants,
		StartedAt:   time.Now().UTC(),
		Active:      decl.Active,
	})
}

// newAnalyticsStore builds the configured event store backend.
func newAnalyticsStore(cfg *config.Config, logger zerolog.Logger) (analytics.Store, error) {
	switch cfg.Analytics.Store {
	case "badger":
		return analytics.NewBadgerStore(cfg.Analytics.Path, logger)
	default:
		return analytics.NewMemoryStore(), nil
	}
}
