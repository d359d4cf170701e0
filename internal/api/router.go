// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router wires the handler and middleware into a chi mux.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a router over the given handler and middleware
// configuration.
func NewRouter(handler *Handler, mwConfig *MiddlewareConfig) *Router {
	return &Router{
		handler:    handler,
		middleware: NewMiddleware(mwConfig),
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS()) // global so OPTIONS preflight works
	r.Use(RequestLogger())

	// Prometheus scrape endpoint, outside the rate-limited API tree.
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(MetricsMiddleware())

		r.Get("/health", router.handler.Health)

		r.Route("/feed", func(r chi.Router) {
			r.Post("/", router.handler.GenerateFeed)
			r.Post("/score", router.handler.ScoreContent)
		})

		r.Route("/experiments", func(r chi.Router) {
			r.Get("/", router.handler.ListTests)
			r.Post("/", router.handler.RegisterTest)
			r.Get("/{id}/variant", router.handler.GetVariant)
			r.Get("/{id}/results", router.handler.GetResults)
			r.Post("/{id}/variants/{variant}/metrics", router.handler.RecordVariantMetrics)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Post("/events", router.handler.RecordEvent)
			r.Get("/report", router.handler.GetReport)
		})
	})

	return r
}
