// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dcastano/golazo/internal/config"
	"github.com/dcastano/golazo/internal/database"
	"github.com/dcastano/golazo/internal/middleware"
)

// NewRouter wires the full route tree: resource endpoints under /api/v1,
// health probes, and the Prometheus scrape endpoint.
func NewRouter(db *database.DB, cfg *config.Config) http.Handler {
	handler := NewHandler(db, cfg)

	r := chi.NewRouter()

	// Global middleware, applied in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Security.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Health probes stay outside the rate limit so orchestrators are
		// never throttled.
		r.Route("/health", func(r chi.Router) {
			r.Get("/live", handler.HealthLive)
			r.Get("/ready", handler.HealthReady)
		})

		r.Group(func(r chi.Router) {
			if !cfg.Security.RateLimitDisabled {
				r.Use(httprate.LimitByIP(cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow))
			}
			r.Use(middleware.PrometheusMetrics)

			r.Get("/teams", handler.ListTeams)
			r.Get("/teams/{id}", handler.GetTeam)
			r.Get("/players", handler.ListPlayers)
			r.Get("/players/{id}", handler.GetPlayer)
			r.Get("/tournaments", handler.ListTournaments)
			r.Get("/tournaments/{id}", handler.GetTournament)
			r.Get("/matches", handler.ListMatches)
			r.Get("/matches/{id}", handler.GetMatch)
			r.Get("/stadiums", handler.ListStadiums)
			r.Get("/stadiums/{id}", handler.GetStadium)
			r.Get("/goals", handler.ListGoals)
			r.Get("/appearances", handler.ListAppearances)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		WriteNotFound(w, req, "endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		WriteError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	return r
}
