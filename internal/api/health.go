// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

package api

import (
	"context"
	"net/http"
	"time"
)

// HealthStatus is the payload for health endpoints.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// HealthLive handles GET /api/v1/health/live. It reports process liveness
// only; no dependencies are checked.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{Status: "ok"})
}

// HealthReady handles GET /api/v1/health/ready. Readiness requires a live
// database connection.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		rw.Error(http.StatusServiceUnavailable, ErrCodeDatabaseError, "database unavailable")
		return
	}

	rw.Success(HealthStatus{Status: "ok", Database: "up"})
}
