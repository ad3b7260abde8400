// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/equalityatlas/internal/logging"
	"github.com/tomtom215/equalityatlas/internal/models"
)

// healthPingTimeout bounds the store ping of a health probe.
const healthPingTimeout = 2 * time.Second

// checkStore pings the store and reports its state.
func (h *Handler) checkStore(ctx context.Context) models.HealthStatus {
	status := models.HealthStatus{
		Status:    models.HealthOK,
		Timestamp: h.clock.Now().UTC(),
		DB:        models.DBUnknown,
	}
	if h.store == nil {
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Store ping failed")
		status.Status = models.HealthDegraded
		status.DB = models.DBDown
		status.Error = "database unreachable"
		return status
	}
	status.DB = models.DBUp
	return status
}

// Health handles GET /api/health
//
// @Summary Service health
// @Description Always 200. status is degraded when the store does not answer.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.checkStore(r.Context()))
}

// HealthLive handles GET /api/health/live
//
// @Summary Liveness probe
// @Description 200 while the process serves requests, regardless of dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"alive":  true,
		"uptime": h.clock.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /api/health/ready
//
// @Summary Readiness probe
// @Description 503 when the store does not answer
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Failure 503 {object} models.HealthStatus
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.checkStore(r.Context())
	code := http.StatusOK
	if status.DB != models.DBUp {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, status)
}
