// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/equalityatlas/internal/models"
)

// ListIndicators handles GET /api/indicators
//
// @Summary List indicators
// @Description Page of indicators ordered by code, with latest observed year and location coverage
// @Tags Catalog
// @Produce json
// @Param q query string false "Case-insensitive match on code or name"
// @Param domain query string false "Domain code"
// @Param limit query int false "Page size (1-1000)" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} models.IndicatorList
// @Failure 400 {object} models.ErrorEnvelope
// @Router /indicators [get]
func (h *Handler) ListIndicators(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.store.ListIndicators(r.Context(), models.IndicatorFilter{
		Query:  query(r, "q"),
		Domain: query(r, "domain"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		writeError(w, r, Internal(err))
		return
	}
	writeJSON(w, r, http.StatusOK, list)
}

// GetIndicator handles GET /api/indicators/{code}
//
// @Summary Get indicator metadata
// @Tags Catalog
// @Produce json
// @Param code path string true "Indicator code"
// @Success 200 {object} models.Indicator
// @Failure 404 {object} models.ErrorEnvelope
// @Router /indicators/{code} [get]
func (h *Handler) GetIndicator(w http.ResponseWriter, r *http.Request) {
	ind, err := h.store.GetIndicator(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, r, storeError(err, "Indicator not found"))
		return
	}
	writeJSON(w, r, http.StatusOK, ind)
}

// ListLocations handles GET /api/locations
//
// @Summary List locations
// @Description Page of locations ordered by name
// @Tags Catalog
// @Produce json
// @Param q query string false "Case-insensitive match on name or ISO3"
// @Param region query string false "Region"
// @Param limit query int false "Page size (1-1000)" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} models.LocationList
// @Failure 400 {object} models.ErrorEnvelope
// @Router /locations [get]
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.store.ListLocations(r.Context(), models.LocationFilter{
		Query:  query(r, "q"),
		Region: query(r, "region"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		writeError(w, r, Internal(err))
		return
	}
	writeJSON(w, r, http.StatusOK, list)
}

// GetLocation handles GET /api/locations/{iso3}
//
// @Summary Get a location
// @Tags Catalog
// @Produce json
// @Param iso3 path string true "ISO3 code"
// @Success 200 {object} models.Location
// @Failure 404 {object} models.ErrorEnvelope
// @Router /locations/{iso3} [get]
func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := h.store.GetLocation(r.Context(), chi.URLParam(r, "iso3"))
	if err != nil {
		writeError(w, r, storeError(err, "Location not found"))
		return
	}
	writeJSON(w, r, http.StatusOK, loc)
}
