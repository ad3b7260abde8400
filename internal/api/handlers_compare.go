// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/equalityatlas/internal/models"
	"github.com/tomtom215/equalityatlas/internal/ranking"
	"github.com/tomtom215/equalityatlas/internal/validation"
)

// compareTarget is the validated year and location set of a comparison.
type compareTarget struct {
	Year      int
	Locations []string
}

// parseCompareTarget checks year and locations after the caller has checked
// its indicator parameter. Nothing here touches the store.
func parseCompareTarget(r *http.Request) (compareTarget, error) {
	rawYear := query(r, "year")
	if rawYear == "" {
		return compareTarget{}, BadRequest("year is required")
	}
	rawLocations := query(r, "locations")
	if rawLocations == "" {
		return compareTarget{}, BadRequest("locations is required")
	}
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return compareTarget{}, BadRequest("year must be a number")
	}

	locations := ranking.ParseLocations(rawLocations)
	if len(locations) == 0 {
		return compareTarget{}, BadRequest("locations list is required")
	}
	if invalid := validation.InvalidLocationCodes(locations); len(invalid) > 0 {
		return compareTarget{}, BadRequest("Invalid location ISO3 codes", invalid...)
	}
	return compareTarget{Year: year, Locations: locations}, nil
}

// Compare handles GET /api/compare
//
// @Summary Compare locations for one indicator and year
// @Description Ranks the requested locations by their value in exactly the requested year. Locations without data for that year are absent.
// @Tags Compare
// @Produce json
// @Param indicatorCode query string true "Indicator code"
// @Param year query int true "Exact year"
// @Param locations query string true "Comma-separated location codes"
// @Success 200 {object} models.ComparisonResult
// @Failure 400 {object} models.ErrorEnvelope
// @Failure 404 {object} models.ErrorEnvelope
// @Router /compare [get]
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	indicatorCode := query(r, "indicatorCode")
	if indicatorCode == "" {
		writeError(w, r, BadRequest("indicatorCode is required"))
		return
	}
	target, err := parseCompareTarget(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.store.Compare(r.Context(), models.CompareRequest{
		IndicatorCode: indicatorCode,
		Year:          target.Year,
		Locations:     target.Locations,
	})
	if err != nil {
		writeError(w, r, storeError(err, "Indicator not found"))
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
