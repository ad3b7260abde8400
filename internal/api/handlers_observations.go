// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package api

import (
	"net/http"

	"github.com/tomtom215/equalityatlas/internal/models"
)

// GetObservations handles GET /api/observations
//
// @Summary Time series for one indicator and location
// @Description Observations ordered by year. Missing years are absent; nothing is interpolated.
// @Tags Observations
// @Produce json
// @Param indicatorCode query string true "Indicator code"
// @Param locationIso3 query string true "Location ISO3 code"
// @Param yearFrom query int false "First year (inclusive)"
// @Param yearTo query int false "Last year (inclusive)"
// @Param gender query string false "Gender code"
// @Param ageGroup query string false "Age group code"
// @Param children query string false "Children count code"
// @Param household query string false "Household type code"
// @Success 200 {object} models.ObservationSeries
// @Failure 400 {object} models.ErrorEnvelope
// @Failure 404 {object} models.ErrorEnvelope
// @Router /observations [get]
func (h *Handler) GetObservations(w http.ResponseWriter, r *http.Request) {
	indicatorCode := query(r, "indicatorCode")
	locationISO3 := query(r, "locationIso3")
	if indicatorCode == "" || locationISO3 == "" {
		writeError(w, r, BadRequest("indicatorCode and locationIso3 are required"))
		return
	}

	from, to, err := yearRange(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	series, err := h.store.GetObservations(r.Context(), models.ObservationFilter{
		IndicatorCode: indicatorCode,
		LocationISO3:  locationISO3,
		YearFrom:      from,
		YearTo:        to,
		Gender:        query(r, "gender"),
		AgeGroup:      query(r, "ageGroup"),
		Children:      query(r, "children"),
		Household:     query(r, "household"),
	})
	if err != nil {
		writeError(w, r, storeError(err, "Indicator not found"))
		return
	}
	writeJSON(w, r, http.StatusOK, series)
}

// GetRankings handles GET /api/observations/rankings
//
// @Summary Rank locations by their latest value
// @Description Best first according to the indicator polarity. Tied values share a rank.
// @Tags Observations
// @Produce json
// @Param indicatorCode query string true "Indicator code"
// @Param limit query int false "Maximum rows (1-1000)" default(200)
// @Success 200 {object} models.RankingResult
// @Failure 400 {object} models.ErrorEnvelope
// @Failure 404 {object} models.ErrorEnvelope
// @Router /observations/rankings [get]
func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	result, err := h.rankings(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

// rankings validates the ranking parameters and runs the query. Shared by
// the JSON and CSV routes.
func (h *Handler) rankings(r *http.Request) (*models.RankingResult, error) {
	indicatorCode := query(r, "indicatorCode")
	if indicatorCode == "" {
		return nil, BadRequest("indicatorCode is required")
	}
	limit, ok := intParam(r, "limit", defaultRankingLimit)
	if !ok {
		return nil, BadRequest("limit must be a number")
	}
	params := rankingParams{Limit: limit}
	if err := validate(&params); err != nil {
		return nil, err
	}

	result, err := h.store.GetRankings(r.Context(), indicatorCode, params.Limit)
	if err != nil {
		return nil, storeError(err, "Indicator not found")
	}
	return result, nil
}
