// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package api

import (
	"io"
	"net/http"

	"github.com/tomtom215/equalityatlas/internal/export"
	"github.com/tomtom215/equalityatlas/internal/models"
	"github.com/tomtom215/equalityatlas/internal/ranking"
)

// ExportRankings handles GET /api/observations/rankings/export
//
// @Summary Rankings as CSV
// @Description Columns Rank, Country, Value, Unit. Same parameters and validation as the rankings endpoint.
// @Tags Export
// @Produce text/csv
// @Param indicatorCode query string true "Indicator code"
// @Param limit query int false "Maximum rows (1-1000)" default(200)
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} models.ErrorEnvelope
// @Failure 404 {object} models.ErrorEnvelope
// @Router /observations/rankings/export [get]
func (h *Handler) ExportRankings(w http.ResponseWriter, r *http.Request) {
	result, err := h.rankings(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCSV(w, r, export.RankingsFilename(result.Indicator.Code), func(out io.Writer) error {
		return export.WriteRankings(out, *result)
	})
}

// ExportComparison handles GET /api/compare/export
//
// @Summary Comparison matrix as CSV
// @Description One row per indicator, one column per requested location. Missing values are N/A.
// @Tags Export
// @Produce text/csv
// @Param indicatorCodes query string true "Comma-separated indicator codes"
// @Param year query int true "Exact year"
// @Param locations query string true "Comma-separated location codes"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} models.ErrorEnvelope
// @Failure 404 {object} models.ErrorEnvelope
// @Router /compare/export [get]
func (h *Handler) ExportComparison(w http.ResponseWriter, r *http.Request) {
	codes := ranking.ParseLocations(query(r, "indicatorCodes"))
	if len(codes) == 0 {
		writeError(w, r, BadRequest("indicatorCodes is required"))
		return
	}
	target, err := parseCompareTarget(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	results := make([]models.ComparisonResult, 0, len(codes))
	for _, code := range codes {
		res, err := h.store.Compare(r.Context(), models.CompareRequest{
			IndicatorCode: code,
			Year:          target.Year,
			Locations:     target.Locations,
		})
		if err != nil {
			writeError(w, r, storeError(err, "Indicator not found"))
			return
		}
		results = append(results, *res)
	}

	writeCSV(w, r, export.CompareFilename(target.Year), func(out io.Writer) error {
		return export.WriteComparisonMatrix(out, results, target.Locations)
	})
}
