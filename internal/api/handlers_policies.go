// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/equalityatlas/internal/models"
	"github.com/tomtom215/equalityatlas/internal/research"
)

// ListPolicies handles GET /api/policies
//
// @Summary Violence-against-women policy measures
// @Description Ordered by year descending, then form of violence
// @Tags Policies
// @Produce json
// @Param locationIso3 query string false "Location ISO3 code"
// @Param yearFrom query int false "First year (inclusive)"
// @Param yearTo query int false "Last year (inclusive)"
// @Param formOfViolence query string false "Form of violence"
// @Param measureType query string false "Type of measure"
// @Success 200 {object} models.PolicyList
// @Failure 400 {object} models.ErrorEnvelope
// @Router /policies [get]
func (h *Handler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	from, to, err := yearRange(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.store.ListPolicies(r.Context(), models.PolicyFilter{
		LocationISO3:   query(r, "locationIso3"),
		YearFrom:       from,
		YearTo:         to,
		FormOfViolence: query(r, "formOfViolence"),
		MeasureType:    query(r, "measureType"),
	})
	if err != nil {
		writeError(w, r, Internal(err))
		return
	}
	writeJSON(w, r, http.StatusOK, list)
}

// ListResearchTemplates handles GET /api/research/templates
//
// @Summary Research template summaries
// @Tags Research
// @Produce json
// @Success 200 {object} research.SummaryList
// @Router /research/templates [get]
func (h *Handler) ListResearchTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.research.List())
}

// GetResearchTemplate handles GET /api/research/templates/{id}
//
// @Summary Full research template or brief
// @Tags Research
// @Produce json
// @Param id path string true "Template id"
// @Success 200 {object} research.Template
// @Failure 404 {object} models.ErrorEnvelope
// @Router /research/templates/{id} [get]
func (h *Handler) GetResearchTemplate(w http.ResponseWriter, r *http.Request) {
	entry, err := h.research.Get(chi.URLParam(r, "id"))
	if errors.Is(err, research.ErrNotFound) {
		writeError(w, r, &Error{Status: http.StatusNotFound, Message: "Research template not found", Err: err})
		return
	}
	if err != nil {
		writeError(w, r, Internal(err))
		return
	}
	writeJSON(w, r, http.StatusOK, entry)
}
