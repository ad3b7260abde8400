// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/equalityatlas/internal/validation"
)

// Paging defaults for the listing endpoints.
const (
	defaultPageLimit    = 50
	defaultRankingLimit = 200
)

// pageParams are the validated limit and offset of a listing.
type pageParams struct {
	Limit  int `query:"limit" validate:"min=1,max=1000"`
	Offset int `query:"offset" validate:"min=0"`
}

// rankingParams bound the number of ranking rows.
type rankingParams struct {
	Limit int `query:"limit" validate:"min=1,max=1000"`
}

// query returns a trimmed query parameter.
func query(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// intParam parses an optional integer parameter. An empty value keeps def.
func intParam(r *http.Request, key string, def int) (int, bool) {
	raw := query(r, key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// optionalYear parses key into a pointer; absent means nil.
func optionalYear(r *http.Request, key string) (*int, error) {
	raw := query(r, key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, BadRequest(key + " must be a number")
	}
	return &n, nil
}

// yearRange parses yearFrom and yearTo.
func yearRange(r *http.Request) (from, to *int, err error) {
	if from, err = optionalYear(r, "yearFrom"); err != nil {
		return nil, nil, err
	}
	if to, err = optionalYear(r, "yearTo"); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

// parsePage reads limit and offset with the listing defaults.
func parsePage(r *http.Request) (pageParams, error) {
	limit, okLimit := intParam(r, "limit", defaultPageLimit)
	offset, okOffset := intParam(r, "offset", 0)
	if !okLimit || !okOffset {
		return pageParams{}, BadRequest("limit and offset must be numbers")
	}
	p := pageParams{Limit: limit, Offset: offset}
	if err := validate(&p); err != nil {
		return pageParams{}, err
	}
	return p, nil
}

// validate runs struct validation and converts failures to a 400.
func validate(v any) error {
	if ve := validation.ValidateStruct(v); ve != nil {
		return BadRequest(ve.Message(), ve.Details()...)
	}
	return nil
}
