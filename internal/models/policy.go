// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package models

// Policy is a measure against violence against women recorded by UN Women.
// LocationISO3 is nil when the country name does not match a known location.
type Policy struct {
	ID             int64   `json:"id"`
	LocationISO3   *string `json:"location_iso3"`
	Country        string  `json:"country"`
	Year           int     `json:"year"`
	FormOfViolence *string `json:"form_of_violence"`
	MeasureType    *string `json:"measure_type"`
	Title          string  `json:"title"`
}

// PolicyFilter holds the optional, conjunctive policy filters.
type PolicyFilter struct {
	LocationISO3   string
	YearFrom       *int
	YearTo         *int
	FormOfViolence string
	MeasureType    string
}

// PolicyList wraps policy rows.
type PolicyList struct {
	Items []Policy `json:"items"`
}
