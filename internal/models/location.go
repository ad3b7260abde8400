// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package models

// Location is a country or an aggregate area. Locations without an ISO3 code
// cannot take part in rankings or comparisons.
type Location struct {
	ID             int64    `json:"id"`
	Type           string   `json:"type"`
	ISO3           *string  `json:"iso3"`
	Name           string   `json:"name"`
	Region         *string  `json:"region"`
	IncomeGroup    *string  `json:"income_group"`
	CoverageScore  *float64 `json:"coverage_score"`
	FreshnessScore *float64 `json:"freshness_score"`
	Note           *string  `json:"note"`
}

// LocationFilter holds listing parameters for locations.
type LocationFilter struct {
	Query  string
	Region string
	Limit  int
	Offset int
}

// LocationList is a page of locations.
type LocationList struct {
	Total int        `json:"total"`
	Items []Location `json:"items"`
}
