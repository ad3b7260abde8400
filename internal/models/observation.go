// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package models

// Observation is one point of an indicator time series for a location.
// Years without a recorded observation are simply absent from a series.
type Observation struct {
	ID                    int64    `json:"id"`
	Year                  int      `json:"year"`
	Value                 *float64 `json:"value"`
	Note                  *string  `json:"note"`
	LocationISO3          string   `json:"location_iso3"`
	LocationName          string   `json:"location_name"`
	UnitCode              *string  `json:"unit_code"`
	DataSourceCode        *string  `json:"data_source_code"`
	GenderCode            *string  `json:"gender_code"`
	AgeGroupCode          *string  `json:"age_group_code"`
	ObservationStatusCode *string  `json:"observation_status_code"`
}

// ObservationFilter selects a time series. Every non-nil or non-empty field
// narrows the result (conjunctive); an empty field means "any value", not
// "value is null".
type ObservationFilter struct {
	IndicatorCode string
	LocationISO3  string
	YearFrom      *int
	YearTo        *int
	Gender        string
	AgeGroup      string
	Children      string
	Household     string
}

// ObservationSeries is the response of the time-series query.
type ObservationSeries struct {
	Indicator Indicator     `json:"indicator"`
	Items     []Observation `json:"items"`
}
