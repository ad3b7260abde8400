// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package models

// Display is the resolved presentation of an indicator value: direction of
// merit, unit label and freshness. It is produced by ranking.ResolveDisplay
// and nowhere else.
type Display struct {
	Direction     string `json:"direction"`
	UnitLabel     string `json:"unitLabel"`
	FreshnessYear *int   `json:"freshnessYear"`
}

// RankedLocation is the location block of a ranking row.
type RankedLocation struct {
	ISO3        string  `json:"iso3"`
	Name        string  `json:"name"`
	Region      *string `json:"region"`
	IncomeGroup *string `json:"incomeGroup"`
}

// RankingRow is one location's latest value and its rank. Rank is >= 1; tied
// values share a rank and the next distinct value skips ahead by the number
// of tied rows.
type RankingRow struct {
	Rank     int            `json:"rank"`
	Location RankedLocation `json:"location"`
	Year     int            `json:"year"`
	Value    float64        `json:"value"`
}

// RankingResult is the response of the latest-value ranking query.
// LatestYear is the maximum year among Items, nil when Items is empty.
type RankingResult struct {
	Indicator  Indicator    `json:"indicator"`
	Display    Display      `json:"display"`
	LatestYear *int         `json:"latestYear"`
	Items      []RankingRow `json:"items"`
}

// CompareRequest asks for one indicator in one exact year across a set of
// locations.
type CompareRequest struct {
	IndicatorCode string
	Year          int
	Locations     []string
}

// ComparedLocation is the location block of a comparison row.
type ComparedLocation struct {
	ISO3        string  `json:"iso3"`
	Name        string  `json:"name"`
	Region      *string `json:"region"`
	IncomeGroup *string `json:"income_group"`
}

// ComparisonRow is one requested location's value for the requested year.
// Rank is computed over the requested locations only.
type ComparisonRow struct {
	Rank           int              `json:"rank"`
	Year           int              `json:"year"`
	Value          float64          `json:"value"`
	Note           *string          `json:"note"`
	Status         *string          `json:"status"`
	Location       ComparedLocation `json:"location"`
	UnitCode       *string          `json:"unit_code"`
	DataSourceCode *string          `json:"data_source_code"`
	GenderCode     *string          `json:"gender_code"`
	AgeGroupCode   *string          `json:"age_group_code"`
}

// ComparisonIndicator is indicator metadata echoed with the requested year.
type ComparisonIndicator struct {
	Indicator
	Year int `json:"year"`
}

// ComparisonResult is the response of the comparison query. A requested
// location with no observation for the year is absent from Items.
type ComparisonResult struct {
	Indicator ComparisonIndicator `json:"indicator"`
	Display   Display             `json:"display"`
	Items     []ComparisonRow     `json:"items"`
}

// RankValue, RankName and WithRank let ranking.Rank order RankingRow values.
func (r RankingRow) RankValue() float64 { return r.Value }
func (r RankingRow) RankName() string   { return r.Location.Name }
func (r RankingRow) WithRank(rank int) RankingRow {
	r.Rank = rank
	return r
}

// RankValue, RankName and WithRank let ranking.Rank order ComparisonRow values.
func (r ComparisonRow) RankValue() float64 { return r.Value }
func (r ComparisonRow) RankName() string   { return r.Location.Name }
func (r ComparisonRow) WithRank(rank int) ComparisonRow {
	r.Rank = rank
	return r
}
