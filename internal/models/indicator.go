// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package models

// Domain groups indicators by theme (e.g. ECONOMIC_PARTICIPATION).
type Domain struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Unit is the measurement unit of an indicator. Any field may be absent in
// the source data; display code resolves a label through ResolveDisplay.
type Unit struct {
	Code   *string `json:"code"`
	Name   *string `json:"name"`
	Symbol *string `json:"symbol"`
}

// Source identifies the publisher of an indicator.
type Source struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	URL  *string `json:"url"`
}

// Indicator is a statistical series.
//
// HigherIsBetter is the single polarity flag: true orders rankings by value
// descending, false or nil (neutral) orders ascending.
type Indicator struct {
	ID             int64   `json:"id,omitempty"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	HigherIsBetter *bool   `json:"higher_is_better"`
	Domain         *Domain `json:"domain,omitempty"`
	Unit           Unit    `json:"unit"`
	Source         *Source `json:"source,omitempty"`

	// List statistics, populated by the indicator listing only.
	LatestYear    *int `json:"latestYear,omitempty"`
	CoverageCount *int `json:"coverageCount,omitempty"`
}

// Polarity is the direction of merit of an indicator.
type Polarity string

// Polarity values. PolarityNeutral is the zero value.
const (
	PolarityHigherIsBetter Polarity = "HIGHER_IS_BETTER"
	PolarityLowerIsBetter  Polarity = "LOWER_IS_BETTER"
	PolarityNeutral        Polarity = ""
)

// Polarity derives the direction of merit from HigherIsBetter.
func (i *Indicator) Polarity() Polarity {
	switch {
	case i.HigherIsBetter == nil:
		return PolarityNeutral
	case *i.HigherIsBetter:
		return PolarityHigherIsBetter
	default:
		return PolarityLowerIsBetter
	}
}

// Descending reports whether "best first" means largest value first.
func (p Polarity) Descending() bool {
	return p == PolarityHigherIsBetter
}

// IndicatorFilter holds listing parameters for indicators.
type IndicatorFilter struct {
	Query  string
	Domain string
	Limit  int
	Offset int
}

// IndicatorList is a page of indicators.
type IndicatorList struct {
	Total int         `json:"total"`
	Items []Indicator `json:"items"`
}
