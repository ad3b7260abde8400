// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package ranking

import (
	"strings"

	"github.com/tomtom215/equalityatlas/internal/models"
)

// Direction labels.
const (
	DirectionHigher  = "higher is better"
	DirectionLower   = "lower is better"
	DirectionNeutral = "neutral"
)

// NoUnit is the label used when an indicator carries no unit at all.
const NoUnit = "no unit"

// ResolveDisplay is the one place a value's presentation is derived from
// indicator metadata. JSON responses, CSV exports, the Go client and the CLI
// all call it.
func ResolveDisplay(ind models.Indicator, latestYear *int) models.Display {
	d := models.Display{
		Direction: DirectionNeutral,
		UnitLabel: UnitLabel(ind.Unit),
	}
	switch ind.Polarity() {
	case models.PolarityHigherIsBetter:
		d.Direction = DirectionHigher
	case models.PolarityLowerIsBetter:
		d.Direction = DirectionLower
	}
	if latestYear != nil {
		y := *latestYear
		d.FreshnessYear = &y
	}
	return d
}

// UnitLabel picks symbol, then code, then name, then NoUnit. Blank strings
// count as absent.
func UnitLabel(u models.Unit) string {
	for _, candidate := range []*string{u.Symbol, u.Code, u.Name} {
		if candidate != nil && strings.TrimSpace(*candidate) != "" {
			return *candidate
		}
	}
	return NoUnit
}

// LatestYear returns the maximum year among rows, nil when rows is empty.
func LatestYear(rows []models.RankingRow) *int {
	if len(rows) == 0 {
		return nil
	}
	latest := rows[0].Year
	for _, r := range rows[1:] {
		latest = max(latest, r.Year)
	}
	return &latest
}
