// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

// Package export renders ranking and comparison results as CSV. Units are
// always resolved through ranking.ResolveDisplay so exported files label
// values the same way the JSON responses do.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tomtom215/equalityatlas/internal/models"
	"github.com/tomtom215/equalityatlas/internal/ranking"
)

// ContentType is the media type of every export.
const ContentType = "text/csv; charset=utf-8"

// Missing marks a matrix cell with no observation for the requested year.
const Missing = "N/A"

// RankingsHeader is the header row of a rankings export.
var RankingsHeader = []string{"Rank", "Country", "Value", "Unit"}

// FormatValue renders a value with the shortest exact representation.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RankingsFilename suggests a download name for a rankings export.
func RankingsFilename(indicatorCode string) string {
	return fmt.Sprintf("%s-rankings.csv", indicatorCode)
}

// CompareFilename suggests a download name for a comparison export.
func CompareFilename(year int) string {
	return fmt.Sprintf("compare-%d.csv", year)
}

// WriteRankings writes one line per ranking row under RankingsHeader.
func WriteRankings(w io.Writer, result models.RankingResult) error {
	unit := ranking.ResolveDisplay(result.Indicator, result.LatestYear).UnitLabel

	cw := csv.NewWriter(w)
	if err := cw.Write(RankingsHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range result.Items {
		record := []string{strconv.Itoa(r.Rank), r.Location.Name, FormatValue(r.Value), unit}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", r.Location.ISO3, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteComparisonMatrix writes one line per indicator and one column per
// requested location, in request order. The column header is the location
// name when any result carries it, otherwise the requested code.
func WriteComparisonMatrix(w io.Writer, results []models.ComparisonResult, locations []string) error {
	names := make(map[string]string, len(locations))
	for _, res := range results {
		for _, item := range res.Items {
			if _, ok := names[item.Location.ISO3]; !ok && item.Location.Name != "" {
				names[item.Location.ISO3] = item.Location.Name
			}
		}
	}

	header := make([]string, 0, len(locations)+2)
	header = append(header, "Indicator")
	for _, code := range locations {
		if name, ok := names[code]; ok {
			header = append(header, name)
		} else {
			header = append(header, code)
		}
	}
	header = append(header, "Unit")

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, res := range results {
		values := make(map[string]float64, len(res.Items))
		for _, item := range res.Items {
			values[item.Location.ISO3] = item.Value
		}

		label := res.Indicator.Name
		if label == "" {
			label = res.Indicator.Code
		}
		record := make([]string, 0, len(header))
		record = append(record, label)
		for _, code := range locations {
			if v, ok := values[code]; ok {
				record = append(record, FormatValue(v))
			} else {
				record = append(record, Missing)
			}
		}
		record = append(record, ranking.ResolveDisplay(res.Indicator.Indicator, nil).UnitLabel)

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", res.Indicator.Code, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
