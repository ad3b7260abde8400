// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package ranking

import (
	"strings"

	"github.com/tomtom215/equalityatlas/internal/models"
)

// ParseLocations splits a comma-separated location list, trims each entry,
// drops empties and collapses duplicates while keeping first-seen order.
// Codes are not validated here.
func ParseLocations(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		code := strings.TrimSpace(p)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// FilterRegion keeps the ranking rows whose region matches region
// (case-insensitive) and re-ranks them within that subset. The input slice is
// not modified.
func FilterRegion(p models.Polarity, rows []models.RankingRow, region string) []models.RankingRow {
	out := make([]models.RankingRow, 0, len(rows))
	for _, r := range rows {
		if r.Location.Region != nil && strings.EqualFold(*r.Location.Region, region) {
			out = append(out, r)
		}
	}
	Rank(p, out)
	return out
}
