// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

// Package ranking holds the polarity-aware ordering rules shared by the store,
// the HTTP surface, the CSV exporters and API consumers.
//
// The store ranks with SQL RANK() OVER (ORDER BY value {DESC|ASC}). The
// functions here reproduce exactly the same semantics in Go so that a
// consumer re-ranking a subset (a region filter, say) agrees with the server:
//
//   - higher_is_better = true orders by value descending, anything else
//     (false or neutral) ascending
//   - equal values share a rank, and the next distinct value's rank skips
//     ahead by the number of tied rows
//   - rows tied on value are ordered by location name
package ranking

import (
	"cmp"
	"slices"

	"github.com/tomtom215/equalityatlas/internal/models"
)

// SQLDirection returns the ORDER BY keyword for a polarity.
func SQLDirection(p models.Polarity) string {
	if p.Descending() {
		return "DESC"
	}
	return "ASC"
}

// Compare orders two values best first. It returns a negative number when a
// ranks ahead of b, zero on ties and a positive number otherwise.
func Compare(p models.Polarity, a, b float64) int {
	if p.Descending() {
		return cmp.Compare(b, a)
	}
	return cmp.Compare(a, b)
}

// Ranked is a row that can be ordered and ranked. WithRank returns a copy of
// the row carrying the given rank.
type Ranked[T any] interface {
	RankValue() float64
	RankName() string
	WithRank(rank int) T
}

// Sort orders rows best first with location name as the secondary key.
// The sort is stable so rows equal on both keys keep their input order.
func Sort[T Ranked[T]](p models.Polarity, rows []T) {
	slices.SortStableFunc(rows, func(a, b T) int {
		if c := Compare(p, a.RankValue(), b.RankValue()); c != 0 {
			return c
		}
		return cmp.Compare(a.RankName(), b.RankName())
	})
}

// AssignRanks numbers already sorted rows with RANK() semantics.
func AssignRanks[T Ranked[T]](rows []T) {
	rank := 0
	for i := range rows {
		if i == 0 || rows[i].RankValue() != rows[i-1].RankValue() {
			rank = i + 1
		}
		rows[i] = rows[i].WithRank(rank)
	}
}

// Rank sorts rows and assigns ranks in one step.
func Rank[T Ranked[T]](p models.Polarity, rows []T) {
	Sort(p, rows)
	AssignRanks(rows)
}
