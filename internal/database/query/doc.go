// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

// Package query provides SQL query building utilities for the database package.
//
// Both supported drivers (DuckDB and PostgreSQL via pgx) accept numbered
// placeholders, so the builder emits $1, $2, ... and a query text is shared
// by both drivers unchanged. Clauses are written with ? and numbered on the
// way in:
//
//	wb := query.NewWhereBuilder()
//	wb.AddClause("indicator_code = ?", code)
//	wb.AddIntRange("year", filter.YearFrom, filter.YearTo)
//	wb.AddEq("gender_code", filter.Gender)
//	where, _ := wb.Build()
//	limit := wb.Bind(50)
//	// where: "indicator_code = $1 AND year >= $2 AND gender_code = $3"
//	// limit: "$4"
//	rows, err := db.QueryContext(ctx, "SELECT ... WHERE "+where+" LIMIT "+limit, wb.Args()...)
//
// Empty filters are skipped: an absent filter means "no constraint", never
// "column IS NULL". Values are always bound, never interpolated. Only column
// names, which are compile-time constants in callers, appear in SQL text.
package query
