// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/equalityatlas/internal/database/query"
	"github.com/tomtom215/equalityatlas/internal/models"
	"github.com/tomtom215/equalityatlas/internal/ranking"
)

// Compare returns the requested indicator for one exact year across the
// requested locations, ranked among themselves. Locations with no value for
// that year are left out.
//
// req.Locations is expected to be validated and de-duplicated by the caller.
func (db *DB) Compare(ctx context.Context, req models.CompareRequest) (*models.ComparisonResult, error) {
	started := time.Now()
	result, err := db.compare(ctx, req)
	db.observe("compare", started, ignoreNotFound(err))
	return result, err
}

func (db *DB) compare(ctx context.Context, req models.CompareRequest) (*models.ComparisonResult, error) {
	ind, err := db.getIndicator(ctx, req.IndicatorCode)
	if err != nil {
		return nil, err
	}

	year := req.Year
	result := &models.ComparisonResult{
		Indicator: models.ComparisonIndicator{Indicator: *ind, Year: year},
		Display:   ranking.ResolveDisplay(*ind, &year),
		Items:     make([]models.ComparisonRow, 0, len(req.Locations)),
	}
	if len(req.Locations) == 0 {
		return result, nil
	}

	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	wb := query.NewWhereBuilder()
	wb.AddClause("f.indicator_code = ?", req.IndicatorCode)
	wb.AddClause("f.year = ?", year)
	wb.AddClause("f.value IS NOT NULL")
	wb.AddIn("f.location_iso3", req.Locations)
	where, args := wb.Build()

	// The inner ROW_NUMBER keeps the headline observation per location so a
	// disaggregated row never shows up next to the aggregate one.
	dir := ranking.SQLDirection(ind.Polarity())
	q := `
	SELECT
		h.year,
		h.value,
		h.note,
		h.observation_status_code,
		h.location_iso3,
		h.location_name,
		l.region,
		l.income_group,
		h.unit_code,
		h.data_source_code,
		h.gender_code,
		h.age_group_code,
		RANK() OVER (ORDER BY h.value ` + dir + `) AS rank
	FROM (
		SELECT
			f.*,
			ROW_NUMBER() OVER (
				PARTITION BY f.location_iso3
				ORDER BY
					f.gender_code NULLS FIRST,
					f.age_group_code NULLS FIRST,
					f.children_count_code NULLS FIRST,
					f.household_type_code NULLS FIRST,
					f.id
			) AS rn
		FROM v_indicator_observations_flat f
		WHERE ` + where + `
	) h
	JOIN locations l ON l.iso3 = h.location_iso3
	WHERE h.rn = 1
	ORDER BY rank, h.location_name`

	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query comparison: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var (
			r              models.ComparisonRow
			note, status   sql.NullString
			region, income sql.NullString
			unit, source   sql.NullString
			gender, age    sql.NullString
		)
		if err := rows.Scan(&r.Year, &r.Value, &note, &status, &r.Location.ISO3, &r.Location.Name,
			&region, &income, &unit, &source, &gender, &age, &r.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan comparison row: %w", err)
		}
		r.Note = nullString(note)
		r.Status = nullString(status)
		r.Location.Region = nullString(region)
		r.Location.IncomeGroup = nullString(income)
		r.UnitCode = nullString(unit)
		r.DataSourceCode = nullString(source)
		r.GenderCode = nullString(gender)
		r.AgeGroupCode = nullString(age)
		result.Items = append(result.Items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comparison rows: %w", err)
	}

	return result, nil
}
