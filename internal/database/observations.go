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

// GetObservations returns the time series selected by filter, ordered by
// year. Missing years are absent; nothing is interpolated.
func (db *DB) GetObservations(ctx context.Context, filter models.ObservationFilter) (*models.ObservationSeries, error) {
	started := time.Now()
	series, err := db.getObservations(ctx, filter)
	db.observe("get_observations", started, ignoreNotFound(err))
	return series, err
}

func (db *DB) getObservations(ctx context.Context, filter models.ObservationFilter) (*models.ObservationSeries, error) {
	ind, err := db.getIndicator(ctx, filter.IndicatorCode)
	if err != nil {
		return nil, err
	}

	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	wb := query.NewWhereBuilder()
	wb.AddClause("indicator_code = ?", filter.IndicatorCode)
	wb.AddClause("location_iso3 = ?", filter.LocationISO3)
	wb.AddIntRange("year", filter.YearFrom, filter.YearTo)
	wb.AddEq("gender_code", filter.Gender)
	wb.AddEq("age_group_code", filter.AgeGroup)
	wb.AddEq("children_count_code", filter.Children)
	wb.AddEq("household_type_code", filter.Household)
	where, args := wb.Build()

	q := `
	SELECT
		id,
		year,
		value,
		note,
		location_iso3,
		location_name,
		unit_code,
		data_source_code,
		gender_code,
		age_group_code,
		observation_status_code
	FROM v_indicator_observations_flat
	WHERE ` + where + `
	ORDER BY
		year,
		gender_code NULLS FIRST,
		age_group_code NULLS FIRST,
		children_count_code NULLS FIRST,
		household_type_code NULLS FIRST,
		id`

	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer closeQuietly(rows)

	items := make([]models.Observation, 0)
	for rows.Next() {
		var (
			o                               sql.NullFloat64
			note, unit, source, gender, age sql.NullString
			status                          sql.NullString
			obs                             models.Observation
		)
		if err := rows.Scan(&obs.ID, &obs.Year, &o, &note, &obs.LocationISO3, &obs.LocationName,
			&unit, &source, &gender, &age, &status); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		obs.Value = nullFloat(o)
		obs.Note = nullString(note)
		obs.UnitCode = nullString(unit)
		obs.DataSourceCode = nullString(source)
		obs.GenderCode = nullString(gender)
		obs.AgeGroupCode = nullString(age)
		obs.ObservationStatusCode = nullString(status)
		items = append(items, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate observations: %w", err)
	}

	return &models.ObservationSeries{Indicator: *ind, Items: items}, nil
}

// GetRankings ranks every location by its latest available value, best
// first. The polarity is read once from the indicator and drives the SQL
// ordering; tied values share a rank.
func (db *DB) GetRankings(ctx context.Context, indicatorCode string, limit int) (*models.RankingResult, error) {
	started := time.Now()
	result, err := db.getRankings(ctx, indicatorCode, limit)
	db.observe("get_rankings", started, ignoreNotFound(err))
	return result, err
}

func (db *DB) getRankings(ctx context.Context, indicatorCode string, limit int) (*models.RankingResult, error) {
	ind, err := db.getIndicator(ctx, indicatorCode)
	if err != nil {
		return nil, err
	}

	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	dir := ranking.SQLDirection(ind.Polarity())
	q := `
	SELECT
		v.location_iso3,
		v.location_name,
		l.region,
		l.income_group,
		v.year,
		v.value,
		RANK() OVER (ORDER BY v.value ` + dir + `) AS rank
	FROM v_latest_indicator_values v
	JOIN locations l ON l.iso3 = v.location_iso3
	WHERE v.indicator_code = $1
	ORDER BY rank, v.location_name
	LIMIT $2`

	rows, err := db.conn.QueryContext(ctx, q, indicatorCode, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query rankings: %w", err)
	}
	defer closeQuietly(rows)

	items := make([]models.RankingRow, 0)
	for rows.Next() {
		var (
			r              models.RankingRow
			region, income sql.NullString
		)
		if err := rows.Scan(&r.Location.ISO3, &r.Location.Name, &region, &income, &r.Year, &r.Value, &r.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan ranking row: %w", err)
		}
		r.Location.Region = nullString(region)
		r.Location.IncomeGroup = nullString(income)
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rankings: %w", err)
	}

	latest := ranking.LatestYear(items)
	return &models.RankingResult{
		Indicator:  *ind,
		Display:    ranking.ResolveDisplay(*ind, latest),
		LatestYear: latest,
		Items:      items,
	}, nil
}
