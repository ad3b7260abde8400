// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/equalityatlas/internal/database/query"
	"github.com/tomtom215/equalityatlas/internal/models"
)

const locationColumns = `
	id,
	type,
	iso3,
	name,
	region,
	income_group,
	coverage_score,
	freshness_score,
	note`

func scanLocation(s rowScanner) (models.Location, error) {
	var (
		loc                        models.Location
		iso3, region, income, note sql.NullString
		coverage, freshness        sql.NullFloat64
	)
	if err := s.Scan(&loc.ID, &loc.Type, &iso3, &loc.Name, &region, &income, &coverage, &freshness, &note); err != nil {
		return loc, err
	}
	loc.ISO3 = nullString(iso3)
	loc.Region = nullString(region)
	loc.IncomeGroup = nullString(income)
	loc.CoverageScore = nullFloat(coverage)
	loc.FreshnessScore = nullFloat(freshness)
	loc.Note = nullString(note)
	return loc, nil
}

// ListLocations returns a page of locations ordered by name. Query matches
// name or ISO3, case-insensitively.
func (db *DB) ListLocations(ctx context.Context, filter models.LocationFilter) (*models.LocationList, error) {
	started := time.Now()
	list, err := db.listLocations(ctx, filter)
	db.observe("list_locations", started, err)
	return list, err
}

func (db *DB) listLocations(ctx context.Context, filter models.LocationFilter) (*models.LocationList, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	wb := query.NewWhereBuilder()
	wb.AddSearch(filter.Query, "name", "iso3")
	wb.AddEq("region", filter.Region)
	where, _ := wb.Build()

	var total int
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM locations WHERE "+where, wb.Args()...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count locations: %w", err)
	}

	limit := wb.Bind(filter.Limit)
	offset := wb.Bind(filter.Offset)
	q := "SELECT" + locationColumns + `
	FROM locations
	WHERE ` + where + `
	ORDER BY name
	LIMIT ` + limit + ` OFFSET ` + offset

	rows, err := db.conn.QueryContext(ctx, q, wb.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer closeQuietly(rows)

	items := make([]models.Location, 0)
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		items = append(items, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}

	return &models.LocationList{Total: total, Items: items}, nil
}

// GetLocation returns a location by ISO3 code.
func (db *DB) GetLocation(ctx context.Context, iso3 string) (*models.Location, error) {
	started := time.Now()
	loc, err := db.getLocation(ctx, iso3)
	if errors.Is(err, ErrNotFound) {
		db.observe("get_location", started, nil)
		return nil, err
	}
	db.observe("get_location", started, err)
	return loc, err
}

func (db *DB) getLocation(ctx context.Context, iso3 string) (*models.Location, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	q := "SELECT" + locationColumns + " FROM locations WHERE iso3 = $1 LIMIT 1"
	loc, err := scanLocation(db.conn.QueryRowContext(ctx, q, iso3))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("location %q: %w", iso3, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location %q: %w", iso3, err)
	}
	return &loc, nil
}
