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

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

const indicatorColumns = `
	i.id,
	i.code,
	i.name,
	i.description,
	i.higher_is_better,
	d.code  AS domain_code,
	d.name  AS domain_name,
	mu.code AS unit_code,
	mu.name AS unit_name,
	mu.symbol,
	ds.code AS source_code,
	ds.name AS source_name,
	ds.url  AS source_url`

const indicatorJoins = `
	FROM indicators i
	LEFT JOIN indicator_domains d  ON d.id  = i.domain_id
	LEFT JOIN measurement_units mu ON mu.id = i.unit_id
	LEFT JOIN data_sources      ds ON ds.id = i.data_source_id`

// scanIndicator reads indicatorColumns, followed by any extra destinations.
func scanIndicator(s rowScanner, extra ...any) (models.Indicator, error) {
	var (
		ind                    models.Indicator
		description            sql.NullString
		higherIsBetter         sql.NullBool
		domainCode, domainName sql.NullString
		unitCode, unitName     sql.NullString
		unitSymbol             sql.NullString
		sourceCode, sourceName sql.NullString
		sourceURL              sql.NullString
	)
	dest := []any{
		&ind.ID, &ind.Code, &ind.Name, &description, &higherIsBetter,
		&domainCode, &domainName,
		&unitCode, &unitName, &unitSymbol,
		&sourceCode, &sourceName, &sourceURL,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return ind, err
	}

	ind.Description = nullString(description)
	ind.HigherIsBetter = nullBool(higherIsBetter)
	if domainCode.Valid {
		ind.Domain = &models.Domain{Code: domainCode.String, Name: domainName.String}
	}
	ind.Unit = models.Unit{
		Code:   nullString(unitCode),
		Name:   nullString(unitName),
		Symbol: nullString(unitSymbol),
	}
	if sourceCode.Valid {
		ind.Source = &models.Source{Code: sourceCode.String, Name: sourceName.String, URL: nullString(sourceURL)}
	}
	return ind, nil
}

// GetIndicator returns indicator metadata by code.
func (db *DB) GetIndicator(ctx context.Context, code string) (*models.Indicator, error) {
	started := time.Now()
	ind, err := db.getIndicator(ctx, code)
	if errors.Is(err, ErrNotFound) {
		db.observe("get_indicator", started, nil)
		return nil, err
	}
	db.observe("get_indicator", started, err)
	return ind, err
}

// getIndicator is the metadata lookup shared by every query shape. It runs
// before any row query so an unknown code never reaches the fact table.
func (db *DB) getIndicator(ctx context.Context, code string) (*models.Indicator, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	q := "SELECT" + indicatorColumns + indicatorJoins + " WHERE i.code = $1 LIMIT 1"
	ind, err := scanIndicator(db.conn.QueryRowContext(ctx, q, code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("indicator %q: %w", code, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get indicator %q: %w", code, err)
	}
	return &ind, nil
}

// ListIndicators returns a page of indicators ordered by code, with the latest
// observed year and the number of locations covered.
func (db *DB) ListIndicators(ctx context.Context, filter models.IndicatorFilter) (*models.IndicatorList, error) {
	started := time.Now()
	list, err := db.listIndicators(ctx, filter)
	db.observe("list_indicators", started, err)
	return list, err
}

func (db *DB) listIndicators(ctx context.Context, filter models.IndicatorFilter) (*models.IndicatorList, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	wb := query.NewWhereBuilder()
	wb.AddSearch(filter.Query, "i.code", "i.name")
	wb.AddEq("d.code", filter.Domain)
	where, _ := wb.Build()

	var total int
	countSQL := "SELECT COUNT(*)" + indicatorJoins + " WHERE " + where
	if err := db.conn.QueryRowContext(ctx, countSQL, wb.Args()...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count indicators: %w", err)
	}

	limit := wb.Bind(filter.Limit)
	offset := wb.Bind(filter.Offset)
	listSQL := "SELECT" + indicatorColumns + `,
	stats.latest_year,
	stats.coverage_count` + indicatorJoins + `
	LEFT JOIN (
		SELECT
			indicator_id,
			MAX(year)                   AS latest_year,
			COUNT(DISTINCT location_id) AS coverage_count
		FROM indicator_observations
		WHERE value IS NOT NULL
		GROUP BY indicator_id
	) stats ON stats.indicator_id = i.id
	WHERE ` + where + `
	ORDER BY i.code
	LIMIT ` + limit + ` OFFSET ` + offset

	rows, err := db.conn.QueryContext(ctx, listSQL, wb.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list indicators: %w", err)
	}
	defer closeQuietly(rows)

	items := make([]models.Indicator, 0)
	for rows.Next() {
		var latestYear, coverage sql.NullInt64
		ind, err := scanIndicator(rows, &latestYear, &coverage)
		if err != nil {
			return nil, fmt.Errorf("failed to scan indicator: %w", err)
		}
		ind.LatestYear = nullInt(latestYear)
		c := 0
		if coverage.Valid {
			c = int(coverage.Int64)
		}
		ind.CoverageCount = &c
		items = append(items, ind)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate indicators: %w", err)
	}

	return &models.IndicatorList{Total: total, Items: items}, nil
}
