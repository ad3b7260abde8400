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
)

// ListPolicies returns violence-against-women measures, newest first.
// Policies are keyed by country name; the ISO3 code comes from the location
// with the same name and is nil when none matches.
func (db *DB) ListPolicies(ctx context.Context, filter models.PolicyFilter) (*models.PolicyList, error) {
	started := time.Now()
	list, err := db.listPolicies(ctx, filter)
	db.observe("list_policies", started, err)
	return list, err
}

func (db *DB) listPolicies(ctx context.Context, filter models.PolicyFilter) (*models.PolicyList, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	wb := query.NewWhereBuilder()
	wb.AddEq("l.iso3", filter.LocationISO3)
	wb.AddIntRange("p.year", filter.YearFrom, filter.YearTo)
	wb.AddEq("p.form_of_violence", filter.FormOfViolence)
	wb.AddEq("p.measure_type", filter.MeasureType)
	where, args := wb.Build()

	q := `
	SELECT
		p.id,
		l.iso3,
		p.country,
		p.year,
		p.form_of_violence,
		p.measure_type,
		p.title
	FROM v_unw_vaw_policies p
	LEFT JOIN locations l ON l.name = p.country
	WHERE ` + where + `
	ORDER BY p.year DESC, p.form_of_violence, p.id`

	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	defer closeQuietly(rows)

	items := make([]models.Policy, 0)
	for rows.Next() {
		var (
			p                   models.Policy
			iso3, form, measure sql.NullString
		)
		if err := rows.Scan(&p.ID, &iso3, &p.Country, &p.Year, &form, &measure, &p.Title); err != nil {
			return nil, fmt.Errorf("failed to scan policy: %w", err)
		}
		p.LocationISO3 = nullString(iso3)
		p.FormOfViolence = nullString(form)
		p.MeasureType = nullString(measure)
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate policies: %w", err)
	}

	return &models.PolicyList{Items: items}, nil
}
