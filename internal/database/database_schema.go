// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"
)

//go:embed sql/schema.sql
var schemaSQL string

//go:embed sql/seed.sql
var seedSQL string

// Migrate creates tables, indexes and views. It is idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	started := time.Now()
	n, err := db.execScript(ctx, schemaSQL)
	db.observe("migrate", started, err)
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	db.logger.Info().Int("statements", n).Msg("Schema applied")
	return nil
}

// Seed loads the reference dataset. Existing rows are left untouched.
func (db *DB) Seed(ctx context.Context) error {
	started := time.Now()
	n, err := db.execScript(ctx, seedSQL)
	db.observe("seed", started, err)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}
	db.logger.Info().Int("statements", n).Msg("Seed data loaded")
	return nil
}

// execScript runs the statements of script one at a time, in order.
func (db *DB) execScript(ctx context.Context, script string) (int, error) {
	statements := splitStatements(script)
	for i, stmt := range statements {
		execCtx, cancel := db.withTimeout(ctx)
		_, err := db.conn.ExecContext(execCtx, stmt)
		cancel()
		if err != nil {
			return i, fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	return len(statements), nil
}

// splitStatements splits on a semicolon that ends a line. Comment-only
// chunks are dropped.
func splitStatements(script string) []string {
	var out []string
	for _, chunk := range strings.Split(script, ";\n") {
		if hasSQL(chunk) {
			out = append(out, strings.TrimSuffix(strings.TrimSpace(chunk), ";"))
		}
	}
	return out
}

func hasSQL(chunk string) bool {
	for _, line := range strings.Split(chunk, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "--") {
			return true
		}
	}
	return false
}
