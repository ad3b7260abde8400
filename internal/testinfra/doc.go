// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

// Package testinfra starts throwaway containers for integration tests.
//
// Everything here is behind the integration build tag and skips cleanly when
// Docker is unavailable:
//
//	go test -tags integration ./internal/database/...
//
// # PostgreSQL
//
// NewPostgresContainer runs the postgres image the production store targets
// and returns a DSN ready for config.DatabaseConfig:
//
//	pg, err := testinfra.NewPostgresContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, ctx, pg)
//
//	db, err := database.New(ctx, config.DatabaseConfig{
//	    Driver:  config.DriverPostgres,
//	    DSN:     pg.DSN,
//	    Migrate: true,
//	    Seed:    true,
//	}, logging.Nop())
package testinfra
