// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

// Package database is the read-only query layer over the observation store.
//
// # Drivers
//
// Two drivers share one set of SQL texts:
//   - duckdb (default): embedded store via github.com/duckdb/duckdb-go/v2;
//     ":memory:" gives an ephemeral store for tests and demos
//   - postgres: the shared relational store through a pgx pool, exposed to
//     database/sql with pgx's stdlib adapter
//
// Queries use $n placeholders, ILIKE, window functions and NULLS FIRST, all of
// which both engines accept.
//
// # Files
//
//   - database.go: lifecycle (open, pool tuning, ping, close)
//   - database_schema.go: embedded schema and seed scripts
//   - indicators.go, locations.go, policies.go: listings and lookups
//   - observations.go: time series and latest-value rankings
//   - compare.go: exact-year comparison across a location subset
//
// # Ranking
//
// Rankings are computed by the store with RANK() OVER (ORDER BY value dir),
// where dir comes from ranking.SQLDirection on the indicator's polarity. Each
// location contributes its headline observation only: the row whose
// demographic codes sort NULLs first, then lowest id. Secondary order is
// location name for both rankings and comparisons.
//
// # Errors
//
// Lookups that find nothing return an error wrapping ErrNotFound. Every
// query runs under the pool's acquire budget (DatabaseConfig.AcquireTimeout)
// derived from the caller's context, so a disconnected client abandons its
// query.
package database
