// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

/*
Package api serves the read-only statistics surface over HTTP.

Routes are mounted on a chi router under /api and accept GET only. Every
error leaves through one envelope writer:

	{"error":{"message":"Indicator not found","details":null,"requestId":"..."}}

Handlers never talk to a concrete database. They depend on the Store
interface, which *database.DB satisfies, so tests substitute an in-memory
fake that counts calls.

# Route groups

  - /api/health, /api/health/live, /api/health/ready: never cached
  - /api/indicators, /api/locations, /api/observations, /api/compare:
    cached for the reference TTL (300s by default)
  - /api/policies, /api/research: cached for the curated TTL (600s)
  - /api/docs/*: Swagger UI
  - /metrics: Prometheus exposition

# Validation order for /api/compare

The comparison endpoint checks its parameters before touching the store:
indicatorCode, year and locations must be present, year must parse, the
parsed location list must be non-empty and every code must match the
location code pattern. Offending codes are listed in the envelope details.
*/
package api
