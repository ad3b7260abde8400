// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

/*
Package middleware provides the HTTP middleware shared by every API route.

All middleware uses the chi signature func(http.Handler) http.Handler.

Key Components:

  - RequestID: honours or generates X-Request-ID and stores it in the context
  - RequestLogger: per-request zerolog logger, request_start and request_end events
  - Recoverer: converts panics into the 500 error envelope
  - PrometheusMetrics: request counters, latency histogram, in-flight gauge
  - Compression: gzip for clients that accept it

Middleware Stack:

The router applies them in this order:

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recoverer(writeInternalError))
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

RequestID runs first so that every log line, including the one emitted for a
recovered panic, carries the request id.
*/
package middleware
