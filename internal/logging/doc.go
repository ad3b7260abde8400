// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

// Package logging builds the zerolog loggers used across Equality Atlas.
//
// The process constructs exactly one root logger in main with New and hands it
// to every component that logs (store, cache, HTTP handler, supervisor). There
// is no package-level logger to reach for; request-scoped loggers travel in the
// request context instead.
//
// # Quick Start
//
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logger.Info().Str("addr", addr).Msg("Server starting")
//
//	// In a handler, after the request ID middleware ran:
//	logging.Ctx(r.Context()).Warn().Msg("Slow query")
//
// # Configuration
//
// Environment variables (mapped by the config package):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Request IDs
//
// GenerateRequestID returns a UUID. The HTTP layer stores it in the request
// context with ContextWithRequestID and every error envelope echoes it back, so
// a client report can be matched to a log line.
//
// # slog bridge
//
// suture reports supervisor events through log/slog. NewSlogLogger wraps a
// zerolog logger in a slog.Handler so those events land in the same stream.
package logging
