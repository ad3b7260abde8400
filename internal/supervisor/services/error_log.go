// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package services

import (
	"log"
	"strings"

	"github.com/rs/zerolog"
)

// zerologWriter forwards net/http's internal error log to zerolog.
type zerologWriter struct {
	logger zerolog.Logger
}

func (w zerologWriter) Write(p []byte) (int, error) {
	w.logger.Warn().Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}

// newErrorLog returns a *log.Logger for http.Server.ErrorLog, which only
// accepts the standard logger type.
func newErrorLog(logger zerolog.Logger) *log.Logger {
	return log.New(zerologWriter{logger: logger.With().Str("component", "http-server").Logger()}, "", 0)
}
