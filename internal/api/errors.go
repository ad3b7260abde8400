// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/equalityatlas/internal/database"
	"github.com/tomtom215/equalityatlas/internal/logging"
	"github.com/tomtom215/equalityatlas/internal/models"
)

// msgInternal is the only message a 500 response ever carries.
const msgInternal = "Internal server error"

// Error is an HTTP error with the status, message and details the client
// sees. Err is the underlying cause; it is logged but never serialized.
type Error struct {
	Status  int
	Message string
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// BadRequest returns a 400 error.
func BadRequest(message string, details ...string) *Error {
	if len(details) == 0 {
		details = nil
	}
	return &Error{Status: http.StatusBadRequest, Message: message, Details: details}
}

// NotFound returns a 404 error.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Internal wraps err as a 500 error with the generic message.
func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: msgInternal, Err: err}
}

// storeError maps a store error onto the envelope: ErrNotFound becomes a
// 404 with notFound as its message, anything else is a 500.
func storeError(err error, notFound string) *Error {
	if errors.Is(err, database.ErrNotFound) {
		return &Error{Status: http.StatusNotFound, Message: notFound, Err: err}
	}
	return Internal(err)
}

// writeError logs err and writes the error envelope. Errors that are not
// *Error are treated as internal.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = Internal(err)
	}

	logger := logging.Ctx(r.Context())
	event := logger.Warn()
	if apiErr.Status >= http.StatusInternalServerError {
		event = logger.Error().Err(apiErr.Err)
	}
	event.
		Str("method", r.Method).
		Str("path", r.URL.RequestURI()).
		Int("status", apiErr.Status).
		Strs("details", apiErr.Details).
		Msg(apiErr.Message)

	writeJSON(w, r, apiErr.Status, models.ErrorEnvelope{
		Error: models.ErrorBody{
			Message:   apiErr.Message,
			Details:   apiErr.Details,
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}
