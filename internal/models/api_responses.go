// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package models

import "time"

// ErrorEnvelope is the body of every error response.
//
//	{
//	  "error": {
//	    "message": "Invalid location ISO3 codes",
//	    "details": ["??"],
//	    "requestId": "6f1c..."
//	  }
//	}
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the message, optional details (an array or null) and the
// request ID that correlates the response with server logs.
type ErrorBody struct {
	Message   string   `json:"message"`
	Details   []string `json:"details"`
	RequestID string   `json:"requestId"`
}

// Health status values.
const (
	HealthOK       = "ok"
	HealthDegraded = "degraded"

	DBUp      = "up"
	DBDown    = "down"
	DBUnknown = "unknown"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	DB        string    `json:"db"`
	Error     string    `json:"error,omitempty"`
}
