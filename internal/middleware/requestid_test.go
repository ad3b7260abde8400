// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func captureRequestID(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	if incoming != "" {
		req.Header.Set(HeaderRequestID, incoming)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(HeaderRequestID)
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	ctxID, headerID := captureRequestID(t, "")

	if _, err := uuid.Parse(headerID); err != nil {
		t.Errorf("X-Request-ID %q is not a UUID: %v", headerID, err)
	}
	if ctxID != headerID {
		t.Errorf("context id %q != header id %q", ctxID, headerID)
	}
}

func TestRequestID_PreservesExistingID(t *testing.T) {
	ctxID, headerID := captureRequestID(t, "upstream-abc-123")

	if headerID != "upstream-abc-123" || ctxID != headerID {
		t.Errorf("got header %q ctx %q, want upstream-abc-123", headerID, ctxID)
	}
}

func TestRequestID_ReplacesUnusableID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "too long", incoming: strings.Repeat("a", maxRequestIDLen+1)},
		{name: "control characters", incoming: "abc\x01def"},
		{name: "inner space", incoming: "abc def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, headerID := captureRequestID(t, tt.incoming)
			if _, err := uuid.Parse(headerID); err != nil {
				t.Errorf("X-Request-ID %q was not replaced by a UUID", headerID)
			}
		})
	}
}
