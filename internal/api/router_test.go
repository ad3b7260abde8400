// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package api

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/equalityatlas/internal/config"
	"github.com/tomtom215/equalityatlas/internal/database"
	"github.com/tomtom215/equalityatlas/internal/logging"
	"github.com/tomtom215/equalityatlas/internal/research"
)

func TestRouter_RateLimitEnvelope(t *testing.T) {
	cfg := &config.Config{
		Security: config.SecurityConfig{RateLimitReqs: 2, RateLimitWindow: time.Minute},
	}
	handler := NewRouter(NewHandler(newFakeStore(), research.Default(), nil), nil, cfg, logging.Nop()).Setup()

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/research/templates", nil)
		req.RemoteAddr = "198.51.100.7:5000"
		handler.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", last.Code)
	}
	if got := decodeEnvelope(t, last).Error.Message; got != "Too many requests" {
		t.Errorf("message = %q", got)
	}
}

func TestRouter_HealthHasOwnBudget(t *testing.T) {
	cfg := &config.Config{
		Security: config.SecurityConfig{RateLimitReqs: 1, RateLimitWindow: time.Minute},
	}
	handler := NewRouter(NewHandler(newFakeStore(), nil, nil), nil, cfg, logging.Nop()).Setup()

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("health request %d status = %d", i, rec.Code)
		}
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	env := newTestEnv(t)
	rec := env.get(t, "/api/indicators")

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS set on a plain HTTP request")
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	cfg := &config.Config{
		Security: config.SecurityConfig{
			RateLimitDisabled: true,
			CORSOrigins:       []string{"https://atlas.example.org"},
		},
	}
	handler := NewRouter(NewHandler(newFakeStore(), nil, nil), nil, cfg, logging.Nop()).Setup()

	req := httptest.NewRequest(http.MethodOptions, "/api/compare", nil)
	req.Header.Set("Origin", "https://atlas.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://atlas.example.org" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouter_CacheDisabled(t *testing.T) {
	cfg := &config.Config{
		Cache:    config.CacheConfig{Enabled: false, ReferenceTTL: time.Minute},
		Security: config.SecurityConfig{RateLimitDisabled: true},
	}
	store := newFakeStore()
	handler := NewRouter(NewHandler(store, nil, nil), nil, cfg, logging.Nop()).Setup()

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/indicators", nil))
		if rec.Header().Get("X-Cache") != "" {
			t.Errorf("X-Cache set with caching disabled")
		}
	}
	if n := store.totalCalls(); n != 2 {
		t.Errorf("store calls = %d, want 2", n)
	}
}

func gunzipOnce(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read gzip body: %v", err)
	}
	return string(raw)
}

func TestRouter_GzipEncodesOnce(t *testing.T) {
	cfg := &config.Config{Security: config.SecurityConfig{RateLimitDisabled: true}}
	handler := NewRouter(NewHandler(newFakeStore(), research.Default(), nil), nil, cfg, logging.Nop()).Setup()

	tests := []struct {
		name   string
		path   string
		prefix string
	}{
		{name: "metrics", path: "/metrics", prefix: "# HELP"},
		{name: "api", path: "/api/research/templates", prefix: "{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			body := gunzipOnce(t, rec)
			if !strings.HasPrefix(body, tt.prefix) {
				n := min(len(body), 16)
				t.Errorf("decoded body starts with %q, want prefix %q", body[:n], tt.prefix)
			}
		})
	}
}

func TestError(t *testing.T) {
	cause := fmt.Errorf("indicator %q: %w", "X", database.ErrNotFound)
	err := storeError(cause, "Indicator not found")

	if err.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", err.Status)
	}
	if !errors.Is(err, database.ErrNotFound) {
		t.Error("storeError must keep the cause reachable through errors.Is")
	}
	if got := storeError(errBoom, "ignored"); got.Status != http.StatusInternalServerError || got.Message != msgInternal {
		t.Errorf("internal error = %+v", got)
	}
	if got := BadRequest("x"); got.Details != nil {
		t.Errorf("details = %v, want nil", got.Details)
	}
}
