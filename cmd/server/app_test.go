// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/equalityatlas/internal/cache"
	"github.com/tomtom215/equalityatlas/internal/config"
	"github.com/tomtom215/equalityatlas/internal/logging"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, Timeout: 5 * time.Second, ShutdownTimeout: time.Second},
		Database: config.DatabaseConfig{
			Driver:         config.DriverDuckDB,
			Path:           ":memory:",
			Threads:        1,
			MaxConns:       1,
			AcquireTimeout: 10 * time.Second,
			Migrate:        true,
			Seed:           true,
		},
		Cache: config.CacheConfig{
			Enabled:      true,
			Backend:      config.CacheBackendMemory,
			ReferenceTTL: time.Minute,
			CuratedTTL:   time.Minute,
			MaxEntries:   100,
		},
		Security: config.SecurityConfig{RateLimitDisabled: true, CORSOrigins: []string{"*"}},
	}
}

func TestNewApp_ServesSeededStore(t *testing.T) {
	app, err := newApp(context.Background(), testConfig(), logging.Nop())
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	t.Cleanup(app.close)

	tests := []struct {
		path       string
		wantStatus int
		wantCache  string
	}{
		{path: "/api/health", wantStatus: http.StatusOK},
		{path: "/api/indicators/WBL_INDEX", wantStatus: http.StatusOK, wantCache: "MISS"},
		{path: "/api/indicators/WBL_INDEX", wantStatus: http.StatusOK, wantCache: "HIT"},
		{path: "/api/observations/rankings?indicatorCode=WBL_INDEX", wantStatus: http.StatusOK, wantCache: "MISS"},
		{path: "/api/indicators/NOPE", wantStatus: http.StatusNotFound},
		{path: "/api/docs/doc.json", wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		app.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != tt.wantStatus {
			t.Errorf("GET %s: status = %d, want %d (%s)", tt.path, rec.Code, tt.wantStatus, rec.Body.String())
		}
		if tt.wantCache != "" && rec.Header().Get(cache.HeaderCache) != tt.wantCache {
			t.Errorf("GET %s: %s = %q, want %q", tt.path, cache.HeaderCache, rec.Header().Get(cache.HeaderCache), tt.wantCache)
		}
	}
}

func TestNewApp_CacheDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = false

	app, err := newApp(context.Background(), cfg, logging.Nop())
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	t.Cleanup(app.close)

	if app.cache != nil {
		t.Fatal("cache backend opened while disabled")
	}
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/indicators", nil))
	if rec.Code != http.StatusOK || rec.Header().Get(cache.HeaderCache) != "" {
		t.Errorf("status = %d, %s = %q", rec.Code, cache.HeaderCache, rec.Header().Get(cache.HeaderCache))
	}
}

func TestNewApp_UnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.Database.Driver = "sqlite"

	if _, err := newApp(context.Background(), cfg, logging.Nop()); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
