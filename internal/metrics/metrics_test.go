// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestErrorType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"deadline", context.DeadlineExceeded, "timeout"},
		{"wrapped deadline", fmt.Errorf("query rankings: %w", context.DeadlineExceeded), "timeout"},
		{"canceled", context.Canceled, "canceled"},
		{"other", errors.New("connection refused"), "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorType(tt.err); got != tt.want {
				t.Errorf("errorType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordStoreQuery_CountsErrors(t *testing.T) {
	before := testutil.ToFloat64(StoreQueryErrors.WithLabelValues("test_op", "duckdb", "timeout"))

	RecordStoreQuery("test_op", "duckdb", 5*time.Millisecond, nil)
	RecordStoreQuery("test_op", "duckdb", 5*time.Millisecond, context.DeadlineExceeded)

	after := testutil.ToFloat64(StoreQueryErrors.WithLabelValues("test_op", "duckdb", "timeout"))
	if after-before != 1 {
		t.Errorf("timeout errors increased by %v, want 1", after-before)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("test_group"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("test_group"))

	RecordCacheLookup("test_group", true)
	RecordCacheLookup("test_group", false)
	RecordCacheLookup("test_group", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("test_group")) - hits; got != 1 {
		t.Errorf("hits increased by %v, want 1", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("test_group")) - misses; got != 2 {
		t.Errorf("misses increased by %v, want 2", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/compare", "400"))
	RecordAPIRequest("GET", "/api/compare", "400", 2*time.Millisecond)
	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/compare", "400")) - before; got != 1 {
		t.Errorf("requests increased by %v, want 1", got)
	}
}
