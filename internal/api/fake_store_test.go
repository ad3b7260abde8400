// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"

	"github.com/tomtom215/equalityatlas/internal/cache"
	"github.com/tomtom215/equalityatlas/internal/config"
	"github.com/tomtom215/equalityatlas/internal/database"
	"github.com/tomtom215/equalityatlas/internal/logging"
	"github.com/tomtom215/equalityatlas/internal/models"
	"github.com/tomtom215/equalityatlas/internal/ranking"
	"github.com/tomtom215/equalityatlas/internal/research"
)

// fakeStore serves a fixed dataset and counts calls per method.
type fakeStore struct {
	mu    sync.Mutex
	calls map[string]int

	indicators map[string]models.Indicator
	rankings   map[string][]models.RankingRow
	compare    map[string][]models.ComparisonRow // key: code/year
	policies   []models.Policy

	// fail makes every query return this error.
	fail    error
	pingErr error
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newFakeStore() *fakeStore {
	wbl := models.Indicator{
		ID: 1, Code: "WBL_INDEX", Name: "Women, Business and the Law index",
		HigherIsBetter: boolPtr(true),
		Unit:           models.Unit{Code: strPtr("INDEX_0_100"), Name: strPtr("Index (0-100)")},
	}
	mmr := models.Indicator{
		ID: 2, Code: "MMR", Name: "Maternal mortality ratio",
		HigherIsBetter: boolPtr(false),
		Unit:           models.Unit{Code: strPtr("PER_100K"), Name: strPtr("per 100,000 live births")},
	}
	loc := func(iso3, name, region string) models.RankedLocation {
		return models.RankedLocation{ISO3: iso3, Name: name, Region: strPtr(region)}
	}
	cmp := func(rank int, iso3, name string, value float64) models.ComparisonRow {
		return models.ComparisonRow{
			Rank: rank, Year: 2023, Value: value,
			Location: models.ComparedLocation{ISO3: iso3, Name: name},
			UnitCode: strPtr("INDEX_0_100"),
		}
	}

	return &fakeStore{
		calls:      map[string]int{},
		indicators: map[string]models.Indicator{"WBL_INDEX": wbl, "MMR": mmr},
		rankings: map[string][]models.RankingRow{
			"WBL_INDEX": {
				{Rank: 1, Location: loc("FRA", "France", "Europe"), Year: 2023, Value: 96.9},
				{Rank: 2, Location: loc("AFG", "Afghanistan", "Asia"), Year: 2023, Value: 26.3},
			},
			"MMR": {
				{Rank: 1, Location: loc("ESP", "Spain", "Europe"), Year: 2023, Value: 3},
				{Rank: 2, Location: loc("FRA", "France", "Europe"), Year: 2023, Value: 8},
				{Rank: 3, Location: loc("AFG", "Afghanistan", "Asia"), Year: 2023, Value: 620},
			},
		},
		compare: map[string][]models.ComparisonRow{
			"WBL_INDEX/2023": {cmp(1, "FRA", "France", 96.9), cmp(2, "AFG", "Afghanistan", 26.3)},
		},
		policies: []models.Policy{
			{ID: 4, Country: "Spain", Year: 2021, FormOfViolence: strPtr("Femicide"), MeasureType: strPtr("Laws"), Title: "Organic Law 10/2022"},
		},
	}
}

func (s *fakeStore) record(method string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[method]++
	return s.fail
}

// totalCalls returns the number of store calls of any kind.
func (s *fakeStore) totalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

func (s *fakeStore) indicator(code string) (*models.Indicator, error) {
	ind, ok := s.indicators[code]
	if !ok {
		return nil, fmt.Errorf("indicator %q: %w", code, database.ErrNotFound)
	}
	return &ind, nil
}

func (s *fakeStore) ListIndicators(_ context.Context, f models.IndicatorFilter) (*models.IndicatorList, error) {
	if err := s.record("ListIndicators"); err != nil {
		return nil, err
	}
	items := []models.Indicator{s.indicators["MMR"], s.indicators["WBL_INDEX"]}
	return &models.IndicatorList{Total: len(items), Items: items}, nil
}

func (s *fakeStore) GetIndicator(_ context.Context, code string) (*models.Indicator, error) {
	if err := s.record("GetIndicator"); err != nil {
		return nil, err
	}
	return s.indicator(code)
}

func (s *fakeStore) ListLocations(_ context.Context, f models.LocationFilter) (*models.LocationList, error) {
	if err := s.record("ListLocations"); err != nil {
		return nil, err
	}
	return &models.LocationList{Total: 0, Items: []models.Location{}}, nil
}

func (s *fakeStore) GetLocation(_ context.Context, iso3 string) (*models.Location, error) {
	if err := s.record("GetLocation"); err != nil {
		return nil, err
	}
	if iso3 != "FRA" {
		return nil, fmt.Errorf("location %q: %w", iso3, database.ErrNotFound)
	}
	return &models.Location{ID: 1, Type: "COUNTRY", ISO3: strPtr("FRA"), Name: "France"}, nil
}

func (s *fakeStore) GetObservations(_ context.Context, f models.ObservationFilter) (*models.ObservationSeries, error) {
	if err := s.record("GetObservations"); err != nil {
		return nil, err
	}
	ind, err := s.indicator(f.IndicatorCode)
	if err != nil {
		return nil, err
	}
	return &models.ObservationSeries{Indicator: *ind, Items: []models.Observation{}}, nil
}

func (s *fakeStore) GetRankings(_ context.Context, code string, limit int) (*models.RankingResult, error) {
	if err := s.record("GetRankings"); err != nil {
		return nil, err
	}
	ind, err := s.indicator(code)
	if err != nil {
		return nil, err
	}
	items := s.rankings[code]
	if len(items) > limit {
		items = items[:limit]
	}
	latest := ranking.LatestYear(items)
	return &models.RankingResult{
		Indicator:  *ind,
		Display:    ranking.ResolveDisplay(*ind, latest),
		LatestYear: latest,
		Items:      items,
	}, nil
}

func (s *fakeStore) Compare(_ context.Context, req models.CompareRequest) (*models.ComparisonResult, error) {
	if err := s.record("Compare"); err != nil {
		return nil, err
	}
	ind, err := s.indicator(req.IndicatorCode)
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]bool, len(req.Locations))
	for _, code := range req.Locations {
		wanted[code] = true
	}
	items := make([]models.ComparisonRow, 0)
	for _, row := range s.compare[fmt.Sprintf("%s/%d", req.IndicatorCode, req.Year)] {
		if wanted[row.Location.ISO3] {
			items = append(items, row)
		}
	}
	year := req.Year
	return &models.ComparisonResult{
		Indicator: models.ComparisonIndicator{Indicator: *ind, Year: year},
		Display:   ranking.ResolveDisplay(*ind, &year),
		Items:     items,
	}, nil
}

func (s *fakeStore) ListPolicies(_ context.Context, f models.PolicyFilter) (*models.PolicyList, error) {
	if err := s.record("ListPolicies"); err != nil {
		return nil, err
	}
	return &models.PolicyList{Items: s.policies}, nil
}

func (s *fakeStore) Ping(context.Context) error {
	return s.pingErr
}

// testEnv is a router over a fake store with an in-memory cache.
type testEnv struct {
	store   *fakeStore
	cache   *cache.Memory
	clock   *clockwork.FakeClock
	handler http.Handler
}

var errBoom = errors.New("connection reset by peer")

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newFakeStore()
	mem := cache.NewMemory(0)
	t.Cleanup(func() { _ = mem.Close() })
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC))

	cfg := &config.Config{
		Cache: config.CacheConfig{
			Enabled:      true,
			Backend:      config.CacheBackendMemory,
			ReferenceTTL: 300 * time.Second,
			CuratedTTL:   600 * time.Second,
		},
		Security: config.SecurityConfig{RateLimitDisabled: true},
	}

	router := NewRouter(NewHandler(store, research.Default(), clock), mem, cfg, logging.Nop())
	return &testEnv{store: store, cache: mem, clock: clock, handler: router.Setup()}
}

func (e *testEnv) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

// decodeEnvelope parses an error response body.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorEnvelope {
	t.Helper()
	var env models.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("body is not an error envelope: %v\n%s", err, rec.Body.String())
	}
	return env
}

func httptestDo(e *testEnv, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}
