// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package api

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/tomtom215/equalityatlas/internal/database"
	"github.com/tomtom215/equalityatlas/internal/models"
	"github.com/tomtom215/equalityatlas/internal/research"
)

// Store is the query surface the handlers need. *database.DB implements it.
type Store interface {
	ListIndicators(ctx context.Context, filter models.IndicatorFilter) (*models.IndicatorList, error)
	GetIndicator(ctx context.Context, code string) (*models.Indicator, error)
	ListLocations(ctx context.Context, filter models.LocationFilter) (*models.LocationList, error)
	GetLocation(ctx context.Context, iso3 string) (*models.Location, error)
	GetObservations(ctx context.Context, filter models.ObservationFilter) (*models.ObservationSeries, error)
	GetRankings(ctx context.Context, indicatorCode string, limit int) (*models.RankingResult, error)
	Compare(ctx context.Context, req models.CompareRequest) (*models.ComparisonResult, error)
	ListPolicies(ctx context.Context, filter models.PolicyFilter) (*models.PolicyList, error)
	Ping(ctx context.Context) error
}

var _ Store = (*database.DB)(nil)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files by route group:
//   - handlers_catalog.go: indicators and locations
//   - handlers_observations.go: time series and rankings
//   - handlers_compare.go: comparison
//   - handlers_export.go: CSV exports
//   - handlers_policies.go: policies and research templates
//   - handlers_health.go: health probes
type Handler struct {
	store     Store
	research  *research.Catalog
	clock     clockwork.Clock
	startTime time.Time
}

// NewHandler builds a Handler. A nil clock means the real clock.
func NewHandler(store Store, catalog *research.Catalog, clock clockwork.Clock) *Handler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if catalog == nil {
		catalog = research.Default()
	}
	return &Handler{
		store:     store,
		research:  catalog,
		clock:     clock,
		startTime: clock.Now(),
	}
}
