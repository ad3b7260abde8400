// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/tomtom215/equalityatlas/internal/api"
	"github.com/tomtom215/equalityatlas/internal/cache"
	"github.com/tomtom215/equalityatlas/internal/config"
	"github.com/tomtom215/equalityatlas/internal/database"
	"github.com/tomtom215/equalityatlas/internal/logging"
	"github.com/tomtom215/equalityatlas/internal/research"
	"github.com/tomtom215/equalityatlas/internal/supervisor"
	"github.com/tomtom215/equalityatlas/internal/supervisor/services"
)

// app holds the long-lived components owned by the process.
type app struct {
	db      *database.DB
	cache   cache.Backend
	handler http.Handler
	tree    *supervisor.SupervisorTree
	logger  zerolog.Logger
}

// newApp opens the store and cache, builds the router and assembles the
// supervisor tree. Nothing is served until the tree runs.
func newApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*app, error) {
	db, err := database.New(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open observation store: %w", err)
	}

	a := &app{db: db, logger: logger}

	if cfg.Cache.Enabled {
		backend, err := cache.New(ctx, cfg.Cache, logger)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("failed to open response cache: %w", err)
		}
		a.cache = backend
	} else {
		logger.Info().Msg("Response cache disabled")
	}

	handler := api.NewHandler(db, research.Default(), clockwork.NewRealClock())
	a.handler = api.NewRouter(handler, a.cache, cfg, logger).Setup()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logger), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create supervisor tree: %w", err)
	}
	a.tree = tree

	if cfg.NATS.Enabled && a.cache != nil {
		tree.AddMessagingService(cache.NewInvalidator(cfg.NATS, a.cache, logger))
		logger.Info().Str("subject", cfg.NATS.Subject).Msg("Cache invalidator added to supervisor tree")
	}

	server := services.NewHTTPServer(cfg.Server, a.handler, logger)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logger.Info().Str("addr", server.Addr).Msg("HTTP server added to supervisor tree")

	return a, nil
}

// close releases the cache and the store. It is safe on a partly built app.
func (a *app) close() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Error closing response cache")
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Error closing observation store")
		}
	}
}
