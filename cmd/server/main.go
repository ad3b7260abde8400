// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

// @title Equality Atlas API
// @version 1.0
// @description Read-only gender-equality statistics: indicators, locations, time series, polarity-aware rankings and cross-country comparison.
// @description
// @description All errors use the envelope {"error": {"message", "details", "requestId"}}.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/equalityatlas/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	_ "github.com/tomtom215/equalityatlas/docs" // OpenAPI document
	"github.com/tomtom215/equalityatlas/internal/config"
	"github.com/tomtom215/equalityatlas/internal/logging"
	"github.com/tomtom215/equalityatlas/internal/metrics"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrap := logging.New(logging.DefaultConfig())
		bootstrap.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("Server stopped with error")
		stop()
		os.Exit(1)
	}
	logger.Info().Msg("Application stopped gracefully")
}

// run wires the application and blocks until ctx is canceled or the
// supervisor tree gives up.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	logger.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("store", cfg.Database.String()).
		Msg("Starting Equality Atlas")
	metrics.SetAppInfo(version)

	app, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.close()

	errCh := app.tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info().Msg("Shutdown requested, waiting for services to stop")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			serveErr = fmt.Errorf("supervisor tree: %w", err)
		}
	}
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := app.tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logger.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}
	return serveErr
}
