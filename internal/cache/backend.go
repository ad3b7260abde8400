// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/equalityatlas/internal/config"
)

// KeyPrefix starts every key written by the middleware.
const KeyPrefix = "cache:"

// Backend stores rendered responses.
type Backend interface {
	// Get returns the stored value and true, or false when the key is absent
	// or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Clear removes every cached response.
	Clear(ctx context.Context) error

	// Name identifies the backend in logs and metrics.
	Name() string

	Close() error
}

// New builds the backend selected by cfg.Backend.
func New(ctx context.Context, cfg config.CacheConfig, logger zerolog.Logger) (Backend, error) {
	var (
		b   Backend
		err error
	)
	switch cfg.Backend {
	case config.CacheBackendMemory, "":
		b = NewMemory(cfg.MaxEntries)
	case config.CacheBackendBadger:
		b, err = NewBadger(cfg.BadgerPath)
	case config.CacheBackendRedis:
		b, err = NewRedis(ctx, RedisOptions{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("component", "cache").
		Str("backend", b.Name()).
		Dur("reference_ttl", cfg.ReferenceTTL).
		Dur("curated_ttl", cfg.CuratedTTL).
		Msg("Response cache ready")
	return b, nil
}
