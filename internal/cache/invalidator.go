// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package cache

import (
	"context"
	"fmt"
	"time"

	natsgo "github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/tomtom215/equalityatlas/internal/config"
	"github.com/tomtom215/equalityatlas/internal/metrics"
)

// Invalidator clears a backend whenever a message arrives on the refresh
// subject. It implements suture.Service.
type Invalidator struct {
	cfg     config.NATSConfig
	backend Backend
	logger  zerolog.Logger
}

// NewInvalidator creates an invalidator for backend.
func NewInvalidator(cfg config.NATSConfig, backend Backend, logger zerolog.Logger) *Invalidator {
	return &Invalidator{
		cfg:     cfg,
		backend: backend,
		logger:  logger.With().Str("component", "cache-invalidator").Str("subject", cfg.Subject).Logger(),
	}
}

// Serve connects, subscribes and blocks until ctx is done. A returned error
// makes the supervisor restart the service.
func (inv *Invalidator) Serve(ctx context.Context) error {
	nc, err := natsgo.Connect(inv.cfg.URL,
		natsgo.Name("equalityatlas-cache-invalidator"),
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(inv.cfg.MaxReconnects),
		natsgo.ReconnectWait(inv.cfg.ReconnectWait),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				inv.logger.Warn().Err(err).Msg("NATS disconnected")
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			// Responses cached while disconnected may have missed a refresh.
			inv.clear(ctx, "reconnect")
			inv.logger.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	)
	if err != nil {
		return fmt.Errorf("connect nats: %w", err)
	}
	defer nc.Close()

	sub, err := nc.Subscribe(inv.cfg.Subject, func(msg *natsgo.Msg) {
		inv.clear(ctx, "nats")
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", inv.cfg.Subject, err)
	}

	inv.logger.Info().Str("url", inv.cfg.URL).Msg("Cache invalidation listener started")
	<-ctx.Done()

	if err := sub.Drain(); err != nil {
		inv.logger.Debug().Err(err).Msg("Subscription drain failed")
	}
	return ctx.Err()
}

func (inv *Invalidator) clear(ctx context.Context, source string) {
	clearCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := inv.backend.Clear(clearCtx); err != nil {
		metrics.CacheErrors.WithLabelValues(inv.backend.Name(), "clear").Inc()
		inv.logger.Error().Err(err).Str("source", source).Msg("Cache clear failed")
		return
	}
	metrics.CacheInvalidations.WithLabelValues(source).Inc()
	inv.logger.Info().Str("source", source).Msg("Response cache cleared")
}

func (inv *Invalidator) String() string {
	return "cache-invalidator"
}

// PublishRefresh announces a data refresh on subject.
func PublishRefresh(ctx context.Context, url, subject string) error {
	nc, err := natsgo.Connect(url, natsgo.Name("equalityatlas-refresh"))
	if err != nil {
		return fmt.Errorf("connect nats: %w", err)
	}
	defer nc.Close()

	if err := nc.Publish(subject, []byte(time.Now().UTC().Format(time.RFC3339))); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	// FlushWithContext requires a deadline.
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	return nc.FlushWithContext(ctx)
}
