// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"

	"github.com/tomtom215/equalityatlas/internal/config"
	"github.com/tomtom215/equalityatlas/internal/logging"
)

// startNATS runs an in-process NATS server on a random port.
func startNATS(t *testing.T) *server.Server {
	t.Helper()

	ns, err := server.NewServer(&server.Options{
		Host:   "127.0.0.1",
		Port:   server.RANDOM_PORT,
		NoLog:  true,
		NoSigs: true,
	})
	if err != nil {
		t.Fatalf("create NATS server: %v", err)
	}
	go ns.Start()
	if !ns.ReadyForConnections(10 * time.Second) {
		ns.Shutdown()
		t.Fatal("NATS server not ready within timeout")
	}
	t.Cleanup(ns.Shutdown)
	return ns
}

func TestInvalidator_ClearsOnRefresh(t *testing.T) {
	ns := startNATS(t)
	b := NewMemory(0)
	defer b.Close()

	cfg := config.NATSConfig{
		Enabled:       true,
		URL:           ns.ClientURL(),
		Subject:       "atlas.data.refreshed",
		ReconnectWait: 100 * time.Millisecond,
		MaxReconnects: 1,
	}
	inv := NewInvalidator(cfg, b, logging.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- inv.Serve(ctx) }()

	bg := context.Background()
	if err := b.Set(bg, "cache:GET:/api/indicators", []byte("stale"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// The subscription is asynchronous; publish until the entry disappears.
	deadline := time.Now().Add(5 * time.Second)
	for {
		if err := PublishRefresh(bg, cfg.URL, cfg.Subject); err != nil {
			t.Fatalf("PublishRefresh() error = %v", err)
		}
		time.Sleep(50 * time.Millisecond)
		if _, ok, _ := b.Get(bg, "cache:GET:/api/indicators"); !ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("cache was not cleared after refresh message")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

func TestInvalidator_String(t *testing.T) {
	inv := NewInvalidator(config.NATSConfig{}, NewMemory(0), logging.Nop())
	if got := inv.String(); got != "cache-invalidator" {
		t.Errorf("String() = %q", got)
	}
}
