// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// Memory is an in-process backend. When full, the entry closest to expiry
// is evicted first.
type Memory struct {
	c *ttlcache.Cache[string, []byte]
}

// NewMemory creates a memory backend holding at most capacity entries
// (0 = unbounded) and starts its expiry loop.
func NewMemory(capacity uint64) *Memory {
	opts := []ttlcache.Option[string, []byte]{
		// Hits must not extend the lifetime of a response.
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	}
	if capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, []byte](capacity))
	}
	m := &Memory{c: ttlcache.New[string, []byte](opts...)}
	go m.c.Start()
	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	item := m.c.Get(key)
	if item == nil || item.IsExpired() {
		return nil, false, nil
	}
	return item.Value(), true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.c.Set(key, value, ttl)
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.c.DeleteAll()
	return nil
}

// Len returns the number of stored entries, expired ones included until the
// expiry loop removes them.
func (m *Memory) Len() int {
	return m.c.Len()
}

func (m *Memory) Name() string { return "memory" }

// Close stops the expiry loop.
func (m *Memory) Close() error {
	m.c.Stop()
	return nil
}
