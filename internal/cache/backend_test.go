// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/equalityatlas/internal/config"
	"github.com/tomtom215/equalityatlas/internal/logging"
)

// backendFactories lists the backends that run without external services.
func backendFactories(t *testing.T) map[string]func() Backend {
	t.Helper()
	return map[string]func() Backend{
		"memory": func() Backend { return NewMemory(100) },
		"badger": func() Backend {
			b, err := NewBadger("")
			if err != nil {
				t.Fatalf("NewBadger() error = %v", err)
			}
			return b
		},
	}
}

func TestBackends_SetGetClear(t *testing.T) {
	for name, factory := range backendFactories(t) {
		t.Run(name, func(t *testing.T) {
			b := factory()
			defer b.Close()
			ctx := context.Background()

			if _, ok, err := b.Get(ctx, "cache:missing"); err != nil || ok {
				t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
			}

			if err := b.Set(ctx, "cache:a", []byte("alpha"), time.Minute); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			got, ok, err := b.Get(ctx, "cache:a")
			if err != nil || !ok {
				t.Fatalf("Get(a) = ok %v, err %v", ok, err)
			}
			if string(got) != "alpha" {
				t.Errorf("Get(a) = %q, want alpha", got)
			}

			if err := b.Set(ctx, "cache:a", []byte("beta"), time.Minute); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}
			got, _, _ = b.Get(ctx, "cache:a")
			if string(got) != "beta" {
				t.Errorf("Get(a) after overwrite = %q, want beta", got)
			}

			if err := b.Clear(ctx); err != nil {
				t.Fatalf("Clear() error = %v", err)
			}
			if _, ok, _ := b.Get(ctx, "cache:a"); ok {
				t.Error("entry survived Clear()")
			}
		})
	}
}

func TestBackends_Expiry(t *testing.T) {
	for name, factory := range backendFactories(t) {
		t.Run(name, func(t *testing.T) {
			b := factory()
			defer b.Close()
			ctx := context.Background()

			// Badger TTLs have one-second resolution.
			if err := b.Set(ctx, "cache:short", []byte("x"), time.Second); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			time.Sleep(2100 * time.Millisecond)
			if _, ok, _ := b.Get(ctx, "cache:short"); ok {
				t.Error("entry still present after its TTL")
			}
		})
	}
}

func TestMemory_Capacity(t *testing.T) {
	m := NewMemory(2)
	defer m.Close()
	ctx := context.Background()

	for _, k := range []string{"cache:1", "cache:2", "cache:3"} {
		if err := m.Set(ctx, k, []byte(k), time.Minute); err != nil {
			t.Fatalf("Set(%s) error = %v", k, err)
		}
	}
	if n := m.Len(); n != 2 {
		t.Errorf("Len() = %d, want 2", n)
	}
}

func TestNew_SelectsBackend(t *testing.T) {
	tests := []struct {
		backend string
		want    string
		wantErr bool
	}{
		{backend: "", want: "memory"},
		{backend: config.CacheBackendMemory, want: "memory"},
		{backend: config.CacheBackendBadger, want: "badger"},
		{backend: "memcached", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			b, err := New(context.Background(), config.CacheConfig{Backend: tt.backend}, logging.Nop())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer b.Close()
			if b.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", b.Name(), tt.want)
			}
		})
	}
}
