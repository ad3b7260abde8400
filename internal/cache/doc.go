// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

/*
Package cache holds the response cache that sits in front of the read-only
API routes.

# Backends

Three Backend implementations store rendered response bodies:

  - memory: in-process, bounded, backed by jellydator/ttlcache (default)
  - badger: embedded key-value store, optionally persisted to disk
  - redis: shared across replicas

All backends store opaque bytes under keys of the form

	cache:GET:/api/indicators?q=wbl

and expire them after the TTL given at write time.

# Middleware

Middleware wraps a route group. A GET request whose key is present is served
from the backend byte for byte with X-Cache: HIT. Otherwise the handler runs,
the response carries X-Cache: MISS, and a 200 response is stored. Backend
errors are logged and counted but never fail the request.

Concurrent misses for the same key are not coalesced; the last writer wins.

# Invalidation

Invalidator subscribes to a NATS subject. Each message clears the backend so
replicas stop serving data older than the last ingestion run.
*/
package cache
