// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

/*
Package config loads Equality Atlas configuration.

# Configuration Sources

Sources are layered with koanf, later layers overriding earlier ones:

 1. Struct defaults (defaultConfig)
 2. YAML file: CONFIG_PATH, ./config.yaml, or /etc/equalityatlas/config.yaml
 3. Environment variables, after .env (or DOTENV_PATH) has been merged into the
    process environment with godotenv

Only environment variables listed in envMappings are read.

# Environment Variables

Server:
  - HTTP_HOST / HTTP_PORT (or PORT): bind address (default 0.0.0.0:3000)
  - SERVER_TIMEOUT: read and write timeout (default 30s)
  - ENVIRONMENT: development, staging, production, test

Database:
  - DB_DRIVER: duckdb (default) or postgres
  - DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS
  - DATABASE_URL, or DB_HOST / DB_PORT / DB_NAME / DB_USER / DB_PASSWORD / DB_SSLMODE
  - DB_MAX_CONNS (10), DB_ACQUIRE_TIMEOUT (30s), DB_IDLE_TIMEOUT (10s)
  - DB_MIGRATE (true), DB_SEED (false)

Cache:
  - CACHE_ENABLED, CACHE_BACKEND (memory, badger, redis)
  - CACHE_REFERENCE_TTL (300s), CACHE_CURATED_TTL (600s)
  - CACHE_BADGER_PATH, REDIS_HOST, REDIS_PORT, REDIS_PASSWORD, REDIS_DB

NATS:
  - NATS_ENABLED, NATS_URL, NATS_REFRESH_SUBJECT

Security:
  - CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
