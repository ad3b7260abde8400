// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Cache    CacheConfig    `koanf:"cache"`
	NATS     NATSConfig     `koanf:"nats"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Database drivers understood by the store.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// DatabaseConfig selects and tunes the observation store.
//
// The duckdb driver embeds the store in-process and is the default for local
// development and tests. The postgres driver connects to the shared relational
// store through a pgx pool; DSN wins over the discrete Host/Port/Name fields.
type DatabaseConfig struct {
	Driver string `koanf:"driver"`

	// DuckDB
	Path      string `koanf:"path"` // ":memory:" for an ephemeral store
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = runtime.NumCPU()

	// PostgreSQL
	DSN      string `koanf:"dsn"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Name     string `koanf:"name"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	SSLMode  string `koanf:"ssl_mode"`

	// Pool
	MaxConns        int           `koanf:"max_conns"`
	MinConns        int           `koanf:"min_conns"`
	AcquireTimeout  time.Duration `koanf:"acquire_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`

	// Migrate applies the embedded schema (tables and views) at startup.
	Migrate bool `koanf:"migrate"`
	// Seed loads the embedded reference dataset. Intended for development.
	Seed bool `koanf:"seed"`
}

// PostgresDSN returns the connection string for the postgres driver.
func (d DatabaseConfig) PostgresDSN() string {
	if d.DSN != "" {
		return d.DSN
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.User != "" {
		if d.Password != "" {
			u.User = url.UserPassword(d.User, d.Password)
		} else {
			u.User = url.User(d.User)
		}
	}
	if d.SSLMode != "" {
		u.RawQuery = "sslmode=" + url.QueryEscape(d.SSLMode)
	}
	return u.String()
}

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendBadger = "badger"
	CacheBackendRedis  = "redis"
)

// CacheConfig configures the response cache in front of the GET routes.
type CacheConfig struct {
	Enabled bool   `koanf:"enabled"`
	Backend string `koanf:"backend"`

	// ReferenceTTL covers indicators, locations, observations and compare.
	ReferenceTTL time.Duration `koanf:"reference_ttl"`
	// CuratedTTL covers policies and research templates.
	CuratedTTL time.Duration `koanf:"curated_ttl"`

	MaxEntries uint64 `koanf:"max_entries"` // memory backend capacity, 0 = unbounded

	BadgerPath string `koanf:"badger_path"` // empty = in-memory badger

	RedisHost     string `koanf:"redis_host"`
	RedisPort     int    `koanf:"redis_port"`
	RedisPassword string `koanf:"redis_password"`
	RedisDB       int    `koanf:"redis_db"`
}

// RedisAddr returns host:port for the redis backend.
func (c CacheConfig) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, strconv.Itoa(c.RedisPort))
}

// NATSConfig configures the cache invalidation listener. The ingestion
// pipeline publishes on Subject after each load; every replica clears its
// response cache when the message arrives.
type NATSConfig struct {
	Enabled       bool          `koanf:"enabled"`
	URL           string        `koanf:"url"`
	Subject       string        `koanf:"subject"`
	ReconnectWait time.Duration `koanf:"reconnect_wait"`
	MaxReconnects int           `koanf:"max_reconnects"` // -1 = forever
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// String returns a short description safe to log (no credentials).
func (d DatabaseConfig) String() string {
	if d.Driver == DriverPostgres {
		u, err := url.Parse(d.PostgresDSN())
		if err != nil {
			return "postgres(invalid dsn)"
		}
		return fmt.Sprintf("postgres(%s%s)", u.Host, u.Path)
	}
	return fmt.Sprintf("duckdb(%s)", d.Path)
}
