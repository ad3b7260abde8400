// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/equalityatlas/config.yaml",
	"/etc/equalityatlas/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotenvPathEnvVar overrides the location of the .env file.
const DotenvPathEnvVar = "DOTENV_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3000,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Database: DatabaseConfig{
			Driver:    DriverDuckDB,
			Path:      "/data/equalityatlas.duckdb",
			MaxMemory: "1GB",
			Threads:   0,
			Host:      "localhost",
			Port:      5432,
			Name:      "women_wellbeing",
			SSLMode:   "disable",
			// Pool sizing mirrors the store's historical limits: at most ten
			// connections, 30s to acquire one, idle connections closed after 10s.
			MaxConns:        10,
			MinConns:        0,
			AcquireTimeout:  30 * time.Second,
			IdleTimeout:     10 * time.Second,
			ConnMaxLifetime: time.Hour,
			Migrate:         true,
			Seed:            false,
		},
		Cache: CacheConfig{
			Enabled:      true,
			Backend:      CacheBackendMemory,
			ReferenceTTL: 300 * time.Second,
			CuratedTTL:   600 * time.Second,
			MaxEntries:   10000,
			BadgerPath:   "",
			RedisHost:    "localhost",
			RedisPort:    6379,
		},
		NATS: NATSConfig{
			Enabled:       false,
			URL:           "nats://127.0.0.1:4222",
			Subject:       "atlas.data.refreshed",
			ReconnectWait: 2 * time.Second,
			MaxReconnects: -1,
		},
		Security: SecurityConfig{
			RateLimitReqs:     1000,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
			TrustedProxies:    []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load reads configuration in layers: struct defaults, then an optional YAML
// file, then environment variables (a .env file is merged into the process
// environment first without overriding variables that are already set).
func Load() (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotenv merges a .env file into the environment. A missing file is not
// an error unless its path was given explicitly.
func loadDotenv() error {
	path := os.Getenv(DotenvPathEnvVar)
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are keys that accept a comma-separated string from the
// environment and must become []string before unmarshalling.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to config keys.
// Unlisted variables are ignored so unrelated process env never leaks in.
var envMappings = map[string]string{
	"http_port":        "server.port",
	"port":             "server.port",
	"http_host":        "server.host",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	"db_driver":            "database.driver",
	"duckdb_path":          "database.path",
	"duckdb_max_memory":    "database.max_memory",
	"duckdb_threads":       "database.threads",
	"database_url":         "database.dsn",
	"db_host":              "database.host",
	"db_port":              "database.port",
	"db_name":              "database.name",
	"db_user":              "database.user",
	"db_password":          "database.password",
	"db_sslmode":           "database.ssl_mode",
	"db_max_conns":         "database.max_conns",
	"db_min_conns":         "database.min_conns",
	"db_acquire_timeout":   "database.acquire_timeout",
	"db_idle_timeout":      "database.idle_timeout",
	"db_conn_max_lifetime": "database.conn_max_lifetime",
	"db_migrate":           "database.migrate",
	"db_seed":              "database.seed",

	"cache_enabled":       "cache.enabled",
	"cache_backend":       "cache.backend",
	"cache_reference_ttl": "cache.reference_ttl",
	"cache_curated_ttl":   "cache.curated_ttl",
	"cache_max_entries":   "cache.max_entries",
	"cache_badger_path":   "cache.badger_path",
	"redis_host":          "cache.redis_host",
	"redis_port":          "cache.redis_port",
	"redis_password":      "cache.redis_password",
	"redis_db":            "cache.redis_db",

	"nats_enabled":         "nats.enabled",
	"nats_url":             "nats.url",
	"nats_refresh_subject": "nats.subject",
	"nats_reconnect_wait":  "nats.reconnect_wait",
	"nats_max_reconnects":  "nats.max_reconnects",

	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
	"trusted_proxies":     "security.trusted_proxies",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc converts an environment variable name into a koanf key.
// Returning "" tells koanf to skip the variable.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
