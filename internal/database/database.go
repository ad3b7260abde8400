// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"

	"github.com/tomtom215/equalityatlas/internal/config"
	"github.com/tomtom215/equalityatlas/internal/metrics"
)

// DB wraps the observation store connection and provides the query layer.
type DB struct {
	conn   *sql.DB
	pool   *pgxpool.Pool // nil for duckdb
	cfg    config.DatabaseConfig
	logger zerolog.Logger
}

// New opens the store selected by cfg.Driver, tunes the pool and, when
// configured, applies the embedded schema and seed data.
func New(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*DB, error) {
	db := &DB{
		cfg:    cfg,
		logger: logger.With().Str("component", "database").Str("driver", cfg.Driver).Logger(),
	}

	var err error
	switch cfg.Driver {
	case config.DriverPostgres:
		err = db.openPostgres(ctx)
	case config.DriverDuckDB, "":
		db.cfg.Driver = config.DriverDuckDB
		err = db.openDuckDB()
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to ping %s: %w", db.cfg, err)
	}

	if cfg.Migrate {
		if err := db.Migrate(ctx); err != nil {
			closeQuietly(db)
			return nil, err
		}
	}
	if cfg.Seed {
		if err := db.Seed(ctx); err != nil {
			closeQuietly(db)
			return nil, err
		}
	}

	db.logger.Info().Str("store", db.cfg.String()).Msg("Observation store ready")
	return db, nil
}

// openDuckDB opens an embedded store. The parent directory of a file-backed
// store is created when missing.
func (db *DB) openDuckDB() error {
	path := db.cfg.Path
	if path != "" && path != ":memory:" {
		dir := filepath.Dir(path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}
	threads := db.cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	maxMemory := db.cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "1GB"
	}

	// Extension autoloading is disabled; the schema needs none and restricted
	// networks hang on autoinstall.
	dsn := fmt.Sprintf("%s?threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		path, threads, maxMemory)

	conn, err := sql.Open("duckdb", dsn)
	if err != nil {
		return fmt.Errorf("failed to open duckdb: %w", err)
	}
	db.conn = conn
	db.configureConnectionPool()
	return nil
}

// openPostgres connects through a pgx pool and exposes it as *sql.DB so the
// query layer is shared with duckdb.
func (db *DB) openPostgres(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(db.cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("failed to parse postgres config: %w", err)
	}

	if db.cfg.MaxConns > 0 {
		poolConfig.MaxConns = int32(db.cfg.MaxConns) //nolint:gosec // validated 1..1000
	}
	if db.cfg.MinConns > 0 {
		poolConfig.MinConns = int32(db.cfg.MinConns) //nolint:gosec // validated <= MaxConns
	}
	if db.cfg.IdleTimeout > 0 {
		poolConfig.MaxConnIdleTime = db.cfg.IdleTimeout
	}
	if db.cfg.ConnMaxLifetime > 0 {
		poolConfig.MaxConnLifetime = db.cfg.ConnMaxLifetime
	}

	connectCtx, cancel := db.withTimeout(ctx)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create postgres pool: %w", err)
	}

	db.pool = pool
	db.conn = stdlib.OpenDBFromPool(pool)
	return nil
}

// configureConnectionPool applies pool limits to the database/sql handle.
func (db *DB) configureConnectionPool() {
	maxConns := db.cfg.MaxConns
	if maxConns <= 0 {
		maxConns = 10
	}
	db.conn.SetMaxOpenConns(maxConns)
	db.conn.SetMaxIdleConns(min(2, maxConns))
	if db.cfg.IdleTimeout > 0 {
		db.conn.SetConnMaxIdleTime(db.cfg.IdleTimeout)
	}
	if db.cfg.ConnMaxLifetime > 0 {
		db.conn.SetConnMaxLifetime(db.cfg.ConnMaxLifetime)
	}
}

// withTimeout derives the per-query context from the caller's context.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := db.cfg.AcquireTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// observe records the duration and outcome of one store operation.
func (db *DB) observe(operation string, started time.Time, err error) {
	metrics.RecordStoreQuery(operation, db.cfg.Driver, time.Since(started), err)
	if err != nil {
		db.logger.Debug().Err(err).Str("operation", operation).Msg("Store query failed")
	}
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	return db.cfg.Driver
}

// Conn returns the underlying SQL handle. Tests use it to load fixtures.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	return db.conn.PingContext(ctx)
}

// Close releases the SQL handle and, for postgres, the pgx pool.
func (db *DB) Close() error {
	var err error
	if db.conn != nil {
		err = db.conn.Close()
	}
	if db.pool != nil {
		db.pool.Close()
	}
	return err
}
