// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

// Package database wraps the DuckDB connection and provides the read-only
// accessors for the tournament dataset. The dataset file is produced by an
// external loading pipeline; this package never creates or mutates tables in
// production, it only queries them.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/dcastano/golazo/internal/config"
	"github.com/dcastano/golazo/internal/logging"
	"github.com/dcastano/golazo/internal/metrics"
)

// DB wraps the DuckDB connection and provides data access methods.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig

	// Prepared statement caching
	stmtCache   map[string]*sql.Stmt
	stmtCacheMu sync.RWMutex
}

// New opens the DuckDB dataset and verifies the connection. An empty
// cfg.Path opens an in-memory database in read-write mode; tests use this to
// build fixture datasets. A file path with cfg.ReadOnly set opens the dataset
// with access_mode=read_only so the server cannot mutate it.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "1GB"
	}

	var connStr string
	if cfg.Path == "" {
		connStr = fmt.Sprintf(":memory:?threads=%d&max_memory=%s", numThreads, maxMemory)
	} else {
		accessMode := "read_write"
		if cfg.ReadOnly {
			accessMode = "read_only"
		}
		connStr = fmt.Sprintf("%s?access_mode=%s&threads=%d&max_memory=%s",
			cfg.Path, accessMode, numThreads, maxMemory)
	}

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		conn:      conn,
		cfg:       cfg,
		stmtCache: make(map[string]*sql.Stmt),
	}

	db.configureConnectionPool()

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.Ping(pingCtx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to verify database connection: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("read_only", cfg.ReadOnly).
		Int("threads", numThreads).
		Msg("Database opened")

	return db, nil
}

// configureConnectionPool sets connection pool parameters.
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(runtime.NumCPU())
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// Ping checks if the database connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Conn returns the underlying SQL database connection.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Close closes the database connection and all cached prepared statements.
func (db *DB) Close() error {
	db.stmtCacheMu.Lock()
	for _, stmt := range db.stmtCache {
		if stmt != nil {
			closeWithLog(stmt, "prepared statement")
		}
	}
	db.stmtCache = make(map[string]*sql.Stmt)
	metrics.DBStmtCacheSize.Set(0)
	db.stmtCacheMu.Unlock()

	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// closeQuietly closes a resource ignoring the error.
func closeQuietly(c interface{ Close() error }) {
	_ = c.Close()
}

// closeWithLog closes a resource and logs failures at debug level.
func closeWithLog(c interface{ Close() error }, what string) {
	if err := c.Close(); err != nil {
		logging.Debug().Err(err).Str("resource", what).Msg("Failed to close resource")
	}
}
