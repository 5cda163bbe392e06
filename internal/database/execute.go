// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dcastano/golazo/internal/database/query"
	"github.com/dcastano/golazo/internal/metrics"
)

// QueryContext executes a query, routing through the prepared statement cache
// when the statement carries arguments. Placeholder/argument parity is checked
// before anything reaches the driver; a mismatch is a programming fault in the
// calling accessor and is reported as query.ErrBindMismatch.
func (db *DB) QueryContext(ctx context.Context, sqlText string, args ...interface{}) (*sql.Rows, error) {
	frag := query.Fragment{SQL: sqlText, Args: args}
	if err := frag.BindCheck(); err != nil {
		return nil, err
	}

	start := time.Now()

	var rows *sql.Rows
	var err error
	if len(args) == 0 {
		rows, err = db.conn.QueryContext(ctx, sqlText)
	} else {
		var stmt *sql.Stmt
		stmt, err = db.getOrPrepare(ctx, sqlText)
		if err == nil {
			rows, err = stmt.QueryContext(ctx, args...)
		}
	}

	metrics.RecordDBQuery("query", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	return rows, nil
}

// QueryRowContext executes a single-row query through the statement cache.
// The error, if any, is deferred to Scan on the returned row.
func (db *DB) QueryRowContext(ctx context.Context, sqlText string, args ...interface{}) (*sql.Row, error) {
	frag := query.Fragment{SQL: sqlText, Args: args}
	if err := frag.BindCheck(); err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return db.conn.QueryRowContext(ctx, sqlText), nil
	}

	stmt, err := db.getOrPrepare(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	return stmt.QueryRowContext(ctx, args...), nil
}

// ExecContext executes a statement that returns no rows. Only the test
// fixtures use this; the production dataset is opened read-only.
func (db *DB) ExecContext(ctx context.Context, sqlText string, args ...interface{}) (sql.Result, error) {
	frag := query.Fragment{SQL: sqlText, Args: args}
	if err := frag.BindCheck(); err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := db.conn.ExecContext(ctx, sqlText, args...)
	metrics.RecordDBQuery("exec", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("statement execution failed: %w", err)
	}
	return res, nil
}

// getOrPrepare returns a cached prepared statement, preparing and caching it
// on first use. The double-checked lock keeps the common path on the read
// lock.
func (db *DB) getOrPrepare(ctx context.Context, sqlText string) (*sql.Stmt, error) {
	db.stmtCacheMu.RLock()
	stmt, ok := db.stmtCache[sqlText]
	db.stmtCacheMu.RUnlock()
	if ok {
		return stmt, nil
	}

	db.stmtCacheMu.Lock()
	defer db.stmtCacheMu.Unlock()

	if stmt, ok := db.stmtCache[sqlText]; ok {
		return stmt, nil
	}

	stmt, err := db.conn.PrepareContext(ctx, sqlText)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	db.stmtCache[sqlText] = stmt
	metrics.DBStmtCacheSize.Set(float64(len(db.stmtCache)))
	return stmt, nil
}
