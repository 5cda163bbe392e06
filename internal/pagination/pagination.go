// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

// Package pagination implements the shared count-then-window pagination engine
// used by every list accessor. Given a query fragment and a page request it
// runs a COUNT over the full fragment, computes the page offset, appends the
// LIMIT/OFFSET window and returns rows plus page metadata in one envelope.
//
// The count is a full evaluation of the fragment (SELECT COUNT(*) over it as a
// subquery), not a separate optimized path. Count and window execute
// sequentially on the same handle; consistency between the two under
// concurrent writers is whatever the underlying store provides.
package pagination

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dcastano/golazo/internal/database/query"
)

const (
	// DefaultPage is the page returned when the client sends no page parameter.
	DefaultPage = 1

	// DefaultPageSize is the window size when the client sends no page_size.
	DefaultPageSize = 5

	// MaxPageSize caps the window size to protect the store from oversized scans.
	MaxPageSize = 100
)

// Config carries the per-deployment page size bounds. The zero value is not
// usable; construct with NewConfig and override from application config.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
}

// NewConfig returns the built-in bounds (default 5, max 100).
func NewConfig() Config {
	return Config{DefaultPageSize: DefaultPageSize, MaxPageSize: MaxPageSize}
}

// Request is one validated page selection. Page is 1-based.
type Request struct {
	Page     int
	PageSize int
}

// ParamError reports a rejected pagination parameter. It names the offending
// field and the accepted range so the API layer can surface it verbatim.
type ParamError struct {
	Param   string
	Value   string
	Message string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Message)
}

// ParseRequest extracts page and page_size from raw query parameters.
// Missing parameters take the configured defaults; present parameters must be
// integers inside the accepted ranges. Out-of-range and non-integer values
// are rejected, never clamped.
func ParseRequest(q url.Values, cfg Config) (Request, error) {
	req := Request{Page: DefaultPage, PageSize: cfg.DefaultPageSize}
	if req.PageSize <= 0 {
		req.PageSize = DefaultPageSize
	}
	maxSize := cfg.MaxPageSize
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Request{}, &ParamError{Param: "page", Value: raw, Message: "must be an integer"}
		}
		if n < 1 {
			return Request{}, &ParamError{Param: "page", Value: raw, Message: "must be greater than or equal to 1"}
		}
		req.Page = n
	}

	if raw := q.Get("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Request{}, &ParamError{Param: "page_size", Value: raw, Message: "must be an integer"}
		}
		if n < 1 || n > maxSize {
			return Request{}, &ParamError{
				Param:   "page_size",
				Value:   raw,
				Message: fmt.Sprintf("must be between 1 and %d", maxSize),
			}
		}
		req.PageSize = n
	}

	return req, nil
}

// Page is the uniform list envelope: page metadata plus the bounded window of
// rows. It is assembled once per Paginate call and not mutated afterwards.
type Page[T any] struct {
	CurrentPage  int   `json:"current_page"`
	PageSize     int   `json:"page_size"`
	TotalPages   int   `json:"total_pages"`
	TotalRecords int64 `json:"total_records"`
	Data         []T   `json:"data"`
}

// Querier is the slice of the execution adapter the engine needs. *database.DB
// satisfies it.
type Querier interface {
	QueryContext(ctx context.Context, sqlText string, args ...interface{}) (*sql.Rows, error)
}

// ScanFunc scans the current row of a result set into one value.
type ScanFunc[T any] func(*sql.Rows) (T, error)

// Paginate runs the two-step count-then-window cycle for one request.
//
// An out-of-range page is not an error: it is answered from the count with an
// empty window while the metadata still reflects the true totals. Any
// execution fault aborts the cycle; no partial envelope is ever returned.
func Paginate[T any](ctx context.Context, q Querier, frag query.Fragment, req Request, scan ScanFunc[T]) (*Page[T], error) {
	if err := frag.BindCheck(); err != nil {
		return nil, err
	}
	if req.Page < 1 {
		req.Page = DefaultPage
	}
	if req.PageSize < 1 {
		req.PageSize = DefaultPageSize
	}

	total, err := countRecords(ctx, q, frag)
	if err != nil {
		return nil, fmt.Errorf("failed to count matching records: %w", err)
	}

	pages := totalPages(total, req.PageSize)

	// A page past the last one needs no window query. Answering it here also
	// keeps the offset arithmetic inside int64 for any page number
	// ParseRequest accepts.
	if req.Page > pages {
		return &Page[T]{
			CurrentPage:  req.Page,
			PageSize:     req.PageSize,
			TotalPages:   pages,
			TotalRecords: total,
			Data:         make([]T, 0),
		}, nil
	}

	offset := int64(req.Page-1) * int64(req.PageSize)

	// Window clause goes last, after every predicate and the ORDER BY.
	windowSQL := frag.SQL + " LIMIT ? OFFSET ?"
	windowArgs := make([]interface{}, 0, len(frag.Args)+2)
	windowArgs = append(windowArgs, frag.Args...)
	windowArgs = append(windowArgs, req.PageSize, offset)

	rows, err := q.QueryContext(ctx, windowSQL, windowArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute windowed query: %w", err)
	}
	defer rows.Close()

	data := make([]T, 0, req.PageSize)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		data = append(data, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read result set: %w", err)
	}

	return &Page[T]{
		CurrentPage:  req.Page,
		PageSize:     req.PageSize,
		TotalPages:   pages,
		TotalRecords: total,
		Data:         data,
	}, nil
}

// countRecords evaluates the fragment in full and counts its rows.
func countRecords(ctx context.Context, q Querier, frag query.Fragment) (int64, error) {
	countSQL := "SELECT COUNT(*) FROM (" + frag.SQL + ") AS matched"

	rows, err := q.QueryContext(ctx, countSQL, frag.Args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var total int64
	if rows.Next() {
		if err := rows.Scan(&total); err != nil {
			return 0, err
		}
	}
	return total, rows.Err()
}

// totalPages is ceil(total/size), with 0 pages for an empty result.
func totalPages(total int64, size int) int {
	if total == 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
