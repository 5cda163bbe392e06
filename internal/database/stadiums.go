// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dcastano/golazo/internal/database/query"
	"github.com/dcastano/golazo/internal/models"
	"github.com/dcastano/golazo/internal/pagination"
)

// StadiumFilter holds the optional predicates for ListStadiums.
type StadiumFilter struct {
	Name        string // prefix match
	City        string // substring match
	Country     string // substring match
	CapacityMin *int   // strict lower bound
	SortBy      string
	SortOrder   string
}

const stadiumColumns = "stadium_id, name, city, country, capacity"

var stadiumSort = query.SortSpec{
	Allowed: map[string]string{
		"name":     "name",
		"city":     "city",
		"capacity": "capacity",
	},
	Default: "stadium_id",
}

// ListStadiums returns one page of stadiums matching the filter.
func (db *DB) ListStadiums(ctx context.Context, f StadiumFilter, req pagination.Request) (*pagination.Page[models.Stadium], error) {
	frag := query.NewBuilder("SELECT "+stadiumColumns+" FROM stadiums WHERE 1=1").
		WherePrefix("name", f.Name).
		WhereContains("city", f.City).
		WhereContains("country", f.Country).
		WhereGT("capacity", f.CapacityMin).
		OrderBy(stadiumSort, f.SortBy, f.SortOrder).
		Fragment()

	return pagination.Paginate(ctx, db, frag, req, scanStadium)
}

// GetStadium returns one stadium by ID. ErrNotFound when no row matches.
func (db *DB) GetStadium(ctx context.Context, stadiumID string) (*models.Stadium, error) {
	row, err := db.QueryRowContext(ctx,
		"SELECT "+stadiumColumns+" FROM stadiums WHERE stadium_id = ?", stadiumID)
	if err != nil {
		return nil, err
	}

	var s models.Stadium
	if err := row.Scan(&s.StadiumID, &s.Name, &s.City, &s.Country, &s.Capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("stadium %s: %w", stadiumID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load stadium %s: %w", stadiumID, err)
	}
	return &s, nil
}

func scanStadium(rows *sql.Rows) (models.Stadium, error) {
	var s models.Stadium
	err := rows.Scan(&s.StadiumID, &s.Name, &s.City, &s.Country, &s.Capacity)
	return s, err
}
