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
	"time"

	"github.com/dcastano/golazo/internal/database/query"
	"github.com/dcastano/golazo/internal/models"
	"github.com/dcastano/golazo/internal/pagination"
)

// TournamentFilter holds the optional predicates for ListTournaments.
type TournamentFilter struct {
	HostCountry  string // substring match
	Winner       string // prefix match
	StartDateMin *time.Time
	StartDateMax *time.Time
	SortBy       string
	SortOrder    string
}

const tournamentColumns = "tournament_id, name, year, host_country, winner, start_date, end_date"

var tournamentSort = query.SortSpec{
	Allowed: map[string]string{
		"year": "year",
		"name": "name",
	},
	Default: "year",
}

// ListTournaments returns one page of tournament editions matching the filter.
func (db *DB) ListTournaments(ctx context.Context, f TournamentFilter, req pagination.Request) (*pagination.Page[models.Tournament], error) {
	frag := query.NewBuilder("SELECT "+tournamentColumns+" FROM tournaments WHERE 1=1").
		WhereContains("host_country", f.HostCountry).
		WherePrefix("winner", f.Winner).
		WhereGTE("start_date", f.StartDateMin).
		WhereLTE("start_date", f.StartDateMax).
		OrderBy(tournamentSort, f.SortBy, f.SortOrder).
		Fragment()

	return pagination.Paginate(ctx, db, frag, req, scanTournament)
}

// GetTournament returns one tournament edition by ID. ErrNotFound when no row
// matches.
func (db *DB) GetTournament(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	row, err := db.QueryRowContext(ctx,
		"SELECT "+tournamentColumns+" FROM tournaments WHERE tournament_id = ?", tournamentID)
	if err != nil {
		return nil, err
	}

	var t models.Tournament
	var winner sql.NullString
	err = row.Scan(&t.TournamentID, &t.Name, &t.Year, &t.HostCountry, &winner, &t.StartDate, &t.EndDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tournament %s: %w", tournamentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load tournament %s: %w", tournamentID, err)
	}
	t.Winner = winner.String
	return &t, nil
}

func scanTournament(rows *sql.Rows) (models.Tournament, error) {
	var t models.Tournament
	var winner sql.NullString
	err := rows.Scan(&t.TournamentID, &t.Name, &t.Year, &t.HostCountry, &winner, &t.StartDate, &t.EndDate)
	t.Winner = winner.String
	return t, err
}
