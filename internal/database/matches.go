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

// MatchFilter holds the optional predicates for ListMatches.
type MatchFilter struct {
	TournamentID string // exact match
	TeamID       string // matches either side of the fixture
	StadiumID    string // exact match
	Result       string // one of "home win", "away win", "draw"
	DateMin      *time.Time
	DateMax      *time.Time
	SortBy       string
	SortOrder    string
}

const matchColumns = "match_id, tournament_id, stadium_id, home_team_id, away_team_id, " +
	"match_date, home_score, away_score, result"

var matchSort = query.SortSpec{
	Allowed: map[string]string{
		"match_date": "match_date",
		"match_id":   "match_id",
	},
	Default: "match_date",
}

// ListMatches returns one page of matches matching the filter. The team
// filter is a single predicate over both sides, so a team's home and away
// fixtures both match.
func (db *DB) ListMatches(ctx context.Context, f MatchFilter, req pagination.Request) (*pagination.Page[models.Match], error) {
	b := query.NewBuilder("SELECT " + matchColumns + " FROM matches WHERE 1=1").
		WhereEqual("tournament_id", f.TournamentID).
		WhereEqual("stadium_id", f.StadiumID).
		WhereEqual("result", f.Result).
		WhereGTE("match_date", f.DateMin).
		WhereLTE("match_date", f.DateMax)

	if f.TeamID != "" {
		b.Where("(home_team_id = ? OR away_team_id = ?)", f.TeamID, f.TeamID)
	}

	frag := b.OrderBy(matchSort, f.SortBy, f.SortOrder).Fragment()

	return pagination.Paginate(ctx, db, frag, req, scanMatch)
}

// GetMatch returns one match by ID. ErrNotFound when no row matches.
func (db *DB) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	row, err := db.QueryRowContext(ctx,
		"SELECT "+matchColumns+" FROM matches WHERE match_id = ?", matchID)
	if err != nil {
		return nil, err
	}

	var m models.Match
	err = row.Scan(&m.MatchID, &m.TournamentID, &m.StadiumID, &m.HomeTeamID, &m.AwayTeamID,
		&m.MatchDate, &m.HomeScore, &m.AwayScore, &m.Result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("match %s: %w", matchID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load match %s: %w", matchID, err)
	}
	return &m, nil
}

func scanMatch(rows *sql.Rows) (models.Match, error) {
	var m models.Match
	err := rows.Scan(&m.MatchID, &m.TournamentID, &m.StadiumID, &m.HomeTeamID, &m.AwayTeamID,
		&m.MatchDate, &m.HomeScore, &m.AwayScore, &m.Result)
	return m, err
}
