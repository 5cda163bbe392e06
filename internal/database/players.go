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

// PlayerFilter holds the optional predicates for ListPlayers.
type PlayerFilter struct {
	FamilyName string // prefix match
	GivenName  string // prefix match
	TeamID     string // exact match
	Position   string // one of goalkeeper, defender, midfielder, forward
	Gender     string // exact match
	DOBMin     *time.Time
	DOBMax     *time.Time
	SortBy     string
	SortOrder  string
}

const playerColumns = "player_id, team_id, family_name, given_name, date_of_birth, " +
	"gender, goal_keeper, defender, midfielder, forward"

var playerSort = query.SortSpec{
	Allowed: map[string]string{
		"family_name":   "family_name",
		"given_name":    "given_name",
		"date_of_birth": "date_of_birth",
	},
	Default: "player_id",
}

// positionColumns maps the public position values to the dataset's boolean
// columns. Every filter value must resolve to exactly one column; an unknown
// value is a fault, not a no-op.
var positionColumns = map[string]string{
	"goalkeeper": "goal_keeper",
	"defender":   "defender",
	"midfielder": "midfielder",
	"forward":    "forward",
}

// ListPlayers returns one page of players matching the filter.
func (db *DB) ListPlayers(ctx context.Context, f PlayerFilter, req pagination.Request) (*pagination.Page[models.Player], error) {
	b := query.NewBuilder("SELECT " + playerColumns + " FROM players WHERE 1=1").
		WherePrefix("family_name", f.FamilyName).
		WherePrefix("given_name", f.GivenName).
		WhereEqual("team_id", f.TeamID).
		WhereEqual("gender", f.Gender).
		WhereGTE("date_of_birth", f.DOBMin).
		WhereLTE("date_of_birth", f.DOBMax)

	if f.Position != "" {
		col, ok := positionColumns[f.Position]
		if !ok {
			return nil, fmt.Errorf("unknown position %q", f.Position)
		}
		b.Where(col + " = TRUE")
	}

	frag := b.OrderBy(playerSort, f.SortBy, f.SortOrder).Fragment()

	return pagination.Paginate(ctx, db, frag, req, scanPlayer)
}

// GetPlayer returns one player by ID. ErrNotFound when no row matches.
func (db *DB) GetPlayer(ctx context.Context, playerID string) (*models.Player, error) {
	row, err := db.QueryRowContext(ctx,
		"SELECT "+playerColumns+" FROM players WHERE player_id = ?", playerID)
	if err != nil {
		return nil, err
	}

	var p models.Player
	err = row.Scan(&p.PlayerID, &p.TeamID, &p.FamilyName, &p.GivenName, &p.DateOfBirth,
		&p.Gender, &p.GoalKeeper, &p.Defender, &p.Midfielder, &p.Forward)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %s: %w", playerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load player %s: %w", playerID, err)
	}
	return &p, nil
}

func scanPlayer(rows *sql.Rows) (models.Player, error) {
	var p models.Player
	err := rows.Scan(&p.PlayerID, &p.TeamID, &p.FamilyName, &p.GivenName, &p.DateOfBirth,
		&p.Gender, &p.GoalKeeper, &p.Defender, &p.Midfielder, &p.Forward)
	return p, err
}
