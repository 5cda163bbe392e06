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

// TeamFilter holds the optional predicates for ListTeams. Zero values mean
// "no constraint".
type TeamFilter struct {
	Name      string // prefix match
	Region    string // substring match
	Gender    string // exact match
	SortBy    string
	SortOrder string
}

const teamColumns = "team_id, name, code, region, gender"

var teamSort = query.SortSpec{
	Allowed: map[string]string{
		"name":   "name",
		"code":   "code",
		"region": "region",
	},
	Default: "team_id",
}

// ListTeams returns one page of teams matching the filter.
func (db *DB) ListTeams(ctx context.Context, f TeamFilter, req pagination.Request) (*pagination.Page[models.Team], error) {
	frag := query.NewBuilder("SELECT "+teamColumns+" FROM teams WHERE 1=1").
		WherePrefix("name", f.Name).
		WhereContains("region", f.Region).
		WhereEqual("gender", f.Gender).
		OrderBy(teamSort, f.SortBy, f.SortOrder).
		Fragment()

	return pagination.Paginate(ctx, db, frag, req, scanTeam)
}

// GetTeam returns one team by ID. ErrNotFound when no row matches.
func (db *DB) GetTeam(ctx context.Context, teamID string) (*models.Team, error) {
	row, err := db.QueryRowContext(ctx,
		"SELECT "+teamColumns+" FROM teams WHERE team_id = ?", teamID)
	if err != nil {
		return nil, err
	}

	var t models.Team
	if err := row.Scan(&t.TeamID, &t.Name, &t.Code, &t.Region, &t.Gender); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("team %s: %w", teamID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load team %s: %w", teamID, err)
	}
	return &t, nil
}

func scanTeam(rows *sql.Rows) (models.Team, error) {
	var t models.Team
	err := rows.Scan(&t.TeamID, &t.Name, &t.Code, &t.Region, &t.Gender)
	return t, err
}
