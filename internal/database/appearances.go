// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

package database

import (
	"context"
	"database/sql"

	"github.com/dcastano/golazo/internal/database/query"
	"github.com/dcastano/golazo/internal/models"
	"github.com/dcastano/golazo/internal/pagination"
)

// AppearanceFilter holds the optional predicates for ListAppearances.
type AppearanceFilter struct {
	MatchID   string // exact match
	PlayerID  string // exact match
	TeamID    string // exact match
	SortBy    string
	SortOrder string
}

const appearanceColumns = "appearance_id, match_id, player_id, team_id, starter, captain"

var appearanceSort = query.SortSpec{
	Allowed: map[string]string{
		"match_id":  "match_id",
		"player_id": "player_id",
	},
	Default: "appearance_id",
}

// ListAppearances returns one page of match appearances matching the filter.
func (db *DB) ListAppearances(ctx context.Context, f AppearanceFilter, req pagination.Request) (*pagination.Page[models.Appearance], error) {
	frag := query.NewBuilder("SELECT "+appearanceColumns+" FROM appearances WHERE 1=1").
		WhereEqual("match_id", f.MatchID).
		WhereEqual("player_id", f.PlayerID).
		WhereEqual("team_id", f.TeamID).
		OrderBy(appearanceSort, f.SortBy, f.SortOrder).
		Fragment()

	return pagination.Paginate(ctx, db, frag, req, scanAppearance)
}

func scanAppearance(rows *sql.Rows) (models.Appearance, error) {
	var a models.Appearance
	err := rows.Scan(&a.AppearanceID, &a.MatchID, &a.PlayerID, &a.TeamID, &a.Starter, &a.Captain)
	return a, err
}
