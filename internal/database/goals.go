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

// GoalFilter holds the optional predicates for ListGoals.
type GoalFilter struct {
	MatchID   string // exact match
	PlayerID  string // exact match
	TeamID    string // exact match
	MinuteMin *int
	MinuteMax *int
	SortBy    string
	SortOrder string
}

const goalColumns = "goal_id, match_id, player_id, team_id, minute, own_goal, penalty"

var goalSort = query.SortSpec{
	Allowed: map[string]string{
		"match_id": "match_id",
		"minute":   "minute",
	},
	Default: "goal_id",
}

// ListGoals returns one page of goal events matching the filter.
func (db *DB) ListGoals(ctx context.Context, f GoalFilter, req pagination.Request) (*pagination.Page[models.Goal], error) {
	frag := query.NewBuilder("SELECT "+goalColumns+" FROM goals WHERE 1=1").
		WhereEqual("match_id", f.MatchID).
		WhereEqual("player_id", f.PlayerID).
		WhereEqual("team_id", f.TeamID).
		WhereGTE("minute", f.MinuteMin).
		WhereLTE("minute", f.MinuteMax).
		OrderBy(goalSort, f.SortBy, f.SortOrder).
		Fragment()

	return pagination.Paginate(ctx, db, frag, req, scanGoal)
}

func scanGoal(rows *sql.Rows) (models.Goal, error) {
	var g models.Goal
	err := rows.Scan(&g.GoalID, &g.MatchID, &g.PlayerID, &g.TeamID, &g.Minute, &g.OwnGoal, &g.Penalty)
	return g, err
}
