// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

// Package models defines the entity types returned by the data access layer.
// The shapes mirror the backing dataset's tables; the schema itself is an
// external contract this service queries but does not own.
package models

import "time"

// Team is one national team.
type Team struct {
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Region string `json:"region"`
	Gender string `json:"gender"`
}

// Player is one registered player. Exactly one of the four position flags
// is set per player in the dataset.
type Player struct {
	PlayerID    string    `json:"player_id"`
	TeamID      string    `json:"team_id"`
	FamilyName  string    `json:"family_name"`
	GivenName   string    `json:"given_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	GoalKeeper  bool      `json:"goal_keeper"`
	Defender    bool      `json:"defender"`
	Midfielder  bool      `json:"midfielder"`
	Forward     bool      `json:"forward"`
}

// Tournament is one edition of the competition. Winner is empty for an
// edition still in progress.
type Tournament struct {
	TournamentID string    `json:"tournament_id"`
	Name         string    `json:"name"`
	Year         int       `json:"year"`
	HostCountry  string    `json:"host_country"`
	Winner       string    `json:"winner,omitempty"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

// Stadium is one venue.
type Stadium struct {
	StadiumID string `json:"stadium_id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Capacity  int    `json:"capacity"`
}

// Match is one fixture. Result is one of "home win", "away win", "draw".
type Match struct {
	MatchID      string    `json:"match_id"`
	TournamentID string    `json:"tournament_id"`
	StadiumID    string    `json:"stadium_id"`
	HomeTeamID   string    `json:"home_team_id"`
	AwayTeamID   string    `json:"away_team_id"`
	MatchDate    time.Time `json:"match_date"`
	HomeScore    int       `json:"home_score"`
	AwayScore    int       `json:"away_score"`
	Result       string    `json:"result"`
}

// Goal is one goal event within a match.
type Goal struct {
	GoalID   string `json:"goal_id"`
	MatchID  string `json:"match_id"`
	PlayerID string `json:"player_id"`
	TeamID   string `json:"team_id"`
	Minute   int    `json:"minute"`
	OwnGoal  bool   `json:"own_goal"`
	Penalty  bool   `json:"penalty"`
}

// Appearance is one player's participation in one match.
type Appearance struct {
	AppearanceID string `json:"appearance_id"`
	MatchID      string `json:"match_id"`
	PlayerID     string `json:"player_id"`
	TeamID       string `json:"team_id"`
	Starter      bool   `json:"starter"`
	Captain      bool   `json:"captain"`
}
