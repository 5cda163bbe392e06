// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

// Package testinfra provides shared test infrastructure: an in-memory DuckDB
// with the dataset schema and a small, internally consistent fixture set.
//
// The production server never creates tables (the dataset is an external
// artifact opened read-only), so the schema DDL lives here, next to the only
// code that needs it.
package testinfra

import (
	"context"
	"testing"
	"time"

	"github.com/dcastano/golazo/internal/config"
	"github.com/dcastano/golazo/internal/database"
)

// schema mirrors the external dataset's table definitions.
var schema = []string{
	`CREATE TABLE teams (
		team_id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		code VARCHAR NOT NULL,
		region VARCHAR NOT NULL,
		gender VARCHAR NOT NULL
	)`,
	`CREATE TABLE players (
		player_id VARCHAR PRIMARY KEY,
		team_id VARCHAR NOT NULL,
		family_name VARCHAR NOT NULL,
		given_name VARCHAR NOT NULL,
		date_of_birth DATE NOT NULL,
		gender VARCHAR NOT NULL,
		goal_keeper BOOLEAN NOT NULL,
		defender BOOLEAN NOT NULL,
		midfielder BOOLEAN NOT NULL,
		forward BOOLEAN NOT NULL
	)`,
	`CREATE TABLE tournaments (
		tournament_id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		year INTEGER NOT NULL,
		host_country VARCHAR NOT NULL,
		winner VARCHAR,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL
	)`,
	`CREATE TABLE stadiums (
		stadium_id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		city VARCHAR NOT NULL,
		country VARCHAR NOT NULL,
		capacity INTEGER NOT NULL
	)`,
	`CREATE TABLE matches (
		match_id VARCHAR PRIMARY KEY,
		tournament_id VARCHAR NOT NULL,
		stadium_id VARCHAR NOT NULL,
		home_team_id VARCHAR NOT NULL,
		away_team_id VARCHAR NOT NULL,
		match_date DATE NOT NULL,
		home_score INTEGER NOT NULL,
		away_score INTEGER NOT NULL,
		result VARCHAR NOT NULL
	)`,
	`CREATE TABLE goals (
		goal_id VARCHAR PRIMARY KEY,
		match_id VARCHAR NOT NULL,
		player_id VARCHAR NOT NULL,
		team_id VARCHAR NOT NULL,
		minute INTEGER NOT NULL,
		own_goal BOOLEAN NOT NULL,
		penalty BOOLEAN NOT NULL
	)`,
	`CREATE TABLE appearances (
		appearance_id VARCHAR PRIMARY KEY,
		match_id VARCHAR NOT NULL,
		player_id VARCHAR NOT NULL,
		team_id VARCHAR NOT NULL,
		starter BOOLEAN NOT NULL,
		captain BOOLEAN NOT NULL
	)`,
}

// NewTestDB creates an empty in-memory database with the dataset schema.
// The database is closed automatically when the test finishes.
func NewTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(&config.DatabaseConfig{Path: "", Threads: 2, MaxMemory: "256MB"})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	ctx := context.Background()
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	}

	return db
}

// NewFixtureDB creates an in-memory database with the schema and the standard
// fixture rows loaded.
func NewFixtureDB(t *testing.T) *database.DB {
	t.Helper()

	db := NewTestDB(t)
	LoadFixtures(t, db)
	return db
}

// LoadFixtures inserts the standard fixture set: two tournament editions,
// four teams, six players, two stadiums, three matches with goals and
// appearances. The rows are internally consistent so join-style assertions
// hold.
func LoadFixtures(t *testing.T, db *database.DB) {
	t.Helper()

	ctx := context.Background()
	exec := func(sqlText string, args ...interface{}) {
		t.Helper()
		if _, err := db.ExecContext(ctx, sqlText, args...); err != nil {
			t.Fatalf("failed to insert fixture: %v", err)
		}
	}

	date := func(value string) time.Time {
		t.Helper()
		d, err := time.Parse("2006-01-02", value)
		if err != nil {
			t.Fatalf("bad fixture date %q: %v", value, err)
		}
		return d
	}

	const insertTeam = "INSERT INTO teams VALUES (?, ?, ?, ?, ?)"
	exec(insertTeam, "T-01", "Argentina", "ARG", "South America", "male")
	exec(insertTeam, "T-02", "France", "FRA", "Europe", "male")
	exec(insertTeam, "T-03", "Spain", "ESP", "Europe", "male")
	exec(insertTeam, "T-04", "England", "ENG", "Europe", "female")

	const insertPlayer = "INSERT INTO players VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	exec(insertPlayer, "P-10001", "T-01", "Messi", "Lionel", date("1987-06-24"), "male", false, false, false, true)
	exec(insertPlayer, "P-10002", "T-01", "Martinez", "Emiliano", date("1992-09-02"), "male", true, false, false, false)
	exec(insertPlayer, "P-10003", "T-02", "Mbappe", "Kylian", date("1998-12-20"), "male", false, false, false, true)
	exec(insertPlayer, "P-10004", "T-02", "Griezmann", "Antoine", date("1991-03-21"), "male", false, false, true, false)
	exec(insertPlayer, "P-10005", "T-03", "Rodri", "Rodrigo", date("1996-06-22"), "male", false, false, true, false)
	exec(insertPlayer, "P-100061", "T-04", "Bronze", "Lucy", date("1991-10-28"), "female", false, true, false, false)

	const insertTournament = "INSERT INTO tournaments VALUES (?, ?, ?, ?, ?, ?, ?)"
	exec(insertTournament, "WC-2018", "2018 FIFA World Cup", 2018, "Russia", "France",
		date("2018-06-14"), date("2018-07-15"))
	exec(insertTournament, "WC-2022", "2022 FIFA World Cup", 2022, "Qatar", "Argentina",
		date("2022-11-20"), date("2022-12-18"))

	const insertStadium = "INSERT INTO stadiums VALUES (?, ?, ?, ?, ?)"
	exec(insertStadium, "S-001", "Lusail Stadium", "Lusail", "Qatar", 88966)
	exec(insertStadium, "S-002", "Luzhniki Stadium", "Moscow", "Russia", 78011)

	const insertMatch = "INSERT INTO matches VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	exec(insertMatch, "M-2022-01", "WC-2022", "S-001", "T-01", "T-02",
		date("2022-12-18"), 3, 3, "draw")
	exec(insertMatch, "M-2022-02", "WC-2022", "S-001", "T-01", "T-03",
		date("2022-12-13"), 3, 0, "home win")
	exec(insertMatch, "M-2018-01", "WC-2018", "S-002", "T-02", "T-01",
		date("2018-06-30"), 4, 3, "home win")

	const insertGoal = "INSERT INTO goals VALUES (?, ?, ?, ?, ?, ?, ?)"
	exec(insertGoal, "G-0001", "M-2022-01", "P-10001", "T-01", 23, false, true)
	exec(insertGoal, "G-0002", "M-2022-01", "P-10003", "T-02", 80, false, true)
	exec(insertGoal, "G-0003", "M-2022-01", "P-10001", "T-01", 108, false, false)
	exec(insertGoal, "G-0004", "M-2022-02", "P-10001", "T-01", 34, false, true)
	exec(insertGoal, "G-0005", "M-2018-01", "P-10003", "T-02", 65, false, false)

	const insertAppearance = "INSERT INTO appearances VALUES (?, ?, ?, ?, ?, ?)"
	exec(insertAppearance, "A-0001", "M-2022-01", "P-10001", "T-01", true, true)
	exec(insertAppearance, "A-0002", "M-2022-01", "P-10002", "T-01", true, false)
	exec(insertAppearance, "A-0003", "M-2022-01", "P-10003", "T-02", true, false)
	exec(insertAppearance, "A-0004", "M-2022-01", "P-10004", "T-02", true, false)
	exec(insertAppearance, "A-0005", "M-2022-02", "P-10001", "T-01", true, true)
	exec(insertAppearance, "A-0006", "M-2018-01", "P-10003", "T-02", true, false)
}
