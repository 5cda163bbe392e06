// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dcastano/golazo/internal/database"
	"github.com/dcastano/golazo/internal/pagination"
	"github.com/dcastano/golazo/internal/testinfra"
)

var allRows = pagination.Request{Page: 1, PageSize: 100}

func date(t *testing.T, value string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return &d
}

func TestListTeams(t *testing.T) {
	db := testinfra.NewFixtureDB(t)
	ctx := context.Background()

	t.Run("no filters returns everything", func(t *testing.T) {
		page, err := db.ListTeams(ctx, database.TeamFilter{}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 4 {
			t.Errorf("TotalRecords = %d, want 4", page.TotalRecords)
		}
	})

	t.Run("name prefix", func(t *testing.T) {
		page, err := db.ListTeams(ctx, database.TeamFilter{Name: "Arg"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 1 || page.Data[0].Name != "Argentina" {
			t.Errorf("unexpected result: %+v", page.Data)
		}
	})

	t.Run("region substring", func(t *testing.T) {
		page, err := db.ListTeams(ctx, database.TeamFilter{Region: "America"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 1 {
			t.Errorf("TotalRecords = %d, want 1", page.TotalRecords)
		}
	})

	t.Run("filters narrow monotonically", func(t *testing.T) {
		loose, err := db.ListTeams(ctx, database.TeamFilter{Region: "Europe"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tight, err := db.ListTeams(ctx, database.TeamFilter{Region: "Europe", Gender: "female"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tight.TotalRecords > loose.TotalRecords {
			t.Errorf("adding a filter grew the result: %d > %d", tight.TotalRecords, loose.TotalRecords)
		}
		if loose.TotalRecords != 3 || tight.TotalRecords != 1 {
			t.Errorf("unexpected totals: loose %d tight %d", loose.TotalRecords, tight.TotalRecords)
		}
	})

	t.Run("sort with unknown field falls back", func(t *testing.T) {
		page, err := db.ListTeams(ctx, database.TeamFilter{SortBy: "no_such", SortOrder: "weird"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Data[0].TeamID != "T-01" {
			t.Errorf("fallback sort should be team_id ASC, first = %s", page.Data[0].TeamID)
		}
	})

	t.Run("sort by name desc", func(t *testing.T) {
		page, err := db.ListTeams(ctx, database.TeamFilter{SortBy: "name", SortOrder: "desc"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Data[0].Name != "Spain" {
			t.Errorf("first by name desc = %s, want Spain", page.Data[0].Name)
		}
	})
}

func TestGetTeam(t *testing.T) {
	db := testinfra.NewFixtureDB(t)
	ctx := context.Background()

	team, err := db.GetTeam(ctx, "T-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.Name != "Argentina" || team.Code != "ARG" {
		t.Errorf("unexpected team: %+v", team)
	}

	_, err = db.GetTeam(ctx, "T-99")
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListPlayers(t *testing.T) {
	db := testinfra.NewFixtureDB(t)
	ctx := context.Background()

	t.Run("position selects one boolean column", func(t *testing.T) {
		page, err := db.ListPlayers(ctx, database.PlayerFilter{Position: "goalkeeper"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 1 || !page.Data[0].GoalKeeper {
			t.Errorf("unexpected result: %+v", page.Data)
		}
	})

	t.Run("unknown position is a fault", func(t *testing.T) {
		_, err := db.ListPlayers(ctx, database.PlayerFilter{Position: "striker"}, allRows)
		if err == nil {
			t.Fatal("expected error for unmapped position")
		}
	})

	t.Run("team and position compose", func(t *testing.T) {
		page, err := db.ListPlayers(ctx, database.PlayerFilter{TeamID: "T-02", Position: "forward"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 1 || page.Data[0].FamilyName != "Mbappe" {
			t.Errorf("unexpected result: %+v", page.Data)
		}
	})

	t.Run("date of birth range", func(t *testing.T) {
		page, err := db.ListPlayers(ctx, database.PlayerFilter{
			DOBMin: date(t, "1990-01-01"),
			DOBMax: date(t, "1995-12-31"),
		}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Martinez 1992, Griezmann 1991, Bronze 1991
		if page.TotalRecords != 3 {
			t.Errorf("TotalRecords = %d, want 3", page.TotalRecords)
		}
	})

	t.Run("family name prefix", func(t *testing.T) {
		page, err := db.ListPlayers(ctx, database.PlayerFilter{FamilyName: "M"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 3 {
			t.Errorf("TotalRecords = %d, want 3 (Messi, Martinez, Mbappe)", page.TotalRecords)
		}
	})
}

func TestListTournaments(t *testing.T) {
	db := testinfra.NewFixtureDB(t)
	ctx := context.Background()

	t.Run("winner prefix", func(t *testing.T) {
		page, err := db.ListTournaments(ctx, database.TournamentFilter{Winner: "Arg"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 1 || page.Data[0].TournamentID != "WC-2022" {
			t.Errorf("unexpected result: %+v", page.Data)
		}
	})

	t.Run("start date window", func(t *testing.T) {
		page, err := db.ListTournaments(ctx, database.TournamentFilter{
			StartDateMin: date(t, "2020-01-01"),
		}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 1 {
			t.Errorf("TotalRecords = %d, want 1", page.TotalRecords)
		}
	})

	t.Run("default sort is year", func(t *testing.T) {
		page, err := db.ListTournaments(ctx, database.TournamentFilter{}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Data[0].Year != 2018 {
			t.Errorf("first by year ASC = %d, want 2018", page.Data[0].Year)
		}
	})
}

func TestGetTournament(t *testing.T) {
	db := testinfra.NewFixtureDB(t)
	ctx := context.Background()

	tour, err := db.GetTournament(ctx, "WC-2022")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tour.Winner != "Argentina" || tour.HostCountry != "Qatar" {
		t.Errorf("unexpected tournament: %+v", tour)
	}

	_, err = db.GetTournament(ctx, "WC-1800")
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListMatches(t *testing.T) {
	db := testinfra.NewFixtureDB(t)
	ctx := context.Background()

	t.Run("team filter matches both sides", func(t *testing.T) {
		// T-01 is home in two matches and away in one.
		page, err := db.ListMatches(ctx, database.MatchFilter{TeamID: "T-01"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 3 {
			t.Errorf("TotalRecords = %d, want 3", page.TotalRecords)
		}
	})

	t.Run("result enum", func(t *testing.T) {
		page, err := db.ListMatches(ctx, database.MatchFilter{Result: "draw"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 1 || page.Data[0].MatchID != "M-2022-01" {
			t.Errorf("unexpected result: %+v", page.Data)
		}
	})

	t.Run("tournament and date compose", func(t *testing.T) {
		page, err := db.ListMatches(ctx, database.MatchFilter{
			TournamentID: "WC-2022",
			DateMin:      date(t, "2022-12-15"),
		}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 1 || page.Data[0].MatchID != "M-2022-01" {
			t.Errorf("unexpected result: %+v", page.Data)
		}
	})

	t.Run("default sort is match_date", func(t *testing.T) {
		page, err := db.ListMatches(ctx, database.MatchFilter{}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Data[0].MatchID != "M-2018-01" {
			t.Errorf("first by match_date ASC = %s, want M-2018-01", page.Data[0].MatchID)
		}
	})
}

func TestGetMatch(t *testing.T) {
	db := testinfra.NewFixtureDB(t)
	ctx := context.Background()

	m, err := db.GetMatch(ctx, "M-2022-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.HomeScore != 3 || m.AwayScore != 3 || m.Result != "draw" {
		t.Errorf("unexpected match: %+v", m)
	}

	_, err = db.GetMatch(ctx, "M-1900-01")
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListStadiums(t *testing.T) {
	db := testinfra.NewFixtureDB(t)
	ctx := context.Background()

	t.Run("capacity strict lower bound", func(t *testing.T) {
		min := 78011
		page, err := db.ListStadiums(ctx, database.StadiumFilter{CapacityMin: &min}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Strict: Luzhniki (78011) is excluded, Lusail (88966) matches.
		if page.TotalRecords != 1 || page.Data[0].StadiumID != "S-001" {
			t.Errorf("unexpected result: %+v", page.Data)
		}
	})

	t.Run("country substring", func(t *testing.T) {
		page, err := db.ListStadiums(ctx, database.StadiumFilter{Country: "ussia"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 1 {
			t.Errorf("TotalRecords = %d, want 1", page.TotalRecords)
		}
	})
}

func TestGetStadium(t *testing.T) {
	db := testinfra.NewFixtureDB(t)
	ctx := context.Background()

	s, err := db.GetStadium(ctx, "S-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Capacity != 88966 {
		t.Errorf("unexpected stadium: %+v", s)
	}

	_, err = db.GetStadium(ctx, "S-999")
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListGoals(t *testing.T) {
	db := testinfra.NewFixtureDB(t)
	ctx := context.Background()

	t.Run("player filter", func(t *testing.T) {
		page, err := db.ListGoals(ctx, database.GoalFilter{PlayerID: "P-10001"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 3 {
			t.Errorf("TotalRecords = %d, want 3", page.TotalRecords)
		}
	})

	t.Run("minute window", func(t *testing.T) {
		lo, hi := 60, 90
		page, err := db.ListGoals(ctx, database.GoalFilter{MinuteMin: &lo, MinuteMax: &hi}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Minutes 65 and 80 fall inside; 23, 34, 108 do not.
		if page.TotalRecords != 2 {
			t.Errorf("TotalRecords = %d, want 2", page.TotalRecords)
		}
	})

	t.Run("sort by minute desc", func(t *testing.T) {
		page, err := db.ListGoals(ctx, database.GoalFilter{MatchID: "M-2022-01", SortBy: "minute", SortOrder: "desc"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Data[0].Minute != 108 {
			t.Errorf("first by minute desc = %d, want 108", page.Data[0].Minute)
		}
	})
}

func TestListAppearances(t *testing.T) {
	db := testinfra.NewFixtureDB(t)
	ctx := context.Background()

	t.Run("match filter", func(t *testing.T) {
		page, err := db.ListAppearances(ctx, database.AppearanceFilter{MatchID: "M-2022-01"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 4 {
			t.Errorf("TotalRecords = %d, want 4", page.TotalRecords)
		}
	})

	t.Run("player filter", func(t *testing.T) {
		page, err := db.ListAppearances(ctx, database.AppearanceFilter{PlayerID: "P-10001"}, allRows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 2 {
			t.Errorf("TotalRecords = %d, want 2", page.TotalRecords)
		}
		for _, a := range page.Data {
			if !a.Captain {
				t.Errorf("fixture captaincy mismatch: %+v", a)
			}
		}
	})
}
