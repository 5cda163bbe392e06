// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

package api

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dcastano/golazo/internal/database"
	"github.com/dcastano/golazo/internal/validation"
)

// Request structs carry the raw filter parameters through the validator.
// Enum values are trimmed and lowercased before validation so "Male" and
// "male " are accepted; free-text filters pass through untouched because they
// only ever travel as bound arguments.

// TeamListRequest holds the validated filter parameters for GET /teams.
type TeamListRequest struct {
	Name      string `validate:"omitempty,max=100"`
	Region    string `validate:"omitempty,max=100"`
	Gender    string `validate:"omitempty,oneof=male female"`
	SortBy    string
	SortOrder string
}

// PlayerListRequest holds the validated filter parameters for GET /players.
type PlayerListRequest struct {
	FamilyName string `validate:"omitempty,max=100"`
	GivenName  string `validate:"omitempty,max=100"`
	TeamID     string `validate:"omitempty,team_id"`
	Position   string `validate:"omitempty,oneof=goalkeeper defender midfielder forward"`
	Gender     string `validate:"omitempty,oneof=male female"`
	DOBMin     string `validate:"omitempty,calendardate"`
	DOBMax     string `validate:"omitempty,calendardate"`
	SortBy     string
	SortOrder  string
}

// TournamentListRequest holds the validated filter parameters for GET /tournaments.
type TournamentListRequest struct {
	HostCountry  string `validate:"omitempty,max=100"`
	Winner       string `validate:"omitempty,max=100"`
	StartDateMin string `validate:"omitempty,calendardate"`
	StartDateMax string `validate:"omitempty,calendardate"`
	SortBy       string
	SortOrder    string
}

// MatchListRequest holds the validated filter parameters for GET /matches.
type MatchListRequest struct {
	TournamentID string `validate:"omitempty,tournament_id"`
	TeamID       string `validate:"omitempty,team_id"`
	StadiumID    string `validate:"omitempty,stadium_id"`
	Result       string `validate:"omitempty,oneof='home win' 'away win' draw"`
	DateMin      string `validate:"omitempty,calendardate"`
	DateMax      string `validate:"omitempty,calendardate"`
	SortBy       string
	SortOrder    string
}

// StadiumListRequest holds the validated filter parameters for GET /stadiums.
type StadiumListRequest struct {
	Name        string `validate:"omitempty,max=100"`
	City        string `validate:"omitempty,max=100"`
	Country     string `validate:"omitempty,max=100"`
	CapacityMin *int   `validate:"omitempty,min=0"`
	SortBy      string
	SortOrder   string
}

// GoalListRequest holds the validated filter parameters for GET /goals.
type GoalListRequest struct {
	MatchID   string `validate:"omitempty,match_id"`
	PlayerID  string `validate:"omitempty,player_id"`
	TeamID    string `validate:"omitempty,team_id"`
	MinuteMin *int   `validate:"omitempty,min=0,max=150"`
	MinuteMax *int   `validate:"omitempty,min=0,max=150"`
	SortBy    string
	SortOrder string
}

// AppearanceListRequest holds the validated filter parameters for GET /appearances.
type AppearanceListRequest struct {
	MatchID   string `validate:"omitempty,match_id"`
	PlayerID  string `validate:"omitempty,player_id"`
	TeamID    string `validate:"omitempty,team_id"`
	SortBy    string
	SortOrder string
}

// enumParam reads a query parameter normalized for enum validation.
func enumParam(q url.Values, name string) string {
	return strings.ToLower(strings.TrimSpace(q.Get(name)))
}

// textParam reads a free-text query parameter, trimmed.
func textParam(q url.Values, name string) string {
	return strings.TrimSpace(q.Get(name))
}

// intParam reads an optional integer parameter. Returns a validation error
// naming the parameter when the value is not an integer.
func intParam(q url.Values, name string) (*int, *validation.FieldError) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &validation.FieldError{
			Field:   name,
			Value:   raw,
			Message: name + " must be an integer",
		}
	}
	return &n, nil
}

// dateParam converts a validated calendar date string to a *time.Time.
// Callers run the string through the validator first, so parse failures
// cannot happen here.
func dateParam(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, _ := time.Parse("2006-01-02", value)
	return &t
}

// parseTeamFilter builds the database filter for GET /teams.
func parseTeamFilter(q url.Values) (database.TeamFilter, *validation.RequestError) {
	req := TeamListRequest{
		Name:      textParam(q, "name"),
		Region:    textParam(q, "region"),
		Gender:    enumParam(q, "gender"),
		SortBy:    enumParam(q, "sort_by"),
		SortOrder: enumParam(q, "sort_order"),
	}
	if err := validation.ValidateStruct(req); err != nil {
		return database.TeamFilter{}, err
	}

	return database.TeamFilter{
		Name:      req.Name,
		Region:    req.Region,
		Gender:    req.Gender,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}, nil
}

// parsePlayerFilter builds the database filter for GET /players.
func parsePlayerFilter(q url.Values) (database.PlayerFilter, *validation.RequestError) {
	req := PlayerListRequest{
		FamilyName: textParam(q, "family_name"),
		GivenName:  textParam(q, "given_name"),
		TeamID:     textParam(q, "team_id"),
		Position:   enumParam(q, "position"),
		Gender:     enumParam(q, "gender"),
		DOBMin:     textParam(q, "dob_min"),
		DOBMax:     textParam(q, "dob_max"),
		SortBy:     enumParam(q, "sort_by"),
		SortOrder:  enumParam(q, "sort_order"),
	}
	if err := validation.ValidateStruct(req); err != nil {
		return database.PlayerFilter{}, err
	}

	return database.PlayerFilter{
		FamilyName: req.FamilyName,
		GivenName:  req.GivenName,
		TeamID:     req.TeamID,
		Position:   req.Position,
		Gender:     req.Gender,
		DOBMin:     dateParam(req.DOBMin),
		DOBMax:     dateParam(req.DOBMax),
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}, nil
}

// parseTournamentFilter builds the database filter for GET /tournaments.
func parseTournamentFilter(q url.Values) (database.TournamentFilter, *validation.RequestError) {
	req := TournamentListRequest{
		HostCountry:  textParam(q, "host_country"),
		Winner:       textParam(q, "winner"),
		StartDateMin: textParam(q, "start_date_min"),
		StartDateMax: textParam(q, "start_date_max"),
		SortBy:       enumParam(q, "sort_by"),
		SortOrder:    enumParam(q, "sort_order"),
	}
	if err := validation.ValidateStruct(req); err != nil {
		return database.TournamentFilter{}, err
	}

	return database.TournamentFilter{
		HostCountry:  req.HostCountry,
		Winner:       req.Winner,
		StartDateMin: dateParam(req.StartDateMin),
		StartDateMax: dateParam(req.StartDateMax),
		SortBy:       req.SortBy,
		SortOrder:    req.SortOrder,
	}, nil
}

// parseMatchFilter builds the database filter for GET /matches.
func parseMatchFilter(q url.Values) (database.MatchFilter, *validation.RequestError) {
	req := MatchListRequest{
		TournamentID: textParam(q, "tournament_id"),
		TeamID:       textParam(q, "team_id"),
		StadiumID:    textParam(q, "stadium_id"),
		Result:       enumParam(q, "result"),
		DateMin:      textParam(q, "date_min"),
		DateMax:      textParam(q, "date_max"),
		SortBy:       enumParam(q, "sort_by"),
		SortOrder:    enumParam(q, "sort_order"),
	}
	if err := validation.ValidateStruct(req); err != nil {
		return database.MatchFilter{}, err
	}

	return database.MatchFilter{
		TournamentID: req.TournamentID,
		TeamID:       req.TeamID,
		StadiumID:    req.StadiumID,
		Result:       req.Result,
		DateMin:      dateParam(req.DateMin),
		DateMax:      dateParam(req.DateMax),
		SortBy:       req.SortBy,
		SortOrder:    req.SortOrder,
	}, nil
}

// parseStadiumFilter builds the database filter for GET /stadiums.
func parseStadiumFilter(q url.Values) (database.StadiumFilter, *validation.RequestError) {
	capacityMin, ferr := intParam(q, "capacity_min")
	if ferr != nil {
		return database.StadiumFilter{}, &validation.RequestError{Fields: []validation.FieldError{*ferr}}
	}

	req := StadiumListRequest{
		Name:        textParam(q, "name"),
		City:        textParam(q, "city"),
		Country:     textParam(q, "country"),
		CapacityMin: capacityMin,
		SortBy:      enumParam(q, "sort_by"),
		SortOrder:   enumParam(q, "sort_order"),
	}
	if err := validation.ValidateStruct(req); err != nil {
		return database.StadiumFilter{}, err
	}

	return database.StadiumFilter{
		Name:        req.Name,
		City:        req.City,
		Country:     req.Country,
		CapacityMin: req.CapacityMin,
		SortBy:      req.SortBy,
		SortOrder:   req.SortOrder,
	}, nil
}

// parseGoalFilter builds the database filter for GET /goals.
func parseGoalFilter(q url.Values) (database.GoalFilter, *validation.RequestError) {
	minuteMin, ferr := intParam(q, "minute_min")
	if ferr != nil {
		return database.GoalFilter{}, &validation.RequestError{Fields: []validation.FieldError{*ferr}}
	}
	minuteMax, ferr := intParam(q, "minute_max")
	if ferr != nil {
		return database.GoalFilter{}, &validation.RequestError{Fields: []validation.FieldError{*ferr}}
	}

	req := GoalListRequest{
		MatchID:   textParam(q, "match_id"),
		PlayerID:  textParam(q, "player_id"),
		TeamID:    textParam(q, "team_id"),
		MinuteMin: minuteMin,
		MinuteMax: minuteMax,
		SortBy:    enumParam(q, "sort_by"),
		SortOrder: enumParam(q, "sort_order"),
	}
	if err := validation.ValidateStruct(req); err != nil {
		return database.GoalFilter{}, err
	}

	return database.GoalFilter{
		MatchID:   req.MatchID,
		PlayerID:  req.PlayerID,
		TeamID:    req.TeamID,
		MinuteMin: req.MinuteMin,
		MinuteMax: req.MinuteMax,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}, nil
}

// parseAppearanceFilter builds the database filter for GET /appearances.
func parseAppearanceFilter(q url.Values) (database.AppearanceFilter, *validation.RequestError) {
	req := AppearanceListRequest{
		MatchID:   textParam(q, "match_id"),
		PlayerID:  textParam(q, "player_id"),
		TeamID:    textParam(q, "team_id"),
		SortBy:    enumParam(q, "sort_by"),
		SortOrder: enumParam(q, "sort_order"),
	}
	if err := validation.ValidateStruct(req); err != nil {
		return database.AppearanceFilter{}, err
	}

	return database.AppearanceFilter{
		MatchID:   req.MatchID,
		PlayerID:  req.PlayerID,
		TeamID:    req.TeamID,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}, nil
}
