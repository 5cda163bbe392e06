// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dcastano/golazo/internal/config"
	"github.com/dcastano/golazo/internal/database"
	"github.com/dcastano/golazo/internal/database/query"
	"github.com/dcastano/golazo/internal/logging"
	"github.com/dcastano/golazo/internal/pagination"
	"github.com/dcastano/golazo/internal/validation"
)

// Handler holds the dependencies for all API endpoints.
type Handler struct {
	db      *database.DB
	pageCfg pagination.Config
}

// NewHandler creates an API handler backed by the given database.
func NewHandler(db *database.DB, cfg *config.Config) *Handler {
	return &Handler{
		db: db,
		pageCfg: pagination.Config{
			DefaultPageSize: cfg.API.DefaultPageSize,
			MaxPageSize:     cfg.API.MaxPageSize,
		},
	}
}

// pageMeta converts a pagination envelope into response metadata.
func pageMeta[T any](page *pagination.Page[T]) *PaginationMeta {
	return &PaginationMeta{
		CurrentPage:  page.CurrentPage,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
		TotalRecords: page.TotalRecords,
	}
}

// respondList writes the outcome of a list accessor call. A filter that
// matches nothing is a 404; a valid page beyond the last one is a 200 with an
// empty data window.
func respondList[T any](rw *ResponseWriter, page *pagination.Page[T], err error) {
	if err != nil {
		var paramErr *pagination.ParamError
		if errors.As(err, &paramErr) {
			writePaginationError(rw, paramErr)
			return
		}
		if errors.Is(err, query.ErrBindMismatch) {
			logging.Ctx(rw.r.Context()).Error().Err(err).Msg("Query construction fault")
			rw.InternalError("internal query construction error")
			return
		}
		rw.DatabaseError(err)
		return
	}
	if page.TotalRecords == 0 {
		rw.NotFound("no records match the given filters")
		return
	}
	rw.SuccessWithPagination(page.Data, pageMeta(page))
}

// parsePage extracts and validates pagination parameters, writing the 400
// itself when they are rejected. The bool reports whether to continue.
func (h *Handler) parsePage(rw *ResponseWriter, r *http.Request) (pagination.Request, bool) {
	req, err := pagination.ParseRequest(r.URL.Query(), h.pageCfg)
	if err != nil {
		writePaginationError(rw, err)
		return pagination.Request{}, false
	}
	return req, true
}

// writeValidationError surfaces per-field validation failures as a 400.
func writeValidationError(rw *ResponseWriter, verr *validation.RequestError) {
	rw.ValidationError("request validation failed", verr.Fields)
}

// writePaginationError surfaces a rejected pagination parameter in the same
// envelope as filter validation failures.
func writePaginationError(rw *ResponseWriter, err error) {
	var paramErr *pagination.ParamError
	if errors.As(err, &paramErr) {
		rw.ValidationError("request validation failed", []validation.FieldError{{
			Field:   paramErr.Param,
			Value:   paramErr.Value,
			Message: paramErr.Error(),
		}})
		return
	}
	rw.ValidationError("request validation failed", nil)
}

// requireID validates the {id} path parameter against the resource's ID
// format, writing the 400 itself on mismatch.
func requireID(rw *ResponseWriter, r *http.Request, tag string) (string, bool) {
	id := chi.URLParam(r, "id")
	if err := validation.ValidateID(tag, "id", id); err != nil {
		var ferr *validation.FieldError
		if errors.As(err, &ferr) {
			rw.ValidationError("request validation failed", []validation.FieldError{*ferr})
		} else {
			rw.ValidationError("request validation failed", nil)
		}
		return "", false
	}
	return id, true
}

// respondGet writes the outcome of a single-record lookup.
func respondGet[T any](rw *ResponseWriter, record *T, err error) {
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			rw.NotFound(err.Error())
			return
		}
		rw.DatabaseError(err)
		return
	}
	rw.Success(record)
}

// ListTeams handles GET /api/v1/teams.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	page, ok := h.parsePage(rw, r)
	if !ok {
		return
	}
	filter, verr := parseTeamFilter(r.URL.Query())
	if verr != nil {
		writeValidationError(rw, verr)
		return
	}

	result, err := h.db.ListTeams(r.Context(), filter, page)
	respondList(rw, result, err)
}

// GetTeam handles GET /api/v1/teams/{id}.
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, ok := requireID(rw, r, "team_id")
	if !ok {
		return
	}

	team, err := h.db.GetTeam(r.Context(), id)
	respondGet(rw, team, err)
}

// ListPlayers handles GET /api/v1/players.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	page, ok := h.parsePage(rw, r)
	if !ok {
		return
	}
	filter, verr := parsePlayerFilter(r.URL.Query())
	if verr != nil {
		writeValidationError(rw, verr)
		return
	}

	result, err := h.db.ListPlayers(r.Context(), filter, page)
	respondList(rw, result, err)
}

// GetPlayer handles GET /api/v1/players/{id}.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, ok := requireID(rw, r, "player_id")
	if !ok {
		return
	}

	player, err := h.db.GetPlayer(r.Context(), id)
	respondGet(rw, player, err)
}

// ListTournaments handles GET /api/v1/tournaments.
func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	page, ok := h.parsePage(rw, r)
	if !ok {
		return
	}
	filter, verr := parseTournamentFilter(r.URL.Query())
	if verr != nil {
		writeValidationError(rw, verr)
		return
	}

	result, err := h.db.ListTournaments(r.Context(), filter, page)
	respondList(rw, result, err)
}

// GetTournament handles GET /api/v1/tournaments/{id}.
func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, ok := requireID(rw, r, "tournament_id")
	if !ok {
		return
	}

	tournament, err := h.db.GetTournament(r.Context(), id)
	respondGet(rw, tournament, err)
}

// ListMatches handles GET /api/v1/matches.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	page, ok := h.parsePage(rw, r)
	if !ok {
		return
	}
	filter, verr := parseMatchFilter(r.URL.Query())
	if verr != nil {
		writeValidationError(rw, verr)
		return
	}

	result, err := h.db.ListMatches(r.Context(), filter, page)
	respondList(rw, result, err)
}

// GetMatch handles GET /api/v1/matches/{id}.
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, ok := requireID(rw, r, "match_id")
	if !ok {
		return
	}

	match, err := h.db.GetMatch(r.Context(), id)
	respondGet(rw, match, err)
}

// ListStadiums handles GET /api/v1/stadiums.
func (h *Handler) ListStadiums(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	page, ok := h.parsePage(rw, r)
	if !ok {
		return
	}
	filter, verr := parseStadiumFilter(r.URL.Query())
	if verr != nil {
		writeValidationError(rw, verr)
		return
	}

	result, err := h.db.ListStadiums(r.Context(), filter, page)
	respondList(rw, result, err)
}

// GetStadium handles GET /api/v1/stadiums/{id}.
func (h *Handler) GetStadium(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, ok := requireID(rw, r, "stadium_id")
	if !ok {
		return
	}

	stadium, err := h.db.GetStadium(r.Context(), id)
	respondGet(rw, stadium, err)
}

// ListGoals handles GET /api/v1/goals.
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	page, ok := h.parsePage(rw, r)
	if !ok {
		return
	}
	filter, verr := parseGoalFilter(r.URL.Query())
	if verr != nil {
		writeValidationError(rw, verr)
		return
	}

	result, err := h.db.ListGoals(r.Context(), filter, page)
	respondList(rw, result, err)
}

// ListAppearances handles GET /api/v1/appearances.
func (h *Handler) ListAppearances(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	page, ok := h.parsePage(rw, r)
	if !ok {
		return
	}
	filter, verr := parseAppearanceFilter(r.URL.Query())
	if verr != nil {
		writeValidationError(rw, verr)
		return
	}

	result, err := h.db.ListAppearances(r.Context(), filter, page)
	respondList(rw, result, err)
}
