// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

package pagination_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"net/url"
	"testing"

	"github.com/dcastano/golazo/internal/database"
	"github.com/dcastano/golazo/internal/database/query"
	"github.com/dcastano/golazo/internal/pagination"
	"github.com/dcastano/golazo/internal/testinfra"
)

func TestParseRequestDefaults(t *testing.T) {
	cfg := pagination.NewConfig()

	req, err := pagination.ParseRequest(url.Values{}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Page != 1 || req.PageSize != 5 {
		t.Errorf("defaults = page %d size %d, want 1/5", req.Page, req.PageSize)
	}
}

func TestParseRequestExplicit(t *testing.T) {
	cfg := pagination.NewConfig()
	q := url.Values{"page": {"3"}, "page_size": {"100"}}

	req, err := pagination.ParseRequest(q, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Page != 3 || req.PageSize != 100 {
		t.Errorf("got page %d size %d, want 3/100", req.Page, req.PageSize)
	}
}

func TestParseRequestRejections(t *testing.T) {
	cfg := pagination.NewConfig()

	tests := []struct {
		name  string
		query url.Values
		param string
	}{
		{"page zero", url.Values{"page": {"0"}}, "page"},
		{"page negative", url.Values{"page": {"-1"}}, "page"},
		{"page not integer", url.Values{"page": {"abc"}}, "page"},
		{"page float", url.Values{"page": {"1.5"}}, "page"},
		{"size zero", url.Values{"page_size": {"0"}}, "page_size"},
		{"size over max", url.Values{"page_size": {"101"}}, "page_size"},
		{"size not integer", url.Values{"page_size": {"many"}}, "page_size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pagination.ParseRequest(tt.query, cfg)
			if err == nil {
				t.Fatal("expected rejection, got nil error")
			}
			var paramErr *pagination.ParamError
			if !errors.As(err, &paramErr) {
				t.Fatalf("expected ParamError, got %T", err)
			}
			if paramErr.Param != tt.param {
				t.Errorf("Param = %q, want %q", paramErr.Param, tt.param)
			}
		})
	}
}

func TestParseRequestNeverClamps(t *testing.T) {
	cfg := pagination.NewConfig()

	// A huge page number is valid; an oversized page_size is not.
	if _, err := pagination.ParseRequest(url.Values{"page": {"100000"}}, cfg); err != nil {
		t.Errorf("large page must be accepted: %v", err)
	}
	if _, err := pagination.ParseRequest(url.Values{"page_size": {"1000"}}, cfg); err == nil {
		t.Error("oversized page_size must be rejected, not clamped")
	}
}

// seedTeams inserts n teams with predictable IDs T-01..T-nn.
func seedTeams(t *testing.T, db *database.DB, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("T-%02d", i)
		_, err := db.ExecContext(ctx,
			"INSERT INTO teams VALUES (?, ?, ?, ?, ?)",
			id, fmt.Sprintf("Team %02d", i), fmt.Sprintf("C%02d", i), "Europe", "male")
		if err != nil {
			t.Fatalf("failed to seed team %s: %v", id, err)
		}
	}
}

func teamsFragment() query.Fragment {
	return query.NewBuilder("SELECT team_id FROM teams WHERE 1=1").
		OrderBy(query.SortSpec{Allowed: map[string]string{}, Default: "team_id"}, "", "").
		Fragment()
}

func scanID(rows *sql.Rows) (string, error) {
	var id string
	err := rows.Scan(&id)
	return id, err
}

func TestPaginateWindows(t *testing.T) {
	db := testinfra.NewTestDB(t)
	seedTeams(t, db, 12)
	ctx := context.Background()

	t.Run("final partial page", func(t *testing.T) {
		page, err := pagination.Paginate(ctx, db, teamsFragment(),
			pagination.Request{Page: 3, PageSize: 5}, scanID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalRecords != 12 {
			t.Errorf("TotalRecords = %d, want 12", page.TotalRecords)
		}
		if page.TotalPages != 3 {
			t.Errorf("TotalPages = %d, want 3", page.TotalPages)
		}
		if len(page.Data) != 2 {
			t.Errorf("len(Data) = %d, want 2", len(page.Data))
		}
		if page.CurrentPage != 3 || page.PageSize != 5 {
			t.Errorf("echo = page %d size %d, want 3/5", page.CurrentPage, page.PageSize)
		}
	})

	t.Run("first page ordered", func(t *testing.T) {
		page, err := pagination.Paginate(ctx, db, teamsFragment(),
			pagination.Request{Page: 1, PageSize: 5}, scanID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Data) != 5 {
			t.Fatalf("len(Data) = %d, want 5", len(page.Data))
		}
		if page.Data[0] != "T-01" || page.Data[4] != "T-05" {
			t.Errorf("window = %v, want T-01..T-05", page.Data)
		}
	})

	t.Run("page beyond last is empty not error", func(t *testing.T) {
		page, err := pagination.Paginate(ctx, db, teamsFragment(),
			pagination.Request{Page: 100, PageSize: 5}, scanID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Data) != 0 {
			t.Errorf("len(Data) = %d, want 0", len(page.Data))
		}
		if page.TotalRecords != 12 || page.TotalPages != 3 {
			t.Errorf("metadata must still reflect totals: %d records, %d pages",
				page.TotalRecords, page.TotalPages)
		}
	})

	t.Run("huge page number stays an empty window", func(t *testing.T) {
		// (page-1)*size on a naive int would wrap negative here; the engine
		// must still answer with an empty page and true totals.
		page, err := pagination.Paginate(ctx, db, teamsFragment(),
			pagination.Request{Page: math.MaxInt/100 + 2, PageSize: 100}, scanID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Data) != 0 {
			t.Errorf("len(Data) = %d, want 0", len(page.Data))
		}
		if page.TotalRecords != 12 || page.TotalPages != 1 {
			t.Errorf("metadata must still reflect totals: %d records, %d pages",
				page.TotalRecords, page.TotalPages)
		}
	})

	t.Run("exact multiple", func(t *testing.T) {
		page, err := pagination.Paginate(ctx, db, teamsFragment(),
			pagination.Request{Page: 1, PageSize: 6}, scanID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalPages != 2 {
			t.Errorf("TotalPages = %d, want 2 for 12/6", page.TotalPages)
		}
	})
}

func TestPaginateEmptyResult(t *testing.T) {
	db := testinfra.NewTestDB(t)
	ctx := context.Background()

	page, err := pagination.Paginate(ctx, db, teamsFragment(),
		pagination.Request{Page: 1, PageSize: 5}, scanID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalRecords != 0 || page.TotalPages != 0 {
		t.Errorf("empty result: records %d pages %d, want 0/0", page.TotalRecords, page.TotalPages)
	}
	if len(page.Data) != 0 {
		t.Errorf("len(Data) = %d, want 0", len(page.Data))
	}
}

func TestPaginateBindMismatch(t *testing.T) {
	db := testinfra.NewTestDB(t)
	ctx := context.Background()

	frag := query.Fragment{
		SQL:  "SELECT team_id FROM teams WHERE gender = ?",
		Args: nil,
	}
	_, err := pagination.Paginate(ctx, db, frag, pagination.Request{Page: 1, PageSize: 5}, scanID)
	if !errors.Is(err, query.ErrBindMismatch) {
		t.Errorf("expected ErrBindMismatch, got %v", err)
	}
}
