// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

package validation

import (
	"strings"
	"testing"
)

func TestIsCalendarDate(t *testing.T) {
	valid := []string{"2022-12-18", "2000-02-29", "1987-06-24"}
	for _, v := range valid {
		if !IsCalendarDate(v) {
			t.Errorf("IsCalendarDate(%q) = false, want true", v)
		}
	}

	invalid := []string{
		"2024-02-30", // not a real day
		"2023-02-29", // not a leap year
		"2024-13-01", // no such month
		"2024-1-5",   // not zero-padded
		"18-12-2022", // wrong order
		"2022/12/18", // wrong separator
		"",
		"yesterday",
	}
	for _, v := range invalid {
		if IsCalendarDate(v) {
			t.Errorf("IsCalendarDate(%q) = true, want false", v)
		}
	}
}

func TestParseCalendarDate(t *testing.T) {
	got, err := ParseCalendarDate("dob_min", "1987-06-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 1987 || got.Month() != 6 || got.Day() != 24 {
		t.Errorf("parsed wrong date: %v", got)
	}

	_, err = ParseCalendarDate("dob_min", "2024-02-30")
	if err == nil {
		t.Fatal("expected error for impossible date")
	}
	if !strings.Contains(err.Error(), "dob_min") {
		t.Errorf("error should name the field: %v", err)
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		tag   string
		value string
		valid bool
	}{
		{"team_id", "T-01", true},
		{"team_id", "T-1", false},
		{"team_id", "T-001", false},
		{"team_id", "X-01", false},
		{"player_id", "P-10001", true},
		{"player_id", "P-100061", true},
		{"player_id", "P-1000", false},
		{"player_id", "P-1000611", false},
		{"tournament_id", "WC-2022", true},
		{"tournament_id", "WC-22", false},
		{"match_id", "M-2022-01", true},
		{"match_id", "M-2022-1", false},
		{"stadium_id", "S-001", true},
		{"stadium_id", "S-01", false},
	}
	for _, tt := range tests {
		err := ValidateID(tt.tag, "id", tt.value)
		if tt.valid && err != nil {
			t.Errorf("ValidateID(%s, %q) = %v, want nil", tt.tag, tt.value, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ValidateID(%s, %q) = nil, want error", tt.tag, tt.value)
		}
	}
}

func TestValidateIDUnknownTag(t *testing.T) {
	if err := ValidateID("no_such_tag", "id", "T-01"); err == nil {
		t.Fatal("expected error for unknown validator tag")
	}
}

type enumRequest struct {
	Gender   string `validate:"omitempty,oneof=male female"`
	Position string `validate:"omitempty,oneof=goalkeeper defender midfielder forward"`
	TeamID   string `validate:"omitempty,team_id"`
	DOBMin   string `validate:"omitempty,calendardate"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := enumRequest{Gender: "male", Position: "forward", TeamID: "T-01", DOBMin: "1987-06-24"}
		if err := ValidateStruct(req); err != nil {
			t.Errorf("unexpected validation error: %v", err)
		}
	})

	t.Run("empty fields skip validation", func(t *testing.T) {
		if err := ValidateStruct(enumRequest{}); err != nil {
			t.Errorf("zero struct should validate: %v", err)
		}
	})

	t.Run("bad enum", func(t *testing.T) {
		err := ValidateStruct(enumRequest{Gender: "other"})
		if err == nil {
			t.Fatal("expected validation error")
		}
		if len(err.Fields) != 1 || err.Fields[0].Field != "Gender" {
			t.Errorf("unexpected fields: %+v", err.Fields)
		}
		if !strings.Contains(err.Fields[0].Message, "must be one of") {
			t.Errorf("unexpected message: %s", err.Fields[0].Message)
		}
	})

	t.Run("bad id format", func(t *testing.T) {
		err := ValidateStruct(enumRequest{TeamID: "T-1"})
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Fields[0].Message, "T-NN") {
			t.Errorf("message should describe the expected format: %s", err.Fields[0].Message)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		err := ValidateStruct(enumRequest{DOBMin: "2024-02-30"})
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Fields[0].Message, "YYYY-MM-DD") {
			t.Errorf("unexpected message: %s", err.Fields[0].Message)
		}
	})

	t.Run("multiple failures aggregate", func(t *testing.T) {
		err := ValidateStruct(enumRequest{Gender: "x", Position: "y"})
		if err == nil {
			t.Fatal("expected validation error")
		}
		if len(err.Fields) != 2 {
			t.Errorf("expected 2 field errors, got %d", len(err.Fields))
		}
	})
}
