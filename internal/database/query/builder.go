// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

// Package query provides incremental SQL construction for the database package.
// A Builder starts from a base SELECT that ends in "WHERE 1=1" so that every
// predicate composes with a uniform " AND "; filter values never enter the SQL
// text, they travel exclusively through the bound argument list.
package query

import (
	"fmt"
	"strings"
	"time"
)

// Fragment is a complete statement plus the arguments bound to its
// placeholders, ready for execution.
type Fragment struct {
	SQL  string
	Args []interface{}
}

// ErrBindMismatch indicates the number of placeholders in a statement does
// not match the number of bound arguments. This is a programming fault in the
// accessor that built the fragment, never a client error.
var ErrBindMismatch = fmt.Errorf("placeholder count does not match bound argument count")

// BindCheck verifies placeholder/argument parity. Counting '?' is sound here
// because Builder never concatenates values into the SQL text, so a literal
// '?' cannot appear outside a placeholder position.
func (f Fragment) BindCheck() error {
	if n := strings.Count(f.SQL, "?"); n != len(f.Args) {
		return fmt.Errorf("%d placeholders, %d arguments: %w", n, len(f.Args), ErrBindMismatch)
	}
	return nil
}

// SortSpec is the whitelist translation table for one resource's ORDER BY.
// Allowed maps public field names to actual column names; Default is the
// column used when the requested field is absent or not in the whitelist.
type SortSpec struct {
	Allowed map[string]string
	Default string
}

// Column translates a caller-supplied sort field through the whitelist.
// Unknown fields fall back to the default column; this never errors, and only
// whitelisted identifiers can reach the SQL text.
func (s SortSpec) Column(field string) string {
	if col, ok := s.Allowed[strings.ToLower(strings.TrimSpace(field))]; ok {
		return col
	}
	return s.Default
}

// Direction constrains a caller-supplied sort order to exactly ASC or DESC,
// defaulting to ASC for anything else.
func Direction(order string) string {
	if strings.EqualFold(strings.TrimSpace(order), "DESC") {
		return "DESC"
	}
	return "ASC"
}

// Builder assembles a parameterized SELECT from a base statement and a series
// of optional predicates. All predicates AND-compose in the order they are
// added; ORDER BY is appended last.
type Builder struct {
	base    string
	clauses []string
	args    []interface{}
	orderBy string
}

// NewBuilder creates a Builder. base must end in a WHERE clause with an
// always-true predicate, e.g. "SELECT ... FROM teams WHERE 1=1".
func NewBuilder(base string) *Builder {
	return &Builder{
		base:    base,
		clauses: make([]string, 0, 4),
		args:    make([]interface{}, 0, 8),
	}
}

// Where appends a raw predicate with its arguments. The clause must contain
// one '?' per argument.
func (b *Builder) Where(clause string, args ...interface{}) *Builder {
	b.clauses = append(b.clauses, clause)
	b.args = append(b.args, args...)
	return b
}

// WhereEqual appends an equality predicate. Empty string values are skipped,
// allowing optional filters to be applied unconditionally.
func (b *Builder) WhereEqual(column string, value string) *Builder {
	if value == "" {
		return b
	}
	return b.Where(column+" = ?", value)
}

// WherePrefix appends a prefix-match predicate (LIKE 'value%'). The wildcard
// is attached to the bound value, not the SQL text.
func (b *Builder) WherePrefix(column, value string) *Builder {
	if value == "" {
		return b
	}
	return b.Where(column+" LIKE ?", value+"%")
}

// WhereContains appends a substring-match predicate (LIKE '%value%').
func (b *Builder) WhereContains(column, value string) *Builder {
	if value == "" {
		return b
	}
	return b.Where(column+" LIKE ?", "%"+value+"%")
}

// WhereGTE appends a lower-bound predicate when value is non-nil.
func (b *Builder) WhereGTE(column string, value interface{}) *Builder {
	if isNil(value) {
		return b
	}
	return b.Where(column+" >= ?", value)
}

// WhereLTE appends an upper-bound predicate when value is non-nil.
func (b *Builder) WhereLTE(column string, value interface{}) *Builder {
	if isNil(value) {
		return b
	}
	return b.Where(column+" <= ?", value)
}

// WhereGT appends a strict lower-bound predicate when value is non-nil.
func (b *Builder) WhereGT(column string, value interface{}) *Builder {
	if isNil(value) {
		return b
	}
	return b.Where(column+" > ?", value)
}

// OrderBy records the ORDER BY clause from a whitelist-translated field and a
// constrained direction. Only identifiers produced by the SortSpec and the
// fixed ASC/DESC tokens are ever concatenated.
func (b *Builder) OrderBy(spec SortSpec, field, order string) *Builder {
	b.orderBy = spec.Column(field) + " " + Direction(order)
	return b
}

// Fragment assembles the final statement. Predicates join with " AND " onto
// the base; ORDER BY, if set, comes after all predicates.
func (b *Builder) Fragment() Fragment {
	var sb strings.Builder
	sb.WriteString(b.base)
	for _, c := range b.clauses {
		sb.WriteString(" AND ")
		sb.WriteString(c)
	}
	if b.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.orderBy)
	}
	args := make([]interface{}, len(b.args))
	copy(args, b.args)
	return Fragment{SQL: sb.String(), Args: args}
}

// Count returns the number of predicates added so far.
func (b *Builder) Count() int {
	return len(b.clauses)
}

// isNil reports whether an optional filter value is absent. Typed nil
// pointers arrive as non-nil interfaces, so the common cases are checked
// explicitly.
func isNil(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *int:
		return t == nil
	case *string:
		return t == nil
	case *time.Time:
		return t == nil
	default:
		return false
	}
}
