// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

// Package validation provides request filter validation using
// go-playground/validator v10. A thread-safe singleton validator carries the
// domain's custom rules: fixed-width resource ID patterns and strict calendar
// dates. Validation is pure; nothing here touches the database.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// calendarDateLayout is the exact format accepted by date filters.
const calendarDateLayout = "2006-01-02"

// Resource ID patterns. Fixed-width; anchored so partial matches fail.
var (
	teamIDPattern       = regexp.MustCompile(`^T-\d{2}$`)
	playerIDPattern     = regexp.MustCompile(`^P-\d{5,6}$`)
	tournamentIDPattern = regexp.MustCompile(`^WC-\d{4}$`)
	matchIDPattern      = regexp.MustCompile(`^M-\d{4}-\d{2}$`)
	stadiumIDPattern    = regexp.MustCompile(`^S-\d{3}$`)
)

// idValidators maps custom tag names to their patterns.
var idValidators = map[string]*regexp.Regexp{
	"team_id":       teamIDPattern,
	"player_id":     playerIDPattern,
	"tournament_id": tournamentIDPattern,
	"match_id":      matchIDPattern,
	"stadium_id":    stadiumIDPattern,
}

// idFormats holds the human-readable expected format per ID tag, used in
// error messages.
var idFormats = map[string]string{
	"team_id":       "T-NN",
	"player_id":     "P-NNNNN or P-NNNNNN",
	"tournament_id": "WC-YYYY",
	"match_id":      "M-YYYY-NN",
	"stadium_id":    "S-NNN",
}

// GetValidator returns the singleton validator with the domain validators
// registered. Thread-safe.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		for tag, pattern := range idValidators {
			p := pattern
			// Registration only fails for empty tags; these are fixed literals.
			//nolint:errcheck
			validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return p.MatchString(fl.Field().String())
			})
		}

		//nolint:errcheck
		validate.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
			return IsCalendarDate(fl.Field().String())
		})
	})

	return validate
}

// IsCalendarDate reports whether value is a real calendar date in YYYY-MM-DD
// form. The parsed date is re-rendered and compared byte-for-byte with the
// input, so values a lenient parser would normalize ("2024-02-30", "2024-1-5")
// are rejected.
func IsCalendarDate(value string) bool {
	t, err := time.Parse(calendarDateLayout, value)
	if err != nil {
		return false
	}
	return t.Format(calendarDateLayout) == value
}

// ParseCalendarDate parses a strict calendar date, returning a FieldError
// naming the field when the value is not a real date.
func ParseCalendarDate(field, value string) (time.Time, error) {
	if !IsCalendarDate(value) {
		return time.Time{}, &FieldError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf("%s must be a valid calendar date in YYYY-MM-DD format", field),
		}
	}
	t, _ := time.Parse(calendarDateLayout, value)
	return t, nil
}

// ValidateID checks a resource identifier against its pattern. tag selects
// the pattern ("team_id", "player_id", ...).
func ValidateID(tag, field, value string) error {
	pattern, ok := idValidators[tag]
	if !ok {
		return fmt.Errorf("unknown id validator %q", tag)
	}
	if !pattern.MatchString(value) {
		return &FieldError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf("%s must match the format %s", field, idFormats[tag]),
		}
	}
	return nil
}

// FieldError is a single-field validation failure with a client-facing
// message naming the field and the expected format.
type FieldError struct {
	Field   string
	Value   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// RequestError aggregates the validation failures of one request struct.
type RequestError struct {
	Fields []FieldError
}

func (e *RequestError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		messages[i] = f.Message
	}
	return strings.Join(messages, "; ")
}

// ValidateStruct validates a request struct with the singleton validator and
// translates failures into a RequestError. Returns nil when valid.
func ValidateStruct(s interface{}) *RequestError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestError{Fields: []FieldError{{Field: "request", Message: err.Error()}}}
	}

	fields := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		fields[i] = FieldError{
			Field:   fe.Field(),
			Value:   fmt.Sprintf("%v", fe.Value()),
			Message: translate(fe),
		}
	}
	return &RequestError{Fields: fields}
}

// translate renders one validator failure as a client-facing message.
func translate(fe validator.FieldError) string {
	field := fe.Field()
	switch tag := fe.Tag(); tag {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "calendardate":
		return fmt.Sprintf("%s must be a valid calendar date in YYYY-MM-DD format", field)
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		if format, ok := idFormats[tag]; ok {
			return fmt.Sprintf("%s must match the format %s", field, format)
		}
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
