// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

package database

import "errors"

// ErrNotFound indicates a lookup by identifier matched no row, or a filtered
// list matched no records. Callers distinguish it from execution faults with
// errors.Is.
var ErrNotFound = errors.New("record not found")
