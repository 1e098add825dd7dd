// Package core has the brand-metrics aggregation and ranking engine.
//
// The engine is pure computation over in-memory records: it resolves the
// owner brand inside a record, derives percentage views from raw counts,
// merges records from several analytical scopes into one synthetic record,
// recomputes competition ranks, and narrows the brand set to a selection.
// It performs no I/O; persistence and output live in internal packages.
package core

import "errors"

// ErrNoRecords is returned when no stored metric record matches the
// requested scope. Missing data inside a record is never an error; the
// engine absorbs it as zero or empty values.
var ErrNoRecords = errors.New("no metric records found for scope")
