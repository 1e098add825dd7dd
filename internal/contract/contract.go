// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/brandscope/brandscope/schema"
)

// MetricsReader defines the read side of the metric store. The engine in
// core consumes this interface so its orchestration can be tested without
// a real database.
type MetricsReader interface {
	// LoadRecord returns the record for one (scope, scopeValue) slice.
	// The boolean is false when no record is stored for the slice.
	LoadRecord(ctx context.Context, scope schema.Scope, scopeValue string) (schema.MetricRecord, bool, error)

	// LoadRecords returns the stored records for the given scope values,
	// skipping values with no stored record.
	LoadRecords(ctx context.Context, scope schema.Scope, scopeValues []string) ([]schema.MetricRecord, error)

	// ListScopes summarizes every stored (scope, scopeValue) slice.
	ListScopes(ctx context.Context) ([]schema.ScopeInfo, error)
}

// SelectionReader returns the persisted competitor selection.
type SelectionReader interface {
	// LoadSelection returns the currently selected competitor names.
	// An empty slice means no explicit selection has been saved.
	LoadSelection(ctx context.Context) ([]string, error)
}

// MetricsStore defines the full metric store surface: reads used by the
// engine plus the write and maintenance operations used by the import and
// store commands.
type MetricsStore interface {
	MetricsReader
	SelectionReader

	// SaveRecord upserts a record keyed by (scope, scopeValue).
	SaveRecord(ctx context.Context, record schema.MetricRecord) error

	// SaveSelection replaces the persisted competitor selection.
	SaveSelection(ctx context.Context, names []string) error

	// GetStatus returns status information about the metric store.
	GetStatus(ctx context.Context) (schema.StoreStatus, error)

	// Clear removes all stored records and selections.
	Clear(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for managing the metric store.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetMetricsStore() MetricsStore
}
