package metricstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brandscope/brandscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *StoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "metrics.db")
	store, err := NewMetricsStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*StoreImpl)
}

func sampleRecord(scope schema.Scope, value string) schema.MetricRecord {
	return schema.MetricRecord{
		Scope:      scope,
		ScopeValue: value,
		BrandMetrics: []schema.BrandMetrics{
			{BrandName: "Acme", IsOwner: true, VisibilityScore: 80, TotalMentions: 12},
			{BrandName: "Globex", VisibilityScore: 60, TotalMentions: 7},
		},
		TotalTests:     5,
		TotalResponses: 20,
		LastCalculated: time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
	}
}

// TestSaveAndLoadRecord round-trips a record through SQLite.
func TestSaveAndLoadRecord(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	record := sampleRecord(schema.TopicScope, "pricing")

	require.NoError(t, store.SaveRecord(ctx, record))

	loaded, ok, err := store.LoadRecord(ctx, schema.TopicScope, "pricing")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, record.Scope, loaded.Scope)
	assert.Equal(t, record.ScopeValue, loaded.ScopeValue)
	assert.Equal(t, record.TotalTests, loaded.TotalTests)
	assert.Equal(t, record.TotalResponses, loaded.TotalResponses)
	assert.True(t, record.LastCalculated.Equal(loaded.LastCalculated))
	assert.Equal(t, record.BrandMetrics, loaded.BrandMetrics)
}

// TestLoadRecordMissing verifies a missing slice reports ok=false, not an
// error.
func TestLoadRecordMissing(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.LoadRecord(context.Background(), schema.TopicScope, "missing")

	require.NoError(t, err)
	assert.False(t, ok)
}

// TestSaveRecordUpsert verifies saving the same slice twice overwrites.
func TestSaveRecordUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := sampleRecord(schema.OverallScope, "")
	require.NoError(t, store.SaveRecord(ctx, record))

	record.TotalResponses = 99
	record.BrandMetrics = record.BrandMetrics[:1]
	require.NoError(t, store.SaveRecord(ctx, record))

	loaded, ok, err := store.LoadRecord(ctx, schema.OverallScope, "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 99, loaded.TotalResponses)
	assert.Len(t, loaded.BrandMetrics, 1)
}

// TestLoadRecordsSkipsMissing verifies bulk load skips absent values.
func TestLoadRecordsSkipsMissing(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRecord(ctx, sampleRecord(schema.TopicScope, "pricing")))
	require.NoError(t, store.SaveRecord(ctx, sampleRecord(schema.TopicScope, "support")))

	records, err := store.LoadRecords(ctx, schema.TopicScope, []string{"pricing", "missing", "support"})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "pricing", records[0].ScopeValue)
	assert.Equal(t, "support", records[1].ScopeValue)
}

// TestListScopes verifies the stored slice summary.
func TestListScopes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRecord(ctx, sampleRecord(schema.OverallScope, "")))
	require.NoError(t, store.SaveRecord(ctx, sampleRecord(schema.TopicScope, "pricing")))

	infos, err := store.ListScopes(ctx)

	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, schema.OverallScope, infos[0].Scope)
	assert.Equal(t, 2, infos[0].Brands)
	assert.Equal(t, 20, infos[0].TotalResponses)
	assert.Equal(t, schema.TopicScope, infos[1].Scope)
	assert.Equal(t, "pricing", infos[1].ScopeValue)
}

// TestSelectionRoundTrip verifies selection save, dedupe and reload.
func TestSelectionRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSelection(ctx, []string{"Globex", " Initech ", "Globex", ""}))

	names, err := store.LoadSelection(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Globex", "Initech"}, names)

	// A second save replaces, not appends.
	require.NoError(t, store.SaveSelection(ctx, []string{"Umbrella"}))
	names, err = store.LoadSelection(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Umbrella"}, names)
}

// TestGetStatusAndClear verifies status counters and full clear.
func TestGetStatusAndClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRecord(ctx, sampleRecord(schema.OverallScope, "")))
	require.NoError(t, store.SaveSelection(ctx, []string{"Globex"}))

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(1), status.Records)
	assert.Equal(t, int64(1), status.Selections)
	assert.Equal(t, int64(1), status.TableSizes[metricRecordsTable])

	require.NoError(t, store.Clear(ctx))

	status, err = store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.Records)
	assert.Equal(t, int64(0), status.Selections)
}

// TestNoneBackend verifies the no-op store absorbs every operation.
func TestNoneBackend(t *testing.T) {
	store, err := NewMetricsStore(schema.NoneBackend, "")
	require.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, store.SaveRecord(ctx, sampleRecord(schema.OverallScope, "")))

	_, ok, err := store.LoadRecord(ctx, schema.OverallScope, "")
	assert.NoError(t, err)
	assert.False(t, ok)

	status, err := store.GetStatus(ctx)
	assert.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Clear(ctx))
	assert.NoError(t, store.Close())
}

// TestImportRecords verifies the JSON import path end to end.
func TestImportRecords(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	file := ImportFile{
		Records: []schema.MetricRecord{
			sampleRecord(schema.OverallScope, ""),
			sampleRecord(schema.TopicScope, "pricing"),
		},
		Selection: []string{"Globex"},
	}
	data, err := json.Marshal(file)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	count, err := ImportRecords(ctx, store, path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, ok, err := store.LoadRecord(ctx, schema.TopicScope, "pricing")
	require.NoError(t, err)
	assert.True(t, ok)

	names, err := store.LoadSelection(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Globex"}, names)
}

// TestImportRecordsRejectsInvalid verifies validation failures abort the
// import before any write.
func TestImportRecordsRejectsInvalid(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("invalid scope", func(t *testing.T) {
		bad := sampleRecord(schema.FilteredScope, "x")
		writeImport(t, store, ctx, bad, "merged records are transient and cannot be imported")
	})

	t.Run("duplicate brand", func(t *testing.T) {
		bad := sampleRecord(schema.TopicScope, "pricing")
		bad.BrandMetrics = append(bad.BrandMetrics, schema.BrandMetrics{BrandName: "Acme"})
		writeImport(t, store, ctx, bad, "duplicate brand names are rejected")
	})

	t.Run("missing scope value", func(t *testing.T) {
		bad := sampleRecord(schema.TopicScope, "")
		writeImport(t, store, ctx, bad, "topic records need a scope value")
	})
}

func writeImport(t *testing.T, store *StoreImpl, ctx context.Context, record schema.MetricRecord, msg string) {
	t.Helper()
	data, err := json.Marshal(ImportFile{Records: []schema.MetricRecord{record}})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err = ImportRecords(ctx, store, path)
	assert.Error(t, err, msg)
}
