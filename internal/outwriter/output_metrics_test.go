package outwriter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMetricDefinitionsTable(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut}

	output := captureStdout(t, func() error {
		return WriteMetricDefinitions(cfg)
	})

	assert.Contains(t, output, "visibilityScore")
	assert.Contains(t, output, "avgPosition")
	assert.Contains(t, output, "lower")
	assert.Contains(t, output, "higher")
}

func TestWriteMetricDefinitionsJSON(t *testing.T) {
	cfg := &contract.Config{Output: schema.JSONOut}

	output := captureStdout(t, func() error {
		return WriteMetricDefinitions(cfg)
	})

	var result []map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	require.Len(t, result, len(schema.MetricDefinitions))
	assert.Equal(t, "visibilityScore", result[0]["key"])
	assert.Equal(t, true, result[0]["ranked"])
}

func TestWriteMetricDefinitionsCSV(t *testing.T) {
	cfg := &contract.Config{Output: schema.CSVOut}

	output := captureStdout(t, func() error {
		return WriteMetricDefinitions(cfg)
	})

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, len(schema.MetricDefinitions)+1)
	assert.Contains(t, lines[0], "direction")
	assert.Contains(t, output, "totalMentions")
}
