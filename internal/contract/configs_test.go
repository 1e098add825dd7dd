package contract

import (
	"testing"
	"time"

	"github.com/brandscope/brandscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes every validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Owner:          "Acme",
		EmptySelection: "yes",
		Limit:          25,
		Precision:      2,
		Sort:           string(schema.VisibilityMetric),
		Output:         "text",
		Color:          "yes",
		StoreBackend:   string(schema.SQLiteBackend),
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{
			name:        "valid minimal config",
			mutate:      func(*ConfigRawInput) {},
			expectError: false,
		},
		{
			name:        "invalid sort metric",
			mutate:      func(in *ConfigRawInput) { in.Sort = "popularity" },
			expectError: true,
		},
		{
			name:        "invalid output format",
			mutate:      func(in *ConfigRawInput) { in.Output = "xml" },
			expectError: true,
		},
		{
			name:        "invalid limit (zero)",
			mutate:      func(in *ConfigRawInput) { in.Limit = 0 },
			expectError: true,
		},
		{
			name:        "invalid limit (too large)",
			mutate:      func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 },
			expectError: true,
		},
		{
			name:        "invalid precision",
			mutate:      func(in *ConfigRawInput) { in.Precision = 7 },
			expectError: true,
		},
		{
			name:        "invalid store backend",
			mutate:      func(in *ConfigRawInput) { in.StoreBackend = "oracle" },
			expectError: true,
		},
		{
			name: "mysql without connection string",
			mutate: func(in *ConfigRawInput) {
				in.StoreBackend = string(schema.MySQLBackend)
			},
			expectError: true,
		},
		{
			name: "mysql with connection string",
			mutate: func(in *ConfigRawInput) {
				in.StoreBackend = string(schema.MySQLBackend)
				in.StoreDBConnect = "user:pass@tcp(localhost:3306)/brandscope"
			},
			expectError: false,
		},
		{
			name: "postgresql missing dbname",
			mutate: func(in *ConfigRawInput) {
				in.StoreBackend = string(schema.PostgreSQLBackend)
				in.StoreDBConnect = "host=localhost user=postgres"
			},
			expectError: true,
		},
		{
			name:        "invalid max-age",
			mutate:      func(in *ConfigRawInput) { in.MaxAge = "yesterday" },
			expectError: true,
		},
		{
			name:        "invalid color value",
			mutate:      func(in *ConfigRawInput) { in.Color = "maybe" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidatePopulatesConfig(t *testing.T) {
	input := validInput()
	input.Topics = "pricing, support"
	input.Brands = "Globex,Initech"
	input.EmptySelection = "no"
	input.MaxAge = "7 days"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "Acme", cfg.OwnerBrand)
	assert.Equal(t, []string{"pricing", "support"}, cfg.Topics)
	assert.Equal(t, []string{"Globex", "Initech"}, cfg.Brands)
	assert.False(t, cfg.EmptySelectionMeansAll)
	assert.Equal(t, schema.VisibilityMetric, cfg.SortBy)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
	assert.Equal(t, 7*24*time.Hour, cfg.MaxAge)
	assert.True(t, cfg.HasScopeFilters())
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		OwnerBrand: "Acme",
		Topics:     []string{"pricing"},
		Brands:     []string{"Globex"},
	}

	clone := cfg.Clone()
	clone.Topics[0] = "support"
	clone.Brands = append(clone.Brands, "Initech")

	assert.Equal(t, "pricing", cfg.Topics[0])
	assert.Len(t, cfg.Brands, 1)
}

func TestHasScopeFilters(t *testing.T) {
	assert.False(t, (&Config{}).HasScopeFilters())
	assert.True(t, (&Config{Personas: []string{"developer"}}).HasScopeFilters())
	assert.True(t, (&Config{Platforms: []string{"chatgpt"}}).HasScopeFilters())
}
