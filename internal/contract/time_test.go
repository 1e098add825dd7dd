package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseMaxAgeDuration covers valid and invalid staleness windows,
// including singular/plural forms and the month/year approximations.
func TestParseMaxAgeDuration(t *testing.T) {
	const day = 24 * time.Hour

	tests := []struct {
		name        string
		input       string
		expected    time.Duration
		expectError bool
	}{
		{
			name:     "go duration format",
			input:    "168h",
			expected: 168 * time.Hour,
		},
		{
			name:     "plural days",
			input:    "30 days",
			expected: 30 * day,
		},
		{
			name:     "singular week",
			input:    "1 week",
			expected: 7 * day,
		},
		{
			name:     "month approximation",
			input:    "2 months",
			expected: 60 * day,
		},
		{
			name:     "year approximation",
			input:    "1 year",
			expected: 365 * day,
		},
		{
			name:     "mixed case with padding",
			input:    "  3 Hours ",
			expected: 3 * time.Hour,
		},
		{
			name:        "zero duration rejected",
			input:       "0h",
			expectError: true,
		},
		{
			name:        "zero units rejected",
			input:       "0 days",
			expectError: true,
		},
		{
			name:        "bad unit",
			input:       "4 decades",
			expectError: true,
		},
		{
			name:        "non-numeric value",
			input:       "one year",
			expectError: true,
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseMaxAgeDuration(tt.input)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, d)
			}
		})
	}
}

func TestRecordAgeDays(t *testing.T) {
	tests := []struct {
		name     string
		age      time.Duration
		expected int
	}{
		{
			name:     "fresh record",
			age:      2 * time.Hour,
			expected: 0,
		},
		{
			name:     "just over a day absorbs skew",
			age:      26 * time.Hour,
			expected: 0,
		},
		{
			name:     "a day and a half",
			age:      37 * time.Hour,
			expected: 1,
		},
		{
			name:     "ten days",
			age:      10*24*time.Hour + time.Hour,
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RecordAgeDays(time.Now().Add(-tt.age)))
		})
	}
}
