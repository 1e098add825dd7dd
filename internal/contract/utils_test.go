package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected string
	}{
		{"leader threshold", 75, LeaderValue},
		{"strong range", 60, StrongValue},
		{"strong threshold", 50, StrongValue},
		{"emerging range", 30, EmergingValue},
		{"trailing range", 10, TrailingValue},
		{"zero score", 0, TrailingValue},
		{"perfect score", 100, LeaderValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.score))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	// Colored output embeds the plain label regardless of terminal support
	assert.Contains(t, GetColorLabel(80), LeaderValue)
	assert.Contains(t, GetColorLabel(55), StrongValue)
	assert.Contains(t, GetColorLabel(30), EmergingValue)
	assert.Contains(t, GetColorLabel(5), TrailingValue)
}

func TestSelectOutputFile(t *testing.T) {
	// Empty path selects stdout
	file, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, file)

	// Non-empty path creates the file
	path := filepath.Join(t.TempDir(), "out.txt")
	file, err = SelectOutputFile(path)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{"short name untouched", "Acme", 20, "Acme"},
		{"exact width untouched", "Acme", 4, "Acme"},
		{"long name truncated", "Acme Global Dynamics", 10, "Acme Gl..."},
		{"width too small to truncate", "Acme Global", 3, "Acme Global"},
		{"multibyte runes", "ルミナス株式会社", 6, "ルミナ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateName(tt.input, tt.maxWidth))
		})
	}
}

func TestSplitCSVList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  ", nil},
		{"single value", "pricing", []string{"pricing"}},
		{"trimmed values", " pricing , support ", []string{"pricing", "support"}},
		{"skips empty parts", "pricing,,support,", []string{"pricing", "support"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitCSVList(tt.input))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v, "expected %q to parse true", s)
	}

	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v, "expected %q to parse false", s)
	}

	_, err := ParseBoolString("maybe")
	require.Error(t, err)
}
