package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Standing label constants.
const (
	LeaderValue   = "Leader"   // Dominant visibility
	StrongValue   = "Strong"   // Well established
	EmergingValue = "Emerging" // Gaining ground
	TrailingValue = "Trailing" // Barely surfacing
)

// Color variables for console output.
var (
	LeaderColor   = color.New(color.FgGreen, color.Bold) // leaderColor marks the top tier.
	StrongColor   = color.New(color.FgCyan, color.Bold)  // strongColor marks a solid position.
	EmergingColor = color.New(color.FgYellow)            // emergingColor marks partial presence, not bold.
	TrailingColor = color.New(color.FgRed)               // trailingColor marks weak presence.
)

// GetPlainLabel returns a plain text label indicating a brand's standing
// based on its visibility score. This is the core logic used for CSV,
// JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 75:
		return LeaderValue
	case score >= 50:
		return StrongValue
	case score >= 25:
		return EmergingValue
	default:
		return TrailingValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case LeaderValue:
		return LeaderColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case EmergingValue:
		return EmergingColor.Sprint(text)
	default: // "Trailing"
		return TrailingColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for metric storage.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".brandscope_metrics.db"
	}
	return filepath.Join(homeDir, ".brandscope_metrics.db")
}

// TruncateName truncates a brand name to a maximum width with an ellipsis
// suffix. Requires maxWidth > 3 so there is room for both content and the
// "..." suffix.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// SplitCSVList splits a comma-separated flag value into trimmed, non-empty
// parts. An empty input yields a nil slice.
func SplitCSVList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var parts []string
	for p := range strings.SplitSeq(s, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
