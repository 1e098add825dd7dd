package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/brandscope/brandscope/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a report run.
// This struct remains the "final, validated" config.
type Config struct {
	OwnerBrand string

	// Scope selection: which stored slices feed the report. Empty lists
	// mean the overall record is used as-is.
	Topics    []string
	Personas  []string
	Platforms []string

	// Brand selection: competitor names to keep in the report.
	Brands                 []string
	EmptySelectionMeansAll bool

	ResultLimit int
	Precision   int
	SortBy      schema.MetricKey
	Detail      bool
	Breakdown   bool

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	// MaxAge warns when records are older than this window; 0 disables.
	MaxAge time.Duration
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Owner          string `mapstructure:"owner"`
	Brands         string `mapstructure:"brands"`
	EmptySelection string `mapstructure:"empty-selection"`
	Limit          int    `mapstructure:"limit"`
	Precision      int    `mapstructure:"precision"`
	Sort           string `mapstructure:"sort"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	MaxAge         string `mapstructure:"max-age"`
	Topics         string `mapstructure:"topics"`
	Personas       string `mapstructure:"personas"`
	Platforms      string `mapstructure:"platforms"`

	// --- Fields from reportCmd.Flags() ---
	Detail    bool `mapstructure:"detail"`
	Breakdown bool `mapstructure:"breakdown"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Topics != nil {
		clone.Topics = make([]string, len(c.Topics))
		copy(clone.Topics, c.Topics)
	}
	if c.Personas != nil {
		clone.Personas = make([]string, len(c.Personas))
		copy(clone.Personas, c.Personas)
	}
	if c.Platforms != nil {
		clone.Platforms = make([]string, len(c.Platforms))
		copy(clone.Platforms, c.Platforms)
	}
	if c.Brands != nil {
		clone.Brands = make([]string, len(c.Brands))
		copy(clone.Brands, c.Brands)
	}
	return &clone
}

// HasScopeFilters reports whether any scope dimension is narrowed, which
// switches the report from the stored overall record to a merged record.
func (c *Config) HasScopeFilters() bool {
	return len(c.Topics) > 0 || len(c.Personas) > 0 || len(c.Platforms) > 0
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateSortAndOutput(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := processMaxAge(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-enum fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OwnerBrand = strings.TrimSpace(input.Owner)
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Breakdown = input.Breakdown
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// Parse empty-selection policy
	emptyAll, err := ParseBoolString(input.EmptySelection)
	if err != nil {
		return fmt.Errorf("invalid --empty-selection value: %w", err)
	}
	cfg.EmptySelectionMeansAll = emptyAll

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision Validation ---
	if input.Precision < 0 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 0 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 3. Selection Processing ---
	cfg.Topics = SplitCSVList(input.Topics)
	cfg.Personas = SplitCSVList(input.Personas)
	cfg.Platforms = SplitCSVList(input.Platforms)
	cfg.Brands = SplitCSVList(input.Brands)

	return nil
}

// validateSortAndOutput validates the sort metric and output mode.
func validateSortAndOutput(cfg *Config, input *ConfigRawInput) error {
	cfg.SortBy = schema.MetricKey(input.Sort)
	if _, ok := schema.ValidSortMetrics[cfg.SortBy]; !ok {
		return fmt.Errorf("invalid sort metric '%s'. must be visibilityScore, shareOfVoice, avgPosition, depthOfMention, citationShare, sentimentScore, totalMentions", input.Sort)
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates the metric store backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	if err := ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return err
	}
	return nil
}

// processMaxAge parses the staleness window. Empty disables the check.
func processMaxAge(cfg *Config, input *ConfigRawInput) error {
	if strings.TrimSpace(input.MaxAge) == "" {
		cfg.MaxAge = 0
		return nil
	}
	maxAge, err := ParseMaxAgeDuration(input.MaxAge)
	if err != nil {
		return fmt.Errorf("invalid --max-age value: %w", err)
	}
	cfg.MaxAge = maxAge
	return nil
}
