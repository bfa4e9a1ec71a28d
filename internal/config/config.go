// Package config loads cbamcalc settings.
//
// Precedence, lowest to highest: built-in defaults, the global YAML file
// ($CBAMCALC_HOME/config.yaml), a project overlay (./.cbamcalc/config.yaml),
// .env files, CBAMCALC_* environment variables, and finally CLI flags, which
// the cli package applies on top.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatTable  = "table"
	OutputFormatJSON   = "json"
	OutputFormatNDJSON = "ndjson"
)

// Defaults mirror the original CBAM dashboard.
const (
	DefaultCNCode     = "7201"
	DefaultQuantity   = 150.0
	DefaultOrigin     = "India"
	DefaultComparison = "South Korea"
	DefaultPrice      = 75.51
	DefaultCurrency   = "EUR"
	DefaultPrecision  = 0
	DefaultTableFile  = "Iron Emission Factors.csv"
	maxPrecision      = 6
)

// Validation errors.
var (
	ErrNegativeQuantity = errors.New("defaults.quantity must be >= 0")
	ErrNegativePrice    = errors.New("defaults.price must be >= 0")
	ErrInvalidFormat    = errors.New("output.default_format must be table, json or ndjson")
	ErrInvalidPrecision = errors.New("output.precision must be between 0 and 6")
)

// Config is the full cbamcalc configuration.
type Config struct {
	Table    TableConfig   `yaml:"table"    json:"table"`
	Defaults QueryDefaults `yaml:"defaults" json:"defaults"`
	Output   OutputConfig  `yaml:"output"   json:"output"`
	Logging  LoggingConfig `yaml:"logging"  json:"logging"`
}

// TableConfig locates the emission factor reference table.
type TableConfig struct {
	// Paths are loaded in order and concatenated.
	Paths []string `yaml:"paths"           json:"paths"`
	// Sheet selects the worksheet of XLSX files; empty means the first sheet.
	Sheet string `yaml:"sheet,omitempty" json:"sheet,omitempty"`
}

// QueryDefaults pre-fill the compare command.
type QueryDefaults struct {
	CNCode     string  `yaml:"cn_code"    json:"cn_code"`
	Quantity   float64 `yaml:"quantity"   json:"quantity"`
	Origin     string  `yaml:"origin"     json:"origin"`
	Comparison string  `yaml:"comparison" json:"comparison"`
	Price      float64 `yaml:"price"      json:"price"`
	Currency   string  `yaml:"currency"   json:"currency"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	Precision     int    `yaml:"precision"      json:"precision"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// New returns a Config holding the built-in defaults.
func New() *Config {
	return &Config{
		Table: TableConfig{Paths: []string{DefaultTableFile}},
		Defaults: QueryDefaults{
			CNCode:     DefaultCNCode,
			Quantity:   DefaultQuantity,
			Origin:     DefaultOrigin,
			Comparison: DefaultComparison,
			Price:      DefaultPrice,
			Currency:   DefaultCurrency,
		},
		Output: OutputConfig{
			DefaultFormat: OutputFormatTable,
			Precision:     DefaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadFile decodes a YAML file onto cfg. Keys absent from the file keep their
// current values. A missing file is not an error.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Save writes cfg as YAML to path, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings that would fail at query time.
func (c *Config) Validate() error {
	if c.Defaults.Quantity < 0 {
		return fmt.Errorf("%w: got %g", ErrNegativeQuantity, c.Defaults.Quantity)
	}
	if c.Defaults.Price < 0 {
		return fmt.Errorf("%w: got %g", ErrNegativePrice, c.Defaults.Price)
	}
	if !IsValidOutputFormat(c.Output.DefaultFormat) {
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Output.DefaultFormat)
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: got %d", ErrInvalidPrecision, c.Output.Precision)
	}
	return nil
}

// IsValidOutputFormat reports whether format is a supported output format.
func IsValidOutputFormat(format string) bool {
	switch format {
	case OutputFormatTable, OutputFormatJSON, OutputFormatNDJSON:
		return true
	default:
		return false
	}
}
