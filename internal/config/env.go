package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvHome         = "CBAMCALC_HOME"
	EnvTable        = "CBAMCALC_TABLE"
	EnvSheet        = "CBAMCALC_SHEET"
	EnvPrice        = "CBAMCALC_PRICE"
	EnvCurrency     = "CBAMCALC_CURRENCY"
	EnvOutputFormat = "CBAMCALC_OUTPUT_FORMAT"
	EnvLogLevel     = "CBAMCALC_LOG_LEVEL"
	EnvLogFormat    = "CBAMCALC_LOG_FORMAT"
	EnvLogFile      = "CBAMCALC_LOG_FILE"
)

// WithDotEnv layers the variables of the given .env files under lookupEnv:
// a variable lookupEnv knows wins over the files, and earlier files win over
// later ones. Missing files are ignored; the process environment is left
// untouched.
func WithDotEnv(lookupEnv func(string) (string, bool), files ...string) (func(string) (string, bool), error) {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return lookupEnv, nil
	}

	vals := make(map[string]string)
	for i := len(existing) - 1; i >= 0; i-- {
		m, err := godotenv.Read(existing[i])
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", existing[i], err)
		}
		for k, v := range m {
			vals[k] = v
		}
	}
	return func(key string) (string, bool) {
		if v, ok := lookupEnv(key); ok {
			return v, true
		}
		v, ok := vals[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides cfg from environment variables looked up via lookupEnv.
// CBAMCALC_TABLE may list several files separated by the OS path list separator.
func ApplyEnv(cfg *Config, lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvTable); ok && v != "" {
		cfg.Table.Paths = filepath.SplitList(v)
	}
	if v, ok := lookupEnv(EnvSheet); ok {
		cfg.Table.Sheet = v
	}
	if v, ok := lookupEnv(EnvPrice); ok && v != "" {
		price, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPrice, v, err)
		}
		cfg.Defaults.Price = price
	}
	if v, ok := lookupEnv(EnvCurrency); ok && v != "" {
		cfg.Defaults.Currency = v
	}
	if v, ok := lookupEnv(EnvOutputFormat); ok && v != "" {
		cfg.Output.DefaultFormat = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		cfg.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		cfg.Logging.File = v
	}
	return nil
}
