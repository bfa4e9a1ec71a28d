package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rshade/cbamcalc/internal/logging"
)

// configFileName is the file read from the config and project directories.
const configFileName = "config.yaml"

// GetConfigDir returns the cbamcalc configuration directory: $CBAMCALC_HOME
// (via lookupEnv) when set, otherwise ~/.cbamcalc.
func GetConfigDir(lookupEnv func(string) (string, bool)) (string, error) {
	if home, _ := lookupEnv(EnvHome); home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".cbamcalc"), nil
}

// GetConfigPath returns the path of the global config file.
func GetConfigPath(lookupEnv func(string) (string, bool)) (string, error) {
	dir, err := GetConfigDir(lookupEnv)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}
	return nil
}

// LoadOptions tunes Load.
type LoadOptions struct {
	// ConfigPath overrides the global config file location.
	ConfigPath string
	// ProjectDir overrides project overlay discovery.
	ProjectDir string
	// WorkDir is where project discovery and .env lookup start.
	WorkDir string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load builds the effective configuration: defaults, global file, project
// overlay, environment. The .env file in WorkDir is read first and fills in
// variables the environment does not set, including $CBAMCALC_HOME and
// $CBAMCALC_PROJECT_DIR. The result is validated.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	log := logging.FromContext(ctx)
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	if opts.WorkDir == "" {
		if wd, err := os.Getwd(); err == nil {
			opts.WorkDir = wd
		}
	}

	lookupEnv, err := WithDotEnv(opts.LookupEnv, filepath.Join(opts.WorkDir, ".env"))
	if err != nil {
		return nil, err
	}

	cfg := New()

	path := opts.ConfigPath
	if path == "" {
		p, err := GetConfigPath(lookupEnv)
		if err != nil {
			log.Warn().Ctx(ctx).Str("component", "config").Err(err).
				Msg("cannot locate global config, using defaults")
		}
		path = p
	}
	if path != "" {
		if err := LoadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if projectDir := ResolveProjectDir(ctx, opts.ProjectDir, opts.WorkDir, lookupEnv); projectDir != "" {
		overlay := filepath.Join(projectDir, configFileName)
		if _, err := os.Stat(overlay); err == nil {
			if err = MergeYAML(cfg, overlay); err != nil {
				return nil, err
			}
			log.Debug().Ctx(ctx).Str("component", "config").Str("overlay", overlay).
				Msg("applied project config")
		}
	}

	if err := ApplyEnv(cfg, lookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
