package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/cbamcalc/internal/config"
	"github.com/rshade/cbamcalc/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// Persistent flag names.
const (
	flagDebug      = "debug"
	flagConfig     = "config"
	flagProjectDir = "project-dir"
	flagTable      = "table"
	flagSheet      = "sheet"
)

// annotationLenientConfig marks commands that must run even when the
// configuration files fail to load or validate.
const annotationLenientConfig = "cbamcalc/lenient-config"

type (
	configKey    struct{}
	envKey       struct{}
	logCloserKey struct{}
)

// logCloser holds the log file opened for one execution.
type logCloser struct {
	result *logging.LogPathResult
}

// Execute runs root with ctx and closes the log file opened for the command,
// whether or not the command succeeded.
func Execute(ctx context.Context, root *cobra.Command) error {
	lc := &logCloser{}
	err := root.ExecuteContext(context.WithValue(ctx, logCloserKey{}, lc))
	if cerr := lc.result.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// contextWithEnv stores the environment lookup the root command was built with.
func contextWithEnv(ctx context.Context, lookupEnv func(string) (string, bool)) context.Context {
	return context.WithValue(ctx, envKey{}, lookupEnv)
}

// envFromContext returns the stored environment lookup, or os.LookupEnv.
func envFromContext(ctx context.Context) func(string) (string, bool) {
	if ctx != nil {
		if fn, ok := ctx.Value(envKey{}).(func(string) (string, bool)); ok && fn != nil {
			return fn
		}
	}
	return os.LookupEnv
}

// contextWithConfig stores the effective configuration for subcommands.
func contextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the configuration loaded by the root command, or
// the built-in defaults when none was loaded (commands run in isolation).
func configFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.New()
}

// NewRootCmd creates the root Cobra command for the cbamcalc CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit environment
// lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "cbamcalc",
		Short:   "Embedded emissions and CBAM cost calculator",
		Long:    "cbamcalc: compare the embedded carbon emissions and CBAM cost of an import across supplier countries",
		Version: ver,
		Example: rootCmdExample,
		// Errors are printed by main with their exit code.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, loadErr := loadConfig(cmd, lookupEnv)
			if loadErr != nil {
				if cmd.Annotations[annotationLenientConfig] == "" {
					return usageError(loadErr)
				}
				cfg = config.New()
				applyTableFlags(cmd, cfg)
			}
			result := setupLogging(cmd, cfg)
			logResult = &result
			if lc, ok := cmd.Context().Value(logCloserKey{}).(*logCloser); ok {
				lc.result = logResult
			}
			if loadErr != nil {
				logger.Warn().Ctx(cmd.Context()).Err(loadErr).
					Msg("configuration failed to load, continuing with defaults")
			}
			ctx := contextWithConfig(cmd.Context(), cfg)
			cmd.SetContext(contextWithEnv(ctx, lookupEnv))
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return logResult.Close()
		},
	}

	cmd.PersistentFlags().Bool(flagDebug, false, "enable debug logging")
	cmd.PersistentFlags().String(flagConfig, "", "config file (default $CBAMCALC_HOME/config.yaml or ~/.cbamcalc/config.yaml)")
	cmd.PersistentFlags().String(flagProjectDir, "", "project directory holding .cbamcalc/config.yaml")
	cmd.PersistentFlags().StringArray(flagTable, nil,
		"emission factor table (.csv, .xlsx); repeat to load several files in order")
	cmd.PersistentFlags().String(flagSheet, "", "worksheet to read from .xlsx tables (default: first sheet)")

	cmd.AddCommand(NewCompareCmd(), NewRankCmd(), NewCodesCmd(), NewCountriesCmd(), newConfigCmd())
	return cmd
}

// loadConfig builds the effective configuration and applies the persistent
// flags on top of it.
func loadConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString(flagConfig)
	projectDir, _ := cmd.Flags().GetString(flagProjectDir)

	cfg, err := config.Load(cmd.Context(), config.LoadOptions{
		ConfigPath: configPath,
		ProjectDir: projectDir,
		LookupEnv:  lookupEnv,
	})
	if err != nil {
		return nil, err
	}
	applyTableFlags(cmd, cfg)
	return cfg, nil
}

// applyTableFlags copies --table and --sheet onto cfg when given.
func applyTableFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed(flagTable) {
		cfg.Table.Paths, _ = cmd.Flags().GetStringArray(flagTable)
	}
	if cmd.Flags().Changed(flagSheet) {
		cfg.Table.Sheet, _ = cmd.Flags().GetString(flagSheet)
	}
}

const rootCmdExample = `  # Compare India and South Korea for pig iron (CN 7201), 150 t at 75.51 EUR/t
  cbamcalc compare --cn-code 7201 --quantity 150 --origin India --comparison "South Korea"

  # Same comparison as JSON, reading the factors from a workbook
  cbamcalc --table factors.xlsx --sheet Iron compare --output json

  # Rank every supplier country for a code
  cbamcalc rank --cn-code 7201 --limit 10

  # List the codes and countries the table covers
  cbamcalc codes
  cbamcalc countries --cn-code 7201

  # Write a default configuration file
  cbamcalc config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
