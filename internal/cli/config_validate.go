package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/cbamcalc/internal/factors"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and reference table",
		Long: `Validates the effective configuration and loads every configured reference
table, reporting rows that would be skipped.

This includes:
- Configuration syntax and value validation
- Presence of the required table columns
- Per-file row counts and skipped rows (with --verbose)
- The default CN code being present in the table`,
		Example: `  # Validate current configuration
  cbamcalc config validate

  # Show every skipped row
  cbamcalc config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := configFromContext(cmd.Context())

	if err := cfg.Validate(); err != nil {
		return usageError(fmt.Errorf("configuration validation failed: %w", err))
	}
	if len(cfg.Table.Paths) == 0 {
		return usageError(errNoTable)
	}

	table, reports, err := factors.LoadFiles(cmd.Context(), cfg.Table.Paths, cfg.Table.Sheet)
	if err != nil {
		return fmt.Errorf("reference table validation failed: %w", err)
	}

	skipped := 0
	for _, r := range reports {
		skipped += len(r.Skipped)
		cmd.Printf("%s: %d rows, %d loaded, %d skipped\n", r.Source, r.Rows, r.Loaded, len(r.Skipped))
		if verbose {
			for _, e := range r.Skipped {
				cmd.Printf("  line %d: %s\n", e.Line, e.Reason)
			}
		}
	}

	if !table.HasCode(cfg.Defaults.CNCode) {
		cmd.Printf("Warning: default CN code %q is not in the table\n", cfg.Defaults.CNCode)
	}
	if verbose {
		cmd.Printf("%d records, %d CN codes, %d countries\n",
			table.Len(), len(table.Codes()), len(table.Countries()))
		cmd.Printf("Output format: %s\n", cfg.Output.DefaultFormat)
	}

	if skipped > 0 {
		cmd.Printf("Configuration is valid (%d table rows skipped)\n", skipped)
		return nil
	}
	cmd.Println("Configuration is valid")
	return nil
}
