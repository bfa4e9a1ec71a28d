package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/cbamcalc/internal/config"
	"github.com/rshade/cbamcalc/internal/factors"
)

// CodeEntry is one CN code known to the reference table.
type CodeEntry struct {
	CNCode      string `json:"cn_code"`
	Description string `json:"description"`
	Countries   int    `json:"countries"`
}

// NewCodesCmd creates the "codes" command listing the CN codes in the table.
func NewCodesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List the CN codes in the reference table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			format, err := outputFormat(cmd, output, cfg)
			if err != nil {
				return err
			}
			eng, err := loadEngine(ctx, cfg)
			if err != nil {
				return err
			}
			return renderCodes(cmd.OutOrStdout(), format, listCodes(eng.Table()))
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "Output format (table, json, ndjson)")
	return cmd
}

// NewCountriesCmd creates the "countries" command listing the countries in
// the table, optionally only those with data for one CN code.
func NewCountriesCmd() *cobra.Command {
	var (
		output string
		code   string
	)

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List the countries in the reference table",
		Example: `  cbamcalc countries
  cbamcalc countries --cn-code 7201 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			format, err := outputFormat(cmd, output, cfg)
			if err != nil {
				return err
			}
			eng, err := loadEngine(ctx, cfg)
			if err != nil {
				return err
			}
			table := eng.Table()

			countries := table.Countries()
			if code != "" {
				if err = requireCode(table, code); err != nil {
					return err
				}
				countries = table.CountriesFor(code)
			}
			return renderStrings(cmd.OutOrStdout(), format, countries)
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "Output format (table, json, ndjson)")
	cmd.Flags().StringVar(&code, "cn-code", "", "only countries with data for this CN code")
	return cmd
}

// outputFormat resolves --output against the configured default.
func outputFormat(cmd *cobra.Command, flagValue string, cfg *config.Config) (string, error) {
	format := flagValue
	if !cmd.Flags().Changed("output") {
		format = cfg.Output.DefaultFormat
	}
	if !config.IsValidOutputFormat(format) {
		return "", usageError(fmt.Errorf("%w: got %q", config.ErrInvalidFormat, format))
	}
	return format, nil
}

func listCodes(table *factors.Table) []CodeEntry {
	codes := table.Codes()
	out := make([]CodeEntry, len(codes))
	for i, c := range codes {
		out[i] = CodeEntry{
			CNCode:      c,
			Description: table.Description(c),
			Countries:   len(table.CountriesFor(c)),
		}
	}
	return out
}

func renderCodes(w io.Writer, format string, codes []CodeEntry) error {
	switch format {
	case config.OutputFormatJSON:
		return writeJSON(w, codes)
	case config.OutputFormatNDJSON:
		for _, c := range codes {
			if err := writeNDJSON(w, c); err != nil {
				return err
			}
		}
		return nil
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CN CODE\tCOUNTRIES\tDESCRIPTION")
		for _, c := range codes {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", c.CNCode, c.Countries, c.Description)
		}
		return tw.Flush()
	}
}

func renderStrings(w io.Writer, format string, values []string) error {
	switch format {
	case config.OutputFormatJSON:
		if values == nil {
			values = []string{}
		}
		return writeJSON(w, values)
	case config.OutputFormatNDJSON:
		for _, v := range values {
			if err := writeNDJSON(w, v); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}
}
