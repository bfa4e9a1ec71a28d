package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/cbamcalc/internal/config"
	"github.com/rshade/cbamcalc/internal/engine"
	"github.com/rshade/cbamcalc/internal/logging"
	"github.com/rshade/cbamcalc/internal/tui"
)

// CompareParams holds the parameters for the compare command execution.
// Exported for testing.
type CompareParams struct {
	CNCode     string
	Quantity   float64
	Origin     string
	Comparison string
	Price      float64
	Currency   string

	Output        string
	Precision     int
	NoEquivalency bool
}

// NewCompareCmd creates the "compare" command, which evaluates one import
// against two countries and the best alternative supplier.
//
// Flags left unset fall back to the defaults section of the configuration.
func NewCompareCmd() *cobra.Command {
	var params CompareParams

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare emissions and CBAM cost between two countries",
		Long: `Compute the direct, indirect and total embedded emissions and the CBAM cost
of an import for an origin and a comparison country, and find the country with
the lowest total emission factor for the same CN code.

A country without data for the code is reported as a warning and shown with
zero figures; the other side is still computed.`,
		Example: `  # The defaults: 150 t of CN 7201 from India vs South Korea at 75.51 EUR/t
  cbamcalc compare

  # Explicit query, JSON output
  cbamcalc compare --cn-code 7208 --quantity 40 --origin China --comparison Turkey \
    --price 80 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyCompareDefaults(cmd, &params, configFromContext(cmd.Context()))
			return executeCompare(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.CNCode, "cn-code", "", "CN code of the imported good")
	cmd.Flags().Float64Var(&params.Quantity, "quantity", 0, "import quantity in tonnes")
	cmd.Flags().StringVar(&params.Origin, "origin", "", "country of origin")
	cmd.Flags().StringVar(&params.Comparison, "comparison", "", "country to compare against")
	cmd.Flags().Float64Var(&params.Price, "price", 0, "carbon price per tonne CO2e")
	cmd.Flags().StringVar(&params.Currency, "currency", "", "currency code of the carbon price")
	cmd.Flags().StringVar(&params.Output, "output", "", "Output format (table, json, ndjson)")
	cmd.Flags().IntVar(&params.Precision, "precision", 0, "decimal places in table output")
	cmd.Flags().BoolVar(&params.NoEquivalency, "no-equivalency", false, "omit everyday emission equivalents")

	return cmd
}

// applyCompareDefaults fills every flag the user did not set from cfg.
func applyCompareDefaults(cmd *cobra.Command, params *CompareParams, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if !changed("cn-code") {
		params.CNCode = cfg.Defaults.CNCode
	}
	if !changed("quantity") {
		params.Quantity = cfg.Defaults.Quantity
	}
	if !changed("origin") {
		params.Origin = cfg.Defaults.Origin
	}
	if !changed("comparison") {
		params.Comparison = cfg.Defaults.Comparison
	}
	if !changed("price") {
		params.Price = cfg.Defaults.Price
	}
	if !changed("currency") {
		params.Currency = cfg.Defaults.Currency
	}
	if !changed("output") {
		params.Output = cfg.Output.DefaultFormat
	}
	if !changed("precision") {
		params.Precision = cfg.Output.Precision
	}
}

// Query converts the parameters into an engine query.
func (p CompareParams) Query() engine.Query {
	return engine.Query{
		CNCode:     p.CNCode,
		Quantity:   p.Quantity,
		Origin:     p.Origin,
		Comparison: p.Comparison,
		Price:      p.Price,
	}
}

// executeCompare validates the query, evaluates it and renders the result.
func executeCompare(cmd *cobra.Command, params CompareParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if !config.IsValidOutputFormat(params.Output) {
		return usageError(fmt.Errorf("%w: got %q", config.ErrInvalidFormat, params.Output))
	}
	q := params.Query()
	if err := q.Validate(); err != nil {
		return usageError(err)
	}

	eng, err := loadEngine(ctx, configFromContext(ctx))
	if err != nil {
		return err
	}
	if err = requireCode(eng.Table(), q.CNCode); err != nil {
		return err
	}

	res := eng.Evaluate(q)
	for _, w := range res.Warnings {
		log.Warn().Ctx(ctx).
			Str("kind", string(w.Kind)).
			Str("cn_code", w.CNCode).
			Str("country", w.Country).
			Msg("no data for country")
	}
	log.Debug().Ctx(ctx).
		Str("cn_code", q.CNCode).
		Bool("has_alternative", res.HasAlternative()).
		Msg("comparison evaluated")

	return renderCompareResult(cmd.OutOrStdout(), params.Output, res, tui.RenderOptions{
		Currency:    params.Currency,
		Precision:   params.Precision,
		Equivalency: !params.NoEquivalency,
	})
}
