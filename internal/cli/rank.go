package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/cbamcalc/internal/cli/pagination"
	"github.com/rshade/cbamcalc/internal/config"
	"github.com/rshade/cbamcalc/internal/engine"
	"github.com/rshade/cbamcalc/internal/logging"
	"github.com/rshade/cbamcalc/internal/tui"
)

// RankParams holds the parameters for the rank command execution.
type RankParams struct {
	CNCode   string
	Exclude  []string
	Quantity float64
	Price    float64
	Currency string
	Output   string
	Page     pagination.Params
}

// NewRankCmd creates the "rank" command, which lists every supplier country
// for a CN code from lowest to highest total emission factor.
func NewRankCmd() *cobra.Command {
	var params RankParams

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank supplier countries by total emission factor",
		Long: `List every country with a positive total emission factor for a CN code,
lowest first, with the emissions and CBAM cost for the given quantity and price.
The first row is the country compare reports as the best alternative when the
same countries are excluded.`,
		Example: `  # Full ranking for pig iron
  cbamcalc rank --cn-code 7201

  # Top 5, leaving out the current supplier
  cbamcalc rank --cn-code 7201 --exclude India --limit 5

  # Alphabetical, second page of 10
  cbamcalc rank --sort country --page 2 --page-size 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromContext(cmd.Context())
			changed := cmd.Flags().Changed
			if !changed("cn-code") {
				params.CNCode = cfg.Defaults.CNCode
			}
			if !changed("quantity") {
				params.Quantity = cfg.Defaults.Quantity
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
			return executeRank(cmd, params, cfg.Output.Precision)
		},
	}

	cmd.Flags().StringVar(&params.CNCode, "cn-code", "", "CN code of the imported good")
	cmd.Flags().StringArrayVar(&params.Exclude, "exclude", nil, "country to leave out of the ranking (repeatable)")
	cmd.Flags().Float64Var(&params.Quantity, "quantity", 0, "import quantity in tonnes")
	cmd.Flags().Float64Var(&params.Price, "price", 0, "carbon price per tonne CO2e")
	cmd.Flags().StringVar(&params.Currency, "currency", "", "currency code of the carbon price")
	cmd.Flags().StringVar(&params.Output, "output", "", "Output format (table, json, ndjson)")
	cmd.Flags().IntVar(&params.Page.Limit, "limit", pagination.DefaultLimit, "maximum number of suppliers (0 = all)")
	cmd.Flags().IntVar(&params.Page.Offset, "offset", pagination.DefaultOffset, "number of suppliers to skip")
	cmd.Flags().IntVar(&params.Page.Page, "page", 0, "1-based page number (use with --page-size)")
	cmd.Flags().IntVar(&params.Page.PageSize, "page-size", 0, "suppliers per page")
	cmd.Flags().StringVar(&params.Page.Sort, "sort", "", "sort by rank, total or country, optionally ':asc' or ':desc'")

	return cmd
}

// executeRank ranks, sorts and paginates the suppliers and renders them.
// Statistics always cover the full ranking, not just the visible page.
func executeRank(cmd *cobra.Command, params RankParams, precision int) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if !config.IsValidOutputFormat(params.Output) {
		return usageError(fmt.Errorf("%w: got %q", config.ErrInvalidFormat, params.Output))
	}
	q := engine.Query{CNCode: params.CNCode, Quantity: params.Quantity, Price: params.Price}
	if err := q.Validate(); err != nil {
		return usageError(err)
	}
	if err := params.Page.Validate(); err != nil {
		return usageError(err)
	}
	field, order, err := pagination.ParseSort(params.Page.Sort)
	if err != nil {
		return usageError(err)
	}
	sorter := pagination.NewSupplierSorter()
	if err = sorter.Validate(field); err != nil {
		return usageError(err)
	}

	eng, err := loadEngine(ctx, configFromContext(ctx))
	if err != nil {
		return err
	}
	if err = requireCode(eng.Table(), params.CNCode); err != nil {
		return err
	}

	ranked := eng.Rank(params.CNCode, params.Exclude...)
	visible := pagination.Apply(params.Page, sorter.Sort(ranked, field, order))
	log.Debug().Ctx(ctx).
		Str("cn_code", params.CNCode).
		Int("suppliers", len(ranked)).
		Int("visible", len(visible)).
		Msg("suppliers ranked")

	out := RankOutput{
		CNCode:      params.CNCode,
		Description: eng.Table().Description(params.CNCode),
		Excluded:    params.Exclude,
		Suppliers:   visible,
		Stats:       engine.Summarize(ranked),
		Pagination:  pagination.NewMeta(params.Page, len(ranked)),
	}
	return renderRankResult(cmd.OutOrStdout(), params.Output, out, params.Quantity, params.Price,
		tui.RenderOptions{Currency: params.Currency, Precision: precision})
}
