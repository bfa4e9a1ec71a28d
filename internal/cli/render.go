package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rshade/cbamcalc/internal/cli/pagination"
	"github.com/rshade/cbamcalc/internal/config"
	"github.com/rshade/cbamcalc/internal/engine"
	"github.com/rshade/cbamcalc/internal/tui"
)

// CompareOutput is the JSON shape of a comparison.
type CompareOutput struct {
	engine.Result
	Currency string          `json:"currency"`
	Savings  *engine.Savings `json:"savings,omitempty"`
}

func newCompareOutput(res engine.Result, currency string) CompareOutput {
	out := CompareOutput{Result: res, Currency: currency}
	if s, ok := res.Savings(); ok {
		out.Savings = &s
	}
	return out
}

// renderCompareResult writes res in the requested format.
func renderCompareResult(w io.Writer, format string, res engine.Result, opts tui.RenderOptions) error {
	switch format {
	case config.OutputFormatJSON:
		return writeJSON(w, newCompareOutput(res, opts.Currency))
	case config.OutputFormatNDJSON:
		return writeNDJSON(w, newCompareOutput(res, opts.Currency))
	default:
		tui.ConfigureColor(w)
		_, err := fmt.Fprint(w, tui.RenderComparison(res, opts))
		return err
	}
}

// RankOutput is the JSON shape of a supplier ranking.
type RankOutput struct {
	CNCode      string               `json:"cn_code"`
	Description string               `json:"description"`
	Excluded    []string             `json:"excluded,omitempty"`
	Suppliers   []engine.Supplier    `json:"suppliers"`
	Stats       engine.SupplierStats `json:"stats"`
	Pagination  pagination.Meta      `json:"pagination"`
}

// renderRankResult writes a ranking. NDJSON emits one supplier per line.
func renderRankResult(w io.Writer, format string, out RankOutput, quantity, price float64, opts tui.RenderOptions) error {
	switch format {
	case config.OutputFormatJSON:
		if out.Suppliers == nil {
			out.Suppliers = []engine.Supplier{}
		}
		return writeJSON(w, out)
	case config.OutputFormatNDJSON:
		for _, s := range out.Suppliers {
			if err := writeNDJSON(w, s); err != nil {
				return err
			}
		}
		return nil
	default:
		tui.ConfigureColor(w)
		var err error
		p := func(s string) {
			if err == nil {
				_, err = fmt.Fprintln(w, s)
			}
		}
		p(tui.HeaderStyle.Render("CN Code "+out.CNCode) + tui.LabelStyle.Render("  "+out.Description))
		if len(out.Suppliers) > 0 {
			p(tui.NewSupplierTable(out.Suppliers, quantity, price, opts, 0).View())
		}
		p(tui.RenderSupplierStats(out.Stats))
		if out.Pagination.TotalPages > 1 {
			p(tui.InfoStyle.Render(fmt.Sprintf("page %d of %d (%d suppliers)",
				out.Pagination.CurrentPage, out.Pagination.TotalPages, out.Pagination.TotalItems)))
		}
		return err
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeNDJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
