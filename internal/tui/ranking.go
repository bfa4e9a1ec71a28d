package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/cbamcalc/internal/engine"
	"github.com/rshade/cbamcalc/internal/greenops"
)

// Column widths of the supplier table.
const (
	colRankWidth    = 6
	colCountryWidth = 24
	colFactorWidth  = 16
	colTotalWidth   = 20
	colCostWidth    = 16
	factorPrecision = 3
)

// SupplierRow is one display-ready line of the supplier ranking.
type SupplierRow struct {
	Rank      string
	Country   string
	Factor    string
	Emissions string
	Cost      string
}

// NewSupplierRow formats a supplier for the given quantity and price.
func NewSupplierRow(s engine.Supplier, quantity, price float64, opts RenderOptions) SupplierRow {
	total := s.TotalFactor * quantity
	rank := strconv.Itoa(s.Rank)
	if s.Rank == 1 {
		rank += " " + IconBest
	}
	return SupplierRow{
		Rank:      rank,
		Country:   s.Country,
		Factor:    greenops.FormatFloat(s.TotalFactor, factorPrecision),
		Emissions: greenops.FormatEmissions(total, opts.Precision),
		Cost:      greenops.FormatMoney(total*price, opts.Currency, opts.Precision),
	}
}

// NewSupplierTable creates a table model for a supplier ranking. height is
// the number of visible rows; zero shows every row.
func NewSupplierTable(suppliers []engine.Supplier, quantity, price float64, opts RenderOptions, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: colRankWidth},
		{Title: "Country", Width: colCountryWidth},
		{Title: "Total factor", Width: colFactorWidth},
		{Title: "Total emissions", Width: colTotalWidth},
		{Title: "CBAM cost", Width: colCostWidth},
	}

	rows := make([]table.Row, len(suppliers))
	for i, s := range suppliers {
		r := NewSupplierRow(s, quantity, price, opts)
		rows[i] = table.Row{r.Rank, r.Country, r.Factor, r.Emissions, r.Cost}
	}

	if height <= 0 {
		height = len(rows)
	}
	// The table height includes its header.
	height += lipgloss.Height(TableHeaderStyle.Render(columns[0].Title))
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// RenderSupplierStats renders the one-line summary under a ranking.
func RenderSupplierStats(st engine.SupplierStats) string {
	if st.Count == 0 {
		return InfoStyle.Render(noAltMessage)
	}
	parts := []string{
		"suppliers " + strconv.Itoa(st.Count),
		"min " + greenops.FormatFloat(st.Min, factorPrecision),
		"median " + greenops.FormatFloat(st.Median, factorPrecision),
		"mean " + greenops.FormatFloat(st.Mean, factorPrecision),
		"max " + greenops.FormatFloat(st.Max, factorPrecision),
		"stddev " + greenops.FormatFloat(st.StdDev, factorPrecision),
	}
	return LabelStyle.Render(strings.Join(parts, "  "))
}
