package engine

import (
	"github.com/rshade/cbamcalc/internal/factors"
)

// Engine evaluates queries against one reference table.
type Engine struct {
	table *factors.Table
}

// New returns an Engine bound to table. The table must not be modified afterwards.
func New(table *factors.Table) *Engine {
	return &Engine{table: table}
}

// Table returns the reference table the engine reads.
func (e *Engine) Table() *factors.Table {
	return e.table
}

// Evaluate runs q against the engine's table. See Evaluate.
func (e *Engine) Evaluate(q Query) Result {
	return Evaluate(e.table, q)
}

// Rank lists alternative suppliers for code. See RankSuppliers.
func (e *Engine) Rank(code string, excluded ...string) []Supplier {
	return RankSuppliers(e.table, code, excluded...)
}

// Evaluate compares the origin and comparison countries of q and looks up the
// best alternative supplier, excluding both selected countries.
//
// The two sides are independent: a side without any rows for the code gets an
// all-zero profile and a WarningNoDataForCountry, and the other side is still
// computed. Evaluate has no side effects; equal inputs give equal results.
func Evaluate(table *factors.Table, q Query) Result {
	res := Result{
		Query:       q,
		Description: table.Description(q.CNCode),
	}

	res.Origin = side(table, q, q.Origin, &res.Warnings)
	res.Comparison = side(table, q, q.Comparison, &res.Warnings)

	if country, ok := FindBestAlternative(table, q.CNCode, q.Origin, q.Comparison); ok {
		res.BestAlternative = &CountryProfile{
			Country: country,
			HasData: true,
			Profile: ComputeProfile(table, q.CNCode, country, q.Quantity, q.Price),
		}
	}
	return res
}

func side(table *factors.Table, q Query, country string, warnings *[]Warning) CountryProfile {
	cp := CountryProfile{Country: country, HasData: table.HasData(q.CNCode, country)}
	if !cp.HasData {
		*warnings = append(*warnings, Warning{
			Kind:    WarningNoDataForCountry,
			CNCode:  q.CNCode,
			Country: country,
		})
		return cp
	}
	cp.Profile = ComputeProfile(table, q.CNCode, country, q.Quantity, q.Price)
	return cp
}
