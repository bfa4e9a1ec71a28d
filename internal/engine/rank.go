package engine

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/rshade/cbamcalc/internal/factors"
)

// Supplier is one candidate country with its Total factor.
type Supplier struct {
	Rank        int     `json:"rank"`
	Country     string  `json:"country"`
	TotalFactor float64 `json:"total_factor"`
	Description string  `json:"description,omitempty"`
}

// RankSuppliers lists every country eligible as an alternative for code,
// ordered by ascending Total factor. Eligibility is the same as for
// FindBestAlternative, so the first entry is always the best alternative.
// When a country has several Total rows only the first one counts.
func RankSuppliers(table *factors.Table, code string, excluded ...string) []Supplier {
	skip := exclusionSet(excluded)
	seen := make(map[string]struct{})
	var out []Supplier
	table.Each(func(r factors.Record) bool {
		if !candidate(r, code, skip) {
			return true
		}
		if _, dup := seen[r.Country]; dup {
			return true
		}
		seen[r.Country] = struct{}{}
		out = append(out, Supplier{Country: r.Country, TotalFactor: r.Value, Description: r.Description})
		return true
	})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalFactor < out[j].TotalFactor
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// SupplierStats summarises the Total factors of a supplier ranking.
type SupplierStats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
}

// Summarize computes statistics over the Total factors of suppliers. suppliers
// must be sorted ascending, as returned by RankSuppliers.
func Summarize(suppliers []Supplier) SupplierStats {
	if len(suppliers) == 0 {
		return SupplierStats{}
	}
	xs := make([]float64, len(suppliers))
	for i, s := range suppliers {
		xs[i] = s.TotalFactor
	}

	st := SupplierStats{
		Count:  len(xs),
		Min:    xs[0],
		Max:    xs[len(xs)-1],
		Mean:   stat.Mean(xs, nil),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
	}
	if len(xs) > 1 {
		st.StdDev = stat.StdDev(xs, nil)
	}
	return st
}
