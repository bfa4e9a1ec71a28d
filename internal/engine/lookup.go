package engine

import (
	"github.com/rshade/cbamcalc/internal/factors"
)

// LookupFactor returns the first factor (in table order) for code and country
// whose type matches typ case-insensitively. An absent factor is a normal
// outcome and is reported through Factor.Present.
func LookupFactor(table *factors.Table, code, country string, typ factors.FactorType) Factor {
	return factorOf(table.ForCountry(code, country), typ)
}

// factorOf picks the first record of type typ from rows.
func factorOf(rows []factors.Record, typ factors.FactorType) Factor {
	for _, r := range rows {
		if r.IsType(typ) {
			return Factor{Value: r.Value, Present: true}
		}
	}
	return Factor{}
}

// ComputeProfile computes the emission and cost figures for one country.
//
// Each absent factor is replaced by zero before multiplying, so the profile is
// always fully populated. Total uses the Total factor only; it is never derived
// from Direct and Indirect.
func ComputeProfile(table *factors.Table, code, country string, quantity, price float64) Profile {
	rows := table.ForCountry(code, country)
	direct := factorOf(rows, factors.TypeDirect).OrZero()
	indirect := factorOf(rows, factors.TypeIndirect).OrZero()
	total := factorOf(rows, factors.TypeTotal).OrZero()

	totalEmissions := total * quantity
	return Profile{
		Direct:   direct * quantity,
		Indirect: indirect * quantity,
		Total:    totalEmissions,
		Cost:     totalEmissions * price,
	}
}

// candidate reports whether r is eligible as an alternative supplier.
func candidate(r factors.Record, code string, excluded map[string]struct{}) bool {
	if r.CNCode != code || !r.IsType(factors.TypeTotal) || r.Value <= 0 {
		return false
	}
	_, skip := excluded[r.Country]
	return !skip
}

func exclusionSet(countries []string) map[string]struct{} {
	set := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		set[c] = struct{}{}
	}
	return set
}

// FindBestAlternative returns the country with the lowest positive Total factor
// for code, ignoring the excluded countries. Ties go to the row that comes
// first in the table. ok is false when no row qualifies.
func FindBestAlternative(table *factors.Table, code string, excluded ...string) (country string, ok bool) {
	skip := exclusionSet(excluded)
	best := 0.0
	table.Each(func(r factors.Record) bool {
		if !candidate(r, code, skip) {
			return true
		}
		if !ok || r.Value < best {
			country, best, ok = r.Country, r.Value, true
		}
		return true
	})
	return country, ok
}
