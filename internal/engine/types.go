// Package engine computes embedded emissions and CBAM costs for an import
// and finds the lowest-emission alternative supplier country.
//
// Everything here is a pure function of a read-only factors.Table and a Query:
// nothing is cached or mutated, so an Engine may be shared across goroutines.
// Missing data is never an error. An absent factor contributes zero, a country
// without rows yields an all-zero profile plus a Warning, and a code without a
// suitable alternative yields a nil BestAlternative.
package engine

import (
	"errors"
	"fmt"
	"math"
)

// Query is one comparison request.
type Query struct {
	CNCode     string  `json:"cn_code"`
	Quantity   float64 `json:"quantity"` // tonnes
	Origin     string  `json:"origin"`
	Comparison string  `json:"comparison"`
	Price      float64 `json:"price"` // per tonne CO2e
}

// Query validation errors.
var (
	ErrNegativeQuantity = errors.New("quantity must be >= 0")
	ErrNegativePrice    = errors.New("carbon price must be >= 0")
	ErrNonFiniteInput   = errors.New("quantity and price must be finite numbers")
	ErrMissingCNCode    = errors.New("CN code is required")
)

// Validate checks the boundary rules a caller must enforce before Evaluate.
// Evaluate itself does not call it.
func (q Query) Validate() error {
	if q.CNCode == "" {
		return ErrMissingCNCode
	}
	if math.IsNaN(q.Quantity) || math.IsInf(q.Quantity, 0) ||
		math.IsNaN(q.Price) || math.IsInf(q.Price, 0) {
		return ErrNonFiniteInput
	}
	if q.Quantity < 0 {
		return fmt.Errorf("%w: got %g", ErrNegativeQuantity, q.Quantity)
	}
	if q.Price < 0 {
		return fmt.Errorf("%w: got %g", ErrNegativePrice, q.Price)
	}
	return nil
}

// Factor is the outcome of a single factor lookup. Present is false when the
// table has no matching row.
type Factor struct {
	Value   float64
	Present bool
}

// OrZero is the zero-substitution step for absent factors.
func (f Factor) OrZero() float64 {
	if !f.Present {
		return 0
	}
	return f.Value
}

// Profile holds the emission and cost figures for one country.
// Total comes from the table's Total factor and is not Direct + Indirect.
type Profile struct {
	Direct   float64 `json:"direct_emissions"`
	Indirect float64 `json:"indirect_emissions"`
	Total    float64 `json:"total_emissions"`
	Cost     float64 `json:"total_cost"`
}

// CountryProfile is a Profile labelled with its country.
type CountryProfile struct {
	Country string  `json:"country"`
	HasData bool    `json:"has_data"`
	Profile Profile `json:"profile"`
}

// WarningKind classifies non-fatal findings.
type WarningKind string

// WarningNoDataForCountry is raised when a (code, country) pair has no rows.
const WarningNoDataForCountry WarningKind = "no_data_for_country"

// Warning is a non-fatal finding reported alongside a Result.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	CNCode  string      `json:"cn_code"`
	Country string      `json:"country"`
}

// String renders the warning for humans.
func (w Warning) String() string {
	switch w.Kind {
	case WarningNoDataForCountry:
		return fmt.Sprintf("No data found for CN Code %s in %s.", w.CNCode, w.Country)
	default:
		return fmt.Sprintf("%s: CN Code %s, %s", w.Kind, w.CNCode, w.Country)
	}
}

// Result is the composite outcome of Evaluate.
type Result struct {
	Query           Query           `json:"query"`
	Description     string          `json:"description"`
	Origin          CountryProfile  `json:"origin"`
	Comparison      CountryProfile  `json:"comparison"`
	BestAlternative *CountryProfile `json:"best_alternative"`
	Warnings        []Warning       `json:"warnings,omitempty"`
}

// HasAlternative reports whether a best alternative was found.
func (r *Result) HasAlternative() bool {
	return r != nil && r.BestAlternative != nil
}

// Delta is the difference between two profiles; positive values mean the
// alternative emits or costs less.
type Delta struct {
	Emissions float64 `json:"emissions"`
	Cost      float64 `json:"cost"`
}

// Savings compares the best alternative against both selected countries.
type Savings struct {
	Country      string `json:"country"`
	VsOrigin     Delta  `json:"vs_origin"`
	VsComparison Delta  `json:"vs_comparison"`
}

// Savings reports what switching to the best alternative would save.
// ok is false when there is no alternative.
func (r *Result) Savings() (Savings, bool) {
	if !r.HasAlternative() {
		return Savings{}, false
	}
	alt := r.BestAlternative.Profile
	return Savings{
		Country:      r.BestAlternative.Country,
		VsOrigin:     delta(r.Origin.Profile, alt),
		VsComparison: delta(r.Comparison.Profile, alt),
	}, true
}

func delta(from, to Profile) Delta {
	return Delta{
		Emissions: from.Total - to.Total,
		Cost:      from.Cost - to.Cost,
	}
}
