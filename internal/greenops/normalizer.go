package greenops

import (
	"math"
	"strings"
)

// unitFactor returns the kilogram factor for a unit, matched case-insensitively.
func unitFactor(unit string) (float64, bool) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(unit)), "co2e") {
	case "kg":
		return KgToKg, true
	case "t":
		return TonsToKg, true
	default:
		return 0, false
	}
}

// ToKg converts e to kilograms CO2e.
func ToKg(e Emission) (float64, error) {
	if math.IsInf(e.Value, 0) || math.IsNaN(e.Value) {
		return 0, ErrCalculationOverflow
	}
	if e.Value < 0 {
		return 0, ErrNegativeValue
	}
	factor, ok := unitFactor(e.Unit)
	if !ok {
		return 0, ErrInvalidUnit
	}
	kg := e.Value * factor
	if math.IsInf(kg, 0) {
		return 0, ErrCalculationOverflow
	}
	return kg, nil
}
