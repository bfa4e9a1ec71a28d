// Package greenops turns CO2e figures into display text.
//
// It normalises carbon quantities to kilograms, formats numbers and money with
// thousand separators, and expresses emissions as everyday equivalencies
// ("driving ~X miles") using EPA-published conversion factors.
package greenops

import "fmt"

// EquivalencyType is a category of everyday equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven is miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota
	// EquivalencySmartphonesCharged is full smartphone charges.
	EquivalencySmartphonesCharged
	// EquivalencyHomeDays is days of average US home electricity use.
	EquivalencyHomeDays
)

// String returns the name of the equivalency type.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// Emission is a carbon quantity with its unit.
type Emission struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"` // g, kg, t, lb, optionally suffixed with CO2e
}

// Tonnes returns an Emission in tonnes CO2e.
func Tonnes(v float64) Emission {
	return Emission{Value: v, Unit: UnitTonnesCO2e}
}

// EquivalencyResult is one calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput holds all equivalencies for one emission figure.
type EquivalencyOutput struct {
	InputKg     float64             `json:"input_kg"`
	Results     []EquivalencyResult `json:"results"`
	DisplayText string              `json:"display_text"`
	IsEmpty     bool                `json:"is_empty"`
}
