package greenops

import (
	"fmt"
	"math"
)

// Calculate expresses an emission as miles driven, smartphone charges and
// days of home electricity.
//
// Emissions below MinEquivalencyThresholdKg give an empty output without an
// error; invalid units or negative values return the normalisation error.
func Calculate(e Emission) (EquivalencyOutput, error) {
	kg, err := ToKg(e)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor
	homeDays := kg / EPAHomeDayFactor
	for _, v := range []float64{miles, phones, homeDays} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
	}

	results := []EquivalencyResult{
		{Type: EquivalencyMilesDriven, Value: miles, FormattedValue: formatEquivalency(miles), Label: "miles driven"},
		{
			Type:           EquivalencySmartphonesCharged,
			Value:          phones,
			FormattedValue: formatEquivalency(phones),
			Label:          "smartphones charged",
		},
		{Type: EquivalencyHomeDays, Value: homeDays, FormattedValue: formatEquivalency(homeDays), Label: "days of home electricity"},
	}

	return EquivalencyOutput{
		InputKg: kg,
		Results: results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or powering a home for ~%s days",
			results[0].FormattedValue, results[2].FormattedValue),
	}, nil
}

// ForTonnes is Calculate for a figure in tonnes CO2e. Failures yield an empty
// output, which renderers simply omit.
func ForTonnes(tonnes float64) EquivalencyOutput {
	out, err := Calculate(Tonnes(tonnes))
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}
	}
	return out
}

func formatEquivalency(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
