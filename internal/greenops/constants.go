package greenops

// EPA Greenhouse Gas Equivalencies (2024 edition), in kg CO2e per unit of
// activity: equivalency = kg_CO2e / factor.
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
const (
	EPAMilesDrivenFactor      = 0.192
	EPASmartphoneChargeFactor = 0.00822
	EPAHomeDayFactor          = 18.3
)

// Unit conversion factors to kilograms.
const (
	KgToKg   = 1.0
	TonsToKg = 1000.0
)

// Units used across cbamcalc.
const (
	// UnitTonnesCO2e is the unit of emission factors and computed emissions.
	UnitTonnesCO2e = "tCO2e"

	// DisplayUnit is the unit label shown next to emission figures.
	DisplayUnit = "Tonne CO2E"
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the smallest emission worth an equivalency.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches to "~X.X million" notation.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches to "~X.X billion" notation.
	BillionThreshold = 1_000_000_000
)
