package equiv

// EPA Formula Constants
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// Each constant is the kg CO2e for one unit of the activity; the
// equivalency is kg_CO2e / factor.
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per smartphone full charge.
	EPASmartphoneChargeFactor = 0.00822
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the minimum kg CO2e for showing
	// equivalencies. Below this the numbers are meaninglessly small.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold is where display switches to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold is where display switches to "~X.X billion".
	BillionThreshold = 1_000_000_000
)

// KgPerTonne converts tonnes to kilograms for equivalency math.
const KgPerTonne = 1000.0
