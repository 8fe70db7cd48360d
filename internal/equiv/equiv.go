// Package equiv converts an abstract annual footprint (tonnes CO2e) into
// relatable real-world equivalencies: tree seedlings needed to offset it,
// miles driven, and smartphones charged.
package equiv

import "fmt"

// Result is a single calculated equivalency.
type Result struct {
	// Value is the raw calculated equivalency value.
	Value float64 `json:"value"`

	// FormattedValue is the display-ready string with separators/scaling.
	FormattedValue string `json:"formatted_value"`

	// Label is the descriptive phrase (e.g., "miles driven").
	Label string `json:"label"`
}

// Output contains all equivalency results for display.
type Output struct {
	// InputKg is the footprint in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	// Trees is the tree seedlings (grown 10 years) needed to offset the
	// footprint, from the configured trees-per-tonne rate.
	Trees Result `json:"trees"`

	// MilesDriven is the passenger-vehicle miles equivalent.
	MilesDriven Result `json:"miles_driven"`

	// SmartphonesCharged is the smartphone full-charge equivalent.
	SmartphonesCharged Result `json:"smartphones_charged"`

	// DisplayText is the prose form for CLI output.
	DisplayText string `json:"display_text"`

	// IsEmpty is true when the footprint was below the display threshold.
	IsEmpty bool `json:"is_empty"`
}

// Calculate computes equivalencies for an annual footprint in tonnes CO2e.
// treesPerTonne comes from the conversions configuration. Footprints below
// MinEquivalencyThresholdKg (after conversion to kg) produce an empty
// output; a negative footprint (a net credit) also does, since "negative
// trees" is not a useful display.
func Calculate(totalTonnes, treesPerTonne float64) Output {
	kg := totalTonnes * KgPerTonne

	if kg < MinEquivalencyThresholdKg {
		return Output{InputKg: kg, IsEmpty: true}
	}

	trees := totalTonnes * treesPerTonne
	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor

	out := Output{
		InputKg: kg,
		Trees: Result{
			Value:          trees,
			FormattedValue: formatValue(trees),
			Label:          "tree seedlings to offset",
		},
		MilesDriven: Result{
			Value:          miles,
			FormattedValue: formatValue(miles),
			Label:          "miles driven",
		},
		SmartphonesCharged: Result{
			Value:          phones,
			FormattedValue: formatValue(phones),
			Label:          "smartphones charged",
		},
	}

	out.DisplayText = fmt.Sprintf(
		"Equivalent to driving ~%s miles or charging ~%s smartphones; ~%s tree seedlings would offset it",
		out.MilesDriven.FormattedValue,
		out.SmartphonesCharged.FormattedValue,
		out.Trees.FormattedValue,
	)

	return out
}
