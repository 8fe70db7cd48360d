package footprint

import "math"

// CategoryInput holds the raw per-category quantities a user reports.
// Quantities are monthly unless noted. Every field is sanitized
// independently before use: NaN/Inf and negative values become 0, and
// percent fields are additionally capped at 100. Bad input never fails an
// estimate; it is silently coerced.
type CategoryInput struct {
	// Transport
	CarMiles             float64 `yaml:"car_miles"`              // miles driven per month
	Flights              float64 `yaml:"flights"`                // short-haul trips per year
	PublicTransportTrips float64 `yaml:"public_transport_trips"` // trips per month

	// Energy
	ElectricityUsage float64 `yaml:"electricity_usage"` // kWh per month
	GasUsage         float64 `yaml:"gas_usage"`         // units per month
	RenewablePercent float64 `yaml:"renewable_percent"` // 0-100

	// Food (weekly quantities)
	MeatMeals        float64 `yaml:"meat_meals"`
	DairyServings    float64 `yaml:"dairy_servings"`
	LocalFoodPercent float64 `yaml:"local_food_percent"` // 0-100

	// Waste
	WasteBags        float64 `yaml:"waste_bags"`        // bags per week
	RecyclingPercent float64 `yaml:"recycling_percent"` // 0-100

	// Shopping
	ShoppingSpend    float64 `yaml:"shopping_spend"`    // monthly general spend
	ElectronicsSpend float64 `yaml:"electronics_spend"` // annual electronics spend
}

// sanitizeAmount coerces a raw quantity to a usable non-negative number.
// NaN, Inf and negative values all become 0.
func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// sanitizePercent coerces a raw percentage into [0, 100].
func sanitizePercent(v float64) float64 {
	v = sanitizeAmount(v)
	if v > 100 {
		return 100
	}
	return v
}

// Sanitized returns a copy of the input with every field clamped to its
// valid range. Estimate applies this itself; it is exported so callers and
// tests can observe the exact coercion policy.
func (in CategoryInput) Sanitized() CategoryInput {
	return CategoryInput{
		CarMiles:             sanitizeAmount(in.CarMiles),
		Flights:              sanitizeAmount(in.Flights),
		PublicTransportTrips: sanitizeAmount(in.PublicTransportTrips),
		ElectricityUsage:     sanitizeAmount(in.ElectricityUsage),
		GasUsage:             sanitizeAmount(in.GasUsage),
		RenewablePercent:     sanitizePercent(in.RenewablePercent),
		MeatMeals:            sanitizeAmount(in.MeatMeals),
		DairyServings:        sanitizeAmount(in.DairyServings),
		LocalFoodPercent:     sanitizePercent(in.LocalFoodPercent),
		WasteBags:            sanitizeAmount(in.WasteBags),
		RecyclingPercent:     sanitizePercent(in.RecyclingPercent),
		ShoppingSpend:        sanitizeAmount(in.ShoppingSpend),
		ElectronicsSpend:     sanitizeAmount(in.ElectronicsSpend),
	}
}
