// Package footprint implements the carbon-footprint estimation engine: a
// pure mapping from sanitized lifestyle quantities and an emission factor
// table to an annual CO2e total with a per-category breakdown.
package footprint

import (
	"math"
	"time"

	"footprint/internal/config"
)

// Annualization multipliers. These are part of the estimation contract, not
// incidental: monthly quantities scale by 12, weekly by 52.
const (
	monthsPerYear = 12
	weeksPerYear  = 52

	// shortHaulFlightDistance is the assumed distance units per flight.
	// The flights input is a trip count; no field distinguishes long-haul,
	// so every trip is treated as a 1000-unit short-haul flight.
	shortHaulFlightDistance = 1000

	// maxLocalFoodDiscount caps the meat-emission discount from local
	// sourcing at 20%, i.e. the reduction factor never drops below 0.8.
	maxLocalFoodDiscount = 0.2
)

// Estimate maps raw category inputs and an emission factor table to an
// annual CO2e result.
//
// Every numeric field is sanitized independently (absent, NaN or negative
// becomes 0; percent fields cap at 100), so no combination of user input can
// fail the call. The one hard failure is a structurally invalid factor
// table, which returns an error wrapping config.ErrConfiguration and no
// partial result.
func Estimate(input CategoryInput, factors *config.EmissionFactors) (Result, error) {
	log := config.GetLogger()

	if err := factors.Validate(); err != nil {
		log.Error().
			Str("component", "footprint").
			Str("operation", "estimate").
			Err(err).
			Msg("emission factor table rejected")
		return Result{}, err
	}

	in := input.Sanitized()

	breakdown := map[string]float64{
		CategoryTransport: transportKg(in, factors.Transport),
		CategoryEnergy:    energyKg(in, factors.Energy),
		CategoryFood:      foodKg(in, factors.Food),
		CategoryWaste:     wasteKg(in, factors.Waste),
		CategoryShopping:  shoppingKg(in, factors.Shopping),
	}

	var totalKg float64
	for _, kg := range breakdown {
		totalKg += kg
	}

	result := Result{
		TotalTonnes: totalKg * factors.Conversions.KgToTonnes,
		BreakdownKg: breakdown,
		Category:    RecordCategory,
		Timestamp:   time.Now(),
	}

	log.Debug().
		Str("component", "footprint").
		Str("operation", "estimate").
		Float64("total_kg", totalKg).
		Float64("total_tonnes", result.TotalTonnes).
		Msg("estimate complete")

	return result, nil
}

// transportKg computes annual transport emissions: monthly car miles and
// public transport trips annualized by 12, plus flight trips at the assumed
// short-haul distance.
func transportKg(in CategoryInput, f *config.TransportFactors) float64 {
	carKg := in.CarMiles * f.Car * monthsPerYear
	flightsKg := in.Flights * shortHaulFlightDistance * f.FlightShort
	publicKg := in.PublicTransportTrips * f.PublicTransport * monthsPerYear
	return carKg + flightsKg + publicKg
}

// energyKg computes annual energy emissions. Renewable sourcing discounts
// electricity proportionally; gas has no renewable discount.
func energyKg(in CategoryInput, f *config.EnergyFactors) float64 {
	electricityKg := in.ElectricityUsage * f.Electricity * (1 - in.RenewablePercent/100) * monthsPerYear
	gasKg := in.GasUsage * f.Gas * monthsPerYear
	return electricityKg + gasKg
}

// foodKg computes annual food emissions from weekly meal counts. Local
// sourcing discounts meat emissions by up to maxLocalFoodDiscount.
func foodKg(in CategoryInput, f *config.FoodFactors) float64 {
	meatReductionFactor := math.Max(
		1-maxLocalFoodDiscount,
		1-(in.LocalFoodPercent/100)*maxLocalFoodDiscount,
	)
	meatKg := in.MeatMeals * f.MeatMeal * weeksPerYear * meatReductionFactor
	dairyKg := in.DairyServings * f.DairyServing * weeksPerYear
	return meatKg + dairyKg
}

// wasteKg computes annual net waste emissions: emitted landfill waste minus
// a recycling credit proportional to the recycling percentage and the
// magnitude of the configured offset rate.
//
// When the offset magnitude exceeds 1.0 and recycling is near 100%, the net
// value goes negative (recycling as a net carbon credit). That behavior is
// preserved deliberately rather than floored at zero.
func wasteKg(in CategoryInput, f *config.WasteFactors) float64 {
	wasteEmittedKg := in.WasteBags * f.WasteBag * weeksPerYear
	recyclingOffsetKg := wasteEmittedKg * (in.RecyclingPercent / 100) * math.Abs(f.RecyclingOffset)
	return wasteEmittedKg - recyclingOffsetKg
}

// shoppingKg computes annual shopping emissions: monthly general spend
// annualized by 12, electronics spend applied at a flat annual rate.
func shoppingKg(in CategoryInput, f *config.ShoppingFactors) float64 {
	return in.ShoppingSpend*f.General*monthsPerYear + in.ElectronicsSpend*f.Electronics
}
