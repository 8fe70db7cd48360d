package footprint

import "time"

// Breakdown category keys. The breakdown map always contains exactly these
// five keys.
const (
	CategoryTransport = "transport"
	CategoryEnergy    = "energy"
	CategoryFood      = "food"
	CategoryWaste     = "waste"
	CategoryShopping  = "shopping"
)

// RecordCategory is the category stored on every saved calculation. The
// engine never attributes a single dominant category to the overall record;
// the breakdown carries the detail.
const RecordCategory = "mixed"

// Categories lists the breakdown keys in display order.
//
//nolint:gochecknoglobals // Fixed display ordering shared by renderers.
var Categories = []string{
	CategoryTransport,
	CategoryEnergy,
	CategoryFood,
	CategoryWaste,
	CategoryShopping,
}

// Result is an annual CO2e estimate. TotalTonnes always equals the sum of
// BreakdownKg values times the configured kg-to-tonnes conversion.
type Result struct {
	// TotalTonnes is the annual footprint in tonnes CO2e.
	TotalTonnes float64 `json:"total_tonnes"`

	// BreakdownKg maps category name to annual kg CO2e. The waste value can
	// be negative when the recycling offset exceeds emitted waste.
	BreakdownKg map[string]float64 `json:"breakdown_kg"`

	// Category is always RecordCategory ("mixed").
	Category string `json:"category"`

	// Timestamp is when the estimate was produced.
	Timestamp time.Time `json:"timestamp"`
}

// TotalKg returns the summed breakdown in kilograms.
func (r Result) TotalKg() float64 {
	var total float64
	for _, kg := range r.BreakdownKg {
		total += kg
	}
	return total
}

// Footprint band boundaries in tonnes CO2e per year. These drive the
// presentation narrative: below LowBandMaxTonnes is a low footprint, at or
// above HighBandMinTonnes is high, anything between is around average.
const (
	LowBandMaxTonnes  = 4.0
	HighBandMinTonnes = 8.0
)

// Band classifies an annual footprint for presentation.
type Band int

const (
	// BandLow is below LowBandMaxTonnes.
	BandLow Band = iota

	// BandAverage is between LowBandMaxTonnes and HighBandMinTonnes.
	BandAverage

	// BandHigh is at or above HighBandMinTonnes.
	BandHigh
)

// String returns the band name used in rendered summaries.
func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandAverage:
		return "average"
	case BandHigh:
		return "high"
	default:
		return "unknown"
	}
}

// BandFor classifies a total in tonnes CO2e.
func BandFor(totalTonnes float64) Band {
	switch {
	case totalTonnes < LowBandMaxTonnes:
		return BandLow
	case totalTonnes < HighBandMinTonnes:
		return BandAverage
	default:
		return BandHigh
	}
}
