package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrConfiguration is the base error for structurally invalid emission-factor
// configuration. All factor validation failures wrap it, so callers can use
// errors.Is(err, config.ErrConfiguration) without matching the exact group.
const ErrConfiguration = constError("invalid emission factor configuration")

// EmissionFactors is the immutable table of emission rates used by the
// estimation engine. Each rate is kg CO2e per unit of activity. The table is
// loaded once at startup and shared by reference; it is never mutated, which
// makes concurrent reads safe.
//
// Factor groups are pointers so that a group missing from a YAML file is
// distinguishable from a group of zero rates. Validate reports missing groups.
type EmissionFactors struct {
	Transport   *TransportFactors `yaml:"transport"`
	Energy      *EnergyFactors    `yaml:"energy"`
	Food        *FoodFactors      `yaml:"food"`
	Waste       *WasteFactors     `yaml:"waste"`
	Shopping    *ShoppingFactors  `yaml:"shopping"`
	Conversions *Conversions      `yaml:"conversions"`
}

// TransportFactors holds per-activity transport emission rates.
type TransportFactors struct {
	// Car is kg CO2e per mile driven.
	Car float64 `yaml:"car"`

	// FlightShort is kg CO2e per distance unit of a short-haul flight.
	// The engine assumes 1000 distance units per trip.
	FlightShort float64 `yaml:"flight_short"`

	// PublicTransport is kg CO2e per monthly trip.
	PublicTransport float64 `yaml:"public_transport"`
}

// EnergyFactors holds household energy emission rates.
type EnergyFactors struct {
	// Electricity is kg CO2e per kWh of grid electricity.
	Electricity float64 `yaml:"electricity"`

	// Gas is kg CO2e per unit of natural gas.
	Gas float64 `yaml:"gas"`
}

// FoodFactors holds dietary emission rates.
type FoodFactors struct {
	// MeatMeal is kg CO2e per meat-based meal.
	MeatMeal float64 `yaml:"meat_meal"`

	// DairyServing is kg CO2e per dairy serving.
	DairyServing float64 `yaml:"dairy_serving"`
}

// WasteFactors holds waste emission and recycling offset rates.
type WasteFactors struct {
	// WasteBag is kg CO2e per weekly bag of landfill waste.
	WasteBag float64 `yaml:"waste_bag"`

	// RecyclingOffset is a negative (credit) rate: the fraction of waste
	// emissions credited back per unit of recycling. Stored negative to mark
	// it as a credit; the engine uses its magnitude.
	RecyclingOffset float64 `yaml:"recycling_offset"`
}

// ShoppingFactors holds consumption emission rates.
type ShoppingFactors struct {
	// General is kg CO2e per currency unit of monthly general spend.
	General float64 `yaml:"general"`

	// Electronics is kg CO2e per currency unit of annual electronics spend.
	// Unlike General this is a flat annual rate, not further annualized.
	Electronics float64 `yaml:"electronics"`
}

// Conversions holds unit conversion constants.
type Conversions struct {
	// KgToTonnes converts kilograms to metric tonnes.
	KgToTonnes float64 `yaml:"kg_to_tonnes"`

	// TreesPerTonne is tree seedlings grown for 10 years needed to offset
	// one tonne of CO2e.
	TreesPerTonne float64 `yaml:"trees_per_tonne"`
}

// DefaultFactors returns the compiled-in emission factor table.
//
// Rates follow published UK/EPA household averages: car 0.41 kg/mile,
// electricity 0.233 kg/kWh, meat meal 3.2 kg, and so on. They are the same
// defaults the calculator shipped with, so historical entries stay comparable.
func DefaultFactors() *EmissionFactors {
	return &EmissionFactors{
		Transport: &TransportFactors{
			Car:             0.41,
			FlightShort:     0.255,
			PublicTransport: 0.105,
		},
		Energy: &EnergyFactors{
			Electricity: 0.233,
			Gas:         5.3,
		},
		Food: &FoodFactors{
			MeatMeal:     3.2,
			DairyServing: 0.9,
		},
		Waste: &WasteFactors{
			WasteBag:        2.5,
			RecyclingOffset: -1.2,
		},
		Shopping: &ShoppingFactors{
			General:     0.5,
			Electronics: 45.0,
		},
		Conversions: &Conversions{
			KgToTonnes:    0.001,
			TreesPerTonne: 16.5,
		},
	}
}

// Validate checks that every factor group and the conversion constants are
// present. It returns an error wrapping ErrConfiguration naming the first
// missing group, or nil when the table is structurally complete.
//
// Validate deliberately does not police rate magnitudes: a zero rate is a
// legitimate configuration (for example, zero-carbon electricity), whereas a
// missing group means the table cannot support estimation at all.
func (f *EmissionFactors) Validate() error {
	if f == nil {
		return fmt.Errorf("%w: factor table is nil", ErrConfiguration)
	}

	groups := []struct {
		name    string
		present bool
	}{
		{"transport", f.Transport != nil},
		{"energy", f.Energy != nil},
		{"food", f.Food != nil},
		{"waste", f.Waste != nil},
		{"shopping", f.Shopping != nil},
		{"conversions", f.Conversions != nil},
	}
	for _, g := range groups {
		if !g.present {
			return fmt.Errorf("%w: missing %s group", ErrConfiguration, g.name)
		}
	}

	if f.Conversions.KgToTonnes <= 0 {
		return fmt.Errorf("%w: conversions.kg_to_tonnes must be positive", ErrConfiguration)
	}

	return nil
}

// LoadFactors reads an emission factor table from a YAML file and validates
// it. An empty path returns the compiled-in defaults. A missing or malformed
// file is a hard error: silently falling back to defaults would let a typo'd
// factors file change every subsequent calculation unnoticed.
func LoadFactors(path string) (*EmissionFactors, error) {
	if path == "" {
		return DefaultFactors(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading factors file %s: %w", path, err)
	}

	var factors EmissionFactors
	if err := yaml.Unmarshal(data, &factors); err != nil {
		return nil, fmt.Errorf("parsing factors file %s: %w", path, err)
	}

	if err := factors.Validate(); err != nil {
		return nil, fmt.Errorf("factors file %s: %w", path, err)
	}

	return &factors, nil
}

// WriteFactors marshals a factor table to YAML at the given path with 0600
// permissions. Used by "footprint config init" to seed an editable file.
func WriteFactors(path string, factors *EmissionFactors) error {
	data, err := yaml.Marshal(factors)
	if err != nil {
		return fmt.Errorf("marshalling factors: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing factors file %s: %w", path, err)
	}
	return nil
}
