package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFactors_Valid(t *testing.T) {
	factors := DefaultFactors()
	require.NoError(t, factors.Validate())

	assert.InDelta(t, 0.41, factors.Transport.Car, 1e-9)
	assert.InDelta(t, 0.233, factors.Energy.Electricity, 1e-9)
	assert.InDelta(t, 2.5, factors.Waste.WasteBag, 1e-9)
	assert.Negative(t, factors.Waste.RecyclingOffset, "recycling offset is a credit rate")
	assert.InDelta(t, 0.001, factors.Conversions.KgToTonnes, 1e-12)
	assert.Positive(t, factors.Conversions.TreesPerTonne)
}

func TestValidate_MissingGroups(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EmissionFactors)
	}{
		{"transport", func(f *EmissionFactors) { f.Transport = nil }},
		{"energy", func(f *EmissionFactors) { f.Energy = nil }},
		{"food", func(f *EmissionFactors) { f.Food = nil }},
		{"waste", func(f *EmissionFactors) { f.Waste = nil }},
		{"shopping", func(f *EmissionFactors) { f.Shopping = nil }},
		{"conversions", func(f *EmissionFactors) { f.Conversions = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factors := DefaultFactors()
			tt.mutate(factors)

			err := factors.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestValidate_NilTable(t *testing.T) {
	var factors *EmissionFactors
	err := factors.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestValidate_ZeroKgToTonnes(t *testing.T) {
	factors := DefaultFactors()
	factors.Conversions.KgToTonnes = 0

	err := factors.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestLoadFactors_EmptyPathUsesDefaults(t *testing.T) {
	factors, err := LoadFactors("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFactors(), factors)
}

func TestLoadFactors_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factors.yaml")
	want := DefaultFactors()
	want.Transport.Car = 0.35

	require.NoError(t, WriteFactors(path, want))

	got, err := LoadFactors(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFactors_MissingFileIsError(t *testing.T) {
	_, err := LoadFactors(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFactors_IncompleteFileIsConfigurationError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factors.yaml")
	// transport only; every other group missing.
	require.NoError(t, os.WriteFile(path, []byte("transport:\n  car: 0.4\n"), 0600))

	_, err := LoadFactors(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}
