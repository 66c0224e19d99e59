package orsf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Convert Tests
// =============================================================================

func TestConvert_KnownPairs(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		from  Unit
		to    Unit
		want  float64
	}{
		{name: "kpa to psi", value: 200, from: UnitKPA, to: UnitPSI, want: 29.0075},
		{name: "psi to kpa", value: 30, from: UnitPSI, to: UnitKPA, want: 206.8428},
		{name: "bar to kpa", value: 1.5, from: UnitBar, to: UnitKPA, want: 150},
		{name: "celsius to fahrenheit", value: 100, from: UnitCelsius, to: UnitFahrenheit, want: 212},
		{name: "fahrenheit to celsius", value: 32, from: UnitFahrenheit, to: UnitCelsius, want: 0},
		{name: "kelvin to celsius", value: 273.15, from: UnitKelvin, to: UnitCelsius, want: 0},
		{name: "inch to mm", value: 2, from: UnitInch, to: UnitMM, want: 50.8},
		{name: "mm to cm", value: 25, from: UnitMM, to: UnitCM, want: 2.5},
		{name: "lb/in to n/mm", value: 100, from: UnitLbPerIn, to: UnitNPerMM, want: 17.5127},
		{name: "mph to kph", value: 100, from: UnitMPH, to: UnitKPH, want: 160.934},
		{name: "m/s to kph", value: 10, from: UnitMPS, to: UnitKPH, want: 36},
		{name: "us gal to liters", value: 10, from: UnitGallonUS, to: UnitLiter, want: 37.8541},
		{name: "lb-ft to nm", value: 100, from: UnitLbFt, to: UnitNM, want: 135.582},
		{name: "same unit passthrough", value: 42.5, from: UnitKPA, to: UnitKPA, want: 42.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	pairs := []struct {
		from Unit
		to   Unit
	}{
		{UnitKPA, UnitPSI},
		{UnitKPA, UnitBar},
		{UnitNPerMM, UnitLbPerIn},
		{UnitNSPerM, UnitLbSPerIn},
		{UnitMM, UnitInch},
		{UnitCelsius, UnitFahrenheit},
		{UnitCelsius, UnitKelvin},
		{UnitNM, UnitLbFt},
		{UnitNewton, UnitPound},
		{UnitKPH, UnitMPH},
		{UnitLiter, UnitGallonUK},
	}

	for _, p := range pairs {
		t.Run(string(p.from)+"_"+string(p.to), func(t *testing.T) {
			const original = 123.456
			there, err := Convert(original, p.from, p.to)
			require.NoError(t, err)
			back, err := Convert(there, p.to, p.from)
			require.NoError(t, err)
			assert.InDelta(t, original, back, 1e-9)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Run("cross dimension", func(t *testing.T) {
		_, err := Convert(100, UnitKPA, UnitCelsius)
		require.Error(t, err)
		assert.True(t, IsUnitMismatchError(err))
	})

	t.Run("unknown source unit", func(t *testing.T) {
		_, err := Convert(100, Unit("furlongs"), UnitMM)
		require.Error(t, err)
		assert.Equal(t, ErrCodeUnknownUnit, CodeOf(err))
	})

	t.Run("unknown target unit", func(t *testing.T) {
		_, err := Convert(100, UnitMM, Unit("cubits"))
		require.Error(t, err)
		assert.Equal(t, ErrCodeUnknownUnit, CodeOf(err))
	})
}

func TestUnit_Dimension(t *testing.T) {
	assert.Equal(t, DimensionPressure, UnitPSI.Dimension())
	assert.Equal(t, DimensionTemperature, UnitKelvin.Dimension())
	assert.Equal(t, Dimension(""), Unit("bogus").Dimension())
}

// =============================================================================
// Clamp / RoundToStep Tests
// =============================================================================

func TestClamp(t *testing.T) {
	tests := []struct {
		name                  string
		value, min, max, step float64
		want                  float64
	}{
		{name: "inside range no step", value: 42, min: 0, max: 100, step: 0, want: 42},
		{name: "below min", value: -5, min: 0, max: 100, step: 0, want: 0},
		{name: "above max", value: 150, min: 0, max: 100, step: 0, want: 100},
		{name: "rounds down to step", value: 52.3, min: 0, max: 100, step: 5, want: 50},
		{name: "rounds up to step", value: 53, min: 0, max: 100, step: 5, want: 55},
		{name: "fractional step", value: 14.7, min: 0, max: 50, step: 0.5, want: 14.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Clamp(tt.value, tt.min, tt.max, tt.step), 1e-9)
		})
	}
}

func TestRoundToStep_ZeroStep(t *testing.T) {
	assert.Equal(t, 53.7, RoundToStep(53.7, 0))
	assert.Equal(t, 53.7, RoundToStep(53.7, -1))
}
