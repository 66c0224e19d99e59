package orsf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	doc := NewDocument("Spa quali", "Porsche", "992 GT3 R")
	doc.Setup = Setup{
		Aero: &Aerodynamics{
			FrontWing: fptr(3),
			RearWing:  fptr(7),
		},
		Suspension: &Suspension{
			FrontLeft: &CornerSuspension{
				CamberDeg:     fptr(-3.2),
				SpringRateNMM: fptr(95),
			},
			RearRight: &CornerSuspension{
				CamberDeg: fptr(-2.8),
			},
			FrontARB: fptr(4),
		},
		Tires: &Tires{
			PressureFLKPA: fptr(180),
			PressureFRKPA: fptr(182),
			PressureRLKPA: fptr(175),
			PressureRRKPA: fptr(176),
		},
		Gearing: &Gearing{
			GearRatios:   []float64{3.2, 2.5, 2.0},
			ReverseRatio: fptr(3.8),
		},
		Brakes: &Brakes{
			BrakeBiasPct: fptr(56),
		},
		Electronics: &Electronics{
			TCLevel: iptr(4),
		},
		Fuel: &Fuel{
			StartFuelL: fptr(60),
		},
	}
	return doc
}

// =============================================================================
// GetValue / SetValue Tests
// =============================================================================

func TestGetValue(t *testing.T) {
	doc := sampleDocument()

	tests := []struct {
		name   string
		path   string
		want   float64
		wantOK bool
	}{
		{name: "aero leaf", path: "setup.aero.front_wing", want: 3, wantOK: true},
		{name: "corner leaf", path: "setup.suspension.front_left.camber_deg", want: -3.2, wantOK: true},
		{name: "shared suspension leaf", path: "setup.suspension.front_arb", want: 4, wantOK: true},
		{name: "tire pressure", path: "setup.tires.pressure_fl_kpa", want: 180, wantOK: true},
		{name: "gear by index", path: "setup.gearing.gear_1", want: 2.5, wantOK: true},
		{name: "reverse ratio", path: "setup.gearing.reverse_ratio", want: 3.8, wantOK: true},
		{name: "int leaf widened", path: "setup.electronics.tc_level", want: 4, wantOK: true},
		{name: "unset leaf", path: "setup.aero.rake_mm", wantOK: false},
		{name: "absent container", path: "setup.drivetrain.final_drive_ratio", wantOK: false},
		{name: "absent corner", path: "setup.suspension.rear_left.camber_deg", wantOK: false},
		{name: "gear index out of range", path: "setup.gearing.gear_9", wantOK: false},
		{name: "unknown leaf", path: "setup.aero.flux_capacitor", wantOK: false},
		{name: "unknown subsystem", path: "setup.hydraulics.pressure", wantOK: false},
		{name: "wrong root", path: "car.make", wantOK: false},
		{name: "too few segments", path: "setup.aero", wantOK: false},
		{name: "too many segments", path: "setup.aero.front_wing.extra", wantOK: false},
		{name: "empty path", path: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetValue(doc, tt.path)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestSetValue(t *testing.T) {
	t.Run("overwrites existing leaf", func(t *testing.T) {
		doc := sampleDocument()
		require.NoError(t, SetValue(doc, "setup.aero.front_wing", 5))
		got, ok := GetValue(doc, "setup.aero.front_wing")
		require.True(t, ok)
		assert.Equal(t, 5.0, got)
	})

	t.Run("creates absent containers", func(t *testing.T) {
		doc := NewDocument("bare", "A", "B")
		require.NoError(t, SetValue(doc, "setup.suspension.rear_left.toe_deg", 0.15))

		require.NotNil(t, doc.Setup.Suspension)
		require.NotNil(t, doc.Setup.Suspension.RearLeft)
		got, ok := GetValue(doc, "setup.suspension.rear_left.toe_deg")
		require.True(t, ok)
		assert.InDelta(t, 0.15, got, 1e-9)
	})

	t.Run("int leaf rounds", func(t *testing.T) {
		doc := NewDocument("bare", "A", "B")
		require.NoError(t, SetValue(doc, "setup.electronics.abs_level", 2.6))
		require.NotNil(t, doc.Setup.Electronics.ABSLevel)
		assert.Equal(t, 3, *doc.Setup.Electronics.ABSLevel)
	})

	t.Run("grows gear list", func(t *testing.T) {
		doc := NewDocument("bare", "A", "B")
		require.NoError(t, SetValue(doc, "setup.gearing.gear_3", 1.4))

		require.NotNil(t, doc.Setup.Gearing)
		require.Len(t, doc.Setup.Gearing.GearRatios, 4)
		assert.Equal(t, []float64{0, 0, 0, 1.4}, doc.Setup.Gearing.GearRatios)
	})

	t.Run("malformed paths fail without mutating", func(t *testing.T) {
		paths := []string{
			"",
			"setup",
			"setup.aero",
			"setup.aero.no_such_field",
			"setup.hydraulics.pressure",
			"setup.suspension.middle_left.camber_deg",
			"setup.gearing.gear_x",
			"setup.gearing.gear_-1",
			"vehicle.aero.front_wing",
		}
		for _, p := range paths {
			doc := NewDocument("bare", "A", "B")
			err := SetValue(doc, p, 1)
			require.Error(t, err, "path %q", p)
			assert.True(t, IsInvalidPathError(err), "path %q", p)
			assert.Equal(t, Setup{}, doc.Setup, "path %q must not mutate", p)
		}
	})
}

// =============================================================================
// Flatten / Inflate Tests
// =============================================================================

func TestFlatten(t *testing.T) {
	doc := sampleDocument()
	flat := Flatten(doc)

	assert.Equal(t, 3.0, flat["setup.aero.front_wing"])
	assert.Equal(t, -3.2, flat["setup.suspension.front_left.camber_deg"])
	assert.Equal(t, 4.0, flat["setup.suspension.front_arb"])
	assert.Equal(t, 2.5, flat["setup.gearing.gear_1"])
	assert.Equal(t, 3.8, flat["setup.gearing.reverse_ratio"])
	assert.Equal(t, 4.0, flat["setup.electronics.tc_level"])

	_, present := flat["setup.aero.rake_mm"]
	assert.False(t, present, "unset leaves must not appear")
	_, present = flat["setup.drivetrain.final_drive_ratio"]
	assert.False(t, present, "absent subsystems must not appear")
}

func TestInflate_RoundTrip(t *testing.T) {
	doc := sampleDocument()
	flat := Flatten(doc)

	restored := NewDocument("restored", "Porsche", "992 GT3 R")
	Inflate(flat, restored)

	assert.Equal(t, flat, Flatten(restored))
}

func TestInflate_SkipsMalformedKeys(t *testing.T) {
	doc := NewDocument("bare", "A", "B")
	Inflate(FlatSetup{
		"setup.aero.front_wing": 2,
		"setup.bogus.field":     1,
		"nonsense":              3,
	}, doc)

	got, ok := GetValue(doc, "setup.aero.front_wing")
	require.True(t, ok)
	assert.Equal(t, 2.0, got)
}

// =============================================================================
// MapToNative / MapToORSF Tests
// =============================================================================

func TestMapToNative(t *testing.T) {
	doc := sampleDocument()

	mappings := []FieldMapping{
		{Path: "setup.tires.pressure_fl_kpa", NativeKey: "LF_PRESSURE", ToNative: UnitConvert(UnitKPA, UnitPSI)},
		{Path: "setup.brakes.brake_bias_pct", NativeKey: "BIAS", ToNative: PercentToRatio()},
		{Path: "setup.aero.front_wing", NativeKey: "FWING"},
		{Path: "setup.aero.rake_mm", NativeKey: "RAKE"},
	}

	native, err := MapToNative(doc, mappings)
	require.NoError(t, err)

	assert.InDelta(t, 26.1068, native["LF_PRESSURE"], 0.001)
	assert.InDelta(t, 0.56, native["BIAS"], 1e-9)
	assert.Equal(t, 3.0, native["FWING"])
	_, present := native["RAKE"]
	assert.False(t, present, "optional absent fields are skipped")
}

func TestMapToNative_RequiredMissing(t *testing.T) {
	doc := NewDocument("bare", "A", "B")

	_, err := MapToNative(doc, []FieldMapping{
		{Path: "setup.fuel.start_fuel_l", NativeKey: "FUEL", Required: true},
	})
	require.Error(t, err)
	assert.True(t, IsRequiredFieldError(err))
}

func TestMapToNative_TransformErrorCarriesPath(t *testing.T) {
	doc := sampleDocument()

	_, err := MapToNative(doc, []FieldMapping{
		{Path: "setup.aero.front_wing", NativeKey: "X", ToNative: Compose(Offset(-3), Invert())},
	})
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "setup.aero.front_wing", e.Field)
}

func TestMapToORSF(t *testing.T) {
	template := NewDocument("imported", "A", "B")

	mappings := []FieldMapping{
		{Path: "setup.tires.pressure_fl_kpa", NativeKey: "LF_PRESSURE", FromNative: UnitConvert(UnitPSI, UnitKPA)},
		{Path: "setup.brakes.brake_bias_pct", NativeKey: "BIAS", FromNative: RatioToPercent()},
		{Path: "setup.aero.front_wing", NativeKey: "FWING"},
	}

	doc, err := MapToORSF(map[string]float64{
		"LF_PRESSURE": 26.0,
		"BIAS":        0.55,
		"FWING":       4,
	}, mappings, template)
	require.NoError(t, err)

	pressure, ok := GetValue(doc, "setup.tires.pressure_fl_kpa")
	require.True(t, ok)
	assert.InDelta(t, 179.264, pressure, 0.001)

	bias, ok := GetValue(doc, "setup.brakes.brake_bias_pct")
	require.True(t, ok)
	assert.InDelta(t, 55, bias, 1e-9)

	// The template must stay untouched.
	assert.Nil(t, template.Setup.Tires)
	assert.Nil(t, template.Setup.Aero)
}

func TestMapToORSF_TemplateValuesRetained(t *testing.T) {
	template := sampleDocument()

	doc, err := MapToORSF(map[string]float64{"FWING": 9}, []FieldMapping{
		{Path: "setup.aero.front_wing", NativeKey: "FWING"},
	}, template)
	require.NoError(t, err)

	wing, ok := GetValue(doc, "setup.aero.front_wing")
	require.True(t, ok)
	assert.Equal(t, 9.0, wing)

	// Unmapped paths come straight from the template.
	arb, ok := GetValue(doc, "setup.suspension.front_arb")
	require.True(t, ok)
	assert.Equal(t, 4.0, arb)
}

func TestMapToORSF_RequiredMissing(t *testing.T) {
	template := NewDocument("imported", "A", "B")

	_, err := MapToORSF(map[string]float64{}, []FieldMapping{
		{Path: "setup.aero.front_wing", NativeKey: "FWING", Required: true},
	}, template)
	require.Error(t, err)
	assert.True(t, IsRequiredFieldError(err))
}

func TestMapping_RoundTrip(t *testing.T) {
	doc := sampleDocument()

	mappings := []FieldMapping{
		{Path: "setup.tires.pressure_fl_kpa", NativeKey: "LF", ToNative: UnitConvert(UnitKPA, UnitPSI), FromNative: UnitConvert(UnitPSI, UnitKPA)},
		{Path: "setup.brakes.brake_bias_pct", NativeKey: "BIAS", ToNative: PercentToRatio(), FromNative: RatioToPercent()},
		{Path: "setup.aero.front_wing", NativeKey: "FWING"},
	}

	native, err := MapToNative(doc, mappings)
	require.NoError(t, err)
	back, err := MapToORSF(native, mappings, doc)
	require.NoError(t, err)

	for _, m := range mappings {
		want, ok := GetValue(doc, m.Path)
		require.True(t, ok, m.Path)
		got, ok := GetValue(back, m.Path)
		require.True(t, ok, m.Path)
		assert.InDelta(t, want, got, 1e-9, m.Path)
	}
}

// =============================================================================
// Clone Tests
// =============================================================================

func TestDocument_Clone(t *testing.T) {
	doc := sampleDocument()
	clone, err := doc.Clone()
	require.NoError(t, err)

	assert.Equal(t, Flatten(doc), Flatten(clone))
	assert.Equal(t, doc.Metadata, clone.Metadata)

	// Mutating the clone must not touch the original.
	require.NoError(t, SetValue(clone, "setup.aero.front_wing", 99))
	original, ok := GetValue(doc, "setup.aero.front_wing")
	require.True(t, ok)
	assert.Equal(t, 3.0, original)
}
