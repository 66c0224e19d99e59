package orsf

import (
	"fmt"
	"math"
)

// Unit represents a supported physical unit.
type Unit string

const (
	// Pressure
	UnitKPA Unit = "kpa"
	UnitPSI Unit = "psi"
	UnitBar Unit = "bar"

	// Spring rate
	UnitNPerMM  Unit = "n_mm"
	UnitLbPerIn Unit = "lb_in"

	// Damping
	UnitNSPerM   Unit = "n_s_m"
	UnitLbSPerIn Unit = "lb_s_in"

	// Length
	UnitMM   Unit = "mm"
	UnitInch Unit = "in"
	UnitCM   Unit = "cm"

	// Temperature
	UnitCelsius    Unit = "c"
	UnitFahrenheit Unit = "f"
	UnitKelvin     Unit = "k"

	// Torque
	UnitNM   Unit = "nm"
	UnitLbFt Unit = "lb_ft"

	// Force
	UnitNewton Unit = "n"
	UnitPound  Unit = "lbf"

	// Speed
	UnitKPH Unit = "kph"
	UnitMPH Unit = "mph"
	UnitMPS Unit = "m_s"

	// Volume
	UnitLiter    Unit = "l"
	UnitGallonUS Unit = "gal_us"
	UnitGallonUK Unit = "gal_uk"
)

// Dimension groups units into disjoint families; conversion is only
// defined between units of the same dimension.
type Dimension string

const (
	DimensionPressure    Dimension = "pressure"
	DimensionSpringRate  Dimension = "spring_rate"
	DimensionDamping     Dimension = "damping"
	DimensionLength      Dimension = "length"
	DimensionTemperature Dimension = "temperature"
	DimensionTorque      Dimension = "torque"
	DimensionForce       Dimension = "force"
	DimensionSpeed       Dimension = "speed"
	DimensionVolume      Dimension = "volume"
)

// unitDef maps a unit onto its dimension's base unit via
// base = value*factor + offset. Only temperature units need the offset.
type unitDef struct {
	dim    Dimension
	factor float64
	offset float64
}

// Base units per dimension: kPa, N/mm, N·s/m, mm, °C, N·m, N, km/h, L.
// Adding a unit means adding one entry here.
var unitDefs = map[Unit]unitDef{
	UnitKPA: {DimensionPressure, 1.0, 0},
	UnitPSI: {DimensionPressure, 6.89476, 0},
	UnitBar: {DimensionPressure, 100.0, 0},

	UnitNPerMM:  {DimensionSpringRate, 1.0, 0},
	UnitLbPerIn: {DimensionSpringRate, 0.175127, 0},

	UnitNSPerM:   {DimensionDamping, 1.0, 0},
	UnitLbSPerIn: {DimensionDamping, 175.127, 0},

	UnitMM:   {DimensionLength, 1.0, 0},
	UnitInch: {DimensionLength, 25.4, 0},
	UnitCM:   {DimensionLength, 10.0, 0},

	UnitCelsius:    {DimensionTemperature, 1.0, 0},
	UnitFahrenheit: {DimensionTemperature, 5.0 / 9.0, -160.0 / 9.0},
	UnitKelvin:     {DimensionTemperature, 1.0, -273.15},

	UnitNM:   {DimensionTorque, 1.0, 0},
	UnitLbFt: {DimensionTorque, 1.35582, 0},

	UnitNewton: {DimensionForce, 1.0, 0},
	UnitPound:  {DimensionForce, 4.44822, 0},

	UnitKPH: {DimensionSpeed, 1.0, 0},
	UnitMPH: {DimensionSpeed, 1.60934, 0},
	UnitMPS: {DimensionSpeed, 3.6, 0},

	UnitLiter:    {DimensionVolume, 1.0, 0},
	UnitGallonUS: {DimensionVolume, 3.78541, 0},
	UnitGallonUK: {DimensionVolume, 4.54609, 0},
}

// Dimension returns the unit's dimension family, or "" for unknown units.
func (u Unit) Dimension() Dimension {
	return unitDefs[u].dim
}

// Convert maps value from one unit to another within the same dimension
// family. The value goes through the dimension's base unit, so any pair
// within a family converts with exactly two table lookups. Converting
// between different families fails with ErrCodeUnitMismatch.
func Convert(value float64, from, to Unit) (float64, error) {
	fromDef, ok := unitDefs[from]
	if !ok {
		return 0, NewError(ErrCodeUnknownUnit, fmt.Sprintf("unknown unit %q", from))
	}
	toDef, ok := unitDefs[to]
	if !ok {
		return 0, NewError(ErrCodeUnknownUnit, fmt.Sprintf("unknown unit %q", to))
	}
	if fromDef.dim != toDef.dim {
		return 0, NewUnitMismatchError(from, to)
	}
	if from == to {
		return value, nil
	}

	base := value*fromDef.factor + fromDef.offset
	return (base - toDef.offset) / toDef.factor, nil
}

// Clamp restricts value to [min, max] and, when step > 0, rounds the
// result to the nearest multiple of step.
func Clamp(value, min, max, step float64) float64 {
	clamped := math.Max(min, math.Min(max, value))
	if step > 0 {
		clamped = RoundToStep(clamped, step)
	}
	return clamped
}

// RoundToStep rounds value to the nearest multiple of step using
// round-half-away-from-zero semantics. A step of zero or less returns
// the value unchanged.
func RoundToStep(value, step float64) float64 {
	if step <= 0 {
		return value
	}
	return math.Round(value/step) * step
}
