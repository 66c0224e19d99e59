package orsf

import (
	"math"
	"strconv"
	"strings"
)

// PathRoot is the mandatory first segment of every field path.
const PathRoot = "setup"

// fieldAccessor binds a leaf field name to typed get/set closures over
// its subsystem struct. One table per subsystem drives GetValue,
// SetValue and Flatten, so the three can never drift apart.
type fieldAccessor[T any] struct {
	name string
	get  func(*T) (float64, bool)
	set  func(*T, float64)
}

func lookupField[T any](fields []fieldAccessor[T], name string) (fieldAccessor[T], bool) {
	for _, f := range fields {
		if f.name == name {
			return f, true
		}
	}
	return fieldAccessor[T]{}, false
}

func fval(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

func ival(p *int) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return float64(*p), true
}

func fptr(v float64) *float64 { return &v }

func iptr(v float64) *int {
	n := int(math.Round(v))
	return &n
}

// Accessor tables, in document-section order. The slice order is the
// canonical flatten order for each subsystem.

var aeroFields = []fieldAccessor[Aerodynamics]{
	{"front_wing", func(a *Aerodynamics) (float64, bool) { return fval(a.FrontWing) }, func(a *Aerodynamics, v float64) { a.FrontWing = fptr(v) }},
	{"rear_wing", func(a *Aerodynamics) (float64, bool) { return fval(a.RearWing) }, func(a *Aerodynamics, v float64) { a.RearWing = fptr(v) }},
	{"front_downforce_n", func(a *Aerodynamics) (float64, bool) { return fval(a.FrontDownforceN) }, func(a *Aerodynamics, v float64) { a.FrontDownforceN = fptr(v) }},
	{"rear_downforce_n", func(a *Aerodynamics) (float64, bool) { return fval(a.RearDownforceN) }, func(a *Aerodynamics, v float64) { a.RearDownforceN = fptr(v) }},
	{"front_ride_height_mm", func(a *Aerodynamics) (float64, bool) { return fval(a.FrontRideHeightMM) }, func(a *Aerodynamics, v float64) { a.FrontRideHeightMM = fptr(v) }},
	{"rear_ride_height_mm", func(a *Aerodynamics) (float64, bool) { return fval(a.RearRideHeightMM) }, func(a *Aerodynamics, v float64) { a.RearRideHeightMM = fptr(v) }},
	{"rake_mm", func(a *Aerodynamics) (float64, bool) { return fval(a.RakeMM) }, func(a *Aerodynamics, v float64) { a.RakeMM = fptr(v) }},
	{"brake_duct_front_pct", func(a *Aerodynamics) (float64, bool) { return fval(a.BrakeDuctFrontPct) }, func(a *Aerodynamics, v float64) { a.BrakeDuctFrontPct = fptr(v) }},
	{"brake_duct_rear_pct", func(a *Aerodynamics) (float64, bool) { return fval(a.BrakeDuctRearPct) }, func(a *Aerodynamics, v float64) { a.BrakeDuctRearPct = fptr(v) }},
	{"radiator_opening_pct", func(a *Aerodynamics) (float64, bool) { return fval(a.RadiatorOpenPct) }, func(a *Aerodynamics, v float64) { a.RadiatorOpenPct = fptr(v) }},
}

var cornerFields = []fieldAccessor[CornerSuspension]{
	{"camber_deg", func(c *CornerSuspension) (float64, bool) { return fval(c.CamberDeg) }, func(c *CornerSuspension, v float64) { c.CamberDeg = fptr(v) }},
	{"toe_deg", func(c *CornerSuspension) (float64, bool) { return fval(c.ToeDeg) }, func(c *CornerSuspension, v float64) { c.ToeDeg = fptr(v) }},
	{"caster_deg", func(c *CornerSuspension) (float64, bool) { return fval(c.CasterDeg) }, func(c *CornerSuspension, v float64) { c.CasterDeg = fptr(v) }},
	{"spring_rate_n_mm", func(c *CornerSuspension) (float64, bool) { return fval(c.SpringRateNMM) }, func(c *CornerSuspension, v float64) { c.SpringRateNMM = fptr(v) }},
	{"ride_height_mm", func(c *CornerSuspension) (float64, bool) { return fval(c.RideHeightMM) }, func(c *CornerSuspension, v float64) { c.RideHeightMM = fptr(v) }},
	{"bumpstop_gap_mm", func(c *CornerSuspension) (float64, bool) { return fval(c.BumpstopGapMM) }, func(c *CornerSuspension, v float64) { c.BumpstopGapMM = fptr(v) }},
	{"bumpstop_rate_n_mm", func(c *CornerSuspension) (float64, bool) { return fval(c.BumpstopRateNMM) }, func(c *CornerSuspension, v float64) { c.BumpstopRateNMM = fptr(v) }},
	{"packer_mm", func(c *CornerSuspension) (float64, bool) { return fval(c.PackerMM) }, func(c *CornerSuspension, v float64) { c.PackerMM = fptr(v) }},
	{"damper_bump_slow_n_s_m", func(c *CornerSuspension) (float64, bool) { return fval(c.DamperBumpSlowNSM) }, func(c *CornerSuspension, v float64) { c.DamperBumpSlowNSM = fptr(v) }},
	{"damper_bump_fast_n_s_m", func(c *CornerSuspension) (float64, bool) { return fval(c.DamperBumpFastNSM) }, func(c *CornerSuspension, v float64) { c.DamperBumpFastNSM = fptr(v) }},
	{"damper_rebound_slow_n_s_m", func(c *CornerSuspension) (float64, bool) { return fval(c.DamperReboundSlowNSM) }, func(c *CornerSuspension, v float64) { c.DamperReboundSlowNSM = fptr(v) }},
	{"damper_rebound_fast_n_s_m", func(c *CornerSuspension) (float64, bool) { return fval(c.DamperReboundFastNSM) }, func(c *CornerSuspension, v float64) { c.DamperReboundFastNSM = fptr(v) }},
}

// cornerNames lists the suspension corner identifiers in flatten order.
var cornerNames = []string{"front_left", "front_right", "rear_left", "rear_right"}

var suspensionFields = []fieldAccessor[Suspension]{
	{"front_arb", func(s *Suspension) (float64, bool) { return fval(s.FrontARB) }, func(s *Suspension, v float64) { s.FrontARB = fptr(v) }},
	{"rear_arb", func(s *Suspension) (float64, bool) { return fval(s.RearARB) }, func(s *Suspension, v float64) { s.RearARB = fptr(v) }},
	{"heave_spring_n_mm", func(s *Suspension) (float64, bool) { return fval(s.HeaveSpringNMM) }, func(s *Suspension, v float64) { s.HeaveSpringNMM = fptr(v) }},
	{"heave_packer_mm", func(s *Suspension) (float64, bool) { return fval(s.HeavePackerMM) }, func(s *Suspension, v float64) { s.HeavePackerMM = fptr(v) }},
}

var tiresFields = []fieldAccessor[Tires]{
	{"pressure_fl_kpa", func(t *Tires) (float64, bool) { return fval(t.PressureFLKPA) }, func(t *Tires, v float64) { t.PressureFLKPA = fptr(v) }},
	{"pressure_fr_kpa", func(t *Tires) (float64, bool) { return fval(t.PressureFRKPA) }, func(t *Tires, v float64) { t.PressureFRKPA = fptr(v) }},
	{"pressure_rl_kpa", func(t *Tires) (float64, bool) { return fval(t.PressureRLKPA) }, func(t *Tires, v float64) { t.PressureRLKPA = fptr(v) }},
	{"pressure_rr_kpa", func(t *Tires) (float64, bool) { return fval(t.PressureRRKPA) }, func(t *Tires, v float64) { t.PressureRRKPA = fptr(v) }},
	{"stagger_mm", func(t *Tires) (float64, bool) { return fval(t.StaggerMM) }, func(t *Tires, v float64) { t.StaggerMM = fptr(v) }},
}

var drivetrainFields = []fieldAccessor[Drivetrain]{
	{"diff_preload_nm", func(d *Drivetrain) (float64, bool) { return fval(d.DiffPreloadNM) }, func(d *Drivetrain, v float64) { d.DiffPreloadNM = fptr(v) }},
	{"diff_power_ramp_pct", func(d *Drivetrain) (float64, bool) { return fval(d.DiffPowerRampPct) }, func(d *Drivetrain, v float64) { d.DiffPowerRampPct = fptr(v) }},
	{"diff_coast_ramp_pct", func(d *Drivetrain) (float64, bool) { return fval(d.DiffCoastRampPct) }, func(d *Drivetrain, v float64) { d.DiffCoastRampPct = fptr(v) }},
	{"final_drive_ratio", func(d *Drivetrain) (float64, bool) { return fval(d.FinalDriveRatio) }, func(d *Drivetrain, v float64) { d.FinalDriveRatio = fptr(v) }},
	{"lsd_clutch_plates", func(d *Drivetrain) (float64, bool) { return ival(d.LSDClutchPlates) }, func(d *Drivetrain, v float64) { d.LSDClutchPlates = iptr(v) }},
}

var brakesFields = []fieldAccessor[Brakes]{
	{"brake_bias_pct", func(b *Brakes) (float64, bool) { return fval(b.BrakeBiasPct) }, func(b *Brakes, v float64) { b.BrakeBiasPct = fptr(v) }},
	{"max_force_n", func(b *Brakes) (float64, bool) { return fval(b.MaxForceN) }, func(b *Brakes, v float64) { b.MaxForceN = fptr(v) }},
}

var electronicsFields = []fieldAccessor[Electronics]{
	{"tc_level", func(e *Electronics) (float64, bool) { return ival(e.TCLevel) }, func(e *Electronics, v float64) { e.TCLevel = iptr(v) }},
	{"tc2_level", func(e *Electronics) (float64, bool) { return ival(e.TC2Level) }, func(e *Electronics, v float64) { e.TC2Level = iptr(v) }},
	{"abs_level", func(e *Electronics) (float64, bool) { return ival(e.ABSLevel) }, func(e *Electronics, v float64) { e.ABSLevel = iptr(v) }},
	{"engine_map", func(e *Electronics) (float64, bool) { return ival(e.EngineMap) }, func(e *Electronics, v float64) { e.EngineMap = iptr(v) }},
	{"engine_brake_level", func(e *Electronics) (float64, bool) { return ival(e.EngineBrakeLevel) }, func(e *Electronics, v float64) { e.EngineBrakeLevel = iptr(v) }},
	{"pit_limiter_kph", func(e *Electronics) (float64, bool) { return fval(e.PitLimiterKPH) }, func(e *Electronics, v float64) { e.PitLimiterKPH = fptr(v) }},
}

var fuelFields = []fieldAccessor[Fuel]{
	{"start_fuel_l", func(f *Fuel) (float64, bool) { return fval(f.StartFuelL) }, func(f *Fuel, v float64) { f.StartFuelL = fptr(v) }},
	{"per_lap_consumption_l", func(f *Fuel) (float64, bool) { return fval(f.PerLapL) }, func(f *Fuel, v float64) { f.PerLapL = fptr(v) }},
	{"stint_target_laps", func(f *Fuel) (float64, bool) { return ival(f.StintTargetLaps) }, func(f *Fuel, v float64) { f.StintTargetLaps = iptr(v) }},
	{"mixture_setting", func(f *Fuel) (float64, bool) { return ival(f.MixtureSetting) }, func(f *Fuel, v float64) { f.MixtureSetting = iptr(v) }},
}

// Lazy container creation for SetValue.

func ensureAero(s *Setup) *Aerodynamics {
	if s.Aero == nil {
		s.Aero = &Aerodynamics{}
	}
	return s.Aero
}

func ensureSuspension(s *Setup) *Suspension {
	if s.Suspension == nil {
		s.Suspension = &Suspension{}
	}
	return s.Suspension
}

func ensureCorner(s *Suspension, name string) *CornerSuspension {
	var slot **CornerSuspension
	switch name {
	case "front_left":
		slot = &s.FrontLeft
	case "front_right":
		slot = &s.FrontRight
	case "rear_left":
		slot = &s.RearLeft
	case "rear_right":
		slot = &s.RearRight
	default:
		return nil
	}
	if *slot == nil {
		*slot = &CornerSuspension{}
	}
	return *slot
}

func cornerByName(s *Suspension, name string) *CornerSuspension {
	switch name {
	case "front_left":
		return s.FrontLeft
	case "front_right":
		return s.FrontRight
	case "rear_left":
		return s.RearLeft
	case "rear_right":
		return s.RearRight
	}
	return nil
}

func isCornerName(name string) bool {
	for _, c := range cornerNames {
		if c == name {
			return true
		}
	}
	return false
}

func ensureTires(s *Setup) *Tires {
	if s.Tires == nil {
		s.Tires = &Tires{}
	}
	return s.Tires
}

func ensureDrivetrain(s *Setup) *Drivetrain {
	if s.Drivetrain == nil {
		s.Drivetrain = &Drivetrain{}
	}
	return s.Drivetrain
}

func ensureGearing(s *Setup) *Gearing {
	if s.Gearing == nil {
		s.Gearing = &Gearing{}
	}
	return s.Gearing
}

func ensureBrakes(s *Setup) *Brakes {
	if s.Brakes == nil {
		s.Brakes = &Brakes{}
	}
	return s.Brakes
}

func ensureElectronics(s *Setup) *Electronics {
	if s.Electronics == nil {
		s.Electronics = &Electronics{}
	}
	return s.Electronics
}

func ensureFuel(s *Setup) *Fuel {
	if s.Fuel == nil {
		s.Fuel = &Fuel{}
	}
	return s.Fuel
}

// gearIndex parses a gearing leaf of the form gear_<index>, returning
// the zero-based index.
func gearIndex(field string) (int, bool) {
	rest, ok := strings.CutPrefix(field, "gear_")
	if !ok || rest == "" {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

// GetValue resolves a dotted field path against the document tree and
// returns the leaf's numeric value. The second result is false when the
// path is malformed, any traversed optional container is absent, or the
// leaf itself holds no value. Integer-typed leaves are widened to
// float64.
func GetValue(doc *Document, path string) (float64, bool) {
	parts := strings.Split(path, ".")
	if len(parts) < 3 || parts[0] != PathRoot {
		return 0, false
	}

	setup := &doc.Setup

	switch parts[1] {
	case "aero":
		if len(parts) != 3 || setup.Aero == nil {
			return 0, false
		}
		if f, ok := lookupField(aeroFields, parts[2]); ok {
			return f.get(setup.Aero)
		}

	case "suspension":
		if setup.Suspension == nil {
			return 0, false
		}
		if isCornerName(parts[2]) {
			if len(parts) != 4 {
				return 0, false
			}
			corner := cornerByName(setup.Suspension, parts[2])
			if corner == nil {
				return 0, false
			}
			if f, ok := lookupField(cornerFields, parts[3]); ok {
				return f.get(corner)
			}
			return 0, false
		}
		if len(parts) != 3 {
			return 0, false
		}
		if f, ok := lookupField(suspensionFields, parts[2]); ok {
			return f.get(setup.Suspension)
		}

	case "tires":
		if len(parts) != 3 || setup.Tires == nil {
			return 0, false
		}
		if f, ok := lookupField(tiresFields, parts[2]); ok {
			return f.get(setup.Tires)
		}

	case "drivetrain":
		if len(parts) != 3 || setup.Drivetrain == nil {
			return 0, false
		}
		if f, ok := lookupField(drivetrainFields, parts[2]); ok {
			return f.get(setup.Drivetrain)
		}

	case "gearing":
		if len(parts) != 3 || setup.Gearing == nil {
			return 0, false
		}
		if parts[2] == "reverse_ratio" {
			return fval(setup.Gearing.ReverseRatio)
		}
		if i, ok := gearIndex(parts[2]); ok && i < len(setup.Gearing.GearRatios) {
			return setup.Gearing.GearRatios[i], true
		}

	case "brakes":
		if len(parts) != 3 || setup.Brakes == nil {
			return 0, false
		}
		if f, ok := lookupField(brakesFields, parts[2]); ok {
			return f.get(setup.Brakes)
		}

	case "electronics":
		if len(parts) != 3 || setup.Electronics == nil {
			return 0, false
		}
		if f, ok := lookupField(electronicsFields, parts[2]); ok {
			return f.get(setup.Electronics)
		}

	case "fuel":
		if len(parts) != 3 || setup.Fuel == nil {
			return 0, false
		}
		if f, ok := lookupField(fuelFields, parts[2]); ok {
			return f.get(setup.Fuel)
		}
	}

	return 0, false
}

// SetValue assigns a leaf through its dotted field path, lazily
// creating any absent container along the way. Malformed paths (wrong
// root, too few segments, unknown subsystem or leaf) fail with
// ErrCodeInvalidPath and leave the document untouched. Setting
// setup.gearing.gear_<i> beyond the current ratio list grows the list
// with zero entries up to the index.
func SetValue(doc *Document, path string, value float64) error {
	parts := strings.Split(path, ".")
	if len(parts) < 3 || parts[0] != PathRoot {
		return NewInvalidPathError(path)
	}

	setup := &doc.Setup

	switch parts[1] {
	case "aero":
		if len(parts) == 3 {
			if f, ok := lookupField(aeroFields, parts[2]); ok {
				f.set(ensureAero(setup), value)
				return nil
			}
		}

	case "suspension":
		if isCornerName(parts[2]) {
			if len(parts) != 4 {
				return NewInvalidPathError(path)
			}
			if f, ok := lookupField(cornerFields, parts[3]); ok {
				f.set(ensureCorner(ensureSuspension(setup), parts[2]), value)
				return nil
			}
			return NewInvalidPathError(path)
		}
		if len(parts) == 3 {
			if f, ok := lookupField(suspensionFields, parts[2]); ok {
				f.set(ensureSuspension(setup), value)
				return nil
			}
		}

	case "tires":
		if len(parts) == 3 {
			if f, ok := lookupField(tiresFields, parts[2]); ok {
				f.set(ensureTires(setup), value)
				return nil
			}
		}

	case "drivetrain":
		if len(parts) == 3 {
			if f, ok := lookupField(drivetrainFields, parts[2]); ok {
				f.set(ensureDrivetrain(setup), value)
				return nil
			}
		}

	case "gearing":
		if len(parts) == 3 {
			if parts[2] == "reverse_ratio" {
				ensureGearing(setup).ReverseRatio = fptr(value)
				return nil
			}
			if i, ok := gearIndex(parts[2]); ok {
				g := ensureGearing(setup)
				for len(g.GearRatios) <= i {
					g.GearRatios = append(g.GearRatios, 0)
				}
				g.GearRatios[i] = value
				return nil
			}
		}

	case "brakes":
		if len(parts) == 3 {
			if f, ok := lookupField(brakesFields, parts[2]); ok {
				f.set(ensureBrakes(setup), value)
				return nil
			}
		}

	case "electronics":
		if len(parts) == 3 {
			if f, ok := lookupField(electronicsFields, parts[2]); ok {
				f.set(ensureElectronics(setup), value)
				return nil
			}
		}

	case "fuel":
		if len(parts) == 3 {
			if f, ok := lookupField(fuelFields, parts[2]); ok {
				f.set(ensureFuel(setup), value)
				return nil
			}
		}
	}

	return NewInvalidPathError(path)
}
