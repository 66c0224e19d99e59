package orsf

import (
	"fmt"
	"strings"

	"github.com/openracing/orsf/internal/timex"
)

// rubberStates are the accepted track rubber-in descriptors.
var rubberStates = []string{"green", "low", "medium", "high", "saturated"}

// knownCarClasses are the classes the validator recognizes. Anything
// else is flagged as a warning, not an error, so fresh categories still
// pass through.
var knownCarClasses = []string{
	"GT3", "GTE", "LMP2", "LMDh", "GT4", "TCR",
	"F1", "F2", "F3", "F4", "Formula",
}

// Validate runs every semantic check against the default tolerance
// windows and returns all findings, never stopping at the first.
func Validate(doc *Document) []Finding {
	return ValidateWithConfig(doc, DefaultConfig())
}

// ValidateWithConfig is Validate with caller-supplied tolerance windows.
func ValidateWithConfig(doc *Document, cfg Config) []Finding {
	v := &validator{cfg: cfg}

	v.checkSchema(doc)
	v.checkMetadata(&doc.Metadata)
	v.checkCar(&doc.Car)
	if doc.Context != nil {
		v.checkContext(doc.Context)
	}
	v.checkSetup(&doc.Setup)

	return v.findings
}

type validator struct {
	cfg      Config
	findings []Finding
}

func (v *validator) add(f Finding) {
	v.findings = append(v.findings, f)
}

func (v *validator) requireString(field, value string) {
	if value == "" {
		v.add(Finding{
			Severity: SeverityError,
			Code:     FindingRequired,
			Field:    field,
			Message:  "required field is missing or empty",
		})
	}
}

// checkRange flags values outside [min, max].
func (v *validator) checkRange(field string, value *float64, min, max float64, severity Severity) {
	if value == nil {
		return
	}
	if *value < min || *value > max {
		v.add(Finding{
			Severity: severity,
			Code:     FindingOutOfRange,
			Field:    field,
			Message:  "value outside plausible range",
			Expected: fmt.Sprintf("%s to %s", formatNum(min), formatNum(max)),
			Actual:   formatNum(*value),
		})
	}
}

func (v *validator) checkTimestamp(field, value string) {
	if !timex.Valid(value) {
		v.add(Finding{
			Severity: SeverityWarning,
			Code:     FindingInvalidFormat,
			Field:    field,
			Message:  "timestamp is not ISO 8601",
			Expected: "YYYY-MM-DDThh:mm:ssZ",
			Actual:   value,
		})
	}
}

func (v *validator) checkSchema(doc *Document) {
	if doc.Schema != SchemaV1 {
		v.add(Finding{
			Severity: SeverityError,
			Code:     FindingSchemaInvalid,
			Field:    "schema",
			Message:  "unsupported schema version",
			Expected: SchemaV1,
			Actual:   doc.Schema,
		})
	}
}

func (v *validator) checkMetadata(m *Metadata) {
	v.requireString("metadata.id", m.ID)
	v.requireString("metadata.name", m.Name)
	v.requireString("metadata.created_at", m.CreatedAt)

	if m.CreatedAt != "" {
		v.checkTimestamp("metadata.created_at", m.CreatedAt)
	}
	if m.UpdatedAt != nil {
		v.checkTimestamp("metadata.updated_at", *m.UpdatedAt)

		// ISO 8601 strings at the same precision order lexicographically,
		// so no parse is needed for the comparison.
		if m.CreatedAt != "" && *m.UpdatedAt < m.CreatedAt {
			v.add(Finding{
				Severity: SeverityWarning,
				Code:     FindingIncompatible,
				Field:    "metadata.updated_at",
				Message:  "updated_at precedes created_at",
				Expected: ">= " + m.CreatedAt,
				Actual:   *m.UpdatedAt,
			})
		}
	}
}

func (v *validator) checkCar(c *Car) {
	v.requireString("car.make", c.Make)
	v.requireString("car.model", c.Model)

	if c.Class != nil && !containsString(knownCarClasses, *c.Class) {
		v.add(Finding{
			Severity: SeverityWarning,
			Code:     FindingOutOfRange,
			Field:    "car.class",
			Message:  "unrecognized car class",
			Expected: strings.Join(knownCarClasses, ", "),
			Actual:   *c.Class,
		})
	}
}

func (v *validator) checkContext(ctx *Context) {
	v.checkRange("context.ambient_temp_c", ctx.AmbientTempC, v.cfg.AmbientTempMinC, v.cfg.AmbientTempMaxC, SeverityWarning)
	v.checkRange("context.track_temp_c", ctx.TrackTempC, v.cfg.TrackTempMinC, v.cfg.TrackTempMaxC, SeverityWarning)
	v.checkRange("context.wetness", ctx.Wetness, 0, 1, SeverityError)

	if ctx.Rubber != nil && !containsString(rubberStates, *ctx.Rubber) {
		v.add(Finding{
			Severity: SeverityWarning,
			Code:     FindingOutOfRange,
			Field:    "context.rubber",
			Message:  "unrecognized rubber state",
			Expected: strings.Join(rubberStates, ", "),
			Actual:   *ctx.Rubber,
		})
	}

	// A track meaningfully colder than ambient, or absurdly hotter, is
	// almost always a data-entry mistake.
	if ctx.AmbientTempC != nil && ctx.TrackTempC != nil {
		ambient, track := *ctx.AmbientTempC, *ctx.TrackTempC
		if track < ambient-v.cfg.TrackColderDeltaC || track > ambient+v.cfg.TrackHotterDeltaC {
			v.add(Finding{
				Severity: SeverityWarning,
				Code:     FindingIncompatible,
				Field:    "context.track_temp_c",
				Message:  "track temperature implausible relative to ambient",
				Expected: fmt.Sprintf("%s to %s", formatNum(ambient-v.cfg.TrackColderDeltaC), formatNum(ambient+v.cfg.TrackHotterDeltaC)),
				Actual:   formatNum(track),
			})
		}
	}
}

func (v *validator) checkSetup(s *Setup) {
	if s.Aero != nil {
		v.checkPositive("setup.aero.front_ride_height_mm", s.Aero.FrontRideHeightMM)
		v.checkPositive("setup.aero.rear_ride_height_mm", s.Aero.RearRideHeightMM)
		v.checkNonNegative("setup.aero.front_downforce_n", s.Aero.FrontDownforceN)
		v.checkNonNegative("setup.aero.rear_downforce_n", s.Aero.RearDownforceN)
		v.checkPercent("setup.aero.brake_duct_front_pct", s.Aero.BrakeDuctFrontPct)
		v.checkPercent("setup.aero.brake_duct_rear_pct", s.Aero.BrakeDuctRearPct)
		v.checkPercent("setup.aero.radiator_opening_pct", s.Aero.RadiatorOpenPct)
	}

	if s.Suspension != nil {
		for _, name := range cornerNames {
			corner := cornerByName(s.Suspension, name)
			if corner == nil {
				continue
			}
			prefix := "setup.suspension." + name + "."
			v.checkRange(prefix+"camber_deg", corner.CamberDeg, v.cfg.CamberMinDeg, v.cfg.CamberMaxDeg, SeverityWarning)
			v.checkPositive(prefix+"spring_rate_n_mm", corner.SpringRateNMM)
			v.checkPositive(prefix+"ride_height_mm", corner.RideHeightMM)
			v.checkPositive(prefix+"bumpstop_rate_n_mm", corner.BumpstopRateNMM)
			v.checkNonNegative(prefix+"bumpstop_gap_mm", corner.BumpstopGapMM)
			v.checkNonNegative(prefix+"damper_bump_slow_n_s_m", corner.DamperBumpSlowNSM)
			v.checkNonNegative(prefix+"damper_bump_fast_n_s_m", corner.DamperBumpFastNSM)
			v.checkNonNegative(prefix+"damper_rebound_slow_n_s_m", corner.DamperReboundSlowNSM)
			v.checkNonNegative(prefix+"damper_rebound_fast_n_s_m", corner.DamperReboundFastNSM)
		}
		v.checkPositive("setup.suspension.heave_spring_n_mm", s.Suspension.HeaveSpringNMM)
	}

	if s.Tires != nil {
		v.checkRange("setup.tires.pressure_fl_kpa", s.Tires.PressureFLKPA, v.cfg.TirePressureMinKPA, v.cfg.TirePressureMaxKPA, SeverityWarning)
		v.checkRange("setup.tires.pressure_fr_kpa", s.Tires.PressureFRKPA, v.cfg.TirePressureMinKPA, v.cfg.TirePressureMaxKPA, SeverityWarning)
		v.checkRange("setup.tires.pressure_rl_kpa", s.Tires.PressureRLKPA, v.cfg.TirePressureMinKPA, v.cfg.TirePressureMaxKPA, SeverityWarning)
		v.checkRange("setup.tires.pressure_rr_kpa", s.Tires.PressureRRKPA, v.cfg.TirePressureMinKPA, v.cfg.TirePressureMaxKPA, SeverityWarning)
	}

	if s.Drivetrain != nil {
		v.checkPositiveInt("setup.drivetrain.lsd_clutch_plates", s.Drivetrain.LSDClutchPlates)
		v.checkNonNegative("setup.drivetrain.diff_preload_nm", s.Drivetrain.DiffPreloadNM)
		v.checkPercent("setup.drivetrain.diff_power_ramp_pct", s.Drivetrain.DiffPowerRampPct)
		v.checkPercent("setup.drivetrain.diff_coast_ramp_pct", s.Drivetrain.DiffCoastRampPct)
		v.checkPositive("setup.drivetrain.final_drive_ratio", s.Drivetrain.FinalDriveRatio)
	}

	if s.Gearing != nil {
		v.checkGearing(s.Gearing)
	}

	if s.Brakes != nil {
		v.checkPercent("setup.brakes.brake_bias_pct", s.Brakes.BrakeBiasPct)
		v.checkPositive("setup.brakes.max_force_n", s.Brakes.MaxForceN)
	}

	if s.Electronics != nil {
		v.checkPositive("setup.electronics.pit_limiter_kph", s.Electronics.PitLimiterKPH)
	}

	if s.Fuel != nil {
		v.checkNonNegative("setup.fuel.start_fuel_l", s.Fuel.StartFuelL)
		v.checkPositive("setup.fuel.per_lap_consumption_l", s.Fuel.PerLapL)
		v.checkPositiveInt("setup.fuel.stint_target_laps", s.Fuel.StintTargetLaps)
	}
}

func (v *validator) checkGearing(g *Gearing) {
	v.checkPositive("setup.gearing.reverse_ratio", g.ReverseRatio)

	if len(g.GearRatios) == 0 {
		v.add(Finding{
			Severity: SeverityWarning,
			Code:     FindingRequired,
			Field:    "setup.gearing.gear_ratios",
			Message:  "gear ratio list is empty",
		})
		return
	}
	for i, ratio := range g.GearRatios {
		if ratio <= 0 {
			v.add(Finding{
				Severity: SeverityError,
				Code:     FindingOutOfRange,
				Field:    fmt.Sprintf("setup.gearing.gear_ratios[%d]", i),
				Message:  "gear ratio must be positive",
				Expected: "> 0",
				Actual:   formatNum(ratio),
			})
		}
	}
}

// checkPercent flags percentage fields outside [0, 100] as errors.
func (v *validator) checkPercent(field string, value *float64) {
	v.checkRange(field, value, 0, 100, SeverityError)
}

func (v *validator) checkPositive(field string, value *float64) {
	if value != nil && *value <= 0 {
		v.add(Finding{
			Severity: SeverityError,
			Code:     FindingOutOfRange,
			Field:    field,
			Message:  "value must be positive",
			Expected: "> 0",
			Actual:   formatNum(*value),
		})
	}
}

func (v *validator) checkPositiveInt(field string, value *int) {
	if value != nil && *value <= 0 {
		v.add(Finding{
			Severity: SeverityError,
			Code:     FindingOutOfRange,
			Field:    field,
			Message:  "value must be positive",
			Expected: "> 0",
			Actual:   formatNum(float64(*value)),
		})
	}
}

func (v *validator) checkNonNegative(field string, value *float64) {
	if value != nil && *value < 0 {
		v.add(Finding{
			Severity: SeverityError,
			Code:     FindingOutOfRange,
			Field:    field,
			Message:  "value must not be negative",
			Expected: ">= 0",
			Actual:   formatNum(*value),
		})
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
