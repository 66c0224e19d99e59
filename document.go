package orsf

import (
	"github.com/google/uuid"

	"github.com/openracing/orsf/internal/timex"
)

// SchemaV1 is the schema identifier every valid document must carry.
const SchemaV1 = "orsf://v1"

// Metadata identifies and tracks a setup document.
type Metadata struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Notes     *string  `json:"notes,omitempty"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt *string  `json:"updated_at,omitempty"`
	CreatedBy *string  `json:"created_by,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Source    *string  `json:"source,omitempty"`
	OriginSim *string  `json:"origin_sim,omitempty"`
}

// Car identifies the vehicle a setup applies to.
type Car struct {
	Make    string  `json:"make"`
	Model   string  `json:"model"`
	Variant *string `json:"variant,omitempty"`
	Class   *string `json:"car_class,omitempty"`
	BOPID   *string `json:"bop_id,omitempty"`
}

// Context captures environmental and session information.
type Context struct {
	Track        *string  `json:"track,omitempty"`
	Layout       *string  `json:"layout,omitempty"`
	AmbientTempC *float64 `json:"ambient_temp_c,omitempty"`
	TrackTempC   *float64 `json:"track_temp_c,omitempty"`
	Rubber       *string  `json:"rubber,omitempty"`
	Wetness      *float64 `json:"wetness,omitempty"` // 0.0 (dry) to 1.0 (fully wet)
	SessionType  *string  `json:"session_type,omitempty"`
	FuelRule     *string  `json:"fuel_rule,omitempty"`
}

// Aerodynamics holds the aero subsystem settings.
type Aerodynamics struct {
	FrontWing         *float64 `json:"front_wing,omitempty"`
	RearWing          *float64 `json:"rear_wing,omitempty"`
	FrontDownforceN   *float64 `json:"front_downforce_n,omitempty"`
	RearDownforceN    *float64 `json:"rear_downforce_n,omitempty"`
	FrontRideHeightMM *float64 `json:"front_ride_height_mm,omitempty"`
	RearRideHeightMM  *float64 `json:"rear_ride_height_mm,omitempty"`
	RakeMM            *float64 `json:"rake_mm,omitempty"`
	BrakeDuctFrontPct *float64 `json:"brake_duct_front_pct,omitempty"`
	BrakeDuctRearPct  *float64 `json:"brake_duct_rear_pct,omitempty"`
	RadiatorOpenPct   *float64 `json:"radiator_opening_pct,omitempty"`
}

// CornerSuspension holds per-corner suspension settings (FL/FR/RL/RR).
type CornerSuspension struct {
	CamberDeg            *float64 `json:"camber_deg,omitempty"`
	ToeDeg               *float64 `json:"toe_deg,omitempty"`
	CasterDeg            *float64 `json:"caster_deg,omitempty"`
	SpringRateNMM        *float64 `json:"spring_rate_n_mm,omitempty"`
	RideHeightMM         *float64 `json:"ride_height_mm,omitempty"`
	BumpstopGapMM        *float64 `json:"bumpstop_gap_mm,omitempty"`
	BumpstopRateNMM      *float64 `json:"bumpstop_rate_n_mm,omitempty"`
	PackerMM             *float64 `json:"packer_mm,omitempty"`
	DamperBumpSlowNSM    *float64 `json:"damper_bump_slow_n_s_m,omitempty"`
	DamperBumpFastNSM    *float64 `json:"damper_bump_fast_n_s_m,omitempty"`
	DamperReboundSlowNSM *float64 `json:"damper_rebound_slow_n_s_m,omitempty"`
	DamperReboundFastNSM *float64 `json:"damper_rebound_fast_n_s_m,omitempty"`
}

// Suspension holds the four corner blocks plus shared anti-roll and
// heave settings.
type Suspension struct {
	FrontLeft      *CornerSuspension `json:"front_left,omitempty"`
	FrontRight     *CornerSuspension `json:"front_right,omitempty"`
	RearLeft       *CornerSuspension `json:"rear_left,omitempty"`
	RearRight      *CornerSuspension `json:"rear_right,omitempty"`
	FrontARB       *float64          `json:"front_arb,omitempty"`
	RearARB        *float64          `json:"rear_arb,omitempty"`
	HeaveSpringNMM *float64          `json:"heave_spring_n_mm,omitempty"`
	HeavePackerMM  *float64          `json:"heave_packer_mm,omitempty"`
}

// Tires holds compound and pressure settings.
type Tires struct {
	Compound      *string  `json:"compound,omitempty"`
	PressureFLKPA *float64 `json:"pressure_fl_kpa,omitempty"`
	PressureFRKPA *float64 `json:"pressure_fr_kpa,omitempty"`
	PressureRLKPA *float64 `json:"pressure_rl_kpa,omitempty"`
	PressureRRKPA *float64 `json:"pressure_rr_kpa,omitempty"`
	StaggerMM     *float64 `json:"stagger_mm,omitempty"`
}

// Drivetrain holds differential and final drive settings.
type Drivetrain struct {
	DiffPreloadNM    *float64 `json:"diff_preload_nm,omitempty"`
	DiffPowerRampPct *float64 `json:"diff_power_ramp_pct,omitempty"`
	DiffCoastRampPct *float64 `json:"diff_coast_ramp_pct,omitempty"`
	FinalDriveRatio  *float64 `json:"final_drive_ratio,omitempty"`
	LSDClutchPlates  *int     `json:"lsd_clutch_plates,omitempty"`
}

// Gearing holds the ordered gear ratio list plus the reverse ratio.
// Ratios are addressed as setup.gearing.gear_<index> (zero-based).
type Gearing struct {
	GearRatios   []float64 `json:"gear_ratios,omitempty"`
	ReverseRatio *float64  `json:"reverse_ratio,omitempty"`
}

// Brakes holds brake hardware and balance settings.
type Brakes struct {
	PadCompound  *string  `json:"pad_compound,omitempty"`
	DiscType     *string  `json:"disc_type,omitempty"`
	BrakeBiasPct *float64 `json:"brake_bias_pct,omitempty"` // front bias, 0-100
	MaxForceN    *float64 `json:"max_force_n,omitempty"`
}

// Electronics holds driver-aid and engine management settings.
type Electronics struct {
	TCLevel          *int     `json:"tc_level,omitempty"`
	TC2Level         *int     `json:"tc2_level,omitempty"`
	ABSLevel         *int     `json:"abs_level,omitempty"`
	EngineMap        *int     `json:"engine_map,omitempty"`
	EngineBrakeLevel *int     `json:"engine_brake_level,omitempty"`
	PitLimiterKPH    *float64 `json:"pit_limiter_kph,omitempty"`
}

// Fuel holds fuel load and consumption settings.
type Fuel struct {
	StartFuelL      *float64 `json:"start_fuel_l,omitempty"`
	PerLapL         *float64 `json:"per_lap_consumption_l,omitempty"`
	StintTargetLaps *int     `json:"stint_target_laps,omitempty"`
	MixtureSetting  *int     `json:"mixture_setting,omitempty"`
}

// Strategy holds race strategy settings plus an open-ended extension
// map for simulator-specific data the core engine never touches.
type Strategy struct {
	TireChangePolicy *string        `json:"tire_change_policy,omitempty"`
	Notes            *string        `json:"notes,omitempty"`
	Custom           map[string]any `json:"custom,omitempty"`
}

// Setup is the vehicle configuration tree. Every subsystem is
// independently optional; a document may specify only one corner of the
// suspension, or no suspension at all.
type Setup struct {
	Aero        *Aerodynamics `json:"aero,omitempty"`
	Suspension  *Suspension   `json:"suspension,omitempty"`
	Tires       *Tires        `json:"tires,omitempty"`
	Drivetrain  *Drivetrain   `json:"drivetrain,omitempty"`
	Gearing     *Gearing      `json:"gearing,omitempty"`
	Brakes      *Brakes       `json:"brakes,omitempty"`
	Electronics *Electronics  `json:"electronics,omitempty"`
	Fuel        *Fuel         `json:"fuel,omitempty"`
	Strategy    *Strategy     `json:"strategy,omitempty"`
}

// Document is the canonical setup tree. Schema must equal SchemaV1 for
// the document to decode or validate cleanly. Compat is an opaque
// per-simulator escape hatch, untouched by the core engine.
type Document struct {
	Schema   string         `json:"schema"`
	Metadata Metadata       `json:"metadata"`
	Car      Car            `json:"car"`
	Context  *Context       `json:"context,omitempty"`
	Setup    Setup          `json:"setup"`
	Compat   map[string]any `json:"compat,omitempty"`
}

// NewDocument creates a document with a generated id, the current UTC
// timestamp, and the v1 schema preset.
func NewDocument(name, carMake, carModel string) *Document {
	return &Document{
		Schema: SchemaV1,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Name:      name,
			CreatedAt: timex.Now(),
		},
		Car: Car{
			Make:  carMake,
			Model: carModel,
		},
	}
}
