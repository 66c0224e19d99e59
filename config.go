package orsf

// Config carries the tolerance windows the validator checks plausible
// values against. Zero-value windows are not special-cased; use
// DefaultConfig and override what differs.
type Config struct {
	// Ambient temperature plausibility window, degrees Celsius.
	AmbientTempMinC float64
	AmbientTempMaxC float64

	// Track temperature plausibility window, degrees Celsius.
	TrackTempMinC float64
	TrackTempMaxC float64

	// Cross-field track/ambient coupling. The track flags as implausible
	// when colder than ambient by more than TrackColderDeltaC or hotter
	// by more than TrackHotterDeltaC.
	TrackColderDeltaC float64
	TrackHotterDeltaC float64

	// Tire pressure plausibility window, kPa.
	TirePressureMinKPA float64
	TirePressureMaxKPA float64

	// Camber plausibility window, degrees.
	CamberMinDeg float64
	CamberMaxDeg float64
}

// DefaultConfig returns the tolerance windows Validate uses.
func DefaultConfig() Config {
	return Config{
		AmbientTempMinC:    -50,
		AmbientTempMaxC:    70,
		TrackTempMinC:      -20,
		TrackTempMaxC:      80,
		TrackColderDeltaC:  5,
		TrackHotterDeltaC:  40,
		TirePressureMinKPA: 50,
		TirePressureMaxKPA: 400,
		CamberMinDeg:       -10,
		CamberMaxDeg:       5,
	}
}
