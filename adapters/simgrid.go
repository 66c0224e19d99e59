package adapters

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	orsf "github.com/openracing/orsf"
)

// SimGridID is the simulator id of the SimGrid flat-file adapter.
const SimGridID = "simgrid"

// SimGrid converts to and from SimGrid's flat KEY=value setup files.
// SimGrid stores tire pressures in psi, brake bias as a 0-1 ratio and
// fuel in US gallons; the mapping table carries those conversions in
// both directions.
type SimGrid struct {
	orsf.BaseAdapter
}

// NewSimGrid builds the SimGrid adapter.
func NewSimGrid() *SimGrid {
	return &SimGrid{
		BaseAdapter: orsf.NewBaseAdapter(orsf.AdapterInfo{
			ID:            SimGridID,
			Version:       "1.2.0",
			Description:   "SimGrid flat setup files",
			FileExtension: "sgs",
		}, simGridMappings()),
	}
}

func simGridMappings() []orsf.FieldMapping {
	psiOut := orsf.UnitConvert(orsf.UnitKPA, orsf.UnitPSI)
	psiIn := orsf.UnitConvert(orsf.UnitPSI, orsf.UnitKPA)

	return []orsf.FieldMapping{
		{Path: "setup.tires.pressure_fl_kpa", NativeKey: "TIRE_PRESSURE_LF", ToNative: psiOut, FromNative: psiIn},
		{Path: "setup.tires.pressure_fr_kpa", NativeKey: "TIRE_PRESSURE_RF", ToNative: psiOut, FromNative: psiIn},
		{Path: "setup.tires.pressure_rl_kpa", NativeKey: "TIRE_PRESSURE_LR", ToNative: psiOut, FromNative: psiIn},
		{Path: "setup.tires.pressure_rr_kpa", NativeKey: "TIRE_PRESSURE_RR", ToNative: psiOut, FromNative: psiIn},

		{Path: "setup.brakes.brake_bias_pct", NativeKey: "BRAKE_BIAS", ToNative: orsf.PercentToRatio(), FromNative: orsf.RatioToPercent()},

		{Path: "setup.aero.front_wing", NativeKey: "WING_FRONT"},
		{Path: "setup.aero.rear_wing", NativeKey: "WING_REAR"},
		{Path: "setup.aero.front_ride_height_mm", NativeKey: "RIDE_HEIGHT_FRONT"},
		{Path: "setup.aero.rear_ride_height_mm", NativeKey: "RIDE_HEIGHT_REAR"},

		{Path: "setup.suspension.front_arb", NativeKey: "ARB_FRONT"},
		{Path: "setup.suspension.rear_arb", NativeKey: "ARB_REAR"},

		{Path: "setup.electronics.tc_level", NativeKey: "TRACTION_CONTROL"},
		{Path: "setup.electronics.abs_level", NativeKey: "ABS"},

		{
			Path:       "setup.fuel.start_fuel_l",
			NativeKey:  "FUEL_LOAD",
			ToNative:   orsf.UnitConvert(orsf.UnitLiter, orsf.UnitGallonUS),
			FromNative: orsf.UnitConvert(orsf.UnitGallonUS, orsf.UnitLiter),
		},
	}
}

// ToNative renders the document as KEY=value lines, sorted by key.
func (s *SimGrid) ToNative(doc *orsf.Document) ([]byte, error) {
	native, err := s.ToFlat(doc)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(native))
	for k := range native {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "# SimGrid setup: %s\n", doc.Metadata.Name)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(native[k], 'g', -1, 64))
		b.WriteByte('\n')
	}

	zap.S().Debugw("simgrid: exported setup",
		"name", doc.Metadata.Name,
		"fields", len(keys))
	return []byte(b.String()), nil
}

// FromNative parses KEY=value lines into a fresh document. Comment and
// blank lines are skipped; unparseable values fail the import.
func (s *SimGrid) FromNative(data []byte) (*orsf.Document, error) {
	native := make(map[string]float64)

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, raw, ok := strings.Cut(line, "=")
		if !ok {
			return nil, orsf.NewDecodeError(
				fmt.Sprintf("line %d: expected KEY=value, got %q", i+1, line), nil)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, orsf.NewDecodeError(
				fmt.Sprintf("line %d: value for %q is not numeric", i+1, strings.TrimSpace(key)), err)
		}
		native[strings.TrimSpace(key)] = value
	}

	template := orsf.NewDocument("SimGrid import", "Unknown", "Unknown")
	origin := SimGridID
	template.Metadata.OriginSim = &origin

	doc, err := s.FlatToDoc(native, template)
	if err != nil {
		return nil, err
	}

	zap.S().Debugw("simgrid: imported setup", "fields", len(native))
	return doc, nil
}
