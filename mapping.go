package orsf

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// FlatSetup is the flattened view of a document's setup tree: one entry
// per populated numeric leaf, keyed by its dotted field path.
type FlatSetup map[string]float64

// FieldMapping declares how one canonical field corresponds to one key
// in a native setup format. Nil transforms mean the value passes
// through unchanged.
type FieldMapping struct {
	// Path is the dotted canonical field path, e.g.
	// "setup.tires.pressure_fl_kpa".
	Path string

	// NativeKey is the field's name in the native format.
	NativeKey string

	// ToNative adapts the canonical value when exporting.
	ToNative TransformFunc

	// FromNative adapts the native value when importing.
	FromNative TransformFunc

	// Required marks fields whose absence aborts the whole mapping.
	Required bool
}

// Flatten walks every populated numeric leaf of the setup tree and
// returns it under its dotted path. Absent containers and unset leaves
// produce no entry.
func Flatten(doc *Document) FlatSetup {
	flat := make(FlatSetup)
	setup := &doc.Setup

	if setup.Aero != nil {
		flattenInto(flat, "setup.aero.", aeroFields, setup.Aero)
	}
	if setup.Suspension != nil {
		for _, name := range cornerNames {
			if corner := cornerByName(setup.Suspension, name); corner != nil {
				flattenInto(flat, "setup.suspension."+name+".", cornerFields, corner)
			}
		}
		flattenInto(flat, "setup.suspension.", suspensionFields, setup.Suspension)
	}
	if setup.Tires != nil {
		flattenInto(flat, "setup.tires.", tiresFields, setup.Tires)
	}
	if setup.Drivetrain != nil {
		flattenInto(flat, "setup.drivetrain.", drivetrainFields, setup.Drivetrain)
	}
	if setup.Gearing != nil {
		for i, ratio := range setup.Gearing.GearRatios {
			flat["setup.gearing.gear_"+strconv.Itoa(i)] = ratio
		}
		if setup.Gearing.ReverseRatio != nil {
			flat["setup.gearing.reverse_ratio"] = *setup.Gearing.ReverseRatio
		}
	}
	if setup.Brakes != nil {
		flattenInto(flat, "setup.brakes.", brakesFields, setup.Brakes)
	}
	if setup.Electronics != nil {
		flattenInto(flat, "setup.electronics.", electronicsFields, setup.Electronics)
	}
	if setup.Fuel != nil {
		flattenInto(flat, "setup.fuel.", fuelFields, setup.Fuel)
	}

	return flat
}

func flattenInto[T any](flat FlatSetup, prefix string, fields []fieldAccessor[T], container *T) {
	for _, f := range fields {
		if v, ok := f.get(container); ok {
			flat[prefix+f.name] = v
		}
	}
}

// Inflate writes every flat entry back into the document through
// SetValue. Malformed keys are logged and skipped; the remaining
// entries still apply.
func Inflate(flat FlatSetup, doc *Document) {
	for path, value := range flat {
		if err := SetValue(doc, path, value); err != nil {
			zap.S().Warnw("inflate: skipping entry",
				"path", path,
				"error", err)
		}
	}
}

// MapToNative projects a document onto a native format's keys according
// to the given mappings. Optional fields absent from the document are
// skipped; a required field absent aborts with
// ErrCodeRequiredFieldMissing, and a transform failure aborts with the
// transform's error carrying the field path.
func MapToNative(doc *Document, mappings []FieldMapping) (map[string]float64, error) {
	native := make(map[string]float64, len(mappings))

	for _, m := range mappings {
		value, ok := GetValue(doc, m.Path)
		if !ok {
			if m.Required {
				return nil, NewRequiredFieldError(m.Path)
			}
			continue
		}

		if m.ToNative != nil {
			var err error
			value, err = m.ToNative(value)
			if err != nil {
				return nil, conversionError(m.Path, err)
			}
		}
		native[m.NativeKey] = value
	}

	return native, nil
}

// MapToORSF applies native values onto a copy of the template document
// according to the given mappings, the inverse direction of
// MapToNative. Paths not covered by any mapping keep their template
// values; the template itself is never mutated. A required native key
// absent aborts with ErrCodeRequiredFieldMissing; transform and path
// errors abort likewise.
func MapToORSF(native map[string]float64, mappings []FieldMapping, template *Document) (*Document, error) {
	doc, err := template.Clone()
	if err != nil {
		return nil, err
	}

	for _, m := range mappings {
		value, ok := native[m.NativeKey]
		if !ok {
			if m.Required {
				return nil, NewRequiredFieldError(m.NativeKey)
			}
			continue
		}

		if m.FromNative != nil {
			value, err = m.FromNative(value)
			if err != nil {
				return nil, conversionError(m.Path, err)
			}
		}
		if err := SetValue(doc, m.Path, value); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func conversionError(path string, cause error) *Error {
	if e, ok := cause.(*Error); ok && e.Field == "" {
		return e.WithField(path)
	}
	return NewError(ErrCodeConversionFailed, fmt.Sprintf("transform failed: %v", cause)).
		WithField(path).
		WithCause(cause)
}

// Clone deep-copies a document through a JSON round trip. The model is
// plain data, so this is both correct and cheap enough for setup-sized
// payloads.
func (d *Document) Clone() (*Document, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, NewError(ErrCodeEncodeFailed, "clone: marshal failed").WithCause(err)
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, NewDecodeError("clone: unmarshal failed", err)
	}
	return &out, nil
}
