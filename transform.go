package orsf

import "math"

// invertEpsilon is the absolute zero-guard for Invert.
const invertEpsilon = 1e-10

// TransformFunc is a pure scalar function used to adapt a value between
// canonical and native units or scales. Constructors name the function;
// nothing is evaluated until the transform is applied.
type TransformFunc func(float64) (float64, error)

// Identity returns the value unchanged.
func Identity() TransformFunc {
	return func(x float64) (float64, error) { return x, nil }
}

// Scale multiplies by a constant factor.
func Scale(factor float64) TransformFunc {
	return func(x float64) (float64, error) { return x * factor, nil }
}

// Offset adds a constant amount.
func Offset(amount float64) TransformFunc {
	return func(x float64) (float64, error) { return x + amount, nil }
}

// Linear scales then offsets.
func Linear(scale, offset float64) TransformFunc {
	return func(x float64) (float64, error) { return x*scale + offset, nil }
}

// Invert maps x to 1/x. Inputs within invertEpsilon of zero are out of
// domain and fail with ErrCodeTransformDomain.
func Invert() TransformFunc {
	return func(x float64) (float64, error) {
		if math.Abs(x) < invertEpsilon {
			return 0, NewTransformDomainError("cannot invert value at or near zero")
		}
		return 1.0 / x, nil
	}
}

// Negate maps x to -x.
func Negate() TransformFunc {
	return func(x float64) (float64, error) { return -x, nil }
}

// ClampTo restricts values to [min, max].
func ClampTo(min, max float64) TransformFunc {
	return func(x float64) (float64, error) { return Clamp(x, min, max, 0), nil }
}

// PercentToRatio maps a percentage (0-100) to a ratio (0-1).
func PercentToRatio() TransformFunc {
	return func(x float64) (float64, error) { return x / 100.0, nil }
}

// RatioToPercent maps a ratio (0-1) to a percentage (0-100).
func RatioToPercent() TransformFunc {
	return func(x float64) (float64, error) { return x * 100.0, nil }
}

// UnitConvert converts between two units of the same dimension family.
// Cross-family pairs surface as per-call conversion failures.
func UnitConvert(from, to Unit) TransformFunc {
	return func(x float64) (float64, error) {
		return Convert(x, from, to)
	}
}

// TableLookup interpolates through the given lookup table. The table is
// captured at construction; later tables built from the same entries do
// not affect transforms already created.
func TableLookup(lut *LookupTable) TransformFunc {
	entries := lut.Entries()
	return func(x float64) (float64, error) {
		return interpolate(entries, x), nil
	}
}

// TableReverse reverse-looks-up through the given lookup table.
func TableReverse(lut *LookupTable) TransformFunc {
	captured := &LookupTable{entries: lut.Entries()}
	return func(x float64) (float64, error) {
		return captured.ReverseLookup(x), nil
	}
}

// Compose chains transforms strictly left to right, each consuming the
// previous output. Composing nothing yields the identity.
func Compose(transforms ...TransformFunc) TransformFunc {
	return func(x float64) (float64, error) {
		result := x
		for _, transform := range transforms {
			var err error
			result, err = transform(result)
			if err != nil {
				return 0, err
			}
		}
		return result, nil
	}
}
