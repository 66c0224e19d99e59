package orsf

import (
	"math"
	"sort"
)

// LUTEntry is one control point of a lookup table.
type LUTEntry struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
}

// LookupTable is an immutable piecewise-linear function defined by
// sorted (input, output) control points. Reverse lookup is only
// meaningful when the outputs are monotonic in the inputs; this is a
// precondition, not enforced.
type LookupTable struct {
	entries []LUTEntry
}

// NewLookupTable builds a table from the given entries, copying and
// stable-sorting them ascending by input (duplicate inputs are legal;
// the earlier entry wins). An empty table cannot interpolate and fails
// with ErrCodeEmptyLookupTable.
func NewLookupTable(entries []LUTEntry) (*LookupTable, error) {
	if len(entries) == 0 {
		return nil, NewError(ErrCodeEmptyLookupTable, "lookup table has no entries")
	}

	copied := make([]LUTEntry, len(entries))
	copy(copied, entries)
	sort.SliceStable(copied, func(i, j int) bool {
		return copied[i].Input < copied[j].Input
	})

	return &LookupTable{entries: copied}, nil
}

// Interpolate evaluates the table at x. Inputs at or below the minimum
// return the minimum's output; at or above the maximum, the maximum's
// output; anything in between is linearly interpolated over the
// bracketing segment.
func (t *LookupTable) Interpolate(x float64) float64 {
	return interpolate(t.entries, x)
}

// ReverseLookup finds the input that produces y by interpolating over
// the (output, input) pairs re-sorted by output.
func (t *LookupTable) ReverseLookup(y float64) float64 {
	reversed := make([]LUTEntry, len(t.entries))
	for i, e := range t.entries {
		reversed[i] = LUTEntry{Input: e.Output, Output: e.Input}
	}
	sort.SliceStable(reversed, func(i, j int) bool {
		return reversed[i].Input < reversed[j].Input
	})
	return interpolate(reversed, y)
}

// Entries returns a copy of the sorted control points.
func (t *LookupTable) Entries() []LUTEntry {
	out := make([]LUTEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

func interpolate(entries []LUTEntry, x float64) float64 {
	if x <= entries[0].Input {
		return entries[0].Output
	}
	last := entries[len(entries)-1]
	if x >= last.Input {
		return last.Output
	}

	for i := 0; i < len(entries)-1; i++ {
		if x >= entries[i].Input && x <= entries[i+1].Input {
			return lerp(x, entries[i].Input, entries[i+1].Input, entries[i].Output, entries[i+1].Output)
		}
	}
	return last.Output
}

// lerp interpolates linearly between (x0,y0) and (x1,y1); degenerate
// segments collapse to y0.
func lerp(x, x0, x1, y0, y1 float64) float64 {
	if math.Abs(x1-x0) < 1e-10 {
		return y0
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
