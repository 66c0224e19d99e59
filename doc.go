// Package orsf implements the Open Racing Setup Format, a versioned,
// simulator-neutral interchange format for racing-vehicle setup
// configurations.
//
// The package provides the canonical document model, a rule-based
// validator, pairwise unit conversion, composable value transforms,
// piecewise-linear lookup tables, dotted-path field addressing, and a
// mapping engine that converts documents to and from flat native
// key/value representations driven by declarative field mappings.
// Game-specific formats plug in through the Adapter interface and are
// looked up via an explicitly constructed Registry.
package orsf
