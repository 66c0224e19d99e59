// Package factory wires the built-in adapters into a ready registry.
// It is the composition root for programs that just want "the adapters
// that ship with the library" without naming each one.
package factory

import (
	orsf "github.com/openracing/orsf"
	"github.com/openracing/orsf/adapters"
)

// NewRegistry returns a registry with every built-in adapter
// registered: the canonical JSON passthrough and the SimGrid flat-file
// adapter.
func NewRegistry() *orsf.Registry {
	r := orsf.NewRegistry()
	r.Register(adapters.NewGeneric())
	r.Register(adapters.NewSimGrid())
	return r
}
