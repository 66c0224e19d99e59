// Package adapters contains the built-in simulator adapters. Each
// adapter converts between the canonical document model and one native
// setup representation; factory.NewRegistry wires them all up.
package adapters

import (
	orsf "github.com/openracing/orsf"
)

// GenericID is the simulator id of the canonical JSON passthrough.
const GenericID = "generic"

// Generic is the identity adapter: its native format is the canonical
// JSON document itself. It exists so tooling can treat "no conversion"
// as just another adapter.
type Generic struct {
	orsf.BaseAdapter
}

// NewGeneric builds the passthrough adapter.
func NewGeneric() *Generic {
	return &Generic{
		BaseAdapter: orsf.NewBaseAdapter(orsf.AdapterInfo{
			ID:            GenericID,
			Version:       "1.0.0",
			Description:   "Canonical JSON passthrough",
			FileExtension: "json",
		}, nil),
	}
}

// ToNative renders the document as indented canonical JSON.
func (g *Generic) ToNative(doc *orsf.Document) ([]byte, error) {
	return orsf.EncodeIndent(doc)
}

// FromNative parses canonical JSON, schema-checked.
func (g *Generic) FromNative(data []byte) (*orsf.Document, error) {
	return orsf.DecodeStrict(data)
}
