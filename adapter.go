package orsf

import "fmt"

// AdapterInfo describes an adapter for listings and diagnostics.
type AdapterInfo struct {
	ID            string `json:"id"`
	Version       string `json:"version"`
	CarKey        string `json:"car_key,omitempty"`
	Description   string `json:"description,omitempty"`
	FileExtension string `json:"file_extension"`
}

// Adapter converts between canonical documents and one simulator's
// native setup representation. Implementations must be safe for
// concurrent use; the conversion methods never mutate their input
// document.
type Adapter interface {
	// ID identifies the target simulator, e.g. "simgrid".
	ID() string

	// Version is the adapter's own version string.
	Version() string

	// CarKey narrows the adapter to one car or class within the
	// simulator. Empty means the adapter handles any car.
	CarKey() string

	// FileExtension is the native format's extension without the dot.
	FileExtension() string

	// Info returns the adapter's descriptor.
	Info() AdapterInfo

	// FieldMappings exposes the declarative field table driving the
	// conversion, nil when the adapter converts some other way.
	FieldMappings() []FieldMapping

	// ToNative renders the document in the simulator's format.
	ToNative(doc *Document) ([]byte, error)

	// FromNative parses the simulator's format into a document.
	FromNative(data []byte) (*Document, error)

	// Validate reports simulator-specific findings on top of the core
	// validator's.
	Validate(doc *Document) []Finding
}

// SuggestedFilename derives a native-format filename from the
// document's name, or from the car when the name is empty.
func SuggestedFilename(a Adapter, doc *Document) string {
	name := doc.Metadata.Name
	if name == "" {
		name = doc.Car.Make + "_" + doc.Car.Model
	}
	return fmt.Sprintf("%s.%s", slugify(name), a.FileExtension())
}

func slugify(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ', r == '.':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "setup"
	}
	return string(out)
}

// BaseAdapter carries the descriptor and mapping table shared by
// mapping-driven adapters, leaving only the wire format to the
// embedding type.
type BaseAdapter struct {
	info     AdapterInfo
	mappings []FieldMapping
}

// NewBaseAdapter builds the common adapter core.
func NewBaseAdapter(info AdapterInfo, mappings []FieldMapping) BaseAdapter {
	return BaseAdapter{info: info, mappings: mappings}
}

func (b *BaseAdapter) ID() string            { return b.info.ID }
func (b *BaseAdapter) Version() string       { return b.info.Version }
func (b *BaseAdapter) CarKey() string        { return b.info.CarKey }
func (b *BaseAdapter) FileExtension() string { return b.info.FileExtension }
func (b *BaseAdapter) Info() AdapterInfo     { return b.info }

// FieldMappings returns a copy so callers cannot reorder the table.
func (b *BaseAdapter) FieldMappings() []FieldMapping {
	if b.mappings == nil {
		return nil
	}
	out := make([]FieldMapping, len(b.mappings))
	copy(out, b.mappings)
	return out
}

// Validate runs the core validator. Adapters with simulator-specific
// rules override this and append their own findings.
func (b *BaseAdapter) Validate(doc *Document) []Finding {
	return Validate(doc)
}

// ToFlat projects the document through the mapping table, the shared
// first half of most ToNative implementations.
func (b *BaseAdapter) ToFlat(doc *Document) (map[string]float64, error) {
	return MapToNative(doc, b.mappings)
}

// FlatToDoc applies native values onto a copy of the template document
// through the mapping table, the shared second half of most FromNative
// implementations.
func (b *BaseAdapter) FlatToDoc(native map[string]float64, template *Document) (*Document, error) {
	return MapToORSF(native, b.mappings, template)
}
