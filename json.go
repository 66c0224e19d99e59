package orsf

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

//go:embed schema/orsf_v1.json
var schemaV1JSON []byte

var (
	schemaOnce     sync.Once
	schemaResolved *jsonschema.Resolved
	schemaErr      error
)

func resolvedSchema() (*jsonschema.Resolved, error) {
	schemaOnce.Do(func() {
		var schema jsonschema.Schema
		if err := json.Unmarshal(schemaV1JSON, &schema); err != nil {
			schemaErr = NewDecodeError("embedded schema is invalid", err)
			return
		}
		schemaResolved, schemaErr = schema.Resolve(&jsonschema.ResolveOptions{})
	})
	return schemaResolved, schemaErr
}

// Decode parses a document from JSON. A document that is not valid JSON
// or does not carry the v1 schema identifier is rejected outright;
// semantic problems beyond that are the validator's job, not the
// decoder's.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, NewDecodeError("document is not valid JSON", err)
	}
	if doc.Schema != SchemaV1 {
		return nil, NewSchemaError(doc.Schema)
	}
	return &doc, nil
}

// DecodeStrict is Decode preceded by structural validation against the
// embedded v1 JSON Schema, so type mismatches (a string where a number
// belongs, a mistyped section) fail with a precise cause instead of
// silently zeroing fields.
func DecodeStrict(data []byte) (*Document, error) {
	resolved, err := resolvedSchema()
	if err != nil {
		return nil, err
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, NewDecodeError("document is not valid JSON", err)
	}
	if err := resolved.Validate(value); err != nil {
		return nil, NewDecodeError("document does not match the v1 schema", err)
	}

	return Decode(data)
}

// Encode serializes a document to compact JSON.
func Encode(doc *Document) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, NewError(ErrCodeEncodeFailed, "document marshal failed").WithCause(err)
	}
	return raw, nil
}

// EncodeIndent serializes a document to two-space-indented JSON, the
// conventional on-disk form.
func EncodeIndent(doc *Document) ([]byte, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, NewError(ErrCodeEncodeFailed, "document marshal failed").WithCause(err)
	}
	return raw, nil
}
