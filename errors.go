package orsf

import (
	"errors"
	"fmt"
)

// Error codes used across the package.
const (
	// Decode/encode errors
	ErrCodeDecodeFailed      = "DECODE_FAILED"
	ErrCodeEncodeFailed      = "ENCODE_FAILED"
	ErrCodeSchemaUnsupported = "SCHEMA_UNSUPPORTED"

	// Mapping engine errors
	ErrCodeRequiredFieldMissing = "REQUIRED_FIELD_MISSING"
	ErrCodeInvalidPath          = "INVALID_PATH"
	ErrCodeConversionFailed     = "CONVERSION_FAILED"

	// Unit and transform errors
	ErrCodeUnknownUnit     = "UNKNOWN_UNIT"
	ErrCodeUnitMismatch    = "UNIT_MISMATCH"
	ErrCodeTransformDomain = "TRANSFORM_DOMAIN"

	// Lookup table errors
	ErrCodeEmptyLookupTable = "EMPTY_LOOKUP_TABLE"

	// Adapter errors
	ErrCodeAdapterNotFound = "ADAPTER_NOT_FOUND"
)

// Error is the structured error type returned by the core engine.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Cause   error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithField adds field context to the error.
func (e *Error) WithField(field string) *Error {
	e.Field = field
	return e
}

// WithCause adds an underlying cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// NewError creates a new Error.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewRequiredFieldError reports a required field absent during mapping.
func NewRequiredFieldError(field string) *Error {
	return &Error{
		Code:    ErrCodeRequiredFieldMissing,
		Message: "required field is missing",
		Field:   field,
	}
}

// NewDecodeError reports a hard parse-time failure.
func NewDecodeError(message string, cause error) *Error {
	return &Error{
		Code:    ErrCodeDecodeFailed,
		Message: message,
		Cause:   cause,
	}
}

// NewSchemaError reports an unsupported schema version at decode time.
func NewSchemaError(got string) *Error {
	return &Error{
		Code:    ErrCodeSchemaUnsupported,
		Message: fmt.Sprintf("unsupported schema version %q (expected %q)", got, SchemaV1),
		Field:   "schema",
	}
}

// NewUnitMismatchError reports a conversion between units of different
// dimension families.
func NewUnitMismatchError(from, to Unit) *Error {
	return &Error{
		Code:    ErrCodeUnitMismatch,
		Message: fmt.Sprintf("cannot convert %q (%s) to %q (%s)", from, from.Dimension(), to, to.Dimension()),
	}
}

// NewTransformDomainError reports a transform given out-of-domain input.
func NewTransformDomainError(message string) *Error {
	return &Error{
		Code:    ErrCodeTransformDomain,
		Message: message,
	}
}

// NewInvalidPathError reports a malformed or unknown field path.
func NewInvalidPathError(path string) *Error {
	return &Error{
		Code:    ErrCodeInvalidPath,
		Message: "invalid field path",
		Field:   path,
	}
}

// CodeOf extracts the error code from err, or "" if err is not an *Error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsRequiredFieldError checks whether err is a required-field mapping failure.
func IsRequiredFieldError(err error) bool {
	return CodeOf(err) == ErrCodeRequiredFieldMissing
}

// IsDecodeError checks whether err is a hard decode failure (including
// unsupported schema versions).
func IsDecodeError(err error) bool {
	code := CodeOf(err)
	return code == ErrCodeDecodeFailed || code == ErrCodeSchemaUnsupported
}

// IsUnitMismatchError checks whether err is a cross-dimension unit conversion.
func IsUnitMismatchError(err error) bool {
	return CodeOf(err) == ErrCodeUnitMismatch
}

// IsInvalidPathError checks whether err reports a malformed field path.
func IsInvalidPathError(err error) bool {
	return CodeOf(err) == ErrCodeInvalidPath
}
