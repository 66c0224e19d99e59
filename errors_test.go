package orsf

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Rendering(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := NewRequiredFieldError("setup.fuel.start_fuel_l")
		assert.Equal(t, "[REQUIRED_FIELD_MISSING] required field is missing (field: setup.fuel.start_fuel_l)", err.Error())
	})

	t.Run("without field", func(t *testing.T) {
		err := NewError(ErrCodeEncodeFailed, "document marshal failed")
		assert.Equal(t, "[ENCODE_FAILED] document marshal failed", err.Error())
	})
}

func TestError_Builders(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := NewError(ErrCodeConversionFailed, "transform failed").
		WithField("setup.aero.front_wing").
		WithCause(cause)

	assert.Equal(t, "setup.aero.front_wing", err.Field)
	assert.ErrorIs(t, err, cause)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeInvalidPath, CodeOf(NewInvalidPathError("x")))
	assert.Equal(t, "", CodeOf(fmt.Errorf("plain")))
	assert.Equal(t, "", CodeOf(nil))

	wrapped := fmt.Errorf("outer: %w", NewSchemaError("orsf://v0"))
	assert.Equal(t, ErrCodeSchemaUnsupported, CodeOf(wrapped))
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsRequiredFieldError(NewRequiredFieldError("f")))
	assert.True(t, IsDecodeError(NewDecodeError("bad", nil)))
	assert.True(t, IsDecodeError(NewSchemaError("orsf://v0")))
	assert.True(t, IsUnitMismatchError(NewUnitMismatchError(UnitKPA, UnitCelsius)))
	assert.True(t, IsInvalidPathError(NewInvalidPathError("p")))

	assert.False(t, IsDecodeError(NewRequiredFieldError("f")))
	assert.False(t, IsRequiredFieldError(errors.New("plain")))
}

func TestNewSchemaError_Message(t *testing.T) {
	err := NewSchemaError("orsf://v2")
	require.Equal(t, "schema", err.Field)
	assert.Contains(t, err.Message, "orsf://v2")
	assert.Contains(t, err.Message, SchemaV1)
}
