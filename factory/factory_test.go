package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openracing/orsf/adapters"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	infos := r.Adapters()
	require.Len(t, infos, 2)
	assert.Equal(t, adapters.GenericID, infos[0].ID)
	assert.Equal(t, adapters.SimGridID, infos[1].ID)

	a, err := r.Resolve(adapters.SimGridID, "")
	require.NoError(t, err)
	assert.Equal(t, "sgs", a.FileExtension())

	// Car-specific lookups fall back to the car-agnostic adapters.
	a, err = r.Resolve(adapters.GenericID, "gt3")
	require.NoError(t, err)
	assert.Equal(t, adapters.GenericID, a.ID())
}
