package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	cube := newTarget("cube", 1)

	r.Register(7, cube)
	got, ok := r.Lookup(7)
	assert.True(t, ok)
	assert.Same(t, cube, got)
	assert.Equal(t, 1, r.Len())

	r.Unregister(7)
	_, ok = r.Lookup(7)
	assert.False(t, ok)
}

func TestRegistryRegisterNilRemoves(t *testing.T) {
	r := NewRegistry()
	r.Register(1, newTarget("cube", 1))

	r.Register(1, nil)

	assert.Zero(t, r.Len())
}
