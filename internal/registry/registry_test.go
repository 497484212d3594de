package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSpec struct {
	Name        string
	Description string
}

type testHandler func() string

func TestRegisterAndLookup(t *testing.T) {
	reg := New[testSpec, testHandler]()

	err := reg.Register("alpha", testSpec{Name: "alpha"}, func() string { return "a" })
	require.NoError(t, err)

	entry, ok := reg.Lookup("alpha")
	require.True(t, ok)
	assert.Equal(t, "alpha", entry.Spec.Name)
	assert.Equal(t, "a", entry.Handler())
}

func TestLookupMiss(t *testing.T) {
	reg := New[testSpec, testHandler]()

	_, ok := reg.Lookup("missing")
	assert.False(t, ok)
}

func TestDuplicateNameRejected(t *testing.T) {
	reg := New[testSpec, testHandler]()

	require.NoError(t, reg.Register("alpha", testSpec{}, nil))
	err := reg.Register("alpha", testSpec{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	assert.Equal(t, 1, reg.Len())
}

func TestEmptyNameRejected(t *testing.T) {
	reg := New[testSpec, testHandler]()

	err := reg.Register("", testSpec{}, nil)
	require.Error(t, err)
}

func TestOrderPreserved(t *testing.T) {
	reg := New[testSpec, testHandler]()

	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		require.NoError(t, reg.Register(name, testSpec{Name: name}, nil))
	}

	assert.Equal(t, names, reg.Names())

	specs := reg.Specs()
	require.Len(t, specs, 3)
	for i, spec := range specs {
		assert.Equal(t, names[i], spec.Name)
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	reg := New[testSpec, testHandler]()
	require.NoError(t, reg.Register("alpha", testSpec{}, nil))

	names := reg.Names()
	names[0] = "mutated"

	assert.Equal(t, []string{"alpha"}, reg.Names())
}
