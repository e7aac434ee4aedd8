package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stencil/pkg/descriptor"
)

// fakeEngine is a no-op engine for registry tests.
type fakeEngine struct {
	name string
}

func (f *fakeEngine) Name() string    { return f.name }
func (f *fakeEngine) Version() string { return "v0" }
func (f *fakeEngine) Generate(snap descriptor.Snapshot, outDir string) (*Result, error) {
	return &Result{Engine: f.name, EngineVersion: "v0"}, nil
}

func TestRegisterAndLookup(t *testing.T) {
	e := &fakeEngine{name: "fake-lookup"}
	Register(e)

	got, err := Lookup("fake-lookup")
	require.NoError(t, err)
	assert.Same(t, e, got.(*fakeEngine))
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEngineUnknown)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestRegister_DuplicatePanics(t *testing.T) {
	Register(&fakeEngine{name: "fake-dup"})
	assert.Panics(t, func() {
		Register(&fakeEngine{name: "fake-dup"})
	})
}

func TestNames_Sorted(t *testing.T) {
	Register(&fakeEngine{name: "fake-zz"})
	Register(&fakeEngine{name: "fake-aa"})

	names := Names()
	require.GreaterOrEqual(t, len(names), 2)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "fake-aa")
	assert.Contains(t, names, "fake-zz")
}
