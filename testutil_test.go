package beans

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// Shared Test Types
// ============================================================================

// TVehicle is the basic component used across tests.
type TVehicle struct {
	Name string
}

func (v *TVehicle) Describe() string { return "vehicle " + v.Name }

// TEngine is never registered in most tests.
type TEngine struct {
	Cylinders int
}

// TDescriber is implemented by *TVehicle.
type TDescriber interface {
	Describe() string
}

// TCar embeds nothing but also implements TDescriber.
type TCar struct {
	Model string
}

func (c *TCar) Describe() string { return "car " + c.Model }

// ============================================================================
// Helpers
// ============================================================================

// vehicleFactory returns a factory producing a fresh *TVehicle per call.
func vehicleFactory(name string) func() *TVehicle {
	return func() *TVehicle {
		return &TVehicle{Name: name}
	}
}

// vehicleDefinition builds a raw Definition for a *TVehicle.
func vehicleDefinition(name string, primary bool) Definition {
	return Definition{
		Name:    name,
		Type:    TypeOf[*TVehicle](),
		Primary: primary,
		Factory: func() (any, error) {
			return &TVehicle{Name: name}, nil
		},
	}
}

// mustAdd calls t.Fatal if Add fails.
func mustAdd(t *testing.T, c Collection, name string, factory any, opts ...AddOption) {
	t.Helper()
	require.NoError(t, c.Add(name, factory, opts...), "Add(%q)", name)
}

// mustBuild builds c with opts and fails the test on error.
func mustBuild(t *testing.T, c Collection, opts *Options) Registry {
	t.Helper()
	r, err := c.BuildWithOptions(opts)
	require.NoError(t, err)
	require.NotNil(t, r)
	return r
}

// vehicleRegistry builds the three-vehicle registry with BMWVehicle primary.
func vehicleRegistry(t *testing.T) Registry {
	t.Helper()
	c := NewCollection()
	mustAdd(t, c, "vehicle1", vehicleFactory("Audi 8"))
	mustAdd(t, c, "FerrariVehicle", vehicleFactory("Ferrari"))
	mustAdd(t, c, "BMWVehicle", vehicleFactory("BMW"), Primary())
	return mustBuild(t, c, nil)
}
