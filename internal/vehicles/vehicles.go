// Package vehicles holds the demo components registered by the beans CLI.
package vehicles

import (
	"fmt"
	"reflect"

	"github.com/junioryono/beans"
)

// Vehicle is the demo component.
type Vehicle struct {
	Name string `json:"name" yaml:"name"`
}

// Hello returns the vehicle's greeting.
func (v *Vehicle) Hello() string {
	return fmt.Sprintf("Hello from vehicle %s", v.Name)
}

// Engine is a type no definition produces.
type Engine struct {
	Cylinders int `json:"cylinders" yaml:"cylinders"`
}

// ProjectModule registers the three demo vehicles. BMWVehicle is primary.
var ProjectModule = beans.NewModule("project",
	beans.Add("vehicle1", newVehicle("Audi 8")),
	beans.Add("FerrariVehicle", newVehicle("Ferrari")),
	beans.Add("BMWVehicle", newVehicle("BMW"), beans.Primary()),
)

func newVehicle(name string) func() *Vehicle {
	return func() *Vehicle {
		return &Vehicle{Name: name}
	}
}

// Types maps the type names accepted on the command line to their types.
func Types() map[string]reflect.Type {
	return map[string]reflect.Type{
		"Vehicle": beans.TypeOf[*Vehicle](),
		"Engine":  beans.TypeOf[*Engine](),
	}
}

// LookupType returns the type registered under name in Types.
func LookupType(name string) (reflect.Type, error) {
	t, ok := Types()[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q (known: Vehicle, Engine)", name)
	}
	return t, nil
}
