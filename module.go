package beans

import (
	"fmt"
	"reflect"
)

// ModuleOption represents a registration action within a module.
type ModuleOption func(Collection) error

// NewModule creates a new module with the given name and builders.
// Modules group related registrations, the way a configuration class groups
// its component methods.
//
// Example:
//
//	var VehicleModule = beans.NewModule("vehicles",
//	    beans.Add("vehicle1", NewAudi),
//	    beans.Add("FerrariVehicle", NewFerrari),
//	    beans.Add("BMWVehicle", NewBMW, beans.Primary()),
//	)
//
//	var AppModule = beans.NewModule("app",
//	    VehicleModule,
//	    beans.Add("garage", NewGarage),
//	)
func NewModule(name string, builders ...ModuleOption) ModuleOption {
	return func(c Collection) error {
		for _, builder := range builders {
			if builder == nil {
				continue
			}

			if err := builder(c); err != nil {
				return ModuleError{Module: name, Cause: err}
			}
		}

		return nil
	}
}

// Add creates a ModuleOption that calls Collection.Add.
func Add(name string, factory any, opts ...AddOption) ModuleOption {
	return func(c Collection) error {
		return c.Add(name, factory, opts...)
	}
}

// Register creates a ModuleOption that calls Collection.Register.
func Register(def Definition) ModuleOption {
	return func(c Collection) error {
		return c.Register(def)
	}
}

// An AddOption modifies the default behavior of Collection.Add.
type AddOption interface {
	applyAddOption(*addOptions)
}

type addOptions struct {
	Primary bool
	As      any
}

func (o *addOptions) Validate() error {
	if o.As == nil {
		return nil
	}

	t := reflect.TypeOf(o.As)
	if t.Kind() != reflect.Pointer {
		return fmt.Errorf("invalid beans.As(%v): argument must be a pointer to an interface", t)
	}

	if t.Elem().Kind() != reflect.Interface {
		return fmt.Errorf("invalid beans.As(*%v): argument must be a pointer to an interface", t.Elem())
	}

	return nil
}

// Primary is an AddOption that marks the definition as the preferred
// candidate when several definitions match a type lookup.
//
//	c.Add("FerrariVehicle", NewFerrari)
//	c.Add("BMWVehicle", NewBMW, beans.Primary())
//
//	v, _ := beans.Resolve[*Vehicle](registry) // the BMW
func Primary() AddOption {
	return addPrimaryOption{}
}

type addPrimaryOption struct{}

func (addPrimaryOption) String() string {
	return "Primary()"
}

func (addPrimaryOption) applyAddOption(opts *addOptions) {
	opts.Primary = true
}

// As is an AddOption that registers the definition under an interface type
// instead of the concrete type the factory returns. It expects a pointer to
// the interface:
//
//	c.Add("stdout", newBuffer, beans.As(new(io.Writer)))
//
// Type lookups for the concrete type no longer match the definition.
func As(i any) AddOption {
	return addAsOption{iface: i}
}

type addAsOption struct {
	iface any
}

func (o addAsOption) String() string {
	t := reflect.TypeOf(o.iface)
	if t == nil || t.Kind() != reflect.Pointer {
		return fmt.Sprintf("As(%v)", t)
	}
	return fmt.Sprintf("As(%s)", t.Elem())
}

func (o addAsOption) applyAddOption(opts *addOptions) {
	opts.As = o.iface
}
