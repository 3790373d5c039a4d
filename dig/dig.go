// Package dig exposes a beans Registry to a go.uber.org/dig container.
//
// Every definition is provided under its name, and every type that resolves
// unambiguously is also provided without a name, so constructors can depend
// on components either way:
//
//	type Params struct {
//	    dig.In
//
//	    Default *Vehicle                          // the primary vehicle
//	    Ferrari *Vehicle `name:"FerrariVehicle"` // a specific one
//	}
//
//	c := dig.New()
//	if err := beansdig.Provide(c, registry); err != nil {
//	    log.Fatal(err)
//	}
//	c.Invoke(func(p Params) { ... })
//
// Constructors call back into the registry, so its lifetime policy applies.
package dig

import (
	"fmt"
	"reflect"

	"go.uber.org/dig"

	"github.com/junioryono/beans"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// ProvideError wraps a failure to provide a definition to a dig container.
type ProvideError struct {
	Name  string // empty for the unnamed, resolved-by-type provider
	Type  reflect.Type
	Cause error
}

func (e ProvideError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("dig: provide %s: %v", e.Type, e.Cause)
	}
	return fmt.Sprintf("dig: provide %q (%s): %v", e.Name, e.Type, e.Cause)
}

func (e ProvideError) Unwrap() error {
	return e.Cause
}

// Provide registers every definition in r with c.
func Provide(c *dig.Container, r beans.Registry) error {
	if r == nil {
		return beans.ErrRegistryNil
	}

	seen := make(map[reflect.Type]bool)

	for _, def := range r.Definitions() {
		name := def.Name
		ctor := constructor(def.Type, func() (any, error) {
			return r.GetByName(name)
		})

		if err := c.Provide(ctor, dig.Name(name)); err != nil {
			return ProvideError{Name: name, Type: def.Type, Cause: err}
		}

		if seen[def.Type] {
			continue
		}
		seen[def.Type] = true

		resolved, err := r.ResolveDefinition(def.Type)
		if err != nil {
			// ambiguous types are only reachable by name
			continue
		}

		resolvedName := resolved.Name
		ctor = constructor(def.Type, func() (any, error) {
			return r.GetByNameAndType(resolvedName, def.Type)
		})

		if err := c.Provide(ctor); err != nil {
			return ProvideError{Type: def.Type, Cause: err}
		}
	}

	return nil
}

// Invoke runs fn with its parameters resolved from r through a fresh dig
// container.
func Invoke(r beans.Registry, fn any, opts ...dig.Option) error {
	c := dig.New(opts...)

	if err := Provide(c, r); err != nil {
		return err
	}

	return c.Invoke(fn)
}

// constructor builds a func() (t, error) that dig can inspect.
func constructor(t reflect.Type, get func() (any, error)) any {
	fnType := reflect.FuncOf(nil, []reflect.Type{t, errType}, false)

	fn := reflect.MakeFunc(fnType, func([]reflect.Value) []reflect.Value {
		instance, err := get()
		if err != nil {
			return []reflect.Value{reflect.Zero(t), reflect.ValueOf(&err).Elem()}
		}

		value := reflect.New(t).Elem()
		if instance != nil {
			value.Set(reflect.ValueOf(instance))
		}

		return []reflect.Value{value, reflect.Zero(errType)}
	})

	return fn.Interface()
}
