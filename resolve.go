package beans

import (
	"fmt"
	"reflect"
)

// TypeOf returns the reflect.Type for T, including interface types.
//
//	beans.TypeOf[io.Writer]() // the interface, not a concrete type
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Resolve is a generic helper that resolves a component by type as T.
func Resolve[T any](r Registry) (T, error) {
	var zero T

	if r == nil {
		return zero, ErrRegistryNil
	}

	instance, err := r.GetByType(TypeOf[T]())
	if err != nil {
		return zero, err
	}

	return cast[T](instance)
}

// ResolveNamed is a generic helper that resolves a component by name and
// checks that it is assignable to T.
func ResolveNamed[T any](r Registry, name string) (T, error) {
	var zero T

	if r == nil {
		return zero, ErrRegistryNil
	}

	instance, err := r.GetByNameAndType(name, TypeOf[T]())
	if err != nil {
		return zero, err
	}

	return cast[T](instance)
}

// ResolveAll is a generic helper that resolves every component assignable
// to T, keyed by name.
func ResolveAll[T any](r Registry) (map[string]T, error) {
	if r == nil {
		return nil, ErrRegistryNil
	}

	instances, err := r.GetAllByType(TypeOf[T]())
	if err != nil {
		return nil, err
	}

	results := make(map[string]T, len(instances))
	for name, instance := range instances {
		result, err := cast[T](instance)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", name, err)
		}
		results[name] = result
	}

	return results, nil
}

// MustResolve resolves a component by type and panics on error.
func MustResolve[T any](r Registry) T {
	result, err := Resolve[T](r)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve %s: %v", formatType(TypeOf[T]()), err))
	}
	return result
}

// MustResolveNamed resolves a named component and panics on error.
func MustResolveNamed[T any](r Registry, name string) T {
	result, err := ResolveNamed[T](r, name)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve %s[%s]: %v", formatType(TypeOf[T]()), name, err))
	}
	return result
}

// cast converts a resolved instance to T. A nil instance yields T's zero value.
func cast[T any](instance any) (T, error) {
	var zero T

	if instance == nil {
		return zero, nil
	}

	result, ok := instance.(T)
	if !ok {
		return zero, TypeMismatchError{
			Expected: TypeOf[T](),
			Actual:   reflect.TypeOf(instance),
			Context:  "type assertion",
		}
	}

	return result, nil
}
