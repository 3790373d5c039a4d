// Package reflection turns the factory values accepted by Collection.Add into
// uniform zero-argument calls.
package reflection

import (
	"errors"
	"fmt"
	"reflect"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

var (
	ErrFactoryNil          = errors.New("factory cannot be nil")
	ErrFactoryParams       = errors.New("factory function must take no parameters")
	ErrFactoryNoReturn     = errors.New("factory function must return a value")
	ErrFactoryTooManyOut   = errors.New("factory function must return at most 2 values")
	ErrFactorySecondReturn = errors.New("factory function's second return value must be error")
	ErrFactoryErrorOnly    = errors.New("factory function's first return value cannot be error")
)

// FactoryInfo contains analyzed information about a factory function or instance.
type FactoryInfo struct {
	// Type is the type the factory produces.
	Type reflect.Type

	// Value is the reflected factory.
	Value reflect.Value

	// IsFunc is false when the factory is a plain instance.
	IsFunc bool

	// HasErrorReturn is true for func() (T, error).
	HasErrorReturn bool
}

// Analyze inspects factory and reports the type it produces.
//
// Accepted shapes are func() T, func() (T, error) and any non-function value,
// which is treated as a ready instance.
func Analyze(factory any) (*FactoryInfo, error) {
	if factory == nil {
		return nil, ErrFactoryNil
	}

	val := reflect.ValueOf(factory)
	typ := val.Type()

	switch typ.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		if val.IsNil() {
			return nil, ErrFactoryNil
		}
	}

	if typ.Kind() != reflect.Func {
		return &FactoryInfo{
			Type:  typ,
			Value: val,
		}, nil
	}

	if typ.NumIn() != 0 {
		return nil, fmt.Errorf("%w: %s", ErrFactoryParams, typ)
	}

	info := &FactoryInfo{
		Value:  val,
		IsFunc: true,
	}

	switch typ.NumOut() {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrFactoryNoReturn, typ)
	case 1:
	case 2:
		if typ.Out(1) != errType {
			return nil, fmt.Errorf("%w: %s", ErrFactorySecondReturn, typ)
		}
		info.HasErrorReturn = true
	default:
		return nil, fmt.Errorf("%w: %s", ErrFactoryTooManyOut, typ)
	}

	if typ.Out(0) == errType {
		return nil, fmt.Errorf("%w: %s", ErrFactoryErrorOnly, typ)
	}

	info.Type = typ.Out(0)
	return info, nil
}

// Call produces a value from the analyzed factory.
func (fi *FactoryInfo) Call() (any, error) {
	if !fi.IsFunc {
		return fi.Value.Interface(), nil
	}

	results := fi.Value.Call(nil)

	if fi.HasErrorReturn && !results[1].IsNil() {
		return nil, results[1].Interface().(error)
	}

	return results[0].Interface(), nil
}

// Implements reports whether values of t can be used as iface.
func Implements(t, iface reflect.Type) bool {
	if t == nil || iface == nil {
		return false
	}
	if iface.Kind() == reflect.Interface {
		return t.Implements(iface)
	}
	return t.AssignableTo(iface)
}
