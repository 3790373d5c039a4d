package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/junioryono/beans"
	"github.com/junioryono/beans/internal/tracing"
	"github.com/junioryono/beans/internal/vehicles"
)

// errNoSelector is returned by get when neither --name nor --type is set.
var errNoSelector = errors.New("at least one of --name or --type is required")

// lookup resolves a component by name, by type name, or by both. The returned
// definition is the one that produced the instance.
func (a *app) lookup(ctx context.Context, name, typeName string) (def beans.Definition, instance any, err error) {
	if name == "" && typeName == "" {
		return beans.Definition{}, nil, errNoSelector
	}

	kind := tracing.LookupByNameAndType
	switch {
	case typeName == "":
		kind = tracing.LookupByName
	case name == "":
		kind = tracing.LookupByType
	}

	_, span := tracing.StartLookup(ctx, a.tracer.Tracer(), kind, name, typeName)
	defer func() { tracing.EndLookup(span, err) }()

	switch kind {
	case tracing.LookupByName:
		instance, err = a.registry.GetByName(name)
		if err != nil {
			return beans.Definition{}, nil, err
		}
		def, _ = a.registry.Definition(name)

	case tracing.LookupByType:
		t, typeErr := vehicles.LookupType(typeName)
		if typeErr != nil {
			return beans.Definition{}, nil, typeErr
		}
		if def, err = a.registry.ResolveDefinition(t); err != nil {
			return beans.Definition{}, nil, err
		}
		// t is resolved once; fetch that definition by name
		if instance, err = a.registry.GetByNameAndType(def.Name, t); err != nil {
			return beans.Definition{}, nil, err
		}

	default:
		t, typeErr := vehicles.LookupType(typeName)
		if typeErr != nil {
			return beans.Definition{}, nil, typeErr
		}
		if instance, err = a.registry.GetByNameAndType(name, t); err != nil {
			return beans.Definition{}, nil, err
		}
		def, _ = a.registry.Definition(name)
	}

	a.logger.Debug("component resolved",
		"lookup", kind,
		"name", def.Name,
		"type", def.Type.String(),
	)

	return def, instance, nil
}

// lookupVehicle resolves a component that must be a *vehicles.Vehicle.
func (a *app) lookupVehicle(ctx context.Context, name string) (*vehicles.Vehicle, error) {
	_, instance, err := a.lookup(ctx, name, "Vehicle")
	if err != nil {
		return nil, err
	}

	v, ok := instance.(*vehicles.Vehicle)
	if !ok {
		return nil, fmt.Errorf("component %q is %T, not *vehicles.Vehicle", name, instance)
	}
	return v, nil
}
