// Package beans provides a named, typed component registry for Go applications.
// Components are registered once under a unique name, then looked up by name,
// by type, or by both.
//
// # Overview
//
// beans replaces annotation scanning with an explicit registration list:
//   - Definitions with a unique name, a type, an optional primary marker and a factory
//   - Lookup by name, by type, or by name checked against a type
//   - A primary marker that breaks ties when several definitions match a type
//   - Distinct, typed errors for every failure
//   - Modules for grouping registrations
//   - An immutable Registry that is safe for concurrent reads
//
// # Basic Usage
//
// Create a collection, register components, build a registry, and resolve:
//
//	collection := beans.NewCollection()
//	collection.Add("vehicle1", func() *Vehicle { return &Vehicle{Name: "Audi 8"} })
//	collection.Add("BMWVehicle", func() *Vehicle { return &Vehicle{Name: "BMW"} }, beans.Primary())
//
//	registry, err := collection.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	byName, err := beans.ResolveNamed[*Vehicle](registry, "vehicle1") // Audi 8
//	byType, err := beans.Resolve[*Vehicle](registry)                 // BMW, the primary
//
// # Factories
//
// Collection.Add accepts three factory shapes:
//
//	func() T
//	func() (T, error)
//	T // any non-function value, returned as is
//
// The definition's type is T. Use As to register under an interface instead:
//
//	collection.Add("console", NewConsoleLogger, beans.As(new(Logger)))
//
// Collection.Register accepts a fully specified Definition for callers that
// already know the type and want to supply their own Factory.
//
// # Type Resolution
//
// A type lookup collects every definition whose type is assignable to the
// requested type. One candidate wins outright. Among several, exactly one
// must be primary; otherwise the lookup fails with AmbiguousResolutionError.
// At most one definition per type may be primary, which Register enforces
// with MultiplePrimaryError.
//
// # Lifetimes
//
// The Registry caches instances according to Options.Lifetime:
//
//   - Singleton: each factory runs at most once (default)
//   - Transient: each lookup runs the factory again
//
// With Options.Eager, every singleton is created while building, so factory
// failures surface from Build instead of from the first lookup.
//
// # Modules
//
// Modules group registrations the way a configuration class does:
//
//	var ProjectModule = beans.NewModule("project",
//	    beans.Add("vehicle1", NewAudi),
//	    beans.Add("BMWVehicle", NewBMW, beans.Primary()),
//	)
//
//	collection.AddModules(ProjectModule)
//
// # Error Handling
//
// Every error is a typed value that also unwraps to a sentinel:
//
//	_, err := registry.GetByType(beans.TypeOf[*Engine]())
//	if errors.Is(err, beans.ErrNotFound) {
//	    // nothing assignable to *Engine
//	}
//
//	var ambiguous beans.AmbiguousResolutionError
//	if errors.As(err, &ambiguous) {
//	    fmt.Println(ambiguous.Candidates)
//	}
//
// Registration failures (DuplicateNameError, MultiplePrimaryError,
// ValidationError) leave the collection unchanged. Lookup failures
// (NotFoundError, TypeMismatchError, AmbiguousResolutionError) leave the
// registry unchanged.
//
// # Integration
//
// The dig subpackage exposes a Registry to a go.uber.org/dig container.
package beans
