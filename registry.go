package beans

import (
	"log/slog"
	"reflect"
	"runtime/debug"

	"github.com/google/uuid"
)

// Registry answers lookups against an immutable set of definitions.
//
// A Registry is created by Collection.Build and never changes afterwards, so
// it is safe to share between goroutines without additional locking.
type Registry interface {
	// ID returns the unique identifier for this registry instance.
	ID() string

	// Lifetime returns the instance caching policy in effect.
	Lifetime() Lifetime

	// GetByName returns the instance of the definition registered under name.
	GetByName(name string) (any, error)

	// GetByType returns the instance of the single definition assignable to
	// t, or of the primary one when several match.
	GetByType(t reflect.Type) (any, error)

	// GetByNameAndType behaves as GetByName after checking that the named
	// definition is assignable to t.
	GetByNameAndType(name string, t reflect.Type) (any, error)

	// GetAllByType returns the instances of every definition assignable to
	// t, keyed by name. The map is empty when nothing matches.
	GetAllByType(t reflect.Type) (map[string]any, error)

	// ResolveDefinition performs the resolution step of GetByType without
	// producing an instance.
	ResolveDefinition(t reflect.Type) (Definition, error)

	// Definition returns the definition registered under name.
	Definition(name string) (Definition, bool)

	// Definitions returns all definitions in registration order.
	Definitions() []Definition

	// Names returns all definition names in registration order.
	Names() []string

	// NamesForType returns the names of definitions assignable to t,
	// in registration order.
	NamesForType(t reflect.Type) []string

	// Contains checks if a definition is registered under name.
	Contains(name string) bool

	// Count returns the number of definitions.
	Count() int
}

// registry is the concrete implementation of Registry
type registry struct {
	id string

	// Definitions (immutable after build)
	definitions map[string]Definition
	order       []string

	lifetime  Lifetime
	instances *instanceCache
	logger    *slog.Logger
}

// newRegistry builds a Registry from definitions in registration order.
func newRegistry(definitions []Definition, options *Options) (*registry, error) {
	opts := options.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	r := &registry{
		id:          id,
		definitions: make(map[string]Definition, len(definitions)),
		order:       make([]string, 0, len(definitions)),
		lifetime:    opts.Lifetime,
		instances:   newInstanceCache(),
		logger:      opts.Logger.With("registry", id),
	}

	for _, def := range definitions {
		r.definitions[def.Name] = def
		r.order = append(r.order, def.Name)
	}

	if opts.Eager {
		for _, name := range r.order {
			if _, err := r.instance(r.definitions[name]); err != nil {
				return nil, BuildError{
					Phase:   "instantiate",
					Details: name,
					Cause:   err,
				}
			}
		}
	}

	r.logger.Debug("registry built",
		"definitions", len(r.order),
		"lifetime", r.lifetime.String(),
		"eager", opts.Eager,
	)

	return r, nil
}

// ID returns the unique identifier for the registry.
// This ID is a UUID generated during the build.
func (r *registry) ID() string {
	return r.id
}

// Lifetime returns the instance caching policy.
func (r *registry) Lifetime() Lifetime {
	return r.lifetime
}

// GetByName returns the named definition's instance.
func (r *registry) GetByName(name string) (any, error) {
	def, ok := r.definitions[name]
	if !ok {
		return nil, r.notFound(name)
	}

	return r.instance(def)
}

// GetByType returns the instance of the definition t resolves to.
func (r *registry) GetByType(t reflect.Type) (any, error) {
	def, err := r.ResolveDefinition(t)
	if err != nil {
		return nil, err
	}

	return r.instance(def)
}

// GetByNameAndType returns the named definition's instance if it is
// assignable to t.
func (r *registry) GetByNameAndType(name string, t reflect.Type) (any, error) {
	if t == nil {
		return nil, ErrTypeNil
	}

	def, ok := r.definitions[name]
	if !ok {
		return nil, r.notFound(name)
	}

	if !def.AssignableTo(t) {
		return nil, TypeMismatchError{
			Name:     name,
			Expected: t,
			Actual:   def.Type,
			Context:  "lookup",
		}
	}

	return r.instance(def)
}

// GetAllByType returns every instance assignable to t, keyed by name.
func (r *registry) GetAllByType(t reflect.Type) (map[string]any, error) {
	if t == nil {
		return nil, ErrTypeNil
	}

	instances := make(map[string]any)
	for _, name := range r.order {
		def := r.definitions[name]
		if !def.AssignableTo(t) {
			continue
		}

		instance, err := r.instance(def)
		if err != nil {
			return nil, err
		}
		instances[name] = instance
	}

	return instances, nil
}

// ResolveDefinition maps a type lookup to exactly one definition.
//
// Candidates are the definitions whose type is assignable to t. A single
// candidate wins outright; among several, exactly one must be primary.
// Names play no part in type resolution.
func (r *registry) ResolveDefinition(t reflect.Type) (Definition, error) {
	if t == nil {
		return Definition{}, ErrTypeNil
	}

	var candidates, primaries []string
	for _, name := range r.order {
		def := r.definitions[name]
		if !def.AssignableTo(t) {
			continue
		}

		candidates = append(candidates, name)
		if def.Primary {
			primaries = append(primaries, name)
		}
	}

	switch {
	case len(candidates) == 0:
		return Definition{}, NotFoundError{Type: t}
	case len(candidates) == 1:
		return r.definitions[candidates[0]], nil
	case len(primaries) == 1:
		return r.definitions[primaries[0]], nil
	default:
		return Definition{}, AmbiguousResolutionError{
			Type:       t,
			Candidates: candidates,
			Primaries:  primaries,
		}
	}
}

// Definition returns the definition registered under name.
func (r *registry) Definition(name string) (Definition, bool) {
	def, ok := r.definitions[name]
	return def, ok
}

// Definitions returns a copy of all definitions in registration order.
func (r *registry) Definitions() []Definition {
	definitions := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		definitions = append(definitions, r.definitions[name])
	}
	return definitions
}

// Names returns a copy of all definition names in registration order.
func (r *registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// NamesForType returns the names of definitions assignable to t.
func (r *registry) NamesForType(t reflect.Type) []string {
	var names []string
	for _, name := range r.order {
		if r.definitions[name].AssignableTo(t) {
			names = append(names, name)
		}
	}
	return names
}

// Contains checks if a definition is registered under name.
func (r *registry) Contains(name string) bool {
	_, ok := r.definitions[name]
	return ok
}

// Count returns the number of definitions.
func (r *registry) Count() int {
	return len(r.order)
}

// instance returns def's instance according to the lifetime policy.
func (r *registry) instance(def Definition) (any, error) {
	if r.lifetime == Transient {
		return r.create(def)
	}

	instance, created, err := r.instances.getOrCreate(def.Name, func() (any, error) {
		return r.create(def)
	})
	if err != nil {
		return nil, err
	}

	if created {
		r.logger.Debug("instance created",
			"name", def.Name,
			"type", formatType(def.Type),
			"cached", r.instances.count(),
		)
	}

	return instance, nil
}

// create invokes def's factory and checks the result against def.Type.
func (r *registry) create(def Definition) (instance any, err error) {
	defer func() {
		if p := recover(); p != nil {
			instance = nil
			err = FactoryPanicError{
				Name:  def.Name,
				Type:  def.Type,
				Panic: p,
				Stack: debug.Stack(),
			}
		}
	}()

	instance, err = def.Factory()
	if err != nil {
		return nil, FactoryError{Name: def.Name, Type: def.Type, Cause: err}
	}

	if instance == nil {
		if !isNillable(def.Type) {
			return nil, TypeMismatchError{
				Name:     def.Name,
				Expected: def.Type,
				Actual:   nil,
				Context:  "factory result",
			}
		}
		return nil, nil
	}

	if actual := reflect.TypeOf(instance); !actual.AssignableTo(def.Type) {
		return nil, TypeMismatchError{
			Name:     def.Name,
			Expected: def.Type,
			Actual:   actual,
			Context:  "factory result",
		}
	}

	return instance, nil
}

// notFound builds a NotFoundError for a name lookup.
func (r *registry) notFound(name string) error {
	return NotFoundError{Name: name, Available: r.Names()}
}

// isNillable reports whether nil is a valid value of t.
func isNillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
