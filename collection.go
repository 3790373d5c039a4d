package beans

import (
	"reflect"
)

// Collection holds the component definitions of an application before they
// are built into a Registry.
//
// Collection follows a builder pattern: definitions are registered, then
// Build produces an immutable Registry. Once built, the collection rejects
// further registrations with ErrCollectionBuilt.
//
// Collection is NOT thread-safe. It should be configured in a single
// goroutine before building the Registry.
//
// Example:
//
//	collection := beans.NewCollection()
//	collection.Add("vehicle1", NewAudi)
//	collection.Add("BMWVehicle", NewBMW, beans.Primary())
//
//	registry, err := collection.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
type Collection interface {
	// Build creates a Registry from the registered definitions
	// using default options.
	Build() (Registry, error)

	// BuildWithOptions creates a Registry with custom options.
	BuildWithOptions(options *Options) (Registry, error)

	// AddModules applies one or more modules to the collection.
	AddModules(modules ...ModuleOption) error

	// Register adds a definition. It fails with DuplicateNameError when the
	// name is taken and with MultiplePrimaryError when def is primary and
	// another definition of the same type already is. A failed call leaves
	// the collection unchanged.
	Register(def Definition) error

	// Add derives a definition from a factory (func() T, func() (T, error),
	// or an instance) and registers it under name.
	Add(name string, factory any, opts ...AddOption) error

	// Contains checks if a definition is registered under name.
	Contains(name string) bool

	// ToSlice returns the registered definitions in registration order.
	ToSlice() []Definition

	// Count returns the number of registered definitions.
	Count() int
}

type collection struct {
	// definitions stores every definition by name
	definitions map[string]Definition

	// order keeps registration order for deterministic iteration
	order []string

	// primaries maps a type to the name of its primary definition
	primaries map[reflect.Type]string

	built bool
}

// NewCollection creates a new empty Collection instance.
//
// Example:
//
//	collection := beans.NewCollection()
//	collection.Add("vehicle1", NewAudi)
//	registry, err := collection.Build()
func NewCollection() Collection {
	return &collection{
		definitions: make(map[string]Definition),
		primaries:   make(map[reflect.Type]string),
	}
}

// Build creates a Registry using default options.
func (c *collection) Build() (Registry, error) {
	return c.BuildWithOptions(nil)
}

// BuildWithOptions creates a Registry with custom options.
func (c *collection) BuildWithOptions(options *Options) (Registry, error) {
	if c.built {
		return nil, ErrCollectionBuilt
	}

	r, err := newRegistry(c.ToSlice(), options)
	if err != nil {
		return nil, err
	}

	c.built = true
	return r, nil
}

// AddModules applies one or more modules to the collection.
func (c *collection) AddModules(modules ...ModuleOption) error {
	for _, module := range modules {
		if module == nil {
			continue
		}

		if err := module(c); err != nil {
			return err
		}
	}

	return nil
}

// Register adds a definition to the collection.
func (c *collection) Register(def Definition) error {
	if c.built {
		return ErrCollectionBuilt
	}

	if err := def.Validate(); err != nil {
		return err
	}

	if _, exists := c.definitions[def.Name]; exists {
		return DuplicateNameError{Name: def.Name}
	}

	if def.Primary {
		if existing, ok := c.primaries[def.Type]; ok {
			return MultiplePrimaryError{
				Type:     def.Type,
				Existing: existing,
				Name:     def.Name,
			}
		}
		c.primaries[def.Type] = def.Name
	}

	c.definitions[def.Name] = def
	c.order = append(c.order, def.Name)

	return nil
}

// Add derives a definition from factory and registers it.
func (c *collection) Add(name string, factory any, opts ...AddOption) error {
	if c.built {
		return ErrCollectionBuilt
	}

	def, err := newDefinition(name, factory, opts...)
	if err != nil {
		return err
	}

	return c.Register(def)
}

// Contains checks if a definition is registered under name.
func (c *collection) Contains(name string) bool {
	_, exists := c.definitions[name]
	return exists
}

// ToSlice returns a copy of the registered definitions in registration order.
func (c *collection) ToSlice() []Definition {
	definitions := make([]Definition, 0, len(c.order))
	for _, name := range c.order {
		definitions = append(definitions, c.definitions[name])
	}
	return definitions
}

// Count returns the number of registered definitions.
func (c *collection) Count() int {
	return len(c.definitions)
}
