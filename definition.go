package beans

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/junioryono/beans/internal/reflection"
)

// Factory produces an instance for a Definition.
// The returned value must be assignable to the definition's Type.
type Factory func() (any, error)

// Definition is a named, typed recipe for producing an instance.
type Definition struct {
	// Name uniquely identifies the definition within a Collection.
	Name string

	// Type is the type lookups match against. Instances produced by
	// Factory must be assignable to it.
	Type reflect.Type

	// Primary breaks ties when more than one definition matches a type
	// lookup. At most one definition per Type may be primary.
	Primary bool

	// Factory produces the instance.
	Factory Factory
}

// Validate checks the definition's fields.
func (d Definition) Validate() error {
	if d.Name == "" {
		return ValidationError{Cause: ErrNameEmpty}
	}

	// Names must be representable inside a backquoted struct tag so they
	// can be used with dig's `name:"..."` tags.
	if strings.ContainsRune(d.Name, '`') {
		return ValidationError{Name: d.Name, Cause: ErrNameBackquote}
	}

	if d.Type == nil {
		return ValidationError{Name: d.Name, Cause: ErrTypeNil}
	}

	if d.Factory == nil {
		return ValidationError{Name: d.Name, Cause: ErrFactoryNil}
	}

	return nil
}

// AssignableTo reports whether the definition satisfies a lookup for t.
func (d Definition) AssignableTo(t reflect.Type) bool {
	return d.Type != nil && t != nil && d.Type.AssignableTo(t)
}

// String returns a short description such as "BMWVehicle (*Vehicle, primary)".
func (d Definition) String() string {
	if d.Primary {
		return fmt.Sprintf("%s (%s, primary)", d.Name, formatType(d.Type))
	}
	return fmt.Sprintf("%s (%s)", d.Name, formatType(d.Type))
}

// newDefinition builds a Definition from a factory accepted by Collection.Add.
func newDefinition(name string, factory any, opts ...AddOption) (Definition, error) {
	options := &addOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt.applyAddOption(options)
		}
	}

	if err := options.Validate(); err != nil {
		return Definition{}, ValidationError{Name: name, Cause: err}
	}

	info, err := reflection.Analyze(factory)
	if err != nil {
		return Definition{}, ValidationError{Name: name, Cause: err}
	}

	def := Definition{
		Name:    name,
		Type:    info.Type,
		Primary: options.Primary,
		Factory: info.Call,
	}

	if options.As != nil {
		iface := reflect.TypeOf(options.As).Elem()
		if !reflection.Implements(info.Type, iface) {
			return Definition{}, TypeMismatchError{
				Name:     name,
				Expected: iface,
				Actual:   info.Type,
				Context:  "as",
			}
		}
		def.Type = iface
	}

	return def, nil
}
