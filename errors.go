package beans

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================
// These are base errors that the typed errors below unwrap to.
// Callers can match on either: errors.Is(err, ErrNotFound) or
// errors.As(err, &NotFoundError{}).

var (
	// Lookup errors.
	ErrNotFound     = errors.New("component not found")
	ErrTypeMismatch = errors.New("component type mismatch")
	ErrAmbiguous    = errors.New("ambiguous component resolution")
	ErrTypeNil      = errors.New("component type cannot be nil")

	// Registration errors.
	ErrDuplicateName   = errors.New("component name already registered")
	ErrMultiplePrimary = errors.New("more than one primary component for type")
	ErrNameEmpty       = errors.New("component name cannot be empty")
	ErrNameBackquote   = errors.New("component name cannot contain backquotes")
	ErrFactoryNil      = errors.New("factory cannot be nil")
	ErrCollectionBuilt = errors.New("collection has already been built")

	// Lifecycle errors.
	ErrRegistryNil = errors.New("registry cannot be nil")
)

var (
	_ error = DuplicateNameError{}
	_ error = MultiplePrimaryError{}
	_ error = NotFoundError{}
	_ error = TypeMismatchError{}
	_ error = AmbiguousResolutionError{}
	_ error = ValidationError{}
	_ error = ModuleError{}
	_ error = FactoryError{}
	_ error = FactoryPanicError{}
	_ error = BuildError{}
	_ error = LifetimeError{}
)

// ========================================
// Registration Errors
// ========================================

// DuplicateNameError indicates a definition name is already registered.
type DuplicateNameError struct {
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("component %q already registered (names must be unique)", e.Name)
}

func (e DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

// MultiplePrimaryError indicates a second primary definition for a type.
type MultiplePrimaryError struct {
	Type     reflect.Type
	Existing string // name of the primary already registered
	Name     string // name of the rejected definition
}

func (e MultiplePrimaryError) Error() string {
	return fmt.Sprintf("cannot mark %q primary for %s: %q is already primary",
		e.Name, formatType(e.Type), e.Existing)
}

func (e MultiplePrimaryError) Unwrap() error {
	return ErrMultiplePrimary
}

// ValidationError indicates a definition failed validation before registration.
type ValidationError struct {
	Name  string
	Cause error
}

func (e ValidationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("component %q: %v", e.Name, e.Cause)
	}
	return e.Cause.Error()
}

func (e ValidationError) Unwrap() error {
	return e.Cause
}

// ModuleError wraps errors from module registration.
type ModuleError struct {
	Module string
	Cause  error
}

func (e ModuleError) Error() string {
	return fmt.Sprintf("module %q: %v", e.Module, e.Cause)
}

func (e ModuleError) Unwrap() error {
	return e.Cause
}

// LifetimeError indicates an invalid lifetime value.
type LifetimeError struct {
	Value any
}

func (e LifetimeError) Error() string {
	return fmt.Sprintf("invalid lifetime: %v", e.Value)
}

// ========================================
// Lookup Errors
// ========================================

// NotFoundError indicates no definition matches a lookup.
// Exactly one of Name or Type is set, depending on the lookup.
type NotFoundError struct {
	Name      string
	Type      reflect.Type
	Available []string // registered names, for suggestions
}

func (e NotFoundError) Error() string {
	var b strings.Builder

	if e.Type != nil && e.Name == "" {
		b.WriteString(fmt.Sprintf("component not found: no definition assignable to %s", formatType(e.Type)))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("component not found: %q", e.Name))

	if similar := findSimilarNames(e.Name, e.Available); len(similar) > 0 {
		b.WriteString("\n\nDid you mean one of these?\n")
		for _, n := range similar {
			b.WriteString(fmt.Sprintf("  • %s\n", n))
		}
	}

	return b.String()
}

func (e NotFoundError) Unwrap() error {
	return ErrNotFound
}

// TypeMismatchError indicates a definition's type is not assignable to the
// requested type, or a factory produced a value of the wrong type.
type TypeMismatchError struct {
	Name     string
	Expected reflect.Type
	Actual   reflect.Type
	Context  string // "lookup", "factory result", "as"
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: component %q is %s, not assignable to %s",
		e.Context, e.Name, formatType(e.Actual), formatType(e.Expected))
}

func (e TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// AmbiguousResolutionError indicates more than one definition matches a type
// lookup and the primary marker does not break the tie.
type AmbiguousResolutionError struct {
	Type       reflect.Type
	Candidates []string
	Primaries  []string
}

func (e AmbiguousResolutionError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("ambiguous resolution for %s: %d candidates [%s]",
		formatType(e.Type), len(e.Candidates), strings.Join(e.Candidates, ", ")))

	if len(e.Primaries) == 0 {
		b.WriteString("\n\nTo resolve this:\n")
		b.WriteString("  • Mark exactly one candidate with beans.Primary()\n")
		b.WriteString("  • Look the component up by name instead\n")
	} else {
		b.WriteString(fmt.Sprintf("; %d are primary [%s]",
			len(e.Primaries), strings.Join(e.Primaries, ", ")))
	}

	return b.String()
}

func (e AmbiguousResolutionError) Unwrap() error {
	return ErrAmbiguous
}

// FactoryError wraps an error returned by a definition's factory.
type FactoryError struct {
	Name  string
	Type  reflect.Type
	Cause error
}

func (e FactoryError) Error() string {
	return fmt.Sprintf("factory for %q (%s) failed: %v", e.Name, formatType(e.Type), e.Cause)
}

func (e FactoryError) Unwrap() error {
	return e.Cause
}

// FactoryPanicError indicates a factory panicked.
// It captures the panic value and stack trace for debugging.
type FactoryPanicError struct {
	Name  string
	Type  reflect.Type
	Panic any
	Stack []byte
}

func (e FactoryPanicError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("factory for %q (%s) panicked: %v\n", e.Name, formatType(e.Type), e.Panic))

	if len(e.Stack) > 0 {
		b.WriteString("\nStack trace:\n")
		b.Write(e.Stack)
	}

	return b.String()
}

// BuildError wraps errors that occur while building a Registry.
type BuildError struct {
	Phase   string // "options", "instantiate"
	Details string
	Cause   error
}

func (e BuildError) Error() string {
	return fmt.Sprintf("build failed during %s phase: %s: %v", e.Phase, e.Details, e.Cause)
}

func (e BuildError) Unwrap() error {
	return e.Cause
}

// findSimilarNames returns registered names that look like target:
// same name ignoring case, or one containing the other.
func findSimilarNames(target string, available []string) []string {
	if target == "" || len(available) == 0 {
		return nil
	}

	lowerTarget := strings.ToLower(target)

	var similar []string
	for _, name := range available {
		if name == target {
			continue
		}

		lowerName := strings.ToLower(name)
		if lowerName == lowerTarget ||
			strings.Contains(lowerName, lowerTarget) ||
			strings.Contains(lowerTarget, lowerName) {
			similar = append(similar, name)
		}

		if len(similar) >= 5 {
			break
		}
	}

	sort.Strings(similar)
	return similar
}

// formatType formats a reflect.Type for error messages.
func formatType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		elem := t.Elem()
		if elem.PkgPath() != "" && elem.Name() != "" {
			return "*" + elem.Name()
		}
		return t.String()
	case reflect.Slice:
		elem := t.Elem()
		if elem.PkgPath() != "" && elem.Name() != "" {
			return "[]" + elem.Name()
		}
		return t.String()
	case reflect.Func:
		return t.String()
	default:
		if t.Name() != "" {
			return t.Name()
		}
		return t.String()
	}
}
