package beans_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/junioryono/beans"
)

type Vehicle struct {
	Name string
}

type Engine struct{}

// Example demonstrates registration and the three kinds of lookup.
func Example() {
	collection := beans.NewCollection()

	collection.Add("vehicle1", func() *Vehicle { return &Vehicle{Name: "Audi 8"} })
	collection.Add("FerrariVehicle", func() *Vehicle { return &Vehicle{Name: "Ferrari"} })
	collection.Add("BMWVehicle", func() *Vehicle { return &Vehicle{Name: "BMW"} }, beans.Primary())

	registry, err := collection.Build()
	if err != nil {
		log.Fatal(err)
	}

	byName, _ := beans.ResolveNamed[*Vehicle](registry, "vehicle1")
	byType, _ := beans.Resolve[*Vehicle](registry)

	fmt.Println(byName.Name)
	fmt.Println(byType.Name)
	// Output:
	// Audi 8
	// BMW
}

// ExampleNewModule demonstrates grouping registrations into a module.
func ExampleNewModule() {
	project := beans.NewModule("project",
		beans.Add("vehicle1", &Vehicle{Name: "Audi 8"}),
		beans.Add("BMWVehicle", &Vehicle{Name: "BMW"}, beans.Primary()),
	)

	collection := beans.NewCollection()
	if err := collection.AddModules(project); err != nil {
		log.Fatal(err)
	}

	registry, _ := collection.Build()
	fmt.Println(registry.Names())
	// Output: [vehicle1 BMWVehicle]
}

// ExampleRegistry_GetByType_ambiguous shows the error returned when no
// primary breaks a tie.
func ExampleRegistry_GetByType_ambiguous() {
	collection := beans.NewCollection()
	collection.Add("vehicle1", &Vehicle{Name: "Audi 8"})
	collection.Add("FerrariVehicle", &Vehicle{Name: "Ferrari"})

	registry, _ := collection.Build()

	_, err := registry.GetByType(beans.TypeOf[*Vehicle]())

	var ambiguous beans.AmbiguousResolutionError
	if errors.As(err, &ambiguous) {
		fmt.Println(ambiguous.Candidates)
	}
	// Output: [vehicle1 FerrariVehicle]
}

// ExampleRegistry_GetByNameAndType demonstrates the type check on named lookups.
func ExampleRegistry_GetByNameAndType() {
	collection := beans.NewCollection()
	collection.Add("vehicle1", &Vehicle{Name: "Audi 8"})

	registry, _ := collection.Build()

	_, err := registry.GetByNameAndType("vehicle1", beans.TypeOf[*Engine]())
	fmt.Println(errors.Is(err, beans.ErrTypeMismatch))

	_, err = registry.GetByType(beans.TypeOf[*Engine]())
	fmt.Println(errors.Is(err, beans.ErrNotFound))
	// Output:
	// true
	// true
}

// ExampleOptions demonstrates the transient lifetime.
func ExampleOptions() {
	collection := beans.NewCollection()
	collection.Add("vehicle1", func() *Vehicle { return &Vehicle{Name: "Audi 8"} })

	registry, _ := collection.BuildWithOptions(&beans.Options{Lifetime: beans.Transient})

	first, _ := registry.GetByName("vehicle1")
	second, _ := registry.GetByName("vehicle1")
	fmt.Println(first == second)
	// Output: false
}
