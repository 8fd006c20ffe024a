package specials_test

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/fitlab/specials"
	"github.com/fitlab/specials/catalog"
	"github.com/fitlab/specials/value"
)

// evalNamespace is a minimal stand-in for a host evaluator's global
// function namespace.
type evalNamespace map[string]catalog.Func

func (ns evalNamespace) Define(e catalog.Entry) error {
	if _, dup := ns[e.Name]; dup {
		return fmt.Errorf("function %q already defined", e.Name)
	}
	ns[e.Name] = e.Fn
	return nil
}

func Example() {
	lib, err := specials.New(specials.WithLogger(zap.NewNop()))
	if err != nil {
		log.Fatal(err)
	}

	ns := make(evalNamespace)
	if err := lib.Bind(ns); err != nil {
		log.Fatal(err)
	}

	gamma := ns["gamma"]
	fmt.Printf("gamma(5) = %.0f\n", gamma(value.Scalar(5)).Float())

	sind := ns["sind"]
	fmt.Printf("sind(30) = %.1f\n", sind(value.Scalar(30)).Float())

	heaviside := ns["heaviside"]
	fmt.Println("heaviside(0) =", heaviside(value.Scalar(0)).Float())

	// Output:
	// gamma(5) = 24
	// sind(30) = 0.5
	// heaviside(0) = 0.5
}
