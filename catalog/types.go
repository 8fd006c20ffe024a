package catalog

import "github.com/fitlab/specials/value"

// Func is a pure evaluation rule over a scalar-or-vector argument. The
// output shape always matches the input shape.
type Func func(x value.Value) value.Value

// Entry describes one named function in the catalogue.
type Entry struct {
	// Name is the identifier the host binds the function under.
	Name string
	// Group labels the family the entry belongs to (trig, gamma, step, erf).
	Group string
	// Title is a short human-readable name for host tooling.
	Title string
	// Description documents the mathematical contract.
	Description string
	// Arity is the number of arguments. Every entry in this library is unary.
	Arity int
	// Fn evaluates the function.
	Fn Func
}

// Namespace is the host evaluator's global function namespace. Define is
// called once per entry during binding; returning an error aborts the bind.
type Namespace interface {
	Define(e Entry) error
}

// Stats summarizes a catalogue for host introspection.
type Stats struct {
	Total  int            `json:"total"`
	Groups map[string]int `json:"groups"`
}
