// Package specials provides the scalar/vector special functions a
// physical-model-fitting DSL needs beyond a host evaluator's built-in math
// vocabulary: degree-based trigonometry, the gamma function via the Lanczos
// approximation, unit step and boxcar functions, and an error-function
// family built on an external normal CDF.
//
// The library is organized as a fixed catalogue of named pure functions
// over value.Value (a scalar or element-wise-broadcast vector of float64):
//   - trig: sind, cosd, tand, sinhd, coshd, tanhd (degree arguments)
//   - gamma: Lanczos g=7 with a branchless reflection for x < 0.5
//   - step: heaviside, boxcar (0.5 at the boundaries)
//   - erf: erf, erfc on an injected standard normal CDF
//
// A Library is built once with New, which wires the statistics collaborator
// (Φ, defaulting to gonum's distuv through the dist package) and fails fast
// when that dependency is withheld. Bind registers every catalogue entry
// into a host evaluator's function namespace exactly once; Call dispatches
// by name for hosts that prefer a pull interface.
//
// Every function is pure, stateless, and reentrant. The catalogue is
// immutable after New, so concurrent evaluation needs no locking.
//
// Example Usage:
//
//	lib, err := specials.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	g := lib.Call // or lib.Bind(hostNamespace)
//	res, err := g("gamma", value.Scalar(5)) // 24
package specials
