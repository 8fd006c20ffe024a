// Package value implements the numeric data model shared by every function
// in this library: a Value is either a single IEEE-754 double or a vector of
// doubles, and every arithmetic operation applies element-wise with
// broadcasting between scalar and vector operands.
//
// Values are immutable. Constructors copy their input and every operation
// allocates its result, so a Value never aliases caller-owned memory and any
// number of goroutines may operate on shared Values without locking.
//
// Vector kernels are built on gonum.org/v1/gonum/floats. Combining two
// vectors of different lengths panics, matching the floats convention.
package value
