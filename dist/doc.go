// Package dist is the statistics collaborator surface for the error-function
// family: it supplies the standard normal cumulative distribution function Φ
// on top of gonum's distuv.
//
// The library consumes Φ through the CDF type rather than calling gonum
// directly, so an embedder can substitute its own statistics module at
// construction time.
package dist
