package dist

import "gonum.org/v1/gonum/stat/distuv"

// CDF is a cumulative distribution function over the reals.
type CDF func(x float64) float64

// unitNormal is stateless; distuv.Normal.CDF reads only the fixed
// parameters, so sharing one instance across goroutines is safe.
var unitNormal = distuv.Normal{Mu: 0, Sigma: 1}

// UnitNormalCDF is Φ, the standard normal cumulative distribution function.
func UnitNormalCDF(x float64) float64 {
	return unitNormal.CDF(x)
}
