package specials

import (
	gomath "math"

	"github.com/fitlab/specials/catalog"
	"github.com/fitlab/specials/value"
)

// Gamma evaluates Γ(x) with the Lanczos approximation (g=7, nine terms).
//
// The Lanczos series is only stable for x ≥ 0.5; smaller arguments go
// through Euler's reflection Γ(x)Γ(1−x) = π/sin(πx). Scalars and vectors
// share one code path, so the branch is expressed entirely in arithmetic:
// the predicate x < 0.5 becomes a 0/1 mask, the reflection factor is
// selected by raising π/sin(πx) to the mask (anything^0 == 1), and the
// working argument is shifted to 1−x by the affine blend x + (1−2x)·mask.
// The final combine raises the core to 1−2·mask, which inverts it exactly
// where the reflection applies.
//
// At the poles (non-positive integers) sin(πx) vanishes and the result is
// ±Inf or NaN through ordinary float division, matching Γ's true poles.
// There is no pole detection and no error return.
func Gamma(x value.Value) value.Value {
	small := x.Less(0.5)

	// reflectFactor = (π / sin(πx)) ^ mask: π/sin(πx) where x < 0.5, 1 elsewhere.
	sinPiX := x.Scale(gomath.Pi).Map(gomath.Sin)
	reflectFactor := value.Scalar(gomath.Pi).Div(sinPiX).Pow(small)

	// w = x + (1 − 2x)·mask: x where the mask is 0, 1−x where it is 1.
	w := x.Add(x.Scale(-2).AddConst(1).Mul(small))

	core := lanczos(w)

	// core^(1−2·mask) is core on the stable branch and 1/core on the
	// reflected branch, since Γ(x) = [π/sin(πx)] / Γ(1−x) there.
	return reflectFactor.Mul(core.Pow(small.Scale(-2).AddConst(1)))
}

// lanczos evaluates the core series for arguments on the stable branch.
func lanczos(w value.Value) value.Value {
	y := w.AddConst(-1)
	t := y.AddConst(lanczosG + 0.5)

	a := value.Scalar(lanczosCoeff[0])
	for i := 1; i < len(lanczosCoeff); i++ {
		a = a.Add(value.Scalar(lanczosCoeff[i]).Div(y.AddConst(float64(i))))
	}

	return t.Pow(y.AddConst(0.5)).
		Mul(t.Scale(-1).Map(gomath.Exp)).
		Mul(a).
		Scale(sqrt2Pi)
}

func gammaEntries() []catalog.Entry {
	return []catalog.Entry{
		{
			Name:        "gamma",
			Group:       "gamma",
			Title:       "Gamma Function",
			Description: "Calculate gamma function Γ(x) via the Lanczos approximation",
			Arity:       1,
			Fn:          Gamma,
		},
	}
}
