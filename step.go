package specials

import (
	"github.com/fitlab/specials/catalog"
	"github.com/fitlab/specials/value"
)

// Heaviside returns the unit step: 0 for negative x, 1 for positive x, and
// exactly 0.5 at x == 0 (sign(0) == 0). The midpoint value is contractual.
func Heaviside(x value.Value) value.Value {
	return x.Map(sign).Scale(0.5).AddConst(0.5)
}

// Boxcar returns 1 on the open interval (0,1), 0 outside, and exactly 0.5
// at x == 0 and x == 1, inherited from sign vanishing at zero.
func Boxcar(x value.Value) value.Value {
	return x.Map(sign).Sub(x.AddConst(-1).Map(sign)).Scale(0.5)
}

// sign returns -1, 0, or 1. NaN propagates.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	case x != x:
		return x
	}
	return 0
}

func stepEntries() []catalog.Entry {
	return []catalog.Entry{
		{
			Name:        "heaviside",
			Group:       "step",
			Title:       "Heaviside Step",
			Description: "Unit step function: 0 below zero, 0.5 at zero, 1 above",
			Arity:       1,
			Fn:          Heaviside,
		},
		{
			Name:        "boxcar",
			Group:       "step",
			Title:       "Boxcar",
			Description: "1 on the open interval (0,1), 0.5 at the boundaries, 0 elsewhere",
			Arity:       1,
			Fn:          Boxcar,
		},
	}
}
