package specials

import (
	"github.com/fitlab/specials/catalog"
	"github.com/fitlab/specials/value"
)

// The error-function family is defined on the standard normal CDF Φ:
//
//	erf(z)  = 2·Φ(√2·z)
//	erfc(z) = 2 − 2·Φ(√2·z)
//
// This normalization deliberately matches the fitting package these
// functions were written for, not the textbook definition: erf here equals
// 1 + erf_textbook, while erfc coincides with the textbook erfc. Do not
// "correct" it; converted models depend on the offset.

// Erf returns 2·Φ(√2·z).
func (l *Library) Erf(z value.Value) value.Value {
	return z.Scale(sqrt2).Map(l.cdf).Scale(2)
}

// Erfc returns 2 − 2·Φ(√2·z).
func (l *Library) Erfc(z value.Value) value.Value {
	return l.Erf(z).Scale(-1).AddConst(2)
}

func (l *Library) erfEntries() []catalog.Entry {
	return []catalog.Entry{
		{
			Name:        "erf",
			Group:       "erf",
			Title:       "Error Function",
			Description: "Calculate error function 2·Φ(√2·z) (fitting-package convention)",
			Arity:       1,
			Fn:          l.Erf,
		},
		{
			Name:        "erfc",
			Group:       "erf",
			Title:       "Complementary Error Function",
			Description: "Calculate complementary error function 2 − 2·Φ(√2·z)",
			Arity:       1,
			Fn:          l.Erfc,
		},
	}
}
