package specials

import (
	gomath "math"

	"github.com/fitlab/specials/catalog"
	"github.com/fitlab/specials/value"
)

// Degree-argument trigonometry: each function converts degrees to radians
// by dividing by degPerRad and delegates to the radian primitive. NaN and
// infinite inputs propagate whatever the primitive produces.

// Sind returns sin(x) for x in degrees.
func Sind(x value.Value) value.Value {
	return degMap(x, gomath.Sin)
}

// Cosd returns cos(x) for x in degrees.
func Cosd(x value.Value) value.Value {
	return degMap(x, gomath.Cos)
}

// Tand returns tan(x) for x in degrees.
func Tand(x value.Value) value.Value {
	return degMap(x, gomath.Tan)
}

// Sinhd returns sinh(x) for x in degrees.
func Sinhd(x value.Value) value.Value {
	return degMap(x, gomath.Sinh)
}

// Coshd returns cosh(x) for x in degrees.
func Coshd(x value.Value) value.Value {
	return degMap(x, gomath.Cosh)
}

// Tanhd returns tanh(x) for x in degrees.
func Tanhd(x value.Value) value.Value {
	return degMap(x, gomath.Tanh)
}

func degMap(x value.Value, f func(float64) float64) value.Value {
	return x.Map(func(v float64) float64 { return f(v / degPerRad) })
}

func trigEntries() []catalog.Entry {
	return []catalog.Entry{
		{
			Name:        "sind",
			Group:       "trig",
			Title:       "Sine (degrees)",
			Description: "Calculate sine of an angle in degrees",
			Arity:       1,
			Fn:          Sind,
		},
		{
			Name:        "cosd",
			Group:       "trig",
			Title:       "Cosine (degrees)",
			Description: "Calculate cosine of an angle in degrees",
			Arity:       1,
			Fn:          Cosd,
		},
		{
			Name:        "tand",
			Group:       "trig",
			Title:       "Tangent (degrees)",
			Description: "Calculate tangent of an angle in degrees",
			Arity:       1,
			Fn:          Tand,
		},
		{
			Name:        "sinhd",
			Group:       "trig",
			Title:       "Hyperbolic Sine (degrees)",
			Description: "Calculate hyperbolic sine of an angle in degrees",
			Arity:       1,
			Fn:          Sinhd,
		},
		{
			Name:        "coshd",
			Group:       "trig",
			Title:       "Hyperbolic Cosine (degrees)",
			Description: "Calculate hyperbolic cosine of an angle in degrees",
			Arity:       1,
			Fn:          Coshd,
		},
		{
			Name:        "tanhd",
			Group:       "trig",
			Title:       "Hyperbolic Tangent (degrees)",
			Description: "Calculate hyperbolic tangent of an angle in degrees",
			Arity:       1,
			Fn:          Tanhd,
		},
	}
}
