package value

import (
	gomath "math"

	"gonum.org/v1/gonum/floats"
)

// Value is a scalar or a vector of float64. The zero Value is the scalar 0.
type Value struct {
	scalar float64
	vec    []float64
}

// Scalar wraps a single number.
func Scalar(x float64) Value {
	return Value{scalar: x}
}

// Vector wraps a copy of xs. An empty or nil slice yields an empty vector.
func Vector(xs []float64) Value {
	v := make([]float64, len(xs))
	copy(v, xs)
	return Value{vec: v}
}

// IsVector reports whether v holds a vector rather than a single number.
func (v Value) IsVector() bool {
	return v.vec != nil
}

// Len returns the number of elements: 1 for a scalar, the vector length
// otherwise.
func (v Value) Len() int {
	if v.vec == nil {
		return 1
	}
	return len(v.vec)
}

// Float returns the scalar payload. It panics on a vector Value.
func (v Value) Float() float64 {
	if v.vec != nil {
		panic("value: Float called on a vector Value")
	}
	return v.scalar
}

// At returns element i. A scalar broadcasts: every index yields the scalar.
func (v Value) At(i int) float64 {
	if v.vec == nil {
		return v.scalar
	}
	return v.vec[i]
}

// Floats returns a freshly allocated slice of all elements.
func (v Value) Floats() []float64 {
	if v.vec == nil {
		return []float64{v.scalar}
	}
	out := make([]float64, len(v.vec))
	copy(out, v.vec)
	return out
}

// Map applies f element-wise.
func (v Value) Map(f func(float64) float64) Value {
	if v.vec == nil {
		return Value{scalar: f(v.scalar)}
	}
	out := make([]float64, len(v.vec))
	for i, x := range v.vec {
		out[i] = f(x)
	}
	return Value{vec: out}
}

// AddConst returns v + c element-wise.
func (v Value) AddConst(c float64) Value {
	if v.vec == nil {
		return Value{scalar: v.scalar + c}
	}
	out := make([]float64, len(v.vec))
	copy(out, v.vec)
	floats.AddConst(c, out)
	return Value{vec: out}
}

// Scale returns c * v element-wise.
func (v Value) Scale(c float64) Value {
	if v.vec == nil {
		return Value{scalar: c * v.scalar}
	}
	out := make([]float64, len(v.vec))
	copy(out, v.vec)
	floats.Scale(c, out)
	return Value{vec: out}
}

// Add returns v + o with scalar/vector broadcasting.
func (v Value) Add(o Value) Value {
	if v.vec != nil && o.vec != nil {
		out := make([]float64, len(v.vec))
		copy(out, v.vec)
		floats.Add(out, o.vec)
		return Value{vec: out}
	}
	if v.vec == nil && o.vec == nil {
		return Value{scalar: v.scalar + o.scalar}
	}
	if v.vec == nil {
		return o.AddConst(v.scalar)
	}
	return v.AddConst(o.scalar)
}

// Sub returns v - o with scalar/vector broadcasting.
func (v Value) Sub(o Value) Value {
	if v.vec != nil && o.vec != nil {
		out := make([]float64, len(v.vec))
		copy(out, v.vec)
		floats.Sub(out, o.vec)
		return Value{vec: out}
	}
	return v.Add(o.Scale(-1))
}

// Mul returns v * o element-wise with scalar/vector broadcasting.
func (v Value) Mul(o Value) Value {
	if v.vec != nil && o.vec != nil {
		out := make([]float64, len(v.vec))
		copy(out, v.vec)
		floats.Mul(out, o.vec)
		return Value{vec: out}
	}
	if v.vec == nil && o.vec == nil {
		return Value{scalar: v.scalar * o.scalar}
	}
	if v.vec == nil {
		return o.Scale(v.scalar)
	}
	return v.Scale(o.scalar)
}

// Div returns v / o element-wise with scalar/vector broadcasting. Division
// by zero follows IEEE-754: the result element is ±Inf or NaN.
func (v Value) Div(o Value) Value {
	if v.vec != nil && o.vec != nil {
		out := make([]float64, len(v.vec))
		copy(out, v.vec)
		floats.Div(out, o.vec)
		return Value{vec: out}
	}
	return apply2(v, o, func(a, b float64) float64 { return a / b })
}

// Pow returns v ** o element-wise with scalar/vector broadcasting.
func (v Value) Pow(o Value) Value {
	return apply2(v, o, gomath.Pow)
}

// Less returns the 0/1 mask of v < c: 1 where the comparison holds, 0
// elsewhere (including NaN elements).
func (v Value) Less(c float64) Value {
	return v.Map(func(x float64) float64 {
		if x < c {
			return 1
		}
		return 0
	})
}

// apply2 combines two Values element-wise with broadcasting. Two vectors of
// different lengths panic, same as the gonum floats kernels.
func apply2(v, o Value, f func(a, b float64) float64) Value {
	switch {
	case v.vec == nil && o.vec == nil:
		return Value{scalar: f(v.scalar, o.scalar)}
	case v.vec != nil && o.vec != nil:
		if len(v.vec) != len(o.vec) {
			panic("value: vector length mismatch")
		}
		out := make([]float64, len(v.vec))
		for i := range v.vec {
			out[i] = f(v.vec[i], o.vec[i])
		}
		return Value{vec: out}
	case v.vec == nil:
		out := make([]float64, len(o.vec))
		for i := range o.vec {
			out[i] = f(v.scalar, o.vec[i])
		}
		return Value{vec: out}
	default:
		out := make([]float64, len(v.vec))
		for i := range v.vec {
			out[i] = f(v.vec[i], o.scalar)
		}
		return Value{vec: out}
	}
}
