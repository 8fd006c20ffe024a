package specials

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlab/specials/value"
)

func TestGamma(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		cases := map[float64]float64{
			1:   1,
			2:   1,
			5:   24,
			0.5: gomath.Sqrt(gomath.Pi),
			1.5: gomath.Sqrt(gomath.Pi) / 2,
			10:  362880,
		}
		for x, want := range cases {
			got := Gamma(value.Scalar(x)).Float()
			assert.InEpsilon(t, want, got, 1e-10, "Γ(%v)", x)
		}
	})

	t.Run("matches stdlib", func(t *testing.T) {
		for x := 0.5; x < 20; x += 0.37 {
			assert.InEpsilon(t, gomath.Gamma(x), Gamma(value.Scalar(x)).Float(), 1e-11, "Γ(%v)", x)
		}
	})

	t.Run("reflection branch", func(t *testing.T) {
		// Arguments below 0.5 go through Euler's reflection.
		for _, x := range []float64{0.1, 0.25, 0.49, -0.5, -1.5, -2.7, -6.3} {
			assert.InEpsilon(t, gomath.Gamma(x), Gamma(value.Scalar(x)).Float(), 1e-9, "Γ(%v)", x)
		}
	})

	t.Run("reflection consistency", func(t *testing.T) {
		// Γ(x)·Γ(1−x) == π/sin(πx) for x in (0, 0.5)
		for _, x := range []float64{0.05, 0.1, 0.2, 0.3, 0.4, 0.45} {
			prod := Gamma(value.Scalar(x)).Float() * Gamma(value.Scalar(1-x)).Float()
			want := gomath.Pi / gomath.Sin(gomath.Pi*x)
			assert.InEpsilon(t, want, prod, 1e-8, "x=%v", x)
		}
	})

	t.Run("recurrence", func(t *testing.T) {
		// Γ(x+1) == x·Γ(x) for x > 0.5
		for _, x := range []float64{0.6, 1.3, 2.5, 4.2, 7.7, 11.1} {
			lhs := Gamma(value.Scalar(x + 1)).Float()
			rhs := x * Gamma(value.Scalar(x)).Float()
			assert.InEpsilon(t, rhs, lhs, 1e-9, "x=%v", x)
		}
	})

	t.Run("poles", func(t *testing.T) {
		// sin(πx) vanishes at non-positive integers; the division is left
		// to IEEE-754, so the pole surfaces as Inf at x = 0 and as
		// π/(sin(πx)·Γ(1−x)) with sin(πx) only zero to rounding elsewhere,
		// never an error.
		assert.True(t, gomath.IsInf(Gamma(value.Scalar(0)).Float(), 0))
		for _, x := range []float64{-1, -2, -5} {
			got := Gamma(value.Scalar(x)).Float()
			want := gomath.Pi / (gomath.Sin(gomath.Pi*x) * gomath.Gamma(1-x))
			assert.InEpsilon(t, want, got, 1e-9, "Γ(%v) = %v", x, got)
		}
	})

	t.Run("vector matches scalar", func(t *testing.T) {
		xs := []float64{-2.5, -0.3, 0.2, 0.5, 1, 3.7, 9}
		got := Gamma(value.Vector(xs))

		require.True(t, got.IsVector())
		require.Equal(t, len(xs), got.Len())
		for i, x := range xs {
			assert.Equal(t, Gamma(value.Scalar(x)).Float(), got.At(i), "x=%v", x)
		}
	})

	t.Run("mixed branches in one vector", func(t *testing.T) {
		// The branchless select must pick per element, not per call.
		got := Gamma(value.Vector([]float64{0.25, 5}))
		assert.InEpsilon(t, gomath.Gamma(0.25), got.At(0), 1e-10)
		assert.InEpsilon(t, 24, got.At(1), 1e-10)
	})
}

func BenchmarkGamma(b *testing.B) {
	xs := make([]float64, 1024)
	for i := range xs {
		xs[i] = -5 + 15*float64(i)/float64(len(xs))
	}
	v := value.Vector(xs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Gamma(v)
	}
}
