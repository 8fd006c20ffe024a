package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitNormalCDF(t *testing.T) {
	t.Run("median", func(t *testing.T) {
		assert.InDelta(t, 0.5, UnitNormalCDF(0), 1e-15)
	})

	t.Run("matches erf identity", func(t *testing.T) {
		// Φ(x) = (1 + erf(x/√2)) / 2
		for _, x := range []float64{-3, -1.5, -0.2, 0.7, 1, 2.4} {
			want := (1 + math.Erf(x/math.Sqrt2)) / 2
			assert.InDelta(t, want, UnitNormalCDF(x), 1e-14, "x=%v", x)
		}
	})

	t.Run("monotone", func(t *testing.T) {
		prev := UnitNormalCDF(-8)
		for x := -7.5; x <= 8; x += 0.5 {
			cur := UnitNormalCDF(x)
			assert.Greater(t, cur, prev, "x=%v", x)
			prev = cur
		}
	})

	t.Run("tails", func(t *testing.T) {
		assert.InDelta(t, 0, UnitNormalCDF(-40), 1e-300)
		assert.InDelta(t, 1, UnitNormalCDF(40), 1e-15)
	})
}
