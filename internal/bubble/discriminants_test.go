package bubble

import (
	"testing"

	"github.com/alexiusacademia/gochemics/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundariesOrder(t *testing.T) {
	bounds, err := Boundaries(airWater(0.001))
	require.NoError(t, err)

	want := [][2]string{
		{RegimeStokes, RegimeIntermediate},
		{RegimeIntermediate, RegimeSurfaceTension},
		{RegimeSurfaceTension, RegimeOscillating},
		{RegimeOscillating, RegimeSphericalCap},
	}
	require.Len(t, bounds, len(want))
	for i, b := range bounds {
		assert.Equal(t, want[i][0], b.Below)
		assert.Equal(t, want[i][1], b.Above)
		if i > 0 {
			assert.Greater(t, b.Diameter, bounds[i-1].Diameter)
		}
	}
}

func TestSweep(t *testing.T) {
	points, err := Sweep(airWater(1), 1e-5, 0.1, 60)
	require.NoError(t, err)
	require.Len(t, points, 60)

	assert.InEpsilon(t, 1e-5, points[0].Diameter, 1e-12)
	assert.InEpsilon(t, 0.1, points[59].Diameter, 1e-12)
	assert.Equal(t, RegimeStokes, points[0].Regime)
	assert.Equal(t, RegimeSphericalCap, points[59].Regime)

	order := map[string]int{}
	for i, name := range Holland.Names() {
		order[name] = i
	}
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].Diameter, points[i-1].Diameter)
		assert.GreaterOrEqual(t, order[points[i].Regime], order[points[i-1].Regime])
	}

	last := points[59]
	assert.InEpsilon(t, 998*0.1*last.Velocity/0.00121, last.Reynolds, 1e-12)
}

func TestSweepRejectsBadRange(t *testing.T) {
	tests := []struct {
		name       string
		dMin, dMax float64
		n          int
	}{
		{"zero minimum", 0, 0.1, 10},
		{"reversed", 0.1, 0.01, 10},
		{"equal", 0.1, 0.1, 10},
		{"one point", 0.001, 0.1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sweep(airWater(1), tt.dMin, tt.dMax, tt.n)
			var verr *validate.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestSweepPropagatesInputErrors(t *testing.T) {
	base := airWater(1)
	base.Viscosity = 0
	_, err := Sweep(base, 1e-4, 1e-2, 5)
	var verr *validate.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "viscosity", verr.Field)
}
