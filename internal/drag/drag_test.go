package drag

import (
	"testing"

	"github.com/alexiusacademia/gochemics/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// atReynolds builds inputs with ρ = μ = d = 1 so that Re equals the velocity
func atReynolds(re float64) Inputs {
	return Inputs{Diameter: 1, Velocity: re, Density: 1, Viscosity: 1}
}

func TestCoefficient(t *testing.T) {
	tests := []struct {
		re     float64
		want   float64
		regime string
	}{
		{0.01, 2400, RegimeStokes},
		{0.0999, 24 / 0.0999, RegimeStokes},
		{0.1, 240 * (1 + 0.14*0.19952623149688797), RegimeIntermediate},
		{100, 0.24 * (1 + 0.14*25.118864315095795), RegimeIntermediate},
		{1000, 0.445, RegimeNewton},
		{1e5, 0.445, RegimeNewton},
	}

	for _, tt := range tests {
		res, err := Coefficient(atReynolds(tt.re))
		require.NoError(t, err)
		assert.Equal(t, tt.regime, res.Regime, "Re=%g", tt.re)
		assert.InEpsilon(t, tt.want, res.Value, 1e-9, "Re=%g", tt.re)
		assert.InEpsilon(t, tt.re, res.Discriminant, 1e-12)
	}
}

func TestReynolds(t *testing.T) {
	// 100 µm sphere at 0.5 m/s in air
	in := Inputs{Diameter: 1e-4, Velocity: 0.5, Density: 1.204, Viscosity: 1.81e-5}
	assert.InEpsilon(t, 3.326, Reynolds(in), 1e-3)
}

func TestCoefficientInvalid(t *testing.T) {
	for _, in := range []Inputs{
		{Diameter: 0, Velocity: 1, Density: 1, Viscosity: 1},
		{Diameter: 1, Velocity: -1, Density: 1, Viscosity: 1},
		{Diameter: 1, Velocity: 1, Density: 0, Viscosity: 1},
		{Diameter: 1, Velocity: 1, Density: 1, Viscosity: 0},
	} {
		_, err := Coefficient(in)
		var verr *validate.ValidationError
		assert.ErrorAs(t, err, &verr)
	}
}

func TestRegimeOrder(t *testing.T) {
	assert.Equal(t, []string{RegimeStokes, RegimeIntermediate, RegimeNewton}, Sphere.Names())
}
