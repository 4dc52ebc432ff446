// Package drag gives the drag coefficient of a smooth sphere as a function of
// the particle Reynolds number, using the Stokes, intermediate (Schiller-Naumann
// form with the 0.14 Re^0.7 term) and Newton regimes.
package drag

import (
	"math"

	"github.com/alexiusacademia/gochemics/internal/regime"
	"github.com/alexiusacademia/gochemics/internal/validate"
)

// Regime names, lowest Reynolds number first
const (
	RegimeStokes       = "stokes"
	RegimeIntermediate = "intermediate"
	RegimeNewton       = "newton"
)

const (
	reStokes = 0.1
	reNewton = 1000.0
	cdNewton = 0.445
)

// Inputs describes a sphere moving through a fluid (SI units)
type Inputs struct {
	Diameter  float64 // particle diameter (m)
	Velocity  float64 // slip velocity (m/s)
	Density   float64 // fluid density (kg/m³)
	Viscosity float64 // fluid dynamic viscosity (Pa·s)
}

// Validate requires every quantity to be strictly positive
func (in Inputs) Validate() error {
	return validate.First(
		validate.Positive("diameter", in.Diameter),
		validate.Positive("velocity", in.Velocity),
		validate.Positive("density", in.Density),
		validate.Positive("viscosity", in.Viscosity),
	)
}

// Reynolds returns ρ u d / μ
func Reynolds(in Inputs) float64 {
	return in.Density * in.Velocity * in.Diameter / in.Viscosity
}

func upper(re float64) func(Inputs) float64 {
	return func(Inputs) float64 { return re }
}

// Sphere is the drag coefficient correlation, selected on Reynolds number
var Sphere = &regime.Correlation[Inputs]{
	Name:         "sphere drag coefficient",
	Discriminant: Reynolds,
	Regimes: []regime.Regime[Inputs]{
		{
			Name:  RegimeStokes,
			Upper: upper(reStokes),
			Eval:  func(in Inputs) float64 { return 24 / Reynolds(in) },
		},
		{
			Name:  RegimeIntermediate,
			Upper: upper(reNewton),
			Eval: func(in Inputs) float64 {
				re := Reynolds(in)
				return 24 / re * (1 + 0.14*math.Pow(re, 0.7))
			},
		},
		{
			Name: RegimeNewton,
			Eval: func(Inputs) float64 { return cdNewton },
		},
	},
}

// Coefficient validates the inputs and returns the drag coefficient along
// with the selected regime and Reynolds number.
func Coefficient(in Inputs) (regime.Result, error) {
	if err := in.Validate(); err != nil {
		return regime.Result{}, err
	}
	return Sphere.Evaluate(in)
}
