// Package bubble computes the terminal rise velocity of a gas bubble in a
// liquid using the five-region correlation of Peebles and Garber as presented
// in Holland and Bragg, Fluid Flow for Chemical Engineers (1995).
//
// All quantities are SI: m, kg/m³, N/m, Pa·s, m/s.
package bubble

import (
	"math"

	"github.com/alexiusacademia/gochemics/internal/regime"
	"github.com/alexiusacademia/gochemics/internal/validate"
)

// StandardGravity is used when Inputs.Gravity is left at zero (m/s²)
const StandardGravity = 9.81

// Regime names, smallest bubbles first
const (
	RegimeStokes         = "stokes"
	RegimeIntermediate   = "intermediate"
	RegimeSurfaceTension = "surface-tension"
	RegimeOscillating    = "oscillating"
	RegimeSphericalCap   = "spherical-cap"
)

// Correlation constants
const (
	reStokes = 2.0 // Re upper limit of the Stokes region

	re23Coeff = 4.02
	re23Exp   = -0.214
	re34Coeff = 3.10
	re34Exp   = -0.25

	c2     = 0.33 // region 2: u = c2 g^0.76 (ρ/μ)^0.52 r^1.28
	c2g    = 0.76
	c2rho  = 0.52
	c2r    = 1.28
	c3     = 1.35 // region 3: u = c3 (σ/(ρ r))^0.5
	c4     = 1.18 // region 4: u = c4 (g σ Δρ / ρ²)^0.25
	stokes = 18.0
)

// Inputs is the physical description of a single bubble in a liquid.
//
// The liquid must be denser than the gas; GasDensity may be zero when it is
// negligible compared with the liquid.
type Inputs struct {
	Diameter       float64 `json:"diameter"` // d - bubble diameter (m)
	LiquidDensity  float64 `json:"rho_l"`    // ρl - continuous phase density (kg/m³)
	GasDensity     float64 `json:"rho_g"`    // ρg - dispersed phase density (kg/m³)
	SurfaceTension float64 `json:"sigma"`    // σ - gas/liquid surface tension (N/m)
	Viscosity      float64 `json:"mu"`       // μl - liquid dynamic viscosity (Pa·s)
	Gravity        float64 `json:"gravity"`  // g (m/s²), zero selects StandardGravity
}

// Validate checks the preconditions of every regime formula
func (in Inputs) Validate() error {
	err := validate.First(
		validate.Positive("diameter", in.Diameter),
		validate.Positive("liquid density", in.LiquidDensity),
		validate.NonNegative("gas density", in.GasDensity),
		validate.Positive("surface tension", in.SurfaceTension),
		validate.Positive("viscosity", in.Viscosity),
		validate.NonNegative("gravity", in.Gravity),
	)
	if err != nil {
		return err
	}
	if in.LiquidDensity <= in.GasDensity {
		return validate.Errorf("liquid density %g must exceed gas density %g",
			in.LiquidDensity, in.GasDensity)
	}
	return nil
}

// WithDiameter returns a copy of the inputs for another bubble size
func (in Inputs) WithDiameter(d float64) Inputs {
	in.Diameter = d
	return in
}

func (in Inputs) g() float64 {
	if in.Gravity == 0 {
		return StandardGravity
	}
	return in.Gravity
}

func (in Inputs) deltaRho() float64 {
	return in.LiquidDensity - in.GasDensity
}

// Morton returns the Morton group g μ⁴ Δρ / (ρl² σ³), which reduces to the
// Peebles and Garber G1 group when the gas density is negligible.
func Morton(in Inputs) float64 {
	mu2 := in.Viscosity * in.Viscosity
	return in.g() * mu2 * mu2 * in.deltaRho() /
		(in.LiquidDensity * in.LiquidDensity * math.Pow(in.SurfaceTension, 3))
}

// Reynolds returns the bubble Reynolds number ρl d u / μl
func Reynolds(in Inputs, u float64) float64 {
	return in.LiquidDensity * in.Diameter * u / in.Viscosity
}

// Region velocities

func velocityStokes(in Inputs) float64 {
	return in.g() * in.Diameter * in.Diameter * in.deltaRho() / (stokes * in.Viscosity)
}

func velocityIntermediate(in Inputs) float64 {
	r := in.Diameter / 2
	return c2 * math.Pow(in.g(), c2g) *
		math.Pow(in.LiquidDensity/in.Viscosity, c2rho) *
		math.Pow(r, c2r)
}

func velocitySurfaceTension(in Inputs) float64 {
	r := in.Diameter / 2
	return c3 * math.Sqrt(in.SurfaceTension/(in.LiquidDensity*r))
}

func velocityOscillating(in Inputs) float64 {
	rho := in.LiquidDensity
	return c4 * math.Pow(in.g()*in.SurfaceTension*in.deltaRho()/(rho*rho), 0.25)
}

func velocitySphericalCap(in Inputs) float64 {
	return math.Sqrt(in.g() * in.Diameter / 2)
}

// Boundary diameters. Each one solves Re(d) = threshold using the velocity of
// the region below the boundary.

// diameterStokes solves ρ d u/μ = 2 with the Stokes velocity
func diameterStokes(in Inputs) float64 {
	mu := in.Viscosity
	return math.Cbrt(reStokes * stokes * mu * mu / (in.g() * in.LiquidDensity * in.deltaRho()))
}

// diameterIntermediate solves Re = 4.02 Mo^-0.214 with the region 2 velocity
func diameterIntermediate(in Inputs) float64 {
	re := re23Coeff * math.Pow(Morton(in), re23Exp)
	k := c2 * math.Pow(in.g(), c2g) *
		math.Pow(in.LiquidDensity/in.Viscosity, 1+c2rho) *
		math.Pow(2, -c2r)
	return math.Pow(re/k, 1/(1+c2r))
}

// diameterSurfaceTension solves Re = 3.10 Mo^-0.25 with the region 3 velocity
func diameterSurfaceTension(in Inputs) float64 {
	re := re34Coeff * math.Pow(Morton(in), re34Exp)
	x := re * in.Viscosity / c3
	return x * x / (2 * in.SurfaceTension * in.LiquidDensity)
}

// diameterOscillating is where the spherical-cap velocity overtakes region 4
func diameterOscillating(in Inputs) float64 {
	u := velocityOscillating(in)
	return 2 * u * u / in.g()
}

// Holland is the bubble rise velocity correlation. Its discriminant is the
// bubble diameter, compared against boundary diameters derived from the
// Morton group and the Peebles and Garber Reynolds-number limits.
var Holland = &regime.Correlation[Inputs]{
	Name:         "bubble rise velocity",
	Discriminant: func(in Inputs) float64 { return in.Diameter },
	Regimes: []regime.Regime[Inputs]{
		{Name: RegimeStokes, Upper: diameterStokes, Eval: velocityStokes},
		{Name: RegimeIntermediate, Upper: diameterIntermediate, Eval: velocityIntermediate},
		{Name: RegimeSurfaceTension, Upper: diameterSurfaceTension, Eval: velocitySurfaceTension},
		{Name: RegimeOscillating, Upper: diameterOscillating, Eval: velocityOscillating},
		{Name: RegimeSphericalCap, Eval: velocitySphericalCap},
	},
}

// Evaluate validates the inputs and applies the correlation
func Evaluate(in Inputs) (regime.Result, error) {
	if err := in.Validate(); err != nil {
		return regime.Result{}, err
	}
	return Holland.Evaluate(in)
}

// Velocity returns the terminal rise velocity (m/s)
func Velocity(in Inputs) (float64, error) {
	res, err := Evaluate(in)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

// Classify returns the name of the regime the bubble falls in
func Classify(in Inputs) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}
	i, err := Holland.Select(in)
	if err != nil {
		return "", err
	}
	return Holland.Regimes[i].Name, nil
}
