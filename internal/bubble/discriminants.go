package bubble

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gochemics/internal/validate"
)

// Discriminants holds the derived quantities that partition the diameter axis
type Discriminants struct {
	Morton float64 `json:"morton"` // g μ⁴ Δρ / (ρl² σ³)

	// Reynolds-number limits between adjacent regions
	ReStokes         float64 `json:"re_stokes"`          // stokes / intermediate
	ReIntermediate   float64 `json:"re_intermediate"`    // intermediate / surface-tension
	ReSurfaceTension float64 `json:"re_surface_tension"` // surface-tension / oscillating

	// Boundary diameters (m), ascending for ordinary liquids
	DStokes         float64 `json:"d_stokes"`
	DIntermediate   float64 `json:"d_intermediate"`
	DSurfaceTension float64 `json:"d_surface_tension"`
	DOscillating    float64 `json:"d_oscillating"`
}

// Compute derives the discriminants for the liquid/gas pair in the inputs.
// The diameter is not used but must still be valid.
func Compute(in Inputs) (Discriminants, error) {
	if err := in.Validate(); err != nil {
		return Discriminants{}, err
	}

	mo := Morton(in)
	return Discriminants{
		Morton:           mo,
		ReStokes:         reStokes,
		ReIntermediate:   re23Coeff * math.Pow(mo, re23Exp),
		ReSurfaceTension: re34Coeff * math.Pow(mo, re34Exp),
		DStokes:          diameterStokes(in),
		DIntermediate:    diameterIntermediate(in),
		DSurfaceTension:  diameterSurfaceTension(in),
		DOscillating:     diameterOscillating(in),
	}, nil
}

// Boundary is the transition between two adjacent regimes
type Boundary struct {
	Below    string  `json:"below"`    // Regime for diameters under the boundary
	Above    string  `json:"above"`    // Regime from the boundary upward (inclusive)
	Diameter float64 `json:"diameter"` // m
}

// Boundaries lists the regime transitions in evaluation order
func Boundaries(in Inputs) ([]Boundary, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	bounds := Holland.Bounds(in)
	var out []Boundary
	for i := 0; i < len(Holland.Regimes)-1; i++ {
		out = append(out, Boundary{
			Below:    Holland.Regimes[i].Name,
			Above:    Holland.Regimes[i+1].Name,
			Diameter: bounds[i],
		})
	}
	return out, nil
}

// Point is one sample of a diameter sweep
type Point struct {
	Diameter float64 // m
	Velocity float64 // m/s
	Reynolds float64
	Regime   string
}

// Sweep evaluates n log-spaced diameters between dMin and dMax inclusive,
// holding the fluid properties of base fixed.
func Sweep(base Inputs, dMin, dMax float64, n int) ([]Point, error) {
	err := validate.First(
		validate.Positive("minimum diameter", dMin),
		validate.Positive("maximum diameter", dMax),
	)
	if err != nil {
		return nil, err
	}
	if dMax <= dMin {
		return nil, validate.Errorf("maximum diameter %g must exceed minimum diameter %g", dMax, dMin)
	}
	if n < 2 {
		return nil, validate.Errorf("sweep needs at least 2 points, got %d", n)
	}

	diameters := floats.LogSpan(make([]float64, n), dMin, dMax)
	points := make([]Point, 0, n)
	for _, d := range diameters {
		in := base.WithDiameter(d)
		res, err := Evaluate(in)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{
			Diameter: d,
			Velocity: res.Value,
			Reynolds: Reynolds(in, res.Value),
			Regime:   res.Regime,
		})
	}
	return points, nil
}
