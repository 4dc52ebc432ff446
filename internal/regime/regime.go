// Package regime evaluates piecewise empirical correlations.
//
// A Correlation maps its input to a single discriminant value and walks an
// ordered list of regimes. Regime i matches when the discriminant is strictly
// below its upper bound; the first match wins, so a value sitting exactly on a
// threshold belongs to the next regime. A regime without an upper bound is the
// catch-all and must be last.
//
// Correlations taken from the literature are not continuous at their regime
// boundaries. The jump is part of the correlation and is left as is.
package regime

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gochemics/internal/validate"
)

// ErrDomainExhausted is returned when no regime accepts the discriminant,
// which means the regime list has a gap (no catch-all).
var ErrDomainExhausted = errors.New("regime: no regime matches discriminant")

// Regime is one band of a correlation
type Regime[In any] struct {
	Name string

	// Upper returns the exclusive upper bound of the band for this input.
	// nil marks the catch-all band.
	Upper func(In) float64

	// Eval is the closed-form expression owned by the band
	Eval func(In) float64
}

// Correlation is an ordered partition of a discriminant range
type Correlation[In any] struct {
	Name         string
	Discriminant func(In) float64
	Regimes      []Regime[In]
}

// Result holds the outcome of a single evaluation
type Result struct {
	Value        float64 // Correlation output
	Regime       string  // Name of the selected regime
	Index        int     // Position of the selected regime, 0-based
	Discriminant float64 // Discriminant value used for selection
}

// Select returns the index of the first regime whose upper bound lies above
// the discriminant.
func (c *Correlation[In]) Select(in In) (int, error) {
	i, _, err := c.pick(in)
	return i, err
}

// pick computes the discriminant once and returns it with the selected index
func (c *Correlation[In]) pick(in In) (int, float64, error) {
	x := c.Discriminant(in)
	if err := validate.Finite(c.Name+" discriminant", x); err != nil {
		return -1, x, err
	}

	for i, r := range c.Regimes {
		if r.Upper == nil {
			return i, x, nil
		}
		upper := r.Upper(in)
		if math.IsNaN(upper) {
			return -1, x, &validate.ValidationError{
				Field:  c.Name + " " + r.Name + " threshold",
				Value:  upper,
				Reason: "threshold is undefined for these inputs",
			}
		}
		if x < upper {
			return i, x, nil
		}
	}

	return -1, x, fmt.Errorf("%s: discriminant %g: %w", c.Name, x, ErrDomainExhausted)
}

// Evaluate selects a regime and applies its expression
func (c *Correlation[In]) Evaluate(in In) (Result, error) {
	i, x, err := c.pick(in)
	if err != nil {
		return Result{}, err
	}

	r := c.Regimes[i]
	v := r.Eval(in)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Result{}, &validate.ValidationError{
			Field:  c.Name + " " + r.Name,
			Value:  v,
			Reason: "correlation produced an invalid result",
		}
	}

	return Result{
		Value:        v,
		Regime:       r.Name,
		Index:        i,
		Discriminant: x,
	}, nil
}

// Names lists the regime names in evaluation order
func (c *Correlation[In]) Names() []string {
	names := make([]string, len(c.Regimes))
	for i, r := range c.Regimes {
		names[i] = r.Name
	}
	return names
}

// Bounds returns the upper bound of every regime for the given input.
// The catch-all reports +Inf.
func (c *Correlation[In]) Bounds(in In) []float64 {
	bounds := make([]float64, len(c.Regimes))
	for i, r := range c.Regimes {
		if r.Upper == nil {
			bounds[i] = math.Inf(1)
			continue
		}
		bounds[i] = r.Upper(in)
	}
	return bounds
}
