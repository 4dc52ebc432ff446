// Package proximate converts a fuel proximate analysis between the
// as-received, dry and dry ash-free bases.
package proximate

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gochemics/internal/validate"
)

// DefaultTolerance is the allowed absolute deviation of the as-received sum
// from 100 % (relative 1e-5 plus absolute 1e-8, evaluated at 100).
const DefaultTolerance = 1e-3

// Analysis is a proximate analysis on the as-received basis (% ar)
type Analysis struct {
	FixedCarbon    float64 `json:"fc"`
	VolatileMatter float64 `json:"vm"`
	Ash            float64 `json:"ash"`
	Moisture       float64 `json:"moisture"`
}

// Bases holds the analysis on each basis, in percent
type Bases struct {
	AsReceived [4]float64 `json:"ar"`  // fc, vm, ash, moisture
	Dry        [3]float64 `json:"dry"` // fc, vm, ash
	DryAshFree [2]float64 `json:"daf"` // fc, vm
}

// Validate checks every component is a finite, non-negative percentage and
// that the components add up to 100 within tolerance.
func (a Analysis) Validate(tolerance float64) error {
	err := validate.First(
		validate.NonNegative("fixed carbon", a.FixedCarbon),
		validate.NonNegative("volatile matter", a.VolatileMatter),
		validate.NonNegative("ash", a.Ash),
		validate.NonNegative("moisture", a.Moisture),
		validate.Positive("tolerance", tolerance),
	)
	if err != nil {
		return err
	}

	sum := a.Sum()
	if math.Abs(sum-100) > tolerance {
		return validate.Errorf("sum of proximate analysis values must be 100, got %g", sum)
	}
	return nil
}

// Sum returns fc + vm + ash + moisture
func (a Analysis) Sum() float64 {
	return a.FixedCarbon + a.VolatileMatter + a.Ash + a.Moisture
}

// Convert renormalizes the analysis in two cascading steps: moisture is
// removed for the dry basis, then ash is removed for the dry ash-free basis.
func Convert(a Analysis, tolerance float64) (*Bases, error) {
	if err := a.Validate(tolerance); err != nil {
		return nil, err
	}

	b := &Bases{
		AsReceived: [4]float64{a.FixedCarbon, a.VolatileMatter, a.Ash, a.Moisture},
	}

	sumAR := floats.Sum(b.AsReceived[:])
	dryMass := sumAR - a.Moisture
	if dryMass <= 0 {
		return nil, &validate.ValidationError{Field: "moisture", Value: a.Moisture,
			Reason: "sample has no dry matter"}
	}
	for i := range b.Dry {
		b.Dry[i] = 100 * b.AsReceived[i] / dryMass
	}

	sumDry := floats.Sum(b.Dry[:])
	combustible := sumDry - b.Dry[2]
	if combustible <= 0 {
		return nil, &validate.ValidationError{Field: "ash", Value: a.Ash,
			Reason: "sample has no ash-free dry matter"}
	}
	for i := range b.DryAshFree {
		b.DryAshFree[i] = 100 * b.Dry[i] / combustible
	}

	return b, nil
}

// Sums returns the totals of the as-received, dry and dry ash-free lists
func (b *Bases) Sums() (ar, dry, daf float64) {
	return floats.Sum(b.AsReceived[:]), floats.Sum(b.Dry[:]), floats.Sum(b.DryAshFree[:])
}
