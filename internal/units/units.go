// Package units parses command-line quantities such as "72.75 dyn/cm" or
// "3mm" into SI values, rejecting symbols of the wrong dimension.
package units

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/unit"
)

var (
	// ErrUnknownUnit is returned for a symbol missing from the table
	ErrUnknownUnit = errors.New("units: unknown unit")

	// ErrDimensionMismatch is returned when a symbol measures the wrong quantity
	ErrDimensionMismatch = errors.New("units: dimension mismatch")
)

// Quantity dimensions accepted by the calculators
var (
	Length         = unit.Dimensions{unit.LengthDim: 1}
	Velocity       = unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -1}
	Acceleration   = unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -2}
	Density        = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -3}
	SurfaceTension = unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -2}
	Viscosity      = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -1}
)

// symbols maps a unit symbol to its SI equivalent
var symbols = map[string]*unit.Unit{
	"m":  unit.New(1, Length),
	"cm": unit.New(unit.Centi, Length),
	"mm": unit.New(unit.Milli, Length),
	"um": unit.New(unit.Micro, Length),
	"µm": unit.New(unit.Micro, Length),

	"m/s":  unit.New(1, Velocity),
	"cm/s": unit.New(unit.Centi, Velocity),
	"mm/s": unit.New(unit.Milli, Velocity),

	"m/s2":  unit.New(1, Acceleration),
	"m/s^2": unit.New(1, Acceleration),

	"kg/m3":  unit.New(1, Density),
	"kg/m^3": unit.New(1, Density),
	"g/L":    unit.New(1, Density),
	"g/cm3":  unit.New(1000, Density),
	"g/mL":   unit.New(1000, Density),

	"N/m":    unit.New(1, SurfaceTension),
	"mN/m":   unit.New(unit.Milli, SurfaceTension),
	"dyn/cm": unit.New(unit.Milli, SurfaceTension),

	"Pa.s":  unit.New(1, Viscosity),
	"Pa*s":  unit.New(1, Viscosity),
	"Pa·s":  unit.New(1, Viscosity),
	"mPa.s": unit.New(unit.Milli, Viscosity),
	"P":     unit.New(0.1, Viscosity),
	"cP":    unit.New(unit.Milli, Viscosity),
}

// Parse converts s to an SI value of the wanted dimension. A bare number is
// taken to be in SI units already.
func Parse(s string, want unit.Dimensions) (float64, error) {
	num, sym := split(s)
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("units: parse %q: %w", s, err)
	}
	if sym == "" {
		return v, nil
	}

	u, ok := symbols[sym]
	if !ok {
		return 0, fmt.Errorf("%q: %w", sym, ErrUnknownUnit)
	}
	if !unit.DimensionsMatch(u, unit.New(1, want)) {
		return 0, fmt.Errorf("%q is %v, want %v: %w", sym, u.Dimensions(), want, ErrDimensionMismatch)
	}
	return v * u.Value(), nil
}

// Symbols lists the known symbols of a dimension, sorted
func Symbols(want unit.Dimensions) []string {
	ref := unit.New(1, want)
	var out []string
	for sym, u := range symbols {
		if unit.DimensionsMatch(u, ref) {
			out = append(out, sym)
		}
	}
	sort.Strings(out)
	return out
}

// split separates the numeric prefix from the unit symbol
func split(s string) (num, sym string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i:])
	}

	i := 0
	for i < len(s) {
		c := s[i]
		isExp := (c == 'e' || c == 'E') && i+1 < len(s) &&
			strings.ContainsRune("0123456789+-", rune(s[i+1]))
		if !(c >= '0' && c <= '9') && c != '.' && c != '+' && c != '-' && !isExp {
			break
		}
		i++
	}
	return s[:i], s[i:]
}
