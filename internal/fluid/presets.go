// Package fluid holds property sets for common gas/liquid pairs.
package fluid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexiusacademia/gochemics/internal/bubble"
)

// Preset is a named gas/liquid pair with its physical properties (SI)
type Preset struct {
	Name           string
	Description    string
	LiquidDensity  float64 // kg/m³
	GasDensity     float64 // kg/m³
	SurfaceTension float64 // N/m
	Viscosity      float64 // Pa·s
}

// Presets are air bubbles in common liquids at atmospheric pressure.
// "water" reproduces the values used in Holland and Bragg's worked examples,
// which neglect the gas density.
var Presets = []Preset{
	{
		Name:           "water",
		Description:    "Air in water, 20 °C (72.75 dyn/cm, 1.21 cP, gas density neglected)",
		LiquidDensity:  998,
		GasDensity:     0,
		SurfaceTension: 0.07275,
		Viscosity:      0.00121,
	},
	{
		Name:           "water-60c",
		Description:    "Air in water, 60 °C",
		LiquidDensity:  983.2,
		GasDensity:     1.060,
		SurfaceTension: 0.0662,
		Viscosity:      0.000467,
	},
	{
		Name:           "ethanol",
		Description:    "Air in ethanol, 20 °C",
		LiquidDensity:  789,
		GasDensity:     1.204,
		SurfaceTension: 0.02239,
		Viscosity:      0.0012,
	},
	{
		Name:           "glycerol-50",
		Description:    "Air in 50 wt% aqueous glycerol, 20 °C",
		LiquidDensity:  1126,
		GasDensity:     1.204,
		SurfaceTension: 0.0699,
		Viscosity:      0.0060,
	},
}

// Lookup finds a preset by name, ignoring case
func Lookup(name string) (Preset, error) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown fluid %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names lists the preset names, sorted
func Names() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	sort.Strings(names)
	return names
}

// Bubble returns bubble inputs for this fluid pair and bubble diameter
func (p Preset) Bubble(diameter float64) bubble.Inputs {
	return bubble.Inputs{
		Diameter:       diameter,
		LiquidDensity:  p.LiquidDensity,
		GasDensity:     p.GasDensity,
		SurfaceTension: p.SurfaceTension,
		Viscosity:      p.Viscosity,
	}
}
