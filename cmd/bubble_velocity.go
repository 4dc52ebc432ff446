package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gochemics/internal/bubble"
	"github.com/alexiusacademia/gochemics/internal/diagram"
	"github.com/alexiusacademia/gochemics/internal/units"
)

var (
	velocityDiameter string
	velocityJSON     bool
)

var bubbleVelocityCmd = &cobra.Command{
	Use:   "velocity",
	Short: "Rise velocity of a single bubble",
	Long: `Calculate the terminal rise velocity of one bubble, the flow regime
it falls in, its Reynolds number and the boundary diameters of every
regime for the chosen fluid.

Examples:
  # 3 mm air bubble in water at 20 °C
  gochemics bubble velocity --diameter "3 mm"

  # Same bubble with explicit properties
  gochemics bubble velocity -d 0.003 --rho-l 998 --rho-g 0 --sigma "72.75 dyn/cm" --mu "1.21 cP"

  # Air in ethanol, JSON output
  gochemics bubble velocity -d "1 mm" --fluid ethanol --json`,
	RunE: runBubbleVelocity,
}

func init() {
	bubbleCmd.AddCommand(bubbleVelocityCmd)

	bubbleVelocityCmd.Flags().StringVarP(&velocityDiameter, "diameter", "d", "", "Bubble diameter, e.g. 0.003 or \"3 mm\" [required]")
	bubbleVelocityCmd.Flags().BoolVar(&velocityJSON, "json", false, "Print results as JSON")
	bubbleVelocityCmd.MarkFlagRequired("diameter")
}

// velocityReport is the JSON shape of a single evaluation
type velocityReport struct {
	Fluid         string               `json:"fluid"`
	Inputs        bubble.Inputs        `json:"inputs"`
	Regime        string               `json:"regime"`
	Velocity      float64              `json:"velocity"`
	Reynolds      float64              `json:"reynolds"`
	Discriminants bubble.Discriminants `json:"discriminants"`
	Boundaries    []bubble.Boundary    `json:"boundaries"`
}

func runBubbleVelocity(cmd *cobra.Command, args []string) error {
	in, name, err := bubbleFluidInputs(cmd)
	if err != nil {
		return err
	}
	d, err := units.Parse(velocityDiameter, units.Length)
	if err != nil {
		return fmt.Errorf("--diameter: %w", err)
	}
	in = in.WithDiameter(d)

	res, err := bubble.Evaluate(in)
	if err != nil {
		return err
	}
	disc, err := bubble.Compute(in)
	if err != nil {
		return err
	}
	bounds, err := bubble.Boundaries(in)
	if err != nil {
		return err
	}
	re := bubble.Reynolds(in, res.Value)

	logger.WithFields(logrus.Fields{
		"morton":            disc.Morton,
		"d_stokes":          disc.DStokes,
		"d_intermediate":    disc.DIntermediate,
		"d_surface_tension": disc.DSurfaceTension,
		"d_oscillating":     disc.DOscillating,
	}).Debug("bubble discriminants")

	logger.WithField("regime", res.Regime).WithField("velocity", res.Value).Info("bubble rise velocity")

	out := cmd.OutOrStdout()
	if velocityJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(velocityReport{
			Fluid:         name,
			Inputs:        in,
			Regime:        res.Regime,
			Velocity:      res.Value,
			Reynolds:      re,
			Discriminants: disc,
			Boundaries:    bounds,
		})
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     BUBBLE RISE VELOCITY - PEEBLES & GARBER")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "INPUTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Fluid:\t%s\n", name)
	fmt.Fprintf(w, "  Bubble diameter (d):\t%.4g mm\n", in.Diameter*1e3)
	fmt.Fprintf(w, "  Liquid density (ρl):\t%.4g kg/m³\n", in.LiquidDensity)
	fmt.Fprintf(w, "  Gas density (ρg):\t%.4g kg/m³\n", in.GasDensity)
	fmt.Fprintf(w, "  Surface tension (σ):\t%.4g mN/m\n", in.SurfaceTension*1e3)
	fmt.Fprintf(w, "  Liquid viscosity (μl):\t%.4g mPa·s\n", in.Viscosity*1e3)
	fmt.Fprintf(w, "  Gravity (g):\t%.4g m/s²\n", in.Gravity)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "DISCRIMINANTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Morton number (Mo):\t%.4e\n", disc.Morton)
	fmt.Fprintf(w, "  Re limit, stokes/intermediate:\t%.4g\n", disc.ReStokes)
	fmt.Fprintf(w, "  Re limit, intermediate/surface-tension:\t%.4g\n", disc.ReIntermediate)
	fmt.Fprintf(w, "  Re limit, surface-tension/oscillating:\t%.4g\n", disc.ReSurfaceTension)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "REGIME BOUNDARIES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Below\tAbove\td (mm)\n")
	fmt.Fprintf(w, "  ─────\t─────\t──────\n")
	for _, b := range bounds {
		fmt.Fprintf(w, "  %s\t%s\t%.4g\n", b.Below, b.Above, b.Diameter*1e3)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("Regime:            %s", res.Regime),
		fmt.Sprintf("Rise velocity u:   %.4g m/s", res.Value),
		fmt.Sprintf("Reynolds number:   %.4g", re),
	}))
	fmt.Fprintln(out)
	return nil
}
