package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gochemics/internal/diagram"
	"github.com/alexiusacademia/gochemics/internal/drag"
	"github.com/alexiusacademia/gochemics/internal/units"
)

var (
	dragDiameter string
	dragVelocity string
	dragRho      string
	dragMu       string
)

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Drag coefficient of a rigid sphere",
	Long: `Calculate the drag coefficient of a smooth rigid sphere from its
particle Reynolds number Re = ρ u d / μ:

  stokes        Re < 0.1      Cd = 24 / Re
  intermediate  Re < 1000     Cd = 24 / Re (1 + 0.14 Re^0.7)
  newton        Re ≥ 1000     Cd = 0.445

Values accept unit suffixes; bare numbers are SI.

Examples:
  # 100 µm particle settling in air
  gochemics drag --diameter "100 um" --velocity "0.5 m/s" --rho 1.204 --mu 1.81e-5`,
	RunE: runDrag,
}

func init() {
	rootCmd.AddCommand(dragCmd)

	dragCmd.Flags().StringVarP(&dragDiameter, "diameter", "d", "", "Particle diameter [required]")
	dragCmd.Flags().StringVarP(&dragVelocity, "velocity", "u", "", "Slip velocity [required]")
	dragCmd.Flags().StringVar(&dragRho, "rho", "", "Fluid density [required]")
	dragCmd.Flags().StringVar(&dragMu, "mu", "", "Fluid viscosity [required]")

	dragCmd.MarkFlagRequired("diameter")
	dragCmd.MarkFlagRequired("velocity")
	dragCmd.MarkFlagRequired("rho")
	dragCmd.MarkFlagRequired("mu")
}

func runDrag(cmd *cobra.Command, args []string) error {
	var in drag.Inputs
	var err error
	if in.Diameter, err = units.Parse(dragDiameter, units.Length); err != nil {
		return fmt.Errorf("--diameter: %w", err)
	}
	if in.Velocity, err = units.Parse(dragVelocity, units.Velocity); err != nil {
		return fmt.Errorf("--velocity: %w", err)
	}
	if in.Density, err = units.Parse(dragRho, units.Density); err != nil {
		return fmt.Errorf("--rho: %w", err)
	}
	if in.Viscosity, err = units.Parse(dragMu, units.Viscosity); err != nil {
		return fmt.Errorf("--mu: %w", err)
	}

	res, err := drag.Coefficient(in)
	if err != nil {
		return err
	}
	logger.WithField("regime", res.Regime).WithField("cd", res.Value).Info("drag coefficient")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     SPHERE DRAG COEFFICIENT")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Diameter (d):\t%.4g m\n", in.Diameter)
	fmt.Fprintf(w, "  Velocity (u):\t%.4g m/s\n", in.Velocity)
	fmt.Fprintf(w, "  Fluid density (ρ):\t%.4g kg/m³\n", in.Density)
	fmt.Fprintf(w, "  Fluid viscosity (μ):\t%.4g Pa·s\n", in.Viscosity)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("Regime:            %s", res.Regime),
		fmt.Sprintf("Reynolds number:   %.4g", res.Discriminant),
		fmt.Sprintf("Drag coefficient:  %.4g", res.Value),
	}))
	fmt.Fprintln(out)
	return nil
}
