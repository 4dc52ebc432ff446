package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gochemics/internal/bubble"
	"github.com/alexiusacademia/gochemics/internal/diagram"
	"github.com/alexiusacademia/gochemics/internal/units"
)

var (
	sweepFrom       string
	sweepTo         string
	sweepPoints     int
	sweepChart      bool
	sweepExportFile string
)

var bubbleSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Rise velocity over a range of bubble diameters",
	Long: `Evaluate the rise velocity at log-spaced diameters between --from and
--to (inclusive), holding the fluid properties fixed.

The jumps between regimes are part of the correlation and show up in
the table and the plots.

Examples:
  # 0.1 mm to 20 mm in water, ASCII chart
  gochemics bubble sweep --from "0.1 mm" --to "20 mm" --chart

  # Export a log-log plot
  gochemics bubble sweep --fluid glycerol-50 --points 200 -o sweep.png`,
	RunE: runBubbleSweep,
}

func init() {
	bubbleCmd.AddCommand(bubbleSweepCmd)

	bubbleSweepCmd.Flags().StringVar(&sweepFrom, "from", "0.1 mm", "Smallest diameter")
	bubbleSweepCmd.Flags().StringVar(&sweepTo, "to", "20 mm", "Largest diameter")
	bubbleSweepCmd.Flags().IntVarP(&sweepPoints, "points", "n", 25, "Number of diameters")

	// Diagram options
	bubbleSweepCmd.Flags().BoolVar(&sweepChart, "chart", false, "Show ASCII chart of the sweep")
	bubbleSweepCmd.Flags().StringVarP(&sweepExportFile, "output", "o", "", "Export log-log plot to file (png, svg, pdf)")
}

func runBubbleSweep(cmd *cobra.Command, args []string) error {
	base, name, err := bubbleFluidInputs(cmd)
	if err != nil {
		return err
	}
	dMin, err := units.Parse(sweepFrom, units.Length)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	dMax, err := units.Parse(sweepTo, units.Length)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	points, err := bubble.Sweep(base, dMin, dMax, sweepPoints)
	if err != nil {
		return err
	}
	// boundaries depend on the fluid only
	bounds, err := bubble.Boundaries(base.WithDiameter(dMin))
	if err != nil {
		return err
	}
	logger.WithField("points", len(points)).Debug("bubble sweep evaluated")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     BUBBLE RISE VELOCITY SWEEP - %s\n", name)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  d (mm)\tu (m/s)\tRe\tRegime\n")
	fmt.Fprintf(w, "  ──────\t───────\t──\t──────\n")
	for _, p := range points {
		fmt.Fprintf(w, "  %.4g\t%.4g\t%.4g\t%s\n", p.Diameter*1e3, p.Velocity, p.Reynolds, p.Regime)
	}
	w.Flush()
	fmt.Fprintln(out)

	data := sweepData(name, points, bounds)
	if sweepChart {
		fmt.Fprint(out, diagram.DrawASCIISweep(data, 15, 60))
		fmt.Fprintln(out)
	}

	if sweepExportFile != "" {
		if err := diagram.ExportSweep(data, sweepExportFile); err != nil {
			return fmt.Errorf("export plot: %w", err)
		}
		logger.WithField("file", sweepExportFile).Info("plot exported")
		fmt.Fprintf(out, "  Plot exported to: %s\n\n", sweepExportFile)
	}
	return nil
}

func sweepData(name string, points []bubble.Point, bounds []bubble.Boundary) diagram.SweepData {
	data := diagram.SweepData{
		Title:  "Bubble rise velocity, " + name,
		XLabel: "d (m)",
		YLabel: "u (m/s)",
	}
	for _, p := range points {
		data.X = append(data.X, p.Diameter)
		data.Y = append(data.Y, p.Velocity)
		data.Regimes = append(data.Regimes, p.Regime)
	}
	for _, b := range bounds {
		data.Boundaries = append(data.Boundaries, diagram.Marker{
			Label: b.Below + "|" + b.Above,
			X:     b.Diameter,
		})
	}
	return data
}
