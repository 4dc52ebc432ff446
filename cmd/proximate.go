package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gochemics/internal/diagram"
	"github.com/alexiusacademia/gochemics/internal/proximate"
)

var (
	proxFc        float64
	proxVm        float64
	proxAsh       float64
	proxMoisture  float64
	proxTolerance float64
	proxJSON      bool
	proxFile      string
	proxChart     bool
)

var proximateCmd = &cobra.Command{
	Use:   "proximate",
	Short: "Convert a proximate analysis to dry and dry ash-free bases",
	Long: `Convert a proximate analysis from the as-received basis (% ar) to the
dry basis (% dry) and the dry ash-free basis (% daf).

The four as-received values must add up to 100 within the tolerance.
Moisture is removed for the dry basis, then ash is removed for the dry
ash-free basis, renormalizing to 100 % each time.

A batch of samples can be converted from a JSON file holding an array
of {"name", "fc", "vm", "ash", "moisture"} objects.

Examples:
  # Pine wood chips
  gochemics proximate --fc 16.92 --vm 76.40 --ash 0.64 --moisture 6.04

  # Machine readable output
  gochemics proximate --fc 16.92 --vm 76.40 --ash 0.64 --moisture 6.04 --json

  # Several samples at once, with bar charts
  gochemics proximate --file samples.json --chart`,
	RunE: runProximate,
}

func init() {
	rootCmd.AddCommand(proximateCmd)

	proximateCmd.Flags().Float64Var(&proxFc, "fc", 0, "Fixed carbon (% ar)")
	proximateCmd.Flags().Float64Var(&proxVm, "vm", 0, "Volatile matter (% ar)")
	proximateCmd.Flags().Float64Var(&proxAsh, "ash", 0, "Ash (% ar)")
	proximateCmd.Flags().Float64Var(&proxMoisture, "moisture", 0, "Moisture (% ar)")
	proximateCmd.Flags().Float64Var(&proxTolerance, "tolerance", 0, "Allowed deviation of the sum from 100 (default from config, 0.001)")

	proximateCmd.Flags().StringVarP(&proxFile, "file", "f", "", "JSON file with an array of samples")
	proximateCmd.Flags().BoolVar(&proxJSON, "json", false, "Print results as JSON")
	proximateCmd.Flags().BoolVar(&proxChart, "chart", false, "Draw ASCII bar charts of each basis")

	proximateCmd.MarkFlagsRequiredTogether("fc", "vm", "ash", "moisture")
	proximateCmd.MarkFlagsMutuallyExclusive("file", "fc")
	proximateCmd.MarkFlagsMutuallyExclusive("json", "chart")
}

func runProximate(cmd *cobra.Command, args []string) error {
	tol := cfg.Proximate.Tolerance
	if cmd.Flags().Changed("tolerance") {
		tol = proxTolerance
	}

	var samples []proximate.Sample
	switch {
	case proxFile != "":
		s, err := proximate.LoadSamples(proxFile)
		if err != nil {
			return err
		}
		samples = s
	case cmd.Flags().Changed("fc"):
		samples = []proximate.Sample{{
			Analysis: proximate.Analysis{
				FixedCarbon:    proxFc,
				VolatileMatter: proxVm,
				Ash:            proxAsh,
				Moisture:       proxMoisture,
			},
		}}
	default:
		return fmt.Errorf("either --file or all of --fc, --vm, --ash and --moisture are required")
	}

	logger.WithFields(logrus.Fields{"samples": len(samples), "tolerance": tol}).Debug("converting proximate analysis")
	results := proximate.ConvertAll(samples, tol)

	out := cmd.OutOrStdout()
	if proxJSON {
		return writeProximateJSON(out, results)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.WithError(r.Err).WithField("sample", r.Sample.Name).Warn("conversion failed")
			if len(results) > 1 {
				fmt.Fprintf(out, "\n  %s: %v\n", r.Sample.Name, r.Err)
			}
			continue
		}
		printBases(out, r.Sample.Name, r.Bases)
		if proxChart {
			fmt.Fprint(out, diagram.DrawPercentBars(basisBars(r.Bases), 40))
			fmt.Fprintln(out)
		}
	}

	switch {
	case len(results) == 1 && failed == 1:
		return results[0].Err
	case failed > 0:
		return fmt.Errorf("%d of %d samples failed", failed, len(results))
	}
	return nil
}

func printBases(out io.Writer, name string, b *proximate.Bases) {
	ar, dry, daf := b.Sums()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     PROXIMATE ANALYSIS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	if name != "" {
		fmt.Fprintf(out, "  Sample: %s\n", name)
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "\t%% ar\t%% dry\t%% daf\t\n")
	fmt.Fprintf(w, "FC\t%.2f\t%.2f\t%.2f\t\n", b.AsReceived[0], b.Dry[0], b.DryAshFree[0])
	fmt.Fprintf(w, "VM\t%.2f\t%.2f\t%.2f\t\n", b.AsReceived[1], b.Dry[1], b.DryAshFree[1])
	fmt.Fprintf(w, "ash\t%.2f\t%.2f\t\t\n", b.AsReceived[2], b.Dry[2])
	fmt.Fprintf(w, "moisture\t%.2f\t\t\t\n", b.AsReceived[3])
	fmt.Fprintf(w, "sum\t%.2f\t%.2f\t%.2f\t\n", ar, dry, daf)
	w.Flush()
	fmt.Fprintln(out)
}

func basisBars(b *proximate.Bases) []diagram.BarGroup {
	return []diagram.BarGroup{
		{Title: "As-received (% ar)", Bars: []diagram.Bar{
			{Label: "FC", Value: b.AsReceived[0]},
			{Label: "VM", Value: b.AsReceived[1]},
			{Label: "ash", Value: b.AsReceived[2]},
			{Label: "moisture", Value: b.AsReceived[3]},
		}},
		{Title: "Dry (% dry)", Bars: []diagram.Bar{
			{Label: "FC", Value: b.Dry[0]},
			{Label: "VM", Value: b.Dry[1]},
			{Label: "ash", Value: b.Dry[2]},
		}},
		{Title: "Dry ash-free (% daf)", Bars: []diagram.Bar{
			{Label: "FC", Value: b.DryAshFree[0]},
			{Label: "VM", Value: b.DryAshFree[1]},
		}},
	}
}

// proximateJSON is the JSON shape of one converted sample
type proximateJSON struct {
	Name  string           `json:"name,omitempty"`
	Bases *proximate.Bases `json:"bases,omitempty"`
	Error string           `json:"error,omitempty"`
}

func writeProximateJSON(out io.Writer, results []proximate.Result) error {
	docs := make([]proximateJSON, len(results))
	failed := 0
	for i, r := range results {
		docs[i] = proximateJSON{Name: r.Sample.Name, Bases: r.Bases}
		if r.Err != nil {
			docs[i].Error = r.Err.Error()
			failed++
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	var err error
	if len(docs) == 1 && proxFile == "" {
		if failed == 1 {
			return results[0].Err
		}
		err = enc.Encode(docs[0].Bases)
	} else {
		err = enc.Encode(docs)
	}
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d samples failed", failed, len(results))
	}
	return nil
}
