package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gochemics/internal/config"
	"github.com/alexiusacademia/gochemics/internal/proximate"
	"github.com/alexiusacademia/gochemics/internal/units"
	"github.com/alexiusacademia/gochemics/internal/validate"
)

// resetFlags restores every flag to its default so commands can run again
func resetFlags(c *cobra.Command) {
	for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	resetFlags(rootCmd)
	cfg = config.Default()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootBanner(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "GOCHEMICS")
	assert.Contains(t, out, "bubble velocity")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gochemics v")
}

func TestProximateTable(t *testing.T) {
	out, err := run(t, "proximate", "--fc", "16.92", "--vm", "76.40", "--ash", "0.64", "--moisture", "6.04")
	require.NoError(t, err)
	for _, want := range []string{"% ar", "% dry", "% daf", "81.31", "18.13", "0.68", "100.00"} {
		assert.Contains(t, out, want)
	}
}

func TestProximateJSON(t *testing.T) {
	out, err := run(t, "proximate", "--fc", "16.92", "--vm", "76.40", "--ash", "0.64", "--moisture", "6.04", "--json")
	require.NoError(t, err)

	var b proximate.Bases
	require.NoError(t, json.Unmarshal([]byte(out), &b))
	assert.Equal(t, [4]float64{16.92, 76.40, 0.64, 6.04}, b.AsReceived)
	assert.InDelta(t, 81.31, b.Dry[1], 0.01)
	assert.InDelta(t, 81.86, b.DryAshFree[1], 0.01)
}

func TestProximateChart(t *testing.T) {
	out, err := run(t, "proximate", "--fc", "16.92", "--vm", "76.40", "--ash", "0.64", "--moisture", "6.04", "--chart")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry ash-free (% daf)")
	assert.Contains(t, out, "█")
}

func TestProximateErrors(t *testing.T) {
	_, err := run(t, "proximate", "--fc", "16.92", "--vm", "76.40", "--ash", "0.64", "--moisture", "7")
	var verr *validate.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "must be 100")

	_, err = run(t, "proximate")
	assert.Error(t, err)

	// flags must come together
	_, err = run(t, "proximate", "--fc", "16.92")
	assert.Error(t, err)

	// a looser tolerance accepts the same sample
	_, err = run(t, "proximate", "--fc", "16.92", "--vm", "76.40", "--ash", "0.64", "--moisture", "6.05", "--tolerance", "0.02")
	assert.NoError(t, err)
}

func TestProximateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "pine", "fc": 16.92, "vm": 76.40, "ash": 0.64, "moisture": 6.04},
		{"name": "broken", "fc": 50, "vm": 50, "ash": 10, "moisture": 0}
	]`), 0o644))

	out, err := run(t, "proximate", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "Sample: pine")
	assert.Contains(t, out, "broken:")

	out, err = run(t, "proximate", "--file", path, "--json")
	require.Error(t, err)
	var docs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "pine", docs[0]["name"])
	assert.Contains(t, docs[1]["error"], "must be 100")
}

func TestBubbleVelocityJSON(t *testing.T) {
	out, err := run(t, "bubble", "velocity", "-d", "3 mm",
		"--rho-l", "998", "--rho-g", "0", "--sigma", "72.75 dyn/cm", "--mu", "1.21 cP", "--json")
	require.NoError(t, err)

	var rep velocityReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "custom", rep.Fluid)
	assert.Equal(t, "surface-tension", rep.Regime)
	assert.InEpsilon(t, 0.3, rep.Velocity, 1e-2)
	assert.InEpsilon(t, 0.003, rep.Inputs.Diameter, 1e-12)
	assert.InEpsilon(t, 0.07275, rep.Inputs.SurfaceTension, 1e-12)
	assert.Len(t, rep.Boundaries, 4)
}

func TestBubbleVelocityTable(t *testing.T) {
	out, err := run(t, "bubble", "velocity", "--diameter", "0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "REGIME BOUNDARIES")
	assert.Contains(t, out, "spherical-cap")
	assert.Contains(t, out, "0.7004 m/s")
}

func TestBubbleVelocityErrors(t *testing.T) {
	_, err := run(t, "bubble", "velocity")
	assert.Error(t, err)

	_, err = run(t, "bubble", "velocity", "-d", "3 mm", "--fluid", "mercury")
	assert.Error(t, err)

	_, err = run(t, "bubble", "velocity", "-d", "3 mm", "--sigma", "1.21 cP")
	assert.ErrorIs(t, err, units.ErrDimensionMismatch)

	_, err = run(t, "bubble", "velocity", "-d", "0")
	var verr *validate.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = run(t, "bubble", "velocity", "-d", "3 mm", "--rho-g", "2000")
	assert.ErrorAs(t, err, &verr)
}

func TestBubbleGravityMustBePositive(t *testing.T) {
	for _, g := range []string{"0", "-1", "0 m/s2"} {
		_, err := run(t, "bubble", "velocity", "-d", "0.1", "--gravity", g)
		var verr *validate.ValidationError
		require.ErrorAs(t, err, &verr, "--gravity %s", g)
		assert.Equal(t, "gravity", verr.Field)
	}

	out, err := run(t, "bubble", "velocity", "-d", "0.1", "--gravity", "1.62 m/s2", "--json")
	require.NoError(t, err)
	var rep velocityReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 1.62, rep.Inputs.Gravity)
}

func TestBubbleSweep(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "sweep.svg")
	out, err := run(t, "bubble", "sweep", "--points", "30", "--chart", "-o", plot)
	require.NoError(t, err)
	assert.Contains(t, out, "stokes")
	assert.Contains(t, out, "spherical-cap")
	assert.Contains(t, out, "Plot exported to")

	info, err := os.Stat(plot)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	_, err = run(t, "bubble", "sweep", "--from", "5 mm", "--to", "1 mm")
	assert.Error(t, err)
}

func TestDrag(t *testing.T) {
	out, err := run(t, "drag", "-d", "100 um", "-u", "0.5 m/s", "--rho", "1.204", "--mu", "1.81e-5")
	require.NoError(t, err)
	assert.Contains(t, out, "intermediate")
	assert.Contains(t, out, "3.326")

	_, err = run(t, "drag", "-d", "100 um", "-u", "0.5", "--rho", "1.204", "--mu", "1 furlong")
	assert.ErrorIs(t, err, units.ErrUnknownUnit)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gochemics.toml")
	require.NoError(t, os.WriteFile(path, []byte("[bubble]\nfluid = \"ethanol\"\n"), 0o644))

	out, err := run(t, "--config", path, "bubble", "velocity", "-d", "1 mm", "--json")
	require.NoError(t, err)

	var rep velocityReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "ethanol", rep.Fluid)
	assert.Equal(t, 789.0, rep.Inputs.LiquidDensity)

	_, err = run(t, "--log-level", "loud", "version")
	assert.Error(t, err)
}
