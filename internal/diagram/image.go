package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// ExportSweep writes a log-log plot of the sweep to an image file. Each
// regime is drawn as its own line so jumps at the boundaries stay visible.
// The format follows the extension (.png, .svg, .pdf); anything else gets .png.
func ExportSweep(data SweepData, filename string) error {
	if len(data.X) < 2 || len(data.X) != len(data.Y) || len(data.X) != len(data.Regimes) {
		return fmt.Errorf("diagram: sweep needs matching X, Y and regime slices with at least 2 samples")
	}

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = data.XLabel
	p.Y.Label.Text = data.YLabel
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	yMin, yMax := data.Y[0], data.Y[0]
	for _, y := range data.Y {
		yMin, yMax = min(yMin, y), max(yMax, y)
	}

	// One line per contiguous run of a regime
	colors := map[string]color.Color{}
	start := 0
	for i := 1; i <= len(data.X); i++ {
		if i < len(data.X) && data.Regimes[i] == data.Regimes[start] {
			continue
		}

		name := data.Regimes[start]
		pts := make(plotter.XYs, i-start)
		for j := range pts {
			pts[j] = plotter.XY{X: data.X[start+j], Y: data.Y[start+j]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		c, seen := colors[name]
		if !seen {
			c = plotutil.Color(len(colors))
			colors[name] = c
			p.Legend.Add(name, line)
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = c
		p.Add(line)

		start = i
	}

	// Regime boundaries inside the plotted range
	for _, m := range data.Boundaries {
		if m.X <= data.X[0] || m.X >= data.X[len(data.X)-1] {
			continue
		}
		bl, err := plotter.NewLine(plotter.XYs{
			{X: m.X, Y: yMin},
			{X: m.X, Y: yMax},
		})
		if err != nil {
			return err
		}
		bl.LineStyle.Width = vg.Points(1)
		bl.LineStyle.Color = color.Gray{Y: 128}
		bl.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(bl)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: m.X, Y: yMin}},
			Labels: []string{m.Label},
		})
		if err != nil {
			return err
		}
		lbl.TextStyle[0].Rotation = math.Pi / 2
		lbl.TextStyle[0].XAlign = text.XLeft
		p.Add(lbl)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
