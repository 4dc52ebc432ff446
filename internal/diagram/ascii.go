package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// Bar is one labelled percentage in a bar chart
type Bar struct {
	Label string
	Value float64 // %
}

// BarGroup is a titled set of bars drawn together, e.g. one basis
type BarGroup struct {
	Title string
	Bars  []Bar
}

// Marker is a labelled position on the x axis
type Marker struct {
	Label string
	X     float64
}

// SweepData holds a log-spaced sweep of a correlation for plotting
type SweepData struct {
	Title      string
	XLabel     string
	YLabel     string
	X          []float64
	Y          []float64
	Regimes    []string // regime of each sample, same length as X
	Boundaries []Marker
}

// DrawPercentBars draws horizontal bars where 100 % spans width characters
func DrawPercentBars(groups []BarGroup, width int) string {
	var sb strings.Builder

	labelWidth := 0
	for _, g := range groups {
		for _, b := range g.Bars {
			labelWidth = max(labelWidth, utf8.RuneCountInString(b.Label))
		}
	}

	for _, g := range groups {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %s\n", g.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", utf8.RuneCountInString(g.Title))))
		for _, b := range g.Bars {
			n := int(math.Round(b.Value / 100 * float64(width)))
			n = min(max(n, 0), width)
			sb.WriteString(fmt.Sprintf("  %-*s │%s%s %6.2f %%\n",
				labelWidth, b.Label,
				strings.Repeat("█", n), strings.Repeat(" ", width-n),
				b.Value))
		}
	}
	return sb.String()
}

// DrawASCIISweep plots the sweep against sample index, so a log-spaced sweep
// reads as a log x axis, and lists the diameter range of each regime below.
func DrawASCIISweep(data SweepData, height, width int) string {
	if len(data.Y) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(data.Y,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("%s: %s vs %s (log-spaced)", data.Title, data.YLabel, data.XLabel)),
	))
	sb.WriteString("\n\n")

	start := 0
	for i := 1; i <= len(data.Regimes); i++ {
		if i < len(data.Regimes) && data.Regimes[i] == data.Regimes[start] {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-16s %.4g … %.4g\n", data.Regimes[start], data.X[start], data.X[i-1]))
		start = i
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to n runes
func pad(s string, n int) string {
	if k := n - utf8.RuneCountInString(s); k > 0 {
		return s + strings.Repeat(" ", k)
	}
	return s
}
