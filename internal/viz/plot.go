// Package viz assembles terminal plots and styled output for decay runs.
// It only consumes (t, u) pairs and labels; it never computes solutions.
package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/decaylab/internal/decay"
	"github.com/san-kum/decaylab/internal/experiment"
)

var plotColors = []asciigraph.AnsiColor{
	asciigraph.Green,
	asciigraph.Cyan,
	asciigraph.Magenta,
	asciigraph.Yellow,
	asciigraph.Red,
	asciigraph.Blue,
}

// SolvePlot renders one trajectory against the exact solution sampled on
// the same mesh.
func SolvePlot(res *decay.Result, exact decay.Solution, width, height int) string {
	data := [][]float64{res.U, exact}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(plotColors[0], asciigraph.White),
		asciigraph.SeriesLegends(decay.SchemeName(res.Theta), "exact"),
		asciigraph.Caption(fmt.Sprintf("u(t), dt=%g, t in [0, %g]", res.Dt, res.TActual)),
	)
}

// MultiPlot renders arbitrary labeled series, e.g. columns loaded back
// from storage.
func MultiPlot(data [][]float64, labels []string, width, height int, caption string) string {
	colors := make([]asciigraph.AnsiColor, len(data))
	for i := range colors {
		colors[i] = plotColors[i%len(plotColors)]
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(labels...),
		asciigraph.Caption(caption),
	)
}

// ComparePlot renders every swept theta plus the exact reference.
// Terminal plots are index-aligned, so the exact curve is sampled on the
// shared numerical mesh here; the fine overlay is for SVG export.
func ComparePlot(ds *experiment.Dataset, width, height int) string {
	first := ds.Runs[ds.Thetas[0]].Result

	data := make([][]float64, 0, len(ds.Thetas)+1)
	legends := make([]string, 0, len(ds.Thetas)+1)
	colors := make([]asciigraph.AnsiColor, 0, len(ds.Thetas)+1)

	for idx, theta := range ds.Thetas {
		data = append(data, ds.Runs[theta].Result.U)
		legends = append(legends, decay.SchemeName(theta))
		colors = append(colors, plotColors[idx%len(plotColors)])
	}

	data = append(data, decay.Sample(first.T, ds.Params.I, ds.Params.A))
	legends = append(legends, "exact")
	colors = append(colors, asciigraph.White)

	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(fmt.Sprintf("theta comparison, dt=%g, t in [0, %g]", first.Dt, first.TActual)),
	)
}
