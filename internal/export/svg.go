// Package export renders comparison datasets to SVG. It consumes (t, u)
// pairs and legend labels as opaque data; nothing here touches the solver.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/decaylab/internal/decay"
	"github.com/san-kum/decaylab/internal/experiment"
)

// Series is one labeled curve.
type Series struct {
	Label  string
	T      []float64
	U      []float64
	Color  string
	Dashed bool
}

var seriesColors = []string{"#00ff88", "#00ccff", "#ff00ff", "#ffcc00", "#ff4444", "#8888ff"}

// DatasetSVG lays out a comparison dataset: one colored polyline per theta
// plus the exact curve as a dashed white overlay.
func DatasetSVG(ds *experiment.Dataset, width, height int) string {
	series := make([]Series, 0, len(ds.Thetas)+1)
	for idx, theta := range ds.Thetas {
		run := ds.Runs[theta]
		series = append(series, Series{
			Label: decay.SchemeName(theta),
			T:     run.Result.T,
			U:     run.Result.U,
			Color: seriesColors[idx%len(seriesColors)],
		})
	}
	series = append(series, Series{
		Label:  "exact",
		T:      ds.ExactT,
		U:      ds.ExactU,
		Color:  "#ffffff",
		Dashed: true,
	})
	return SeriesSVG(series, width, height)
}

// SeriesSVG renders labeled curves into a single plot with a shared scale
// and a legend in the top-right corner.
func SeriesSVG(series []Series, width, height int) string {
	if len(series) == 0 {
		return ""
	}

	minX, maxX, minY, maxY := bounds(series)

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, s := range series {
		if len(s.T) < 2 || len(s.T) != len(s.U) {
			continue
		}

		dash := ""
		if s.Dashed {
			dash = ` stroke-dasharray="4 3"`
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5"%s d="M`, s.Color, dash))

		for i := range s.T {
			x := (s.T[i] - minX) / rangeX * float64(width)
			y := float64(height) - (s.U[i]-minY)/rangeY*float64(height)

			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	for i, s := range series {
		y := 16 + i*14
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" font-family="monospace" font-size="11">%s</text>
`, width-150, y, s.Color, s.Label))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func bounds(series []Series) (minX, maxX, minY, maxY float64) {
	first := true
	for _, s := range series {
		for i := range s.T {
			if i >= len(s.U) {
				break
			}
			if first {
				minX, maxX = s.T[i], s.T[i]
				minY, maxY = s.U[i], s.U[i]
				first = false
				continue
			}
			if s.T[i] < minX {
				minX = s.T[i]
			}
			if s.T[i] > maxX {
				maxX = s.T[i]
			}
			if s.U[i] < minY {
				minY = s.U[i]
			}
			if s.U[i] > maxY {
				maxY = s.U[i]
			}
		}
	}
	return minX, maxX, minY, maxY
}
