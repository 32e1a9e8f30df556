package export

import (
	"strings"
	"testing"

	"github.com/san-kum/decaylab/internal/decay"
	"github.com/san-kum/decaylab/internal/experiment"
)

func TestDatasetSVG(t *testing.T) {
	p := decay.Params{I: 1, A: 2, T: 4, Dt: 0.4}
	ds, err := experiment.Compare(p, []float64{0, 0.5, 1})
	if err != nil {
		t.Fatal(err)
	}

	svg := DatasetSVG(ds, 800, 500)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("expected XML declaration")
	}
	if !strings.Contains(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("expected svg element")
	}
	// One path per theta plus the exact overlay.
	if got := strings.Count(svg, "<path"); got != 4 {
		t.Errorf("expected 4 paths, got %d", got)
	}
	if !strings.Contains(svg, "stroke-dasharray") {
		t.Error("exact overlay should be dashed")
	}
	for _, label := range []string{"Forward Euler", "Backward Euler", "Crank-Nicolson", "exact"} {
		if !strings.Contains(svg, label) {
			t.Errorf("legend should contain %q", label)
		}
	}
}

func TestSeriesSVGEmpty(t *testing.T) {
	if got := SeriesSVG(nil, 800, 500); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSeriesSVGSkipsMismatched(t *testing.T) {
	series := []Series{
		{Label: "bad", T: []float64{0, 1, 2}, U: []float64{1}, Color: "#fff"},
	}
	svg := SeriesSVG(series, 100, 100)
	if strings.Contains(svg, "<path") {
		t.Error("mismatched series should not produce a path")
	}
}
