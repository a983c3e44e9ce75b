package report

import (
	"math"
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"
)

func TestRenderLinePanel(t *testing.T) {
	img, err := renderLinePanel("t", "x", "y",
		[]series{{name: "a", xs: []float64{1, 2, 3}, ys: []float64{1, 4, 9}, style: lineStyle(chart.ColorBlue)}}, true)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != panelWidth || b.Dy() != panelHeight {
		t.Fatalf("unexpected panel size %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderLinePanelLengthMismatch(t *testing.T) {
	_, err := renderLinePanel("t", "x", "y",
		[]series{{name: "a", xs: []float64{1, 2, 3}, ys: []float64{1, 4}, style: lineStyle(chart.ColorBlue)}}, false)
	if err == nil {
		t.Fatal("expected error for mismatched series lengths")
	}
}

func TestRenderLinePanelNoSeries(t *testing.T) {
	if _, err := renderLinePanel("t", "x", "y", nil, false); err == nil {
		t.Fatal("expected error for empty panel")
	}
}

func TestRenderLinePanelSinglePoint(t *testing.T) {
	img, err := renderLinePanel("t", "x", "y",
		[]series{{name: "a", xs: []float64{5}, ys: []float64{2}, style: lineStyle(chart.ColorGreen)}}, false)
	if err != nil {
		t.Fatalf("single point render: %v", err)
	}
	if img == nil {
		t.Fatal("nil image")
	}
}

func TestLog10Series(t *testing.T) {
	out := log10Series([]float64{1, 10, 100})
	want := []float64{0, 1, 2}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("log10: got %v want %v", out, want)
		}
	}
	// non-positive values clamp to the smallest positive value
	out = log10Series([]float64{0, 10})
	if out[0] != 1 || out[1] != 1 {
		t.Fatalf("clamp: got %v", out)
	}
	// all non-positive stays finite
	out = log10Series([]float64{0, -1})
	for _, v := range out {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Fatalf("expected finite values, got %v", out)
		}
	}
}
