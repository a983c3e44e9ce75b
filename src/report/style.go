package report

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Panel dimensions in pixels. Grids are composed from equally sized panels.
const (
	panelWidth  = 700
	panelHeight = 500
)

var colorMagenta = drawing.Color{R: 199, G: 21, B: 133, A: 255}

// lineStyle renders a solid line with dot markers, the default series look.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
		DotWidth:    4,
		DotColor:    col,
	}
}

// dashedStyle renders a dashed line without markers, used for fit and
// reference curves.
func dashedStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth:     2,
		StrokeColor:     col,
		StrokeDashArray: []float64{5.0, 5.0},
	}
}

// pointStyle renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    5,
		DotColor:    col,
	}
}

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice"
// numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates up to n tick marks between [min, max] using nice
// increments.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	var ticks []chart.Tick
	for v := start; v <= max+bestStep/2; v += bestStep {
		if v < min-bestStep/2 {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: chart.FloatValueFormatter(v)})
	}
	return ticks
}
